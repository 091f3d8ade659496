package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// RevisionHeader lets clients memoize on the last committed change.
const RevisionHeader = "X-Orders-Revision"

type RevisionSource interface {
	Revision() uint64
}

// Revision stamps the current store revision before the handler runs.
// Mutating handlers overwrite it with SetRevision once their change is applied.
func Revision(source RevisionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		SetRevision(c, source.Revision())
		c.Next()
	}
}

func SetRevision(c *gin.Context, rev uint64) {
	c.Header(RevisionHeader, strconv.FormatUint(rev, 10))
}
