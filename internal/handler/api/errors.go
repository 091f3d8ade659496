package api

import (
	"net/http"

	"bakery-orders/internal/domain/caldate"
	"bakery-orders/internal/domain/order"
	"bakery-orders/internal/handler/httperr"
	"bakery-orders/internal/pkg/errs"
	"bakery-orders/internal/pkg/money"
	"bakery-orders/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorRule struct {
	marks      []error
	status     int
	code       string
	msg        string
	withDetail bool
}

// first match wins
var domainErrorRules = []errorRule{
	{
		marks:  []error{errs.ErrOrderNotFound},
		status: http.StatusNotFound, code: httperr.CodeOrderNotFound, msg: "Order not found",
	},
	{
		marks:  []error{errs.ErrDomainValidation, order.ErrInvalidOrder},
		status: http.StatusUnprocessableEntity, code: httperr.CodeInvalidOrder, msg: "Invalid order", withDetail: true,
	},
	{
		marks:  []error{caldate.ErrAmbiguousDate},
		status: http.StatusBadRequest, code: httperr.CodeInvalidDate, msg: "Invalid request", withDetail: true,
	},
	{
		marks:  []error{money.ErrInvalidAmount, order.ErrInvalidKind, order.ErrInvalidCakeSize, queries.ErrInvalidFilter},
		status: http.StatusBadRequest, code: httperr.CodeBadRequest, msg: "Invalid request", withDetail: true,
	},
	{
		marks:  []error{errs.ErrFeatureDisabled},
		status: http.StatusForbidden, code: httperr.CodeFeatureDisabled, msg: "Operation disabled",
	},
	{
		marks:  []error{errs.ErrPersistence},
		status: http.StatusServiceUnavailable, code: httperr.CodeStorageUnavailable, msg: "Order storage unavailable",
	},
}

// abortWithDomainError maps usecase and domain errors onto HTTP statuses.
func abortWithDomainError(c *gin.Context, err error) {
	for _, rule := range domainErrorRules {
		if !matchesAny(err, rule.marks) {
			continue
		}
		var detail any
		if rule.withDetail {
			detail = err.Error()
		}
		httperr.Abort(c, err, httperr.NewResponse(rule.status, rule.code, rule.msg, detail))
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func matchesAny(err error, marks []error) bool {
	for _, m := range marks {
		if errs.Is(err, m) {
			return true
		}
	}
	return false
}
