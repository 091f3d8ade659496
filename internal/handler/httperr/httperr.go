package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Machine readable error codes returned next to the human message.
const (
	CodeBadRequest         = "bad_request"
	CodeUnauthenticated    = "unauthenticated"
	CodeForbidden          = "forbidden"
	CodeNotFound           = "not_found"
	CodeOrderNotFound      = "order_not_found"
	CodeInvalidOrder       = "invalid_order"
	CodeInvalidDate        = "invalid_date"
	CodeFeatureDisabled    = "feature_disabled"
	CodeStorageUnavailable = "storage_unavailable"
	CodeInternal           = "internal"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, code, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}

// Abort keeps err on the context for the logging middleware and writes resp.
func Abort(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("httperr.Abort: err cannot be nil")
	}
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}

func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	Abort(c, err, NewResponse(status, CodeFor(status), msg, detail))
}

// CodeFor is the fallback code when a handler has nothing more specific.
func CodeFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeBadRequest
	case http.StatusUnauthorized:
		return CodeUnauthenticated
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusUnprocessableEntity:
		return CodeInvalidOrder
	case http.StatusServiceUnavailable:
		return CodeStorageUnavailable
	default:
		return CodeInternal
	}
}
