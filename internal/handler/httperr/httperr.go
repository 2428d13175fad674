package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal server error"

// Response is the body of every non-2xx reply. Detail carries the machine readable code.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// Internal is the body sent for unmapped failures and recovered panics.
func Internal() Response {
	return NewResponse(http.StatusInternalServerError, internalMessage, nil)
}

// AbortWithError records err on the context so the error middleware can log the cause,
// then writes resp to the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
