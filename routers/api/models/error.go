package models

import (
	"github.com/gin-gonic/gin"
)

// InternalErrorMessage is sent to clients whenever the cause of a failure should not leak
const InternalErrorMessage = "something went wrong"

// APIError is the body of every error response
type APIError Response

func (e *APIError) Error() string {
	return e.Err
}

// NewAPIError creates an APIError with given status and error message
func NewAPIError(status int, err string) APIError {
	return APIError{
		Status: status,
		Err:    err,
	}
}

// SendAPIError sends an error with given status and error message to the client
// and stops the remaining handlers of the chain
func SendAPIError(ctx *gin.Context, status int, err string) {
	ctx.AbortWithStatusJSON(status, NewAPIError(status, err))
}
