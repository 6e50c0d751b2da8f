package respond

import "github.com/gin-gonic/gin"

// ErrorBody carries the error message, plus a stack trace in dev mode.
type ErrorBody struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// Error sends the uniform error envelope and aborts the request.
func Error(c *gin.Context, status int, message string) {
	ErrorWithStack(c, status, message, "")
}

// ErrorWithStack sends the envelope including a stack trace. Callers only
// pass a stack in dev mode.
func ErrorWithStack(c *gin.Context, status int, message, stack string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Message: message,
			Stack:   stack,
		},
	})
}
