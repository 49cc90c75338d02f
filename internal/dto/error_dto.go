package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// JsonError writes the error body and aborts the remaining handlers. The
// optional message is shown to the client, so it must not carry internal
// details.
func JsonError(c *gin.Context, status int, message ...string) {
	resp := ErrorResponse{Error: http.StatusText(status)}
	if len(message) > 0 {
		resp.Message = message[0]
	}

	c.AbortWithStatusJSON(status, resp)
}
