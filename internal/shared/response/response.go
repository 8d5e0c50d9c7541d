package response

import (
	"github.com/gin-gonic/gin"
)

// The wire format is deliberately flat: success bodies are the resource
// JSON itself, failures are {"error": string}, and operations that have no
// resource to return answer {"message": string}. Clients of the previous
// implementation depend on these exact shapes.

type ErrorBody struct {
	Error string `json:"error"`
}

type MessageBody struct {
	Message string `json:"message"`
}

func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, MessageBody{Message: msg})
}

func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorBody{Error: msg})
}
