package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teahouse-backend/internal/shared/pagination"
)

// Error codes used across every endpoint. The error body shape is part
// of the fixed contract: {code, message, details?}.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_ERROR"
)

type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// ListBody is the envelope for every list endpoint.
type ListBody struct {
	Data       interface{}     `json:"data"`
	Pagination pagination.Meta `json:"pagination"`
}

func Entity(c *gin.Context, statusCode int, entity interface{}) {
	c.JSON(statusCode, entity)
}

func List(c *gin.Context, data interface{}, meta pagination.Meta) {
	c.JSON(http.StatusOK, ListBody{Data: data, Pagination: meta})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ValidationError writes a 400 with optional per-field details.
func ValidationError(c *gin.Context, message string, details map[string]string) {
	c.JSON(http.StatusBadRequest, ErrorBody{
		Code:    CodeValidation,
		Message: message,
		Details: details,
	})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorBody{
		Code:    CodeNotFound,
		Message: message,
	})
}

// Internal deliberately carries a generic message; internal failure
// detail never leaks to the client.
func Internal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorBody{
		Code:    CodeInternal,
		Message: "Internal server error",
	})
}
