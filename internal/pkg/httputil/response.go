package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pillowcase/pillowcase/internal/pkg/apperror"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func PNG(c *gin.Context, data []byte) {
	c.Data(http.StatusOK, "image/png", data)
}

func ErrorWithCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: GetRequestID(c),
	})
}

func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:     "internal server error",
		Code:      "INTERNAL_ERROR",
		RequestID: GetRequestID(c),
	})
}

// HandleError converts a service error into the response envelope.
func HandleError(c *gin.Context, err error) {
	appErr := apperror.FromDomain(err)
	c.JSON(appErr.StatusCode, ErrorResponse{
		Error:     appErr.Message,
		Code:      appErr.Code,
		RequestID: GetRequestID(c),
	})
}

func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		return id.(string)
	}
	return ""
}
