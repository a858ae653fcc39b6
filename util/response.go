package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the wire shape of every failure response.
type APIError struct {
	Error string `json:"error"`
}

// CallErrorNotFound returns a 404 with an error body.
func CallErrorNotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, APIError{Error: msg})
}

// CallUserError returns a 400 for request-side failures (malformed body or
// parameters, failed validation).
func CallUserError(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, APIError{Error: msg})
}

// CallServerError returns a 500 with a generic message. The underlying error
// is for the server log, never the response body.
func CallServerError(c *gin.Context, msg string, err error) {
	if err != nil {
		LogStorageError(c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(http.StatusInternalServerError, APIError{Error: msg})
}

// CallSuccessOK returns a 200 with the given body serialized as-is.
func CallSuccessOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// CallCreated returns a 201 with the persisted entity.
func CallCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}
