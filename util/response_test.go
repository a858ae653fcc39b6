package util

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) APIError {
	t.Helper()
	var apiErr APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr
}

func TestCallErrorNotFound(t *testing.T) {
	c, w := testContext(t)
	CallErrorNotFound(c, "Security incident not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Security incident not found", decodeError(t, w).Error)
}

func TestCallUserError(t *testing.T) {
	c, w := testContext(t)
	CallUserError(c, "Invalid limit parameter")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid limit parameter", decodeError(t, w).Error)
}

func TestCallServerErrorHidesCause(t *testing.T) {
	captureEventLog(t)
	c, w := testContext(t)
	CallServerError(c, "Failed to fetch security incidents", errors.New("dial tcp: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch security incidents", decodeError(t, w).Error)
	assert.NotContains(t, w.Body.String(), "connection refused", "internal cause stays out of the response")
}

func TestCallSuccessOK(t *testing.T) {
	c, w := testContext(t)
	CallSuccessOK(c, []string{"a", "b"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["a","b"]`, w.Body.String())
}

func TestCallCreated(t *testing.T) {
	c, w := testContext(t)
	CallCreated(c, map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":1}`, w.Body.String())
}
