package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"biztrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteServiceError_SentinelMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		err  error
		code int
	}{
		{service.ErrNotFound, http.StatusNotFound},
		{service.ErrProductNotFound, http.StatusNotFound},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrDuplicateUser, http.StatusConflict},
		{service.ErrInvalidTransition, http.StatusConflict},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		writeServiceError(c, tc.err)
		assert.Equal(t, tc.code, w.Code, "for %v", tc.err)
	}
}

func TestWriteServiceError_DoesNotLeakInternals(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	writeServiceError(c, errors.New(`pq: connection refused host=10.0.0.3 dbname=prod`))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body.Message)
	assert.NotContains(t, w.Body.String(), "10.0.0.3")
}

func TestWriteServiceError_ValidationFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	writeServiceError(c, service.NewValidationError("order.total", "total does not equal subtotal - discount + tax"))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Fields, "order.total")
}
