package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestErrInternalServerError_LogsOnceAndHidesDetails(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	RenderErr(ctx, ErrInternalServerError(errors.New("pq: connection refused")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())

	// The underlying error is logged exactly once, never rendered.
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "pq: connection refused", logs.All()[0].Message)
}

func TestErrWrongCredentials(t *testing.T) {
	err := ErrWrongCredentials()

	assert.Equal(t, http.StatusUnauthorized, err.StatusCode)
	assert.Equal(t, "invalid username or password", err.ErrorMsg)
}

func TestErrNotFound(t *testing.T) {
	err := ErrNotFound("formation", "ID", 42)

	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, "formation not found by ID (42)", err.ErrorMsg)
}
