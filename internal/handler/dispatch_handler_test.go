package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/prajwalnawale3040/trio-developers/internal/dispatch"
)

func setupDispatchRouter(t *testing.T) (*gin.Engine, *dispatch.Scheduler) {
	t.Helper()
	sched, err := dispatch.NewScheduler(time.Hour, func(context.Context) {}, zap.NewNop())
	assert.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewDispatchHandler(sched).RegisterDispatchRoutes(router.Group("/api"))
	return router, sched
}

func TestDispatchStatusStartStop(t *testing.T) {
	router, sched := setupDispatchRouter(t)
	defer sched.Stop()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/dispatch/status", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"running":false}`, w.Body.String())

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/api/dispatch/start", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"running":true}`, w.Body.String())

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/api/dispatch/stop", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"running":false}`, w.Body.String())
}
