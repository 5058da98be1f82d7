package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/prajwalnawale3040/trio-developers/internal/model"
	"github.com/prajwalnawale3040/trio-developers/internal/service"
)

type fakeBatchService struct {
	batch   *model.Batch
	batches []model.Batch
	err     error
}

func (f *fakeBatchService) CreateBatch(_ context.Context, _ model.CreateBatchRequest) (*model.Batch, error) {
	return f.batch, f.err
}

func (f *fakeBatchService) ListBatches(_ context.Context) ([]model.Batch, error) {
	return f.batches, f.err
}

func setupBatchRouter(svc service.BatchService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewBatchHandler(svc).RegisterBatchRoutes(router.Group("/api"))
	return router
}

func TestCreateBatch_Success(t *testing.T) {
	router := setupBatchRouter(&fakeBatchService{batch: &model.Batch{ID: 7, Name: "VIP Clients"}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/batches",
		strings.NewReader(`{"name":"VIP Clients","description":"high value"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":7}`, w.Body.String())
}

func TestCreateBatch_DuplicateName(t *testing.T) {
	router := setupBatchRouter(&fakeBatchService{err: service.ErrBatchNameTaken})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/batches",
		strings.NewReader(`{"name":"VIP Clients"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Batch name already exists")
}

func TestCreateBatch_MissingName(t *testing.T) {
	router := setupBatchRouter(&fakeBatchService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/batches", strings.NewReader(`{}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBatches_EmptyIsArray(t *testing.T) {
	router := setupBatchRouter(&fakeBatchService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/batches", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}
