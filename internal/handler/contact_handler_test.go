package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/prajwalnawale3040/trio-developers/internal/model"
	"github.com/prajwalnawale3040/trio-developers/internal/service"
)

type fakeContactService struct {
	contact  *model.Contact
	contacts []model.Contact
	count    int
	err      error
}

func (f *fakeContactService) CreateContact(_ context.Context, _ model.CreateContactRequest) (*model.Contact, error) {
	return f.contact, f.err
}

func (f *fakeContactService) BulkCreateContacts(_ context.Context, _ model.BulkCreateContactsRequest) (int, error) {
	return f.count, f.err
}

func (f *fakeContactService) ListContacts(_ context.Context) ([]model.Contact, error) {
	return f.contacts, f.err
}

func setupContactRouter(svc service.ContactService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewContactHandler(svc).RegisterContactRoutes(router.Group("/api"))
	return router
}

func TestCreateContact_Success(t *testing.T) {
	router := setupContactRouter(&fakeContactService{contact: &model.Contact{ID: 42}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/contacts",
		strings.NewReader(`{"name":"Asha","phone":"+919900112233","tags":["lead"]}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":42}`, w.Body.String())
}

func TestCreateContact_MissingPhone(t *testing.T) {
	router := setupContactRouter(&fakeContactService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/contacts",
		strings.NewReader(`{"name":"Asha"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBulkCreateContacts_Success(t *testing.T) {
	router := setupContactRouter(&fakeContactService{count: 2})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/contacts/bulk",
		strings.NewReader(`{"contacts":[{"name":"Asha","phone":"+911"},{"name":"Ravi","phone":"+912"}]}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["count"])
}

func TestBulkCreateContacts_EmptyList(t *testing.T) {
	router := setupContactRouter(&fakeContactService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/contacts/bulk",
		strings.NewReader(`{"contacts":[]}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBulkCreateContacts_InvalidRow(t *testing.T) {
	router := setupContactRouter(&fakeContactService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/contacts/bulk",
		strings.NewReader(`{"contacts":[{"name":"Asha"}]}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListContacts_EmptyIsArray(t *testing.T) {
	router := setupContactRouter(&fakeContactService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/contacts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}
