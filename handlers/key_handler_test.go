package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"keyeditor-api/helper"
	"keyeditor-api/models"
	"keyeditor-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubKeyService records the arguments it was called with and returns canned
// results, so handler tests run without a database.
type stubKeyService struct {
	createReq  *models.CreateKeyRequest
	listParams *models.KeyListParams
	listPublic bool

	key  *models.Key
	keys []models.Key
	err  error
}

func (s *stubKeyService) Create(req models.CreateKeyRequest, userID string) (*models.Key, error) {
	s.createReq = &req
	return s.key, s.err
}

func (s *stubKeyService) Get(id uuid.UUID, userID string, isPublic bool) (*models.Key, error) {
	return s.key, s.err
}

func (s *stubKeyService) GetList(params models.KeyListParams, isPublic bool) ([]models.Key, int64, error) {
	s.listParams = &params
	s.listPublic = isPublic
	return s.keys, int64(len(s.keys)), s.err
}

func (s *stubKeyService) Update(id uuid.UUID, req models.UpdateKeyRequest, userID string) (*models.Key, error) {
	return s.key, s.err
}

func (s *stubKeyService) Delete(id uuid.UUID, userID string) error {
	return s.err
}

// Embedding the interface satisfies RevisionService; tests here never reach
// revision endpoints.
type stubRevisionService struct {
	services.RevisionService
}

func newKeyRouter(svc *stubKeyService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewKeyHandler(svc, &stubRevisionService{}, helper.NewHTTPHelper())

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
	})
	router.POST("/keys", h.CreateKey)
	router.GET("/keys", h.GetKeys)
	router.GET("/keys/:id", h.GetKey)
	router.DELETE("/keys/:id", h.DeleteKey)
	router.GET("/public/keys", h.GetPublicKeys)
	return router
}

func TestCreateKey(t *testing.T) {
	svc := &stubKeyService{key: &models.Key{ID: uuid.New(), Status: models.KeyStatusPrivate}}
	router := newKeyRouter(svc)

	body, _ := json.Marshal(models.CreateKeyRequest{
		Title: models.LocalizedField{No: "Norske fugler", En: "Norwegian birds"},
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/keys", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.createReq)
	assert.Equal(t, "Norwegian birds", svc.createReq.Title.En)
}

// A failing binding tag must surface as 422 with per-field messages, while
// malformed JSON stays 400.
func TestCreateKeyBindingValidation(t *testing.T) {
	svc := &stubKeyService{}
	router := newKeyRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/keys", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "title")
	assert.Nil(t, svc.createReq)
}

func TestCreateKeyMalformedJSON(t *testing.T) {
	router := newKeyRouter(&stubKeyService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/keys", bytes.NewReader([]byte(`{"title":`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetKeyInvalidID(t *testing.T) {
	router := newKeyRouter(&stubKeyService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/keys/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetKeyNotFound(t *testing.T) {
	svc := &stubKeyService{err: models.NotFound("key not found")}
	router := newKeyRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/keys/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"key not found"}`, w.Body.String())
}

func TestGetKeysDefaultPaging(t *testing.T) {
	svc := &stubKeyService{}
	router := newKeyRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/keys", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.listParams)
	assert.Equal(t, 1, svc.listParams.Page)
	assert.Equal(t, 20, svc.listParams.Limit)
	assert.False(t, svc.listPublic)
}

func TestGetPublicKeysUsesPublicListing(t *testing.T) {
	svc := &stubKeyService{}
	router := newKeyRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/public/keys?page=3&limit=5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.listParams)
	assert.Equal(t, 3, svc.listParams.Page)
	assert.Equal(t, 5, svc.listParams.Limit)
	assert.True(t, svc.listPublic)
}

func TestDeleteKeyForbidden(t *testing.T) {
	svc := &stubKeyService{err: models.Forbidden("not a member of the key's workgroup")}
	router := newKeyRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/keys/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
