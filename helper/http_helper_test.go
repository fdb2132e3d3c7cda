package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"keyeditor-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatusCode(t *testing.T) {
	h := NewHTTPHelper()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"not found", models.NotFound("key not found"), http.StatusNotFound},
		{"conflict", models.Conflict("name already in use"), http.StatusConflict},
		{"forbidden", models.Forbidden("not a member"), http.StatusForbidden},
		{"validation", models.Validation("needs at least two states"), http.StatusUnprocessableEntity},
		{"internal", models.InternalServer(""), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("loading snapshot: %w", models.NotFound("revision not found")), http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.GetStatusCode(tt.err))
		})
	}
}

func TestSendErrorInternalHasEmptyBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHTTPHelper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.SendError(c, models.InternalServer(""))
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestSendErrorTaxonomyBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHTTPHelper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.SendError(c, models.Conflict("taxon name already in use"))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"taxon name already in use"}`, w.Body.String())
}

// Binding failures arrive as the validation error type gin's binder produces;
// they must hit the 422 path with a translated per-field map, not fall through
// to 400 with raw error text.
func TestSendBindingErrorTranslatesFieldErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHTTPHelper()

	type createTaxonInput struct {
		KeyID          string `binding:"required,uuid4"`
		ScientificName string `binding:"required"`
	}
	err := h.Validate.Struct(createTaxonInput{KeyID: "not-a-uuid"})
	require.Error(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	h.SendBindingError(c, err)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "key_i_d")
	assert.Contains(t, body.Errors, "scientific_name")
	for _, msgs := range body.Errors {
		for _, msg := range msgs {
			assert.NotEmpty(t, msg)
		}
	}
}

func TestSendBindingErrorMalformedInput(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHTTPHelper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	h.SendBindingError(c, errors.New("unexpected EOF"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "scientific_name", Underscore("ScientificName"))
	assert.Equal(t, "title", Underscore("Title"))
	assert.Equal(t, "", Underscore(""))
}
