package helper

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"keyeditor-api/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// HTTPHelper maps the service error taxonomy onto the documented response
// surface: plain JSON bodies or bare status codes, no envelope.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewHTTPHelper registers English translations on the validator instance gin
// binds with, so binding failures translate without a second validation pass.
func NewHTTPHelper() *HTTPHelper {
	validate, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		validate = validator.New()
	}

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(validate, translator)

	return &HTTPHelper{Validate: validate, Translator: translator}
}

// GetStatusCode resolves the fixed status code for a taxonomy error.
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var (
		notFound  models.ErrorNotFound
		conflict  models.ErrorConflict
		forbidden models.ErrorForbidden
		invalid   models.ErrorValidation
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &invalid):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// SendError writes the status for a taxonomy error. Internal failures get a
// bare 500 with no body; everything else carries the error message.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	code := u.GetStatusCode(err)
	if code == http.StatusInternalServerError {
		c.Status(code)
		return
	}
	c.JSON(code, gin.H{"error": err.Error()})
}

// SendBindingError distinguishes malformed input (400) from field validation
// failures (422 with translated per-field messages).
func (u *HTTPHelper) SendBindingError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := map[string][]string{}
		translations := validationErrors.Translate(u.Translator)
		for _, fieldErr := range validationErrors {
			key := Underscore(fieldErr.Field())
			fields[key] = append(fields[key], translations[fieldErr.Namespace()])
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// Underscore converts a StructField name to snake_case for error keys.
func Underscore(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
