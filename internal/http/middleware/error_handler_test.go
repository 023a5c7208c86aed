package middleware

import (
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castororo/Rajabakkiam-traders/internal/shared/apperr"
)

func errorTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := gin.New()
	r.Use(RequestID(), ErrorHandler(log))
	r.SetHTMLTemplate(template.Must(template.New("pages").Parse(
		`{{define "error"}}{{.Status}} {{.Text}}: {{.Message}}{{end}}`)))

	r.GET("/boom", func(c *gin.Context) {
		Fail(c, apperr.Wrap(io.ErrUnexpectedEOF))
	})
	r.NoRoute(func(c *gin.Context) {
		Fail(c, apperr.NotFoundErr("The page you're looking for doesn't exist."))
	})
	return r
}

func TestErrorHandlerRendersNotFound(t *testing.T) {
	r := errorTestEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/no/such/page", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "404 Not Found")
	assert.Contains(t, w.Body.String(), "The page you're looking for doesn't exist.")
}

func TestErrorHandlerHidesInternalCause(t *testing.T) {
	r := errorTestEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong. Please try again.")
	assert.NotContains(t, w.Body.String(), "unexpected EOF")
}

func TestErrorHandlerSkipsWrittenResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := gin.New()
	r.Use(ErrorHandler(log))
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, "fine")
		_ = c.Error(io.ErrUnexpectedEOF)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fine", w.Body.String())
}
