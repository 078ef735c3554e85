package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanview/resort-api/internal/config"
	"github.com/oceanview/resort-api/internal/handler"
)

func newTestServer() *echo.Echo {
	e := echo.New()
	RegisterRoutes(e)
	RegisterAuth(e, handler.NewAuthHandler(config.Config{}, nil))
	return e
}

func TestLoginPreflightIsAnswered(t *testing.T) {
	e := newTestServer()

	// A browser on another origin sends OPTIONS before the JSON POST.
	req := httptest.NewRequest(http.MethodOptions, "/api/auth", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:5500")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	req.Header.Set(echo.HeaderAccessControlRequestHeaders, "Content-Type")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPost)
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), "X-Role")
}

func TestCrossOriginReadCarriesAllowOrigin(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:5500")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestSwaggerUIPage(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/swagger-ui", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), "/api-docs/openapi.json")
}

func TestOpenAPISpecDocumentsEveryEndpoint(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api-docs/openapi.json", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		OpenAPI string                     `json:"openapi"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	for _, p := range []string{
		"/api/reservations",
		"/api/reservations/table",
		"/api/reservations/stats",
		"/api/reservations/{referenceId}",
		"/api/auth",
		"/api/users",
		"/healthz",
	} {
		assert.Contains(t, doc.Paths, p)
	}
}
