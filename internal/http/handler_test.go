package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/physcalc/internal/calculator"
	"github.com/san-kum/physcalc/internal/config"
	"github.com/san-kum/physcalc/internal/library"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	lib := library.New()
	return SetupRouter(lib, calculator.New(lib, nil, nil), config.DefaultConfig())
}

func do(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return w, out
}

func TestHealthCheck(t *testing.T) {
	w, body := do(t, newRouter(t), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestListChapters(t *testing.T) {
	w, body := do(t, newRouter(t), http.MethodGet, "/v1/chapters", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 12, body["count"])

	chapters := body["chapters"].([]any)
	first := chapters[0].(map[string]any)
	assert.EqualValues(t, 3, first["number"])
	assert.Equal(t, "motion", first["slug"])
}

func TestGetChapter(t *testing.T) {
	router := newRouter(t)

	w, body := do(t, router, http.MethodGet, "/v1/chapters/fluids", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 14, body["number"])
	assert.NotEmpty(t, body["definitions"])

	var pressure map[string]any
	for _, e := range body["equation_list"].([]any) {
		eq := e.(map[string]any)
		if eq["name"] == "Pressure" {
			pressure = eq
		}
	}
	require.NotNil(t, pressure)
	assert.Equal(t, "pressure", pressure["solver"])
	vars := pressure["variables"].([]any)
	assert.Equal(t, "pressure", vars[0].(map[string]any)["param"])

	w, body = do(t, router, http.MethodGet, "/v1/chapters/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "unknown chapter: 99", body["error"])
}

func TestSolve(t *testing.T) {
	w, body := do(t, newRouter(t), http.MethodPost, "/v1/solve",
		`{"chapter": "5", "equation": "Newton's second law", "inputs": {"F(net)": null, "m": 5, "a": 3}}`)
	require.Equal(t, http.StatusOK, w.Code, body)
	assert.Equal(t, "F(net)", body["symbol"])
	assert.Equal(t, "force", body["param"])
	assert.InDelta(t, 15, body["value"], 1e-9)
}

func TestSolveErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
		kind string
	}{
		{"malformed json", `{"chapter": `, http.StatusBadRequest, ""},
		{"missing equation", `{"chapter": "5", "inputs": {}}`, http.StatusBadRequest, ""},
		{"string value", `{"chapter": "5", "equation": "weight", "inputs": {"w": null, "m": "heavy"}}`, http.StatusBadRequest, ""},
		{"unknown chapter", `{"chapter": "2", "equation": "weight", "inputs": {}}`, http.StatusNotFound, ""},
		{"unknown equation", `{"chapter": "5", "equation": "teleport", "inputs": {}}`, http.StatusNotFound, ""},
		{"negative mass", `{"chapter": "5", "equation": "weight", "inputs": {"w": null, "m": -1}}`, http.StatusUnprocessableEntity, "invalid_input"},
		{"two blanks", `{"chapter": "5", "equation": "weight", "inputs": {"w": null, "m": null}}`, http.StatusUnprocessableEntity, "blank_count"},
		{"stray symbol", `{"chapter": "5", "equation": "weight", "inputs": {"w": null, "m": 2, "q": 1}}`, http.StatusUnprocessableEntity, "unmapped_symbol"},
	}

	router := newRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := do(t, router, http.MethodPost, "/v1/solve", tt.body)
			assert.Equal(t, tt.code, w.Code, body)
			assert.NotEmpty(t, body["error"])
			if tt.kind != "" {
				assert.Equal(t, tt.kind, body["kind"])
			}
		})
	}
}

func TestConvert(t *testing.T) {
	router := newRouter(t)

	w, body := do(t, router, http.MethodGet, "/v1/convert?quantity=length&value=1500&from=meter&to=kilometer", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 1.5, body["result"], 1e-12)

	w, body = do(t, router, http.MethodGet, "/v1/convert?quantity=length&value=1&from=meter&to=league", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "unknown unit: league", body["error"])

	w, _ = do(t, router, http.MethodGet, "/v1/convert?quantity=length&value=abc&from=meter&to=foot", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListUnits(t *testing.T) {
	w, body := do(t, newRouter(t), http.MethodGet, "/v1/units", "")
	require.Equal(t, http.StatusOK, w.Code)
	quantities := body["quantities"].(map[string]any)
	assert.Contains(t, quantities, "length")
	assert.Contains(t, quantities["length"], "kilometer")
}

func TestCORSFromEnvironment(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://physics.example.com")
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://physics.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "https://physics.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
