package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/Cobalt/internal/catalog"
	"github.com/MikeSquared-Agency/Cobalt/internal/metrics"
	"github.com/MikeSquared-Agency/Cobalt/internal/scoring"
)

func (env *testEnv) do(t *testing.T, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	env.store.On("Ping", mock.Anything).Return(nil).Once()
	env.hermes.On("Connected").Return(true).Once()

	w := env.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]string](t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "connected", body["hermes"])
}

func TestHealthHermesDisconnected(t *testing.T) {
	env := newTestEnv(t)
	env.store.On("Ping", mock.Anything).Return(nil).Once()
	env.hermes.On("Connected").Return(false).Once()

	w := env.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]string](t, w)
	assert.Equal(t, "degraded", body["status"])
	assert.Equal(t, "disconnected", body["hermes"])
}

func TestHealthWithoutHermes(t *testing.T) {
	s := &MockStore{}
	s.On("Ping", mock.Anything).Return(nil).Once()
	m := metrics.New()
	logger := discardLogger()
	router := NewRouter(s, nil, scoring.NewScorer(logger, m), m, Options{RateLimitPerSecond: 1, RateLimitBurst: 1}, logger)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{"status": "ok"}, decode[map[string]string](t, w))
	s.AssertExpectations(t)
}

func TestHealthDegraded(t *testing.T) {
	env := newTestEnv(t)
	env.store.On("Ping", mock.Anything).Return(errors.New("connection refused")).Once()

	w := env.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestCatalogObjectives(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/v1/catalog/objectives", "")
	require.Equal(t, http.StatusOK, w.Code)

	objs := decode[[]catalog.Objective](t, w)
	require.Len(t, objs, 40)
	assert.Equal(t, "EDM01", objs[0].ID)
}

func TestCatalogFactors(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/v1/catalog/factors", "")
	require.Equal(t, http.StatusOK, w.Code)

	factors := decode[[]catalog.Factor](t, w)
	require.Len(t, factors, 10)
	assert.Equal(t, "df1", factors[0].ID)
	assert.NotEmpty(t, factors[0].Items)
}

func TestCatalogFactorDetail(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/v1/catalog/factors/df3", "")
	require.Equal(t, http.StatusOK, w.Code)

	var detail struct {
		ID            string             `json:"id"`
		Items         []catalog.Item     `json:"items"`
		ItemBaselines map[string]float64 `json:"item_baselines"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&detail))
	assert.Equal(t, "df3", detail.ID)
	require.NotEmpty(t, detail.Items)
	assert.Equal(t, catalog.RiskBaseline, detail.ItemBaselines[detail.Items[0].ID])

	w = env.do(t, http.MethodGet, "/api/v1/catalog/factors/df11", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "factor not found", decode[map[string]string](t, w)["error"])
}

func TestCatalogDefaults(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/v1/catalog/defaults", "")
	require.Equal(t, http.StatusOK, w.Code)

	inputs := decode[scoring.UserInputs](t, w)
	assert.Equal(t, scoring.DefaultInputs(), inputs)
}

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequestsAreCountedByRoutePattern(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodGet, "/api/v1/catalog/factors/df1", "")
	env.do(t, http.MethodGet, "/api/v1/catalog/factors/df2", "")

	w := httptest.NewRecorder()
	NewMetricsRouter(env.metrics).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(),
		`cobalt_http_requests_total{method="GET",route="/api/v1/catalog/factors/{id}",status="200"} 2`),
		w.Body.String())
}

func TestMetricsRouterHealth(t *testing.T) {
	w := httptest.NewRecorder()
	NewMetricsRouter(metrics.New()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
