package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/Cobalt/internal/hermes"
	"github.com/MikeSquared-Agency/Cobalt/internal/metrics"
	"github.com/MikeSquared-Agency/Cobalt/internal/scoring"
	"github.com/MikeSquared-Agency/Cobalt/internal/store"
)

var testDesignID = uuid.MustParse("6f1c2a8e-4d1b-4a8f-9c55-0d5e7b3f2a10")

func savedDesign() *store.Design {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &store.Design{
		ID:          testDesignID,
		Name:        "Retail bank",
		Description: "baseline",
		Context:     map[string]interface{}{"industry": "finance"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// counterValue reads one labelled counter from the metrics registry.
func counterValue(t *testing.T, m *metrics.Metrics, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	next:
		for _, metric := range mf.GetMetric() {
			for _, lp := range metric.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					continue next
				}
			}
			return metric.GetCounter().GetValue()
		}
	}
	return 0
}

func designOps(t *testing.T, m *metrics.Metrics, op, outcome string) float64 {
	return counterValue(t, m, "cobalt_design_operations_total", map[string]string{"op": op, "outcome": outcome})
}

func scopeComputations(t *testing.T, m *metrics.Metrics, stage string) float64 {
	return counterValue(t, m, "cobalt_scope_computations_total", map[string]string{"stage": stage})
}

func TestCreateDesign(t *testing.T) {
	env := newTestEnv(t)
	env.store.On("CreateDesign", mock.Anything, mock.MatchedBy(func(d *store.Design) bool {
		return d.Name == "Retail bank" && d.Description == "first pass" && d.Context["industry"] == "finance"
	})).Run(func(args mock.Arguments) {
		d := args.Get(1).(*store.Design)
		d.ID = testDesignID
		d.CreatedAt = time.Now()
		d.UpdatedAt = d.CreatedAt
	}).Return(nil).Once()
	env.hermes.On("Publish", hermes.SubjectDesignCreated(testDesignID.String()), mock.MatchedBy(func(ev hermes.DesignEvent) bool {
		return ev.DesignID == testDesignID.String() && ev.Name == "Retail bank"
	})).Return(nil).Once()

	body := `{"name": "  Retail bank ", "description": "first pass", "context": {"industry": "finance"},
		"session": {"inputs": {"df1": {"growth": 4}}, "weights": {"df3": 2}}}`
	w := env.do(t, http.MethodPost, "/api/v1/designs", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	d := decode[store.Design](t, w)
	assert.Equal(t, testDesignID, d.ID)
	assert.Equal(t, "Retail bank", d.Name)
	assert.JSONEq(t, `{"inputs": {"df1": {"growth": 4}}, "weights": {"df3": 2}}`, string(d.Session))
	assert.Equal(t, 1.0, designOps(t, env.metrics, "create", "ok"))
}

func TestCreateDesignValidation(t *testing.T) {
	env := newTestEnv(t)
	cases := map[string]string{
		"missing name":      `{"description": "x"}`,
		"blank name":        `{"name": "   "}`,
		"long name":         `{"name": "` + strings.Repeat("n", store.MaxNameLength+1) + `"}`,
		"long description":  `{"name": "ok", "description": "` + strings.Repeat("d", store.MaxDescriptionLength+1) + `"}`,
		"bad session shape": `{"name": "ok", "session": {"inputs": {"df3": {"risk11": 4}}}}`,
		"bad session value": `{"name": "ok", "session": {"overrides": {"EDM01": 500}}}`,
		"not json":          `{"name": `,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/v1/designs", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decode[map[string]string](t, w)["error"])
		})
	}
}

func TestCreateDesignStoreFailure(t *testing.T) {
	env := newTestEnv(t)
	env.store.On("CreateDesign", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	w := env.do(t, http.MethodPost, "/api/v1/designs", `{"name": "x"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "failed to create design", decode[map[string]string](t, w)["error"])
	assert.Equal(t, 1.0, designOps(t, env.metrics, "create", "error"))
}

func TestListDesigns(t *testing.T) {
	env := newTestEnv(t)
	summaries := []*store.DesignSummary{{ID: testDesignID, Name: "Retail bank"}}
	env.store.On("ListDesigns", mock.Anything, store.DesignFilter{Limit: 5, Offset: 10}).Return(summaries, nil).Once()
	env.store.On("ListDesigns", mock.Anything, store.DesignFilter{}).Return(nil, nil).Once()

	w := env.do(t, http.MethodGet, "/api/v1/designs?limit=5&offset=10", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]store.DesignSummary](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Retail bank", list[0].Name)

	w = env.do(t, http.MethodGet, "/api/v1/designs", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())

	w = env.do(t, http.MethodGet, "/api/v1/designs?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = env.do(t, http.MethodGet, "/api/v1/designs?offset=-1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDesign(t *testing.T) {
	env := newTestEnv(t)
	env.store.On("GetDesign", mock.Anything, testDesignID).Return(savedDesign(), nil).Once()
	missing := uuid.New()
	env.store.On("GetDesign", mock.Anything, missing).Return(nil, nil).Once()

	w := env.do(t, http.MethodGet, "/api/v1/designs/"+testDesignID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Retail bank", decode[store.Design](t, w).Name)

	w = env.do(t, http.MethodGet, "/api/v1/designs/"+missing.String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "design not found", decode[map[string]string](t, w)["error"])

	w = env.do(t, http.MethodGet, "/api/v1/designs/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateDesignMergesFields(t *testing.T) {
	env := newTestEnv(t)
	env.store.On("GetDesign", mock.Anything, testDesignID).Return(savedDesign(), nil).Once()
	env.store.On("UpdateDesign", mock.Anything, mock.MatchedBy(func(d *store.Design) bool {
		return d.Name == "Retail bank v2" &&
			d.Description == "baseline" &&
			d.Context["industry"] == "finance" &&
			d.Results["EDM01"] == float64(80)
	})).Return(nil).Once()
	env.hermes.On("Publish", hermes.SubjectDesignUpdated(testDesignID.String()), mock.Anything).Return(nil).Once()

	w := env.do(t, http.MethodPut, "/api/v1/designs/"+testDesignID.String(),
		`{"name": "Retail bank v2", "results": {"EDM01": 80}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Retail bank v2", decode[store.Design](t, w).Name)
}

func TestUpdateDesignErrors(t *testing.T) {
	env := newTestEnv(t)
	missing := uuid.New()
	env.store.On("GetDesign", mock.Anything, missing).Return(nil, nil).Once()
	env.store.On("GetDesign", mock.Anything, testDesignID).Return(savedDesign(), nil).Twice()
	env.store.On("UpdateDesign", mock.Anything, mock.Anything).Return(store.ErrNotFound).Once()

	w := env.do(t, http.MethodPut, "/api/v1/designs/"+missing.String(), `{"name": "x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodPut, "/api/v1/designs/"+testDesignID.String(), `{"description": "no name"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Deleted between read and write.
	w = env.do(t, http.MethodPut, "/api/v1/designs/"+testDesignID.String(), `{"name": "x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1.0, designOps(t, env.metrics, "update", "not_found"))
}

func TestDeleteDesign(t *testing.T) {
	env := newTestEnv(t)
	env.store.On("DeleteDesign", mock.Anything, testDesignID).Return(nil).Once()
	env.hermes.On("Publish", hermes.SubjectDesignDeleted(testDesignID.String()), mock.Anything).Return(nil).Once()

	path := "/api/v1/designs/" + testDesignID.String()
	w := env.do(t, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodDelete, path, "", "Authorization", "Bearer wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodDelete, path, "", "Authorization", "Bearer "+testAdminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Design deleted", decode[map[string]string](t, w)["message"])
}

func TestDeleteDesignNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.store.On("DeleteDesign", mock.Anything, testDesignID).Return(store.ErrNotFound).Once()

	w := env.do(t, http.MethodDelete, "/api/v1/designs/"+testDesignID.String(), "",
		"Authorization", "Bearer "+testAdminToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDesignScope(t *testing.T) {
	env := newTestEnv(t)
	d := savedDesign()
	d.Session = json.RawMessage(`{
		"inputs": {"df1": {"growth": 5, "innovation": 1, "cost": 3, "client": 3},
		           "df3": {"risk11": {"impact": 5, "likelihood": 5}}},
		"overrides": {"EDM01": 40}
	}`)
	env.store.On("GetDesign", mock.Anything, testDesignID).Return(d, nil).Once()
	env.hermes.On("Publish", "cobalt.scope.initial.computed", mock.MatchedBy(func(ev hermes.ScopeComputedEvent) bool {
		return ev.DesignID == testDesignID.String()
	})).Return(nil).Once()
	env.hermes.On("Publish", "cobalt.scope.refined.computed", mock.Anything).Return(nil).Once()

	w := env.do(t, http.MethodGet, "/api/v1/designs/"+testDesignID.String()+"/scope", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[ScopeResponse](t, w)
	assert.Equal(t, testDesignID, resp.DesignID)
	require.Len(t, resp.InitialScope, 40)
	require.Len(t, resp.RefinedScope, 40)
	require.Len(t, resp.FinalDesign, 40)
	assert.Equal(t, 100.0, byObjective(resp.InitialScope)["APO12"].FinalScore)
	edm01 := byObjective(resp.FinalDesign)["EDM01"]
	require.NotNil(t, edm01.OverrideScore)
	assert.Equal(t, 40.0, *edm01.OverrideScore)
	assert.Equal(t, 1.0, scopeComputations(t, env.metrics, scoring.StageInitial))
	assert.Equal(t, 1.0, scopeComputations(t, env.metrics, scoring.StageRefined))
}

func TestDesignScopeCorruptSession(t *testing.T) {
	env := newTestEnv(t)
	d := savedDesign()
	d.Session = json.RawMessage(`{"weights": {"df3": -5}}`)
	env.store.On("GetDesign", mock.Anything, testDesignID).Return(d, nil).Once()

	w := env.do(t, http.MethodGet, "/api/v1/designs/"+testDesignID.String()+"/scope", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDesignLifecycleOnSQLite(t *testing.T) {
	ctx := context.Background()
	s, err := store.NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "cobalt.db"))
	require.NoError(t, err)
	defer s.Close()

	logger := discardLogger()
	m := metrics.New()
	router := NewRouter(s, nil, scoring.NewScorer(logger, m), m, Options{
		RateLimitPerSecond: 100,
		RateLimitBurst:     100,
		TopObjectives:      5,
	}, logger)
	env := &testEnv{router: router, metrics: m}

	w := env.do(t, http.MethodPost, "/api/v1/designs",
		`{"name": "Insurer", "session": {"inputs": {"df5": {"df5_high": 100, "df5_normal": 0}}}}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[store.Design](t, w)
	path := "/api/v1/designs/" + created.ID.String()

	w = env.do(t, http.MethodPut, path, `{"name": "Insurer", "description": "after workshop"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(t, http.MethodGet, "/api/v1/designs", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]store.DesignSummary](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "after workshop", list[0].Description)

	w = env.do(t, http.MethodGet, path+"/scope", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	scopes := decode[ScopeResponse](t, w)
	for _, r := range scopes.InitialScope {
		assert.Zero(t, r.FinalScore, "df5 is not part of the initial scope")
	}

	// No admin token configured: deletion is open.
	w = env.do(t, http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
