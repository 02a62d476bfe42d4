package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/MikeSquared-Agency/Cobalt/internal/catalog"
	"github.com/MikeSquared-Agency/Cobalt/internal/hermes"
	"github.com/MikeSquared-Agency/Cobalt/internal/metrics"
	"github.com/MikeSquared-Agency/Cobalt/internal/scoring"
)

type ScoringHandler struct {
	scorer   *scoring.Scorer
	defaults scoring.FactorWeights
	topN     int
	metrics  *metrics.Metrics
	events   eventPublisher
}

func NewScoringHandler(sc *scoring.Scorer, defaults scoring.FactorWeights, topN int, m *metrics.Metrics, events eventPublisher) *ScoringHandler {
	if defaults == nil {
		defaults = scoring.DefaultFactorWeights()
	}
	return &ScoringHandler{scorer: sc, defaults: defaults, topN: topN, metrics: m, events: events}
}

type FactorScoreRequest struct {
	Inputs scoring.UserInputs `json:"inputs"`
}

type FactorScoreResponse struct {
	FactorID   string                `json:"factor_id"`
	Results    []scoring.ScoreResult `json:"results"`
	Statistics *scoring.Summary      `json:"statistics"`

	// Set for percentage factors with answers.
	PercentageTotal *float64 `json:"percentage_total,omitempty"`
}

type ScopeRequest struct {
	Inputs  scoring.UserInputs    `json:"inputs"`
	Weights scoring.FactorWeights `json:"weights,omitempty"`
}

type FinalDesignRequest struct {
	ScopeRequest
	Overrides scoring.Overrides `json:"overrides,omitempty"`
}

type CanvasRequest struct {
	ScopeRequest
	Adjustments scoring.Adjustments `json:"adjustments,omitempty"`
}

type RedistributeRequest struct {
	FactorID string             `json:"factor_id"`
	Values   map[string]float64 `json:"values"`
	ItemID   string             `json:"item_id"`
	Value    float64            `json:"value"`
}

type RedistributeResponse struct {
	FactorID string             `json:"factor_id"`
	Values   map[string]float64 `json:"values"`
}

// weights layers the request weights over the configured defaults.
func (h *ScoringHandler) weights(req scoring.FactorWeights) (scoring.FactorWeights, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return h.defaults.Merge(req), nil
}

func (h *ScoringHandler) ScoreFactor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := catalog.LookupFactor(id); !ok {
		writeError(w, http.StatusNotFound, "factor not found")
		return
	}
	var req FactorScoreRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, FactorScoreResponse{
		FactorID:   id,
		Results:    h.scorer.ScoreFactor(req.Inputs, id),
		Statistics: scoring.FactorStatistics(req.Inputs, id),

		PercentageTotal: scoring.FactorPercentageTotal(req.Inputs, id),
	})
}

func (h *ScoringHandler) InitialScope(w http.ResponseWriter, r *http.Request) {
	h.scope(w, r, scoring.StageInitial)
}

func (h *ScoringHandler) RefinedScope(w http.ResponseWriter, r *http.Request) {
	h.scope(w, r, scoring.StageRefined)
}

func (h *ScoringHandler) scope(w http.ResponseWriter, r *http.Request, stage string) {
	var req ScopeRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	weights, err := h.weights(req.Weights)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	results, err := h.scorer.Scope(stage, req.Inputs, weights)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.scopeComputed(r, stage, "", results)
	writeJSON(w, http.StatusOK, results)
}

func (h *ScoringHandler) FinalDesign(w http.ResponseWriter, r *http.Request) {
	var req FinalDesignRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	weights, err := h.weights(req.Weights)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Overrides.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.scorer.FinalDesign(req.Inputs, weights, req.Overrides))
}

func (h *ScoringHandler) Canvas(w http.ResponseWriter, r *http.Request) {
	var req CanvasRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	weights, err := h.weights(req.Weights)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Adjustments.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.scorer.BuildCanvas(req.Inputs, weights, req.Adjustments))
}

func (h *ScoringHandler) Redistribute(w http.ResponseWriter, r *http.Request) {
	var req RedistributeRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	f, ok := catalog.LookupFactor(req.FactorID)
	if !ok {
		writeError(w, http.StatusNotFound, "factor not found")
		return
	}

	values, err := scoring.Redistribute(f, req.Values, req.ItemID, req.Value)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scoring.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, RedistributeResponse{FactorID: f.ID, Values: values})
}

func (h *ScoringHandler) scopeComputed(r *http.Request, stage, designID string, results []scoring.ScoreResult) {
	if h.metrics != nil {
		h.metrics.ScopeComputed(stage)
	}
	factorIDs := catalog.FactorIDs()
	if stage == scoring.StageInitial {
		factorIDs = catalog.InitialScopeFactorIDs()
	}
	ev := hermes.NewScopeComputedEvent(stage, factorIDs, results, h.topN)
	ev.DesignID = designID
	ev.RequestID = chiMiddleware.GetReqID(r.Context())
	h.events.publish(r.Context(), hermes.SubjectScopeComputed(stage), ev)
}
