package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Cobalt/internal/hermes"
	"github.com/MikeSquared-Agency/Cobalt/internal/metrics"
	"github.com/MikeSquared-Agency/Cobalt/internal/scoring"
	"github.com/MikeSquared-Agency/Cobalt/internal/store"
)

type DesignsHandler struct {
	store   store.Store
	scoring *ScoringHandler
	metrics *metrics.Metrics
	events  eventPublisher
	logger  *slog.Logger
}

func NewDesignsHandler(s store.Store, sh *ScoringHandler, m *metrics.Metrics, events eventPublisher, logger *slog.Logger) *DesignsHandler {
	return &DesignsHandler{store: s, scoring: sh, metrics: m, events: events, logger: logger}
}

// DesignRequest is the create and update body. On update, absent fields keep
// their stored value; name is always required.
type DesignRequest struct {
	Name         string                 `json:"name"`
	Description  *string                `json:"description,omitempty"`
	Context      map[string]interface{} `json:"context,omitempty"`
	InitialScope map[string]interface{} `json:"initial_scope,omitempty"`
	Refinement   map[string]interface{} `json:"refinement,omitempty"`
	FinalDesign  map[string]interface{} `json:"final_design,omitempty"`
	Results      map[string]interface{} `json:"results,omitempty"`
	Session      json.RawMessage        `json:"session,omitempty"`
}

func (req DesignRequest) applyTo(d *store.Design) {
	d.Name = req.Name
	if req.Description != nil {
		d.Description = *req.Description
	}
	if req.Context != nil {
		d.Context = req.Context
	}
	if req.InitialScope != nil {
		d.InitialScope = req.InitialScope
	}
	if req.Refinement != nil {
		d.Refinement = req.Refinement
	}
	if req.FinalDesign != nil {
		d.FinalDesign = req.FinalDesign
	}
	if req.Results != nil {
		d.Results = req.Results
	}
	if len(req.Session) > 0 {
		d.Session = req.Session
	}
}

// validateDesign normalizes d and checks it, including the saved session.
func validateDesign(d *store.Design) error {
	d.Normalize()
	if err := d.Validate(); err != nil {
		return err
	}
	if _, err := scoring.DecodeSession(d.Session); err != nil {
		return err
	}
	return nil
}

func (h *DesignsHandler) op(name string, err error) {
	if h.metrics == nil {
		return
	}
	outcome := "ok"
	switch {
	case errors.Is(err, store.ErrNotFound):
		outcome = "not_found"
	case err != nil:
		outcome = "error"
	}
	h.metrics.DesignOp(name, outcome)
}

func (h *DesignsHandler) designEvent(r *http.Request, d *store.Design) hermes.DesignEvent {
	return hermes.DesignEvent{
		DesignID:  d.ID.String(),
		Name:      d.Name,
		RequestID: chiMiddleware.GetReqID(r.Context()),
		Timestamp: d.UpdatedAt,
	}
}

func (h *DesignsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req DesignRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	d := &store.Design{}
	req.applyTo(d)
	if err := validateDesign(d); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.store.CreateDesign(r.Context(), d)
	h.op("create", err)
	if err != nil {
		h.logger.Error("create design", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create design")
		return
	}

	h.events.publish(r.Context(), hermes.SubjectDesignCreated(d.ID.String()), h.designEvent(r, d))
	writeJSON(w, http.StatusCreated, d)
}

func (h *DesignsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.DesignFilter{}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filter.Limit = n
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid offset")
			return
		}
		filter.Offset = n
	}

	designs, err := h.store.ListDesigns(r.Context(), filter)
	h.op("list", err)
	if err != nil {
		h.logger.Error("list designs", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch designs")
		return
	}
	if designs == nil {
		designs = []*store.DesignSummary{}
	}
	writeJSON(w, http.StatusOK, designs)
}

// load fetches the design named in the URL, writing the error response
// itself when it returns nil.
func (h *DesignsHandler) load(w http.ResponseWriter, r *http.Request) *store.Design {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid design id")
		return nil
	}
	d, err := h.store.GetDesign(r.Context(), id)
	if err != nil {
		h.op("get", err)
		h.logger.Error("get design", "design_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch design")
		return nil
	}
	if d == nil {
		h.op("get", store.ErrNotFound)
		writeError(w, http.StatusNotFound, "design not found")
		return nil
	}
	h.op("get", nil)
	return d
}

func (h *DesignsHandler) Get(w http.ResponseWriter, r *http.Request) {
	if d := h.load(w, r); d != nil {
		writeJSON(w, http.StatusOK, d)
	}
}

func (h *DesignsHandler) Update(w http.ResponseWriter, r *http.Request) {
	d := h.load(w, r)
	if d == nil {
		return
	}
	var req DesignRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.applyTo(d)
	if err := validateDesign(d); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.store.UpdateDesign(r.Context(), d)
	h.op("update", err)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "design not found")
		return
	}
	if err != nil {
		h.logger.Error("update design", "design_id", d.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update design")
		return
	}

	h.events.publish(r.Context(), hermes.SubjectDesignUpdated(d.ID.String()), h.designEvent(r, d))
	writeJSON(w, http.StatusOK, d)
}

func (h *DesignsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid design id")
		return
	}

	err = h.store.DeleteDesign(r.Context(), id)
	h.op("delete", err)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "design not found")
		return
	}
	if err != nil {
		h.logger.Error("delete design", "design_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete design")
		return
	}

	h.events.publish(r.Context(), hermes.SubjectDesignDeleted(id.String()), hermes.DesignEvent{
		DesignID:  id.String(),
		RequestID: chiMiddleware.GetReqID(r.Context()),
		Timestamp: time.Now().UTC(),
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Design deleted"})
}

// ScopeResponse is every scope view recomputed from a saved design.
type ScopeResponse struct {
	DesignID uuid.UUID `json:"design_id"`
	scoring.SessionScopes
}

func (h *DesignsHandler) Scope(w http.ResponseWriter, r *http.Request) {
	d := h.load(w, r)
	if d == nil {
		return
	}
	sess, err := scoring.DecodeSession(d.Session)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	scopes := h.scoring.scorer.Scopes(sess, h.scoring.defaults)
	h.scoring.scopeComputed(r, scoring.StageInitial, d.ID.String(), scopes.InitialScope)
	h.scoring.scopeComputed(r, scoring.StageRefined, d.ID.String(), scopes.RefinedScope)
	writeJSON(w, http.StatusOK, ScopeResponse{DesignID: d.ID, SessionScopes: scopes})
}
