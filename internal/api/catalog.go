package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MikeSquared-Agency/Cobalt/internal/catalog"
	"github.com/MikeSquared-Agency/Cobalt/internal/scoring"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) Objectives(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Objectives())
}

func (h *CatalogHandler) Factors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Factors())
}

// FactorDetail is a factor with the neutral value of each item.
type FactorDetail struct {
	catalog.Factor
	ItemBaselines map[string]float64 `json:"item_baselines"`
}

func (h *CatalogHandler) Factor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	f, ok := catalog.LookupFactor(id)
	if !ok {
		writeError(w, http.StatusNotFound, "factor not found")
		return
	}
	writeJSON(w, http.StatusOK, FactorDetail{Factor: f, ItemBaselines: catalog.ItemBaselines(id)})
}

func (h *CatalogHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scoring.DefaultInputs())
}
