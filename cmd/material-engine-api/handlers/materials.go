package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/buildfacts/material-engine/internal/catalog"
	"github.com/buildfacts/material-engine/internal/observability"
	"github.com/buildfacts/material-engine/internal/qa"
)

// MaterialsHandler serves catalog reads and the material-scoped analyses.
type MaterialsHandler struct {
	logger *observability.Logger
	store  catalog.Store
	engine *qa.Engine
}

// NewMaterialsHandler creates a new materials handler.
func NewMaterialsHandler(logger *observability.Logger, store catalog.Store, engine *qa.Engine) *MaterialsHandler {
	return &MaterialsHandler{logger: logger, store: store, engine: engine}
}

// MaterialSummaryDTO is the list-view projection of a material record.
type MaterialSummaryDTO struct {
	ID           string `json:"id"`
	ProductName  string `json:"productName"`
	Manufacturer string `json:"manufacturer"`
	Category     string `json:"category"`
	Chemistry    string `json:"chemistry"`
	TaxonomyCode string `json:"taxonomyCode,omitempty"`
}

// List handles GET /materials. An optional q parameter filters by relevance
// against the records' searchable text.
func (h *MaterialsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	all, err := h.store.GetAll(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("List materials failed")
		writeError(w, http.StatusInternalServerError, "list failed", err.Error())
		return
	}

	if q := r.URL.Query().Get("q"); q != "" {
		parsed := h.engine.Parse(q)
		all = qa.SelectMaterials(parsed, all, nil, len(all))
	}

	summaries := make([]MaterialSummaryDTO, 0, len(all))
	for i := range all {
		m := &all[i]
		summaries = append(summaries, MaterialSummaryDTO{
			ID:           m.ID,
			ProductName:  m.Classification.ProductName,
			Manufacturer: m.Classification.Manufacturer,
			Category:     m.Classification.Category,
			Chemistry:    m.Physical.ChemistryType,
			TaxonomyCode: m.TaxonomyCode,
		})
	}
	writeJSON(w, http.StatusOK, summaries)
}

// Get handles GET /materials/{id}.
func (h *MaterialsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.store.Get(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "material not found", id)
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("material_id", id).Msg("Get material failed")
		writeError(w, http.StatusInternalServerError, "get failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Put handles PUT /materials/{id}, creating or replacing a record.
func (h *MaterialsHandler) Put(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var rec catalog.MaterialRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	rec.ID = id

	if err := h.store.Put(r.Context(), rec); err != nil {
		h.logger.Error().Err(err).Str("material_id", id).Msg("Put material failed")
		writeError(w, http.StatusInternalServerError, "store failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Delete handles DELETE /materials/{id}.
func (h *MaterialsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.store.Delete(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "material not found", id)
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Str("material_id", id).Msg("Delete material failed")
		writeError(w, http.StatusInternalServerError, "delete failed", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Compatibility handles GET /materials/{id1}/compatibility/{id2}.
func (h *MaterialsHandler) Compatibility(w http.ResponseWriter, r *http.Request) {
	id1 := chi.URLParam(r, "id1")
	id2 := chi.URLParam(r, "id2")

	result, err := h.engine.CheckCompatibility(r.Context(), id1, id2)
	if err != nil {
		h.logger.Error().Err(err).Msg("Compatibility check failed")
		writeError(w, http.StatusInternalServerError, "compatibility check failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// PredictFailures handles POST /materials/{id}/failure-predictions. The
// body, all fields optional, supplies the environment conditions.
func (h *MaterialsHandler) PredictFailures(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var cond qa.Conditions
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&cond); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
			return
		}
	}
	// temperature may also arrive as a query parameter
	if t := r.URL.Query().Get("temperatureF"); t != "" && cond.TemperatureF == nil {
		if v, err := strconv.ParseFloat(t, 64); err == nil {
			cond.TemperatureF = &v
		}
	}

	preds, err := h.engine.PredictFailures(r.Context(), id, &cond)
	if err != nil {
		h.logger.Error().Err(err).Str("material_id", id).Msg("Failure prediction failed")
		writeError(w, http.StatusInternalServerError, "prediction failed", err.Error())
		return
	}
	if preds == nil {
		preds = []qa.FailurePrediction{}
	}
	writeJSON(w, http.StatusOK, preds)
}
