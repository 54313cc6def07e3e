// Package handlers provides HTTP handlers for the Material Engine API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/buildfacts/material-engine/internal/observability"
	"github.com/buildfacts/material-engine/internal/qa"
)

// QAHandler handles question-answering requests.
type QAHandler struct {
	logger *observability.Logger
	engine *qa.Engine
}

// NewQAHandler creates a new Q&A handler.
func NewQAHandler(logger *observability.Logger, engine *qa.Engine) *QAHandler {
	return &QAHandler{logger: logger, engine: engine}
}

// AnswerRequestDTO represents the API request for answering a question.
type AnswerRequestDTO struct {
	Question     string   `json:"question"`
	MaterialIDs  []string `json:"materialIds,omitempty"`
	TemperatureF *float64 `json:"temperatureF,omitempty"`
	HumidityPct  *float64 `json:"humidityPct,omitempty"`
	Moisture     string   `json:"moisture,omitempty"`
	UVExposure   string   `json:"uvExposure,omitempty"`
}

// Answer handles POST /qa/answer.
func (h *QAHandler) Answer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var reqDTO AnswerRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if reqDTO.Question == "" {
		writeError(w, http.StatusBadRequest, "question is required", "")
		return
	}

	qctx := &qa.QuestionContext{
		MaterialIDs:  reqDTO.MaterialIDs,
		TemperatureF: reqDTO.TemperatureF,
		HumidityPct:  reqDTO.HumidityPct,
		Moisture:     reqDTO.Moisture,
		UVExposure:   reqDTO.UVExposure,
	}
	answer, err := h.engine.Answer(ctx, reqDTO.Question, qctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("Answer failed")
		writeError(w, http.StatusInternalServerError, "answer failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, answer)
}

// Parse handles POST /qa/parse. It returns the classified intent and
// extracted entities without generating an answer.
func (h *QAHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var reqDTO struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if reqDTO.Question == "" {
		writeError(w, http.StatusBadRequest, "question is required", "")
		return
	}

	writeJSON(w, http.StatusOK, h.engine.Parse(reqDTO.Question))
}

// errorResponse is the standard error body.
type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message, detail string) {
	writeJSON(w, status, errorResponse{Error: message, Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
