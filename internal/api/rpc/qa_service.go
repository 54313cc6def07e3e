// Package rpc provides Connect service implementations for the Material
// Engine. Handlers use connect-go's typed unary handlers directly, no
// generated code is involved.
package rpc

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	"github.com/buildfacts/material-engine/internal/observability"
	"github.com/buildfacts/material-engine/internal/qa"
)

// Procedure paths for the QA service.
const (
	AnswerProcedure             = "/qa.v1.QAService/Answer"
	CheckCompatibilityProcedure = "/qa.v1.QAService/CheckCompatibility"
	PredictFailuresProcedure    = "/qa.v1.QAService/PredictFailures"
)

// QAService exposes the question-answering engine over Connect.
type QAService struct {
	logger *observability.Logger
	engine *qa.Engine
}

// NewQAService creates a new QA service.
func NewQAService(logger *observability.Logger, engine *qa.Engine) *QAService {
	return &QAService{logger: logger, engine: engine}
}

// AnswerRequest is the Connect request message for Answer.
type AnswerRequest struct {
	Question     string   `json:"question"`
	MaterialIDs  []string `json:"material_ids,omitempty"`
	TemperatureF *float64 `json:"temperature_f,omitempty"`
	Moisture     string   `json:"moisture,omitempty"`
	UVExposure   string   `json:"uv_exposure,omitempty"`
}

// AnswerResponse is the Connect response message for Answer.
type AnswerResponse struct {
	Answer qa.EngineeringAnswer `json:"answer"`
}

// Answer handles Connect answer queries.
func (s *QAService) Answer(ctx context.Context, req *connect.Request[AnswerRequest]) (*connect.Response[AnswerResponse], error) {
	msg := req.Msg
	if msg.Question == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("question is required"))
	}

	qctx := &qa.QuestionContext{
		MaterialIDs:  msg.MaterialIDs,
		TemperatureF: msg.TemperatureF,
		Moisture:     msg.Moisture,
		UVExposure:   msg.UVExposure,
	}
	answer, err := s.engine.Answer(ctx, msg.Question, qctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Answer failed")
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&AnswerResponse{Answer: answer}), nil
}

// CompatibilityRequest is the Connect request message for CheckCompatibility.
type CompatibilityRequest struct {
	MaterialID1 string `json:"material_id1"`
	MaterialID2 string `json:"material_id2"`
}

// CompatibilityResponse is the Connect response message for CheckCompatibility.
type CompatibilityResponse struct {
	Result qa.CompatibilityResult `json:"result"`
}

// CheckCompatibility handles Connect compatibility queries.
func (s *QAService) CheckCompatibility(ctx context.Context, req *connect.Request[CompatibilityRequest]) (*connect.Response[CompatibilityResponse], error) {
	msg := req.Msg
	if msg.MaterialID1 == "" || msg.MaterialID2 == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("both material IDs are required"))
	}

	result, err := s.engine.CheckCompatibility(ctx, msg.MaterialID1, msg.MaterialID2)
	if err != nil {
		s.logger.Error().Err(err).Msg("CheckCompatibility failed")
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&CompatibilityResponse{Result: result}), nil
}

// PredictRequest is the Connect request message for PredictFailures.
type PredictRequest struct {
	MaterialID   string   `json:"material_id"`
	TemperatureF *float64 `json:"temperature_f,omitempty"`
	Moisture     string   `json:"moisture,omitempty"`
	UVExposure   string   `json:"uv_exposure,omitempty"`
}

// PredictResponse is the Connect response message for PredictFailures.
type PredictResponse struct {
	Predictions []qa.FailurePrediction `json:"predictions"`
}

// PredictFailures handles Connect failure-prediction queries.
func (s *QAService) PredictFailures(ctx context.Context, req *connect.Request[PredictRequest]) (*connect.Response[PredictResponse], error) {
	msg := req.Msg
	if msg.MaterialID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("material_id is required"))
	}

	preds, err := s.engine.PredictFailures(ctx, msg.MaterialID, &qa.Conditions{
		TemperatureF: msg.TemperatureF,
		Moisture:     msg.Moisture,
		UVExposure:   msg.UVExposure,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("PredictFailures failed")
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&PredictResponse{Predictions: preds}), nil
}

// Mount registers the service's typed unary handlers on the mux under their
// procedure paths.
func (s *QAService) Mount(mux *http.ServeMux) {
	mux.Handle(AnswerProcedure, connect.NewUnaryHandler(AnswerProcedure, s.Answer))
	mux.Handle(CheckCompatibilityProcedure, connect.NewUnaryHandler(CheckCompatibilityProcedure, s.CheckCompatibility))
	mux.Handle(PredictFailuresProcedure, connect.NewUnaryHandler(PredictFailuresProcedure, s.PredictFailures))
}
