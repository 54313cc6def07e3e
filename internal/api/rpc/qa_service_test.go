package rpc

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildfacts/material-engine/internal/catalog"
	"github.com/buildfacts/material-engine/internal/observability"
	"github.com/buildfacts/material-engine/internal/qa"
)

func newTestService(t *testing.T) *QAService {
	t.Helper()
	store := catalog.NewMemoryStoreWith(catalog.SeedRecords())
	engine := qa.NewEngine(store, nil, nil, qa.DefaultEngineConfig())
	return NewQAService(observability.NopLogger(), engine)
}

func TestAnswer_RequiresQuestion(t *testing.T) {
	s := newTestService(t)

	_, err := s.Answer(context.Background(), connect.NewRequest(&AnswerRequest{}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestAnswer_ReturnsStructuredAnswer(t *testing.T) {
	s := newTestService(t)

	resp, err := s.Answer(context.Background(), connect.NewRequest(&AnswerRequest{
		Question: "Is EPDM compatible with asphalt?",
	}))
	require.NoError(t, err)

	assert.Equal(t, qa.IntentCompatibilityCheck, resp.Msg.Answer.Intent)
	assert.NotEmpty(t, resp.Msg.Answer.CompatibilityIssues)
}

func TestCheckCompatibility_RequiresBothIDs(t *testing.T) {
	s := newTestService(t)

	_, err := s.CheckCompatibility(context.Background(), connect.NewRequest(&CompatibilityRequest{
		MaterialID1: "mat-epdm-60",
	}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestCheckCompatibility_Incompatible(t *testing.T) {
	s := newTestService(t)

	resp, err := s.CheckCompatibility(context.Background(), connect.NewRequest(&CompatibilityRequest{
		MaterialID1: "mat-epdm-60",
		MaterialID2: "mat-bur-4ply",
	}))
	require.NoError(t, err)

	assert.Equal(t, "incompatible", resp.Msg.Result.Status)
	assert.False(t, resp.Msg.Result.Compatible)
}

func TestPredictFailures_Sorted(t *testing.T) {
	s := newTestService(t)

	resp, err := s.PredictFailures(context.Background(), connect.NewRequest(&PredictRequest{
		MaterialID: "mat-acr-coat",
		Moisture:   "wet",
	}))
	require.NoError(t, err)

	preds := resp.Msg.Predictions
	require.NotEmpty(t, preds)
	for i := 1; i < len(preds); i++ {
		assert.GreaterOrEqual(t, preds[i-1].Probability, preds[i].Probability)
	}
}
