package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildfacts/material-engine/internal/catalog"
	"github.com/buildfacts/material-engine/internal/observability"
	"github.com/buildfacts/material-engine/internal/qa"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := catalog.NewMemoryStore()
	_, err := catalog.Seed(context.Background(), store)
	require.NoError(t, err)

	logger := observability.NopLogger()
	engine := qa.NewEngine(store, nil, logger, qa.DefaultEngineConfig())

	qaHandler := NewQAHandler(logger, engine)
	materialsHandler := NewMaterialsHandler(logger, store, engine)

	r := chi.NewRouter()
	r.Post("/qa/answer", qaHandler.Answer)
	r.Post("/qa/parse", qaHandler.Parse)
	r.Get("/materials", materialsHandler.List)
	r.Get("/materials/{id}", materialsHandler.Get)
	r.Put("/materials/{id}", materialsHandler.Put)
	r.Delete("/materials/{id}", materialsHandler.Delete)
	r.Get("/materials/{id1}/compatibility/{id2}", materialsHandler.Compatibility)
	r.Post("/materials/{id}/failure-predictions", materialsHandler.PredictFailures)
	return r
}

func TestAnswerEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body := `{"question": "Is EPDM compatible with asphalt?"}`
	req := httptest.NewRequest(http.MethodPost, "/qa/answer", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var answer qa.EngineeringAnswer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &answer))
	assert.Equal(t, qa.IntentCompatibilityCheck, answer.Intent)
	assert.NotEmpty(t, answer.Answer)
}

func TestAnswerEndpoint_MissingQuestion(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/qa/answer", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body := `{"question": "Can I use EPDM at 25F?"}`
	req := httptest.NewRequest(http.MethodPost, "/qa/parse", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var parsed qa.ParsedQuestion
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	assert.Contains(t, parsed.Entities.Chemistries, "epdm")
}

func TestMaterialsList(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/materials", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []MaterialSummaryDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	assert.Len(t, summaries, len(catalog.SeedRecords()))
}

func TestMaterialsList_QueryRanksByRelevance(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/materials?q=epdm+membrane", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []MaterialSummaryDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.NotEmpty(t, summaries)
	assert.Equal(t, "mat-epdm-60", summaries[0].ID)
}

func TestMaterialsGet_NotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/materials/no-such-id", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMaterialsPutDelete(t *testing.T) {
	router := newTestRouter(t)

	rec := catalog.SeedRecords()[0]
	rec.ID = "mat-new"
	body, err := json.Marshal(rec)
	require.NoError(t, err)

	putReq := httptest.NewRequest(http.MethodPut, "/materials/mat-new", bytes.NewBuffer(body))
	putRec := httptest.NewRecorder()
	router.ServeHTTP(putRec, putReq)
	require.Equal(t, http.StatusOK, putRec.Code)

	getReq := httptest.NewRequest(http.MethodGet, "/materials/mat-new", nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, getReq)
	require.Equal(t, http.StatusOK, getRec.Code)

	delReq := httptest.NewRequest(http.MethodDelete, "/materials/mat-new", nil)
	delRec := httptest.NewRecorder()
	router.ServeHTTP(delRec, delReq)
	require.Equal(t, http.StatusNoContent, delRec.Code)

	del2 := httptest.NewRecorder()
	router.ServeHTTP(del2, httptest.NewRequest(http.MethodDelete, "/materials/mat-new", nil))
	assert.Equal(t, http.StatusNotFound, del2.Code)
}

func TestCompatibilityEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/materials/mat-epdm-60/compatibility/mat-bur-4ply", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result qa.CompatibilityResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Compatible)
	assert.Equal(t, "incompatible", result.Status)
}

func TestPredictFailuresEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body := `{"temperatureF": -60, "moisture": "wet", "uvExposure": "full"}`
	req := httptest.NewRequest(http.MethodPost, "/materials/mat-acr-coat/failure-predictions", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var preds []qa.FailurePrediction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &preds))
	require.NotEmpty(t, preds)
	for i := 1; i < len(preds); i++ {
		assert.GreaterOrEqual(t, preds[i-1].Probability, preds[i].Probability)
	}
}

func TestPredictFailuresEndpoint_UnknownMaterial(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/materials/missing/failure-predictions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
