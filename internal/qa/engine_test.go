package qa

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildfacts/material-engine/internal/cache"
	"github.com/buildfacts/material-engine/internal/catalog"
)

func newTestEngine(t *testing.T, cacheClient cache.Client) *Engine {
	t.Helper()
	store := catalog.NewMemoryStoreWith(catalog.SeedRecords())
	return NewEngine(store, cacheClient, nil, DefaultEngineConfig())
}

func TestSelectMaterials_Deterministic(t *testing.T) {
	p := NewParser()
	parsed := p.Parse("Tell me about EPDM membranes")
	all, err := catalog.NewMemoryStoreWith(catalog.SeedRecords()).GetAll(context.Background())
	require.NoError(t, err)

	first := SelectMaterials(parsed, all, nil, 5)
	second := SelectMaterials(parsed, all, nil, 5)
	require.Equal(t, first, second)

	assert.LessOrEqual(t, len(first), 5)
	require.NotEmpty(t, first)
	assert.Equal(t, "mat-epdm-60", first[0].ID)
}

func TestSelectMaterials_ExplicitIDsShortCircuit(t *testing.T) {
	parsed := ParsedQuestion{Original: "anything"}
	all, err := catalog.NewMemoryStoreWith(catalog.SeedRecords()).GetAll(context.Background())
	require.NoError(t, err)

	got := SelectMaterials(parsed, all, []string{"mat-pvc-50", "missing-id", "mat-tpo-60"}, 5)
	require.Len(t, got, 2)
	assert.Equal(t, "mat-pvc-50", got[0].ID)
	assert.Equal(t, "mat-tpo-60", got[1].ID)
}

func TestSelectMaterials_DropsZeroScores(t *testing.T) {
	parsed := ParsedQuestion{Original: "zzz", Keywords: []string{"zzz"}}
	all, err := catalog.NewMemoryStoreWith(catalog.SeedRecords()).GetAll(context.Background())
	require.NoError(t, err)

	assert.Empty(t, SelectMaterials(parsed, all, nil, 5))
}

func TestAnswer_CompatibilityQuestion(t *testing.T) {
	e := newTestEngine(t, nil)

	ans, err := e.Answer(context.Background(), "Is EPDM compatible with asphalt?", nil)
	require.NoError(t, err)

	assert.Equal(t, IntentCompatibilityCheck, ans.Intent)
	assert.NotEmpty(t, ans.CompatibilityIssues)
	assert.Contains(t, ans.Answer, "incompatible")
	assert.NotEmpty(t, ans.Sources)
	assert.LessOrEqual(t, ans.Confidence, 0.95)
}

func TestAnswer_EmptyStoreNeverErrors(t *testing.T) {
	e := NewEngine(catalog.NewMemoryStore(), nil, nil, DefaultEngineConfig())

	questions := []string{
		"Is EPDM compatible with asphalt?",
		"Will it fail in cold weather?",
		"",
		"???",
	}
	for _, q := range questions {
		ans, err := e.Answer(context.Background(), q, nil)
		require.NoError(t, err, q)
		assert.GreaterOrEqual(t, ans.Confidence, 0.0, q)
	}
}

func TestAnswer_CachedSecondCall(t *testing.T) {
	e := newTestEngine(t, cache.NewMemoryClient(100))
	ctx := context.Background()

	first, err := e.Answer(ctx, "Is EPDM compatible with asphalt?", nil)
	require.NoError(t, err)
	second, err := e.Answer(ctx, "Is EPDM compatible with asphalt?", nil)
	require.NoError(t, err)

	assert.Equal(t, first.Answer, second.Answer)
	assert.Equal(t, first.Intent, second.Intent)
	assert.Equal(t, first.Sources, second.Sources)
}

func TestAnswerCacheKey_CoversAllContextFields(t *testing.T) {
	e := newTestEngine(t, nil)
	q := "Will this fail in winter?"

	base := e.answerCacheKey(q, &QuestionContext{})
	contexts := []*QuestionContext{
		{MaterialIDs: []string{"mat-epdm-60"}},
		{TemperatureF: catalog.Float64Ptr(25)},
		{HumidityPct: catalog.Float64Ptr(80)},
		{Moisture: "wet"},
		{UVExposure: "full"},
	}

	seen := map[string]bool{base: true}
	for _, qctx := range contexts {
		key := e.answerCacheKey(q, qctx)
		assert.False(t, seen[key], "context %+v collides with an earlier key", qctx)
		seen[key] = true
	}

	// identical contexts still share a key
	assert.Equal(t,
		e.answerCacheKey(q, &QuestionContext{Moisture: "wet", UVExposure: "full"}),
		e.answerCacheKey(q, &QuestionContext{Moisture: "wet", UVExposure: "full"}))
}

func TestAnswer_ExplicitContextMaterials(t *testing.T) {
	e := newTestEngine(t, nil)

	ans, err := e.Answer(context.Background(), "What are the properties?",
		&QuestionContext{MaterialIDs: []string{"mat-tpo-60"}})
	require.NoError(t, err)

	require.Len(t, ans.Materials, 1)
	assert.Equal(t, "mat-tpo-60", ans.Materials[0].ID)
}

func TestPredictFailures_BoundsAndOrdering(t *testing.T) {
	e := newTestEngine(t, nil)

	preds, err := e.PredictFailures(context.Background(), "mat-acr-coat", &Conditions{
		TemperatureF: catalog.Float64Ptr(-60),
		Moisture:     "wet",
		UVExposure:   "full",
	})
	require.NoError(t, err)
	require.NotEmpty(t, preds)

	for i, p := range preds {
		assert.GreaterOrEqual(t, p.Probability, 0.0)
		assert.LessOrEqual(t, p.Probability, 0.95)
		if i > 0 {
			assert.GreaterOrEqual(t, preds[i-1].Probability, p.Probability,
				"predictions must be sorted descending")
		}
	}

	// moisture mode gets the wet bonus on top of the out-of-range bonus
	assert.Equal(t, "fm-moisture-intrusion", preds[0].Mode.ID)
	assert.InDelta(t, 0.8, preds[0].Probability, 1e-9)
}

func TestPredictFailures_UnknownMaterial(t *testing.T) {
	e := newTestEngine(t, nil)

	preds, err := e.PredictFailures(context.Background(), "missing-id", nil)
	require.NoError(t, err)
	assert.Empty(t, preds)
}

func TestPredictFailures_NoConditions(t *testing.T) {
	e := newTestEngine(t, nil)

	preds, err := e.PredictFailures(context.Background(), "mat-epdm-60", nil)
	require.NoError(t, err)
	require.NotEmpty(t, preds)
	for _, p := range preds {
		assert.InDelta(t, 0.3, p.Probability, 1e-9)
	}
}

func TestCheckCompatibility_Incompatible(t *testing.T) {
	e := newTestEngine(t, nil)

	res, err := e.CheckCompatibility(context.Background(), "mat-epdm-60", "mat-bur-4ply")
	require.NoError(t, err)

	assert.Equal(t, "incompatible", res.Status)
	assert.False(t, res.Compatible)
	assert.NotEmpty(t, res.Issues)
	assert.Empty(t, res.NotFound)
}

func TestCheckCompatibility_NoOverlappingData(t *testing.T) {
	e := newTestEngine(t, nil)

	res, err := e.CheckCompatibility(context.Background(), "mat-tpo-60", "mat-iso-25")
	require.NoError(t, err)

	assert.Equal(t, "compatible", res.Status)
	assert.True(t, res.Compatible)
	assert.Empty(t, res.Issues)
}

func TestCheckCompatibility_Conditional(t *testing.T) {
	e := newTestEngine(t, nil)

	// TPO's matrix lists asphalt as conditional with a separation sheet
	res, err := e.CheckCompatibility(context.Background(), "mat-tpo-60", "mat-bur-4ply")
	require.NoError(t, err)

	assert.Equal(t, "conditional", res.Status)
	assert.False(t, res.Compatible)
	require.NotEmpty(t, res.Issues)
	hasRequirement := false
	for _, is := range res.Issues {
		if is.Requirement != "" {
			hasRequirement = true
		}
	}
	assert.True(t, hasRequirement)
}

func TestCheckCompatibility_NotFound(t *testing.T) {
	e := newTestEngine(t, nil)

	res, err := e.CheckCompatibility(context.Background(), "mat-epdm-60", "missing-id")
	require.NoError(t, err)

	assert.Equal(t, "unknown", res.Status)
	assert.False(t, res.Compatible)
	assert.Equal(t, []string{"missing-id"}, res.NotFound)
}
