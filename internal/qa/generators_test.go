package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildfacts/material-engine/internal/catalog"
	"github.com/buildfacts/material-engine/internal/refdata"
)

func acrylicRecord() catalog.MaterialRecord {
	for _, r := range catalog.SeedRecords() {
		if r.ID == "mat-acr-coat" {
			return r
		}
	}
	panic("seed record mat-acr-coat missing")
}

func parsedWithTemp(value float64) ParsedQuestion {
	return ParsedQuestion{
		Original: "temperature question",
		Intent:   IntentTemperatureCheck,
		Entities: QuestionEntities{
			Temperatures: []Temperature{{Value: value, Unit: "F"}},
		},
	}
}

func TestTemperatureGenerator_BelowMinimum(t *testing.T) {
	materials := []catalog.MaterialRecord{acrylicRecord()}

	ans := generateTemperature(parsedWithTemp(25), materials, QuestionContext{})

	require.Len(t, ans.ConstraintViolations, 1)
	assert.Equal(t, catalog.SeverityError, ans.ConstraintViolations[0].Severity)
	assert.NotEmpty(t, ans.Recommendations)
	assert.NotEmpty(t, ans.Warnings)
	assert.InDelta(t, 0.95, ans.Confidence, 1e-9)
}

func TestTemperatureGenerator_AboveMaximum(t *testing.T) {
	materials := []catalog.MaterialRecord{acrylicRecord()}

	ans := generateTemperature(parsedWithTemp(110), materials, QuestionContext{})

	require.Len(t, ans.ConstraintViolations, 1)
	assert.Equal(t, catalog.SeverityWarning, ans.ConstraintViolations[0].Severity)
	assert.NotEmpty(t, ans.Recommendations)
}

func TestTemperatureGenerator_WithinRange(t *testing.T) {
	materials := []catalog.MaterialRecord{acrylicRecord()}

	ans := generateTemperature(parsedWithTemp(70), materials, QuestionContext{})

	assert.Empty(t, ans.ConstraintViolations)
	assert.Empty(t, ans.Warnings)
}

func TestTemperatureGenerator_NoTargetReportsRanges(t *testing.T) {
	materials := []catalog.MaterialRecord{acrylicRecord()}
	parsed := ParsedQuestion{Original: "what are the temperature limits", Intent: IntentTemperatureCheck}

	ans := generateTemperature(parsed, materials, QuestionContext{})

	assert.Empty(t, ans.ConstraintViolations)
	assert.Contains(t, ans.Explanation, "application range")
}

func TestTemperatureGenerator_ContextFallback(t *testing.T) {
	materials := []catalog.MaterialRecord{acrylicRecord()}
	parsed := ParsedQuestion{Original: "is it too cold", Intent: IntentTemperatureCheck}

	ans := generateTemperature(parsed, materials, QuestionContext{TemperatureF: catalog.Float64Ptr(25)})

	require.Len(t, ans.ConstraintViolations, 1)
	assert.Equal(t, catalog.SeverityError, ans.ConstraintViolations[0].Severity)
}

func TestTemperatureGenerator_CelsiusConverted(t *testing.T) {
	materials := []catalog.MaterialRecord{acrylicRecord()}
	parsed := ParsedQuestion{
		Original: "can I apply at -5C",
		Intent:   IntentTemperatureCheck,
		Entities: QuestionEntities{Temperatures: []Temperature{{Value: -5, Unit: "C"}}},
	}

	// -5C is 23F, below the 40F minimum
	ans := generateTemperature(parsed, materials, QuestionContext{})
	require.Len(t, ans.ConstraintViolations, 1)
	assert.Equal(t, catalog.SeverityError, ans.ConstraintViolations[0].Severity)
}

func TestFailurePredictionGenerator_ConditionMapping(t *testing.T) {
	p := NewParser()
	parsed := p.Parse("Will this fail with ponding water and moisture?")
	materials := []catalog.MaterialRecord{acrylicRecord()}

	ans := generateFailurePrediction(parsed, materials, QuestionContext{})

	require.NotEmpty(t, ans.FailureModes)
	for _, fm := range ans.FailureModes {
		assert.Equal(t, refdata.CategoryMoisture, fm.Category)
	}
	assert.NotEmpty(t, ans.Recommendations)
	assert.InDelta(t, 0.85, ans.Confidence, 1e-9)
}

func TestFailurePredictionGenerator_GenericFallback(t *testing.T) {
	p := NewParser()
	parsed := p.Parse("Will this acrylic coating fail?")
	materials := []catalog.MaterialRecord{acrylicRecord()}

	ans := generateFailurePrediction(parsed, materials, QuestionContext{})

	// no condition keywords, so generic chemistry modes are used (capped at 3)
	require.NotEmpty(t, ans.FailureModes)
	assert.LessOrEqual(t, len(ans.FailureModes), 3)
}

func TestFailurePredictionGenerator_StructuralWarning(t *testing.T) {
	parsed := ParsedQuestion{
		Original: "puncture risk",
		Intent:   IntentFailurePrediction,
		Entities: QuestionEntities{Conditions: []string{"puncture"}},
	}
	var epdm catalog.MaterialRecord
	for _, r := range catalog.SeedRecords() {
		if r.ID == "mat-epdm-60" {
			epdm = r
		}
	}
	ans := generateFailurePrediction(parsed, []catalog.MaterialRecord{epdm}, QuestionContext{})

	require.NotEmpty(t, ans.FailureModes)
	assert.NotEmpty(t, ans.Warnings, "structural failure modes must produce a warning")
}

func TestCompatibilityGenerator_MatrixAndGlobalMerge(t *testing.T) {
	p := NewParser()
	parsed := p.Parse("Is EPDM compatible with asphalt?")

	var epdm, bur catalog.MaterialRecord
	for _, r := range catalog.SeedRecords() {
		switch r.ID {
		case "mat-epdm-60":
			epdm = r
		case "mat-bur-4ply":
			bur = r
		}
	}

	ans := generateCompatibility(parsed, []catalog.MaterialRecord{epdm, bur}, QuestionContext{})

	require.NotEmpty(t, ans.CompatibilityIssues)
	foundIncompatible := false
	for _, is := range ans.CompatibilityIssues {
		if is.Status == refdata.StatusIncompatible {
			foundIncompatible = true
		}
	}
	assert.True(t, foundIncompatible)
	assert.Contains(t, ans.Answer, "incompatible")
	assert.NotEmpty(t, ans.Warnings)
	assert.InDelta(t, 0.9, ans.Confidence, 1e-9)
}

func TestCompatibilityGenerator_NoConflicts(t *testing.T) {
	p := NewParser()
	parsed := p.Parse("Is TPO compatible with polyiso?")

	var tpo, iso catalog.MaterialRecord
	for _, r := range catalog.SeedRecords() {
		switch r.ID {
		case "mat-tpo-60":
			tpo = r
		case "mat-iso-25":
			iso = r
		}
	}

	ans := generateCompatibility(parsed, []catalog.MaterialRecord{tpo, iso}, QuestionContext{})

	assert.Empty(t, ans.CompatibilityIssues)
	assert.Contains(t, ans.Answer, "No compatibility conflicts")
	assert.InDelta(t, 0.6, ans.Confidence, 1e-9)
}

func TestGenerators_NeverPanic(t *testing.T) {
	p := NewParser()
	bare := catalog.MaterialRecord{ID: "bare"}

	inputs := []struct {
		name      string
		materials []catalog.MaterialRecord
		question  string
	}{
		{"empty materials", nil, "Will it fail?"},
		{"no engineering data", []catalog.MaterialRecord{bare}, "Is this compatible with asphalt?"},
		{"no extractable entities", []catalog.MaterialRecord{bare}, "???"},
	}

	for intent, generate := range generatorTable() {
		for _, in := range inputs {
			parsed := p.Parse(in.question)
			parsed.Intent = intent
			ans := generate(parsed, in.materials, QuestionContext{})
			assert.GreaterOrEqual(t, ans.Confidence, 0.0, "%s / %s", intent, in.name)
			assert.LessOrEqual(t, ans.Confidence, 1.0, "%s / %s", intent, in.name)
			assert.Equal(t, intent, ans.Intent)
		}
	}
}
