package qa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_PatternGroups(t *testing.T) {
	c := NewIntentClassifier()

	tests := []struct {
		question string
		want     Intent
	}{
		{"What is the risk of failure for this membrane?", IntentFailurePrediction},
		{"How long will this coating last before it starts to degrade?", IntentFailurePrediction},
		{"Is EPDM compatible with asphalt?", IntentCompatibilityCheck},
		{"Can I use TPO directly over modified bitumen?", IntentCompatibilityCheck},
		{"What temperature is too cold for installing this?", IntentTemperatureCheck},
		{"Is it safe to work in freezing cold weather?", IntentTemperatureCheck},
		{"How do I install this membrane? Any instructions?", IntentGuidance},
		{"What is the tensile strength and elongation of this product?", IntentProperties},
		{"Does this meet the fire rating code and ASTM requirements?", IntentCodeCompliance},
		{"Why is my roof leaking and blistering?", IntentTroubleshooting},
		{"Which material should I use? Recommend the best option.", IntentSelection},
		{"Compare EPDM versus TPO for this job", IntentComparison},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Classify(tt.question), tt.question)
	}
}

func TestClassify_FallsBackToGeneral(t *testing.T) {
	c := NewIntentClassifier()
	assert.Equal(t, IntentGeneral, c.Classify("hello there"))
	assert.Equal(t, IntentGeneral, c.Classify(""))
	assert.Equal(t, IntentGeneral, c.Classify("   "))
}

func TestClassify_TieKeepsFirstDeclared(t *testing.T) {
	c := NewIntentClassifier()
	// one failure-prediction pattern and one temperature pattern match;
	// the earlier-declared intent wins the tie
	assert.Equal(t, IntentFailurePrediction, c.Classify("Will it fail in cold weather?"))
}

func TestExtract_ChemistryAndTemperature(t *testing.T) {
	e := NewExtractor()
	ents := e.Extract("Can I use EPDM at 25F?")

	assert.Contains(t, ents.Chemistries, "epdm")
	require.NotEmpty(t, ents.Temperatures)
	assert.Equal(t, Temperature{Value: 25, Unit: "F"}, ents.Temperatures[0])
	assert.Contains(t, ents.Materials, "EPDM")
}

func TestExtract_TemperatureVariants(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		text string
		want Temperature
	}{
		{"apply at 40F", Temperature{Value: 40, Unit: "F"}},
		{"down to -20 F overnight", Temperature{Value: -20, Unit: "F"}},
		{"about 30C in the shade", Temperature{Value: 30, Unit: "C"}},
		{"rated to 95.5F", Temperature{Value: 95.5, Unit: "F"}},
	}
	for _, tt := range tests {
		ents := e.Extract(tt.text)
		require.NotEmpty(t, ents.Temperatures, tt.text)
		assert.Equal(t, tt.want, ents.Temperatures[0], tt.text)
	}

	assert.Empty(t, e.Extract("a 50 foot run").Temperatures)
}

func TestExtract_ConditionsAndFailures(t *testing.T) {
	e := NewExtractor()
	ents := e.Extract("The roof is leaking after heavy rain and there are blisters")

	assert.Contains(t, ents.Conditions, "rain")
	assert.Contains(t, ents.Failures, "leak")
	assert.Contains(t, ents.Failures, "blister")
}

func TestKeywords_StopWordsAndDedup(t *testing.T) {
	e := NewExtractor()

	kws := e.Keywords("Can I use EPDM at 25F? EPDM is the best, truly the best membrane.")
	assert.Equal(t, []string{"epdm", "25f", "best", "truly", "membrane"}, kws)
}

func TestParse_Confidence(t *testing.T) {
	p := NewParser()

	// general intent, no entities
	plain := p.Parse("hello there")
	assert.Equal(t, IntentGeneral, plain.Intent)
	assert.InDelta(t, 0.5, plain.Confidence, 1e-9)

	// chemistry + material token + temperature + non-general intent
	rich := p.Parse("Is EPDM compatible when installed wet at 25F?")
	assert.Equal(t, IntentCompatibilityCheck, rich.Intent)
	assert.InDelta(t, 0.95, rich.Confidence, 1e-9)
	assert.LessOrEqual(t, rich.Confidence, 0.95)
}

func TestParse_RoundTripDeterminism(t *testing.T) {
	p := NewParser()
	questions := []string{
		"Can I use EPDM at 25F?",
		"Why is my roof leaking and blistering?",
		"",
		"Compare EPDM versus TPO for this job",
	}
	for _, q := range questions {
		first := p.Parse(q)
		second := p.Parse(first.Original)
		assert.Equal(t, first, second, q)
	}
}
