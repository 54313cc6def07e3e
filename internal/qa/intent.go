// Package qa implements the engineering question-answering engine: intent
// classification, entity extraction, material relevance scoring, and
// intent-specific answer generation over the material catalog and the static
// reference tables.
package qa

import "strings"

// Intent represents the classified purpose of a question.
type Intent string

const (
	IntentFailurePrediction  Intent = "failure-prediction"
	IntentCompatibilityCheck Intent = "compatibility-check"
	IntentTemperatureCheck   Intent = "temperature-check"
	IntentGuidance           Intent = "application-guidance"
	IntentProperties         Intent = "material-properties"
	IntentCodeCompliance     Intent = "code-compliance"
	IntentTroubleshooting    Intent = "troubleshooting"
	IntentSelection          Intent = "material-selection"
	IntentComparison         Intent = "comparison"
	IntentGeneral            Intent = "general"
)

// intentPatterns pairs an intent with its phrase patterns. Declaration order
// is significant: ties on match count resolve to the earlier entry.
type intentPatterns struct {
	intent   Intent
	patterns []string
}

// IntentClassifier classifies question intent using phrase patterns.
type IntentClassifier struct {
	ordered []intentPatterns
}

// NewIntentClassifier creates a classifier with the built-in pattern table.
func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{
		ordered: []intentPatterns{
			{IntentFailurePrediction, []string{
				"will it fail",
				"will this fail",
				"failure",
				"how long will",
				"life expectancy",
				"lifespan",
				"degrade",
				"deteriorate",
				"what happens if",
				"risk of",
				"predict",
			}},
			{IntentCompatibilityCheck, []string{
				"compatible",
				"compatibility",
				"can i use",
				"use with",
				" over ",
				"adhere to",
				"stick to",
				"bond to",
				"bond with",
				"contact with",
				"install over",
				"on top of",
				"together with",
			}},
			{IntentTemperatureCheck, []string{
				"temperature",
				"degrees",
				"how cold",
				"how hot",
				"too cold",
				"too hot",
				"freezing",
				"in winter",
				"in the winter",
				"in summer",
				"cold weather",
				"hot weather",
			}},
			{IntentGuidance, []string{
				"how to install",
				"how do i install",
				"how to apply",
				"how do i apply",
				"installation",
				"application",
				"instructions",
				"procedure",
				"prep",
				"primer",
				"coverage rate",
			}},
			{IntentProperties, []string{
				"properties",
				"tensile",
				"elongation",
				"permeance",
				"perm rating",
				"thickness",
				"mil ",
				"data sheet",
				"spec sheet",
				"specification",
				"what is the",
			}},
			{IntentCodeCompliance, []string{
				"code",
				"compliance",
				"compliant",
				"meet",
				"approved",
				"approval",
				"fire rating",
				"fire rated",
				"astm",
				"ul class",
				"fm class",
			}},
			{IntentTroubleshooting, []string{
				"why is",
				"why does",
				"leaking",
				"leak",
				"blister",
				"peeling",
				"problem",
				"issue",
				"troubleshoot",
				"wrong with",
				"diagnose",
				"fix",
				"repair",
			}},
			{IntentSelection, []string{
				"which material",
				"what material should",
				"best material",
				"recommend",
				"recommendation",
				"what should i use",
				"which should i use",
				"best choice",
				"best option",
				"select",
			}},
			{IntentComparison, []string{
				"compare",
				"comparison",
				"versus",
				" vs ",
				"difference between",
				"better than",
				"which is better",
				"pros and cons",
			}},
			// general has no patterns, it scores zero and only wins as
			// the fallback.
			{IntentGeneral, nil},
		},
	}
}

// Classify determines the intent of a question. Each intent's patterns are
// counted as case-insensitive substring matches; the strictly highest count
// wins and ties keep the earlier intent. Zero matches everywhere falls back
// to the general intent.
func (c *IntentClassifier) Classify(question string) Intent {
	q := strings.ToLower(question)

	best := IntentGeneral
	bestCount := 0
	for _, ip := range c.ordered {
		count := 0
		for _, pattern := range ip.patterns {
			if strings.Contains(q, pattern) {
				count++
			}
		}
		if count > bestCount {
			best = ip.intent
			bestCount = count
		}
	}
	return best
}

// Intents lists every intent in declaration order.
func Intents() []Intent {
	return []Intent{
		IntentFailurePrediction, IntentCompatibilityCheck, IntentTemperatureCheck,
		IntentGuidance, IntentProperties, IntentCodeCompliance,
		IntentTroubleshooting, IntentSelection, IntentComparison, IntentGeneral,
	}
}
