package qa

import (
	"github.com/buildfacts/material-engine/internal/catalog"
	"github.com/buildfacts/material-engine/internal/refdata"
)

// QuestionContext carries caller-supplied hints alongside the question text:
// explicit material IDs skip relevance scoring, environment conditions drive
// the temperature and failure-prediction analyses directly.
type QuestionContext struct {
	MaterialIDs  []string `json:"materialIds,omitempty"`
	TemperatureF *float64 `json:"temperatureF,omitempty"`
	HumidityPct  *float64 `json:"humidityPct,omitempty"`
	// Moisture is the site moisture state: dry, damp, wet, or submerged.
	Moisture string `json:"moisture,omitempty"`
	// UVExposure is one of none, partial, or full.
	UVExposure string `json:"uvExposure,omitempty"`
}

// CompatibilityIssue is one incompatible or conditional pairing surfaced by
// the compatibility analysis.
type CompatibilityIssue struct {
	MaterialID   string               `json:"materialId"`
	MaterialName string               `json:"materialName"`
	OtherType    string               `json:"otherType"`
	Status       refdata.CompatStatus `json:"status"`
	Reason       string               `json:"reason"`
	Requirement  string               `json:"requirement,omitempty"`
}

// ConstraintViolation is an application constraint broken by the requested
// conditions.
type ConstraintViolation struct {
	MaterialID  string                     `json:"materialId"`
	Description string                     `json:"description"`
	Severity    catalog.ConstraintSeverity `json:"severity"`
	Consequence string                     `json:"consequence,omitempty"`
}

// FailurePrediction scores one failure mode for a single material.
type FailurePrediction struct {
	Mode        refdata.FailureMode `json:"mode"`
	Probability float64             `json:"probability"`
	Factors     []string            `json:"factors,omitempty"`
}

// CompatibilityResult is the output of the pairwise compatibility check.
// Status follows incompatible > conditional > compatible precedence;
// NotFound lists requested material IDs missing from the catalog, in which
// case Status is "unknown".
type CompatibilityResult struct {
	MaterialID1 string               `json:"materialId1"`
	MaterialID2 string               `json:"materialId2"`
	Status      string               `json:"status"`
	Compatible  bool                 `json:"compatible"`
	Issues      []CompatibilityIssue `json:"issues,omitempty"`
	Summary     string               `json:"summary"`
	NotFound    []string             `json:"notFound,omitempty"`
}

// EngineeringAnswer is the structured answer returned for every question.
type EngineeringAnswer struct {
	Question             string                   `json:"question"`
	Intent               Intent                   `json:"intent"`
	Answer               string                   `json:"answer"`
	Explanation          string                   `json:"explanation,omitempty"`
	Materials            []catalog.MaterialRecord `json:"materials,omitempty"`
	FailureModes         []refdata.FailureMode    `json:"failureModes,omitempty"`
	CompatibilityIssues  []CompatibilityIssue     `json:"compatibilityIssues,omitempty"`
	ConstraintViolations []ConstraintViolation    `json:"constraintViolations,omitempty"`
	Recommendations      []string                 `json:"recommendations,omitempty"`
	Warnings             []string                 `json:"warnings,omitempty"`
	Confidence           float64                  `json:"confidence"`
	Sources              []string                 `json:"sources,omitempty"`
}
