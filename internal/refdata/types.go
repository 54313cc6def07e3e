// Package refdata provides the static engineering reference tables for the
// Material Engine: failure modes, compatibility rules, and chemistry
// profiles. The tables are process-wide immutable data loaded at init and
// never mutated; callers may hold returned slices without copying.
package refdata

// FailureCategory classifies how a material fails.
type FailureCategory string

const (
	CategoryAdhesion     FailureCategory = "adhesion"
	CategoryCohesion     FailureCategory = "cohesion"
	CategoryMechanical   FailureCategory = "mechanical"
	CategoryThermal      FailureCategory = "thermal"
	CategoryMoisture     FailureCategory = "moisture"
	CategoryChemical     FailureCategory = "chemical"
	CategoryUV           FailureCategory = "uv"
	CategoryBiological   FailureCategory = "biological"
	CategoryInstallation FailureCategory = "installation"
	CategoryDesign       FailureCategory = "design"
)

// FailureCategories lists every valid failure category.
var FailureCategories = []FailureCategory{
	CategoryAdhesion, CategoryCohesion, CategoryMechanical, CategoryThermal,
	CategoryMoisture, CategoryChemical, CategoryUV, CategoryBiological,
	CategoryInstallation, CategoryDesign,
}

// ValidCategory reports whether c is one of the fixed failure categories.
func ValidCategory(c FailureCategory) bool {
	for _, known := range FailureCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Severity grades the consequence of a failure mode.
type Severity string

const (
	SeverityCosmetic     Severity = "cosmetic"
	SeverityFunctional   Severity = "functional"
	SeverityStructural   Severity = "structural"
	SeverityCatastrophic Severity = "catastrophic"
)

// FailureMode describes a named way a material can fail.
type FailureMode struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      FailureCategory `json:"category"`
	Causes        []string        `json:"causes"`
	Symptoms      []string        `json:"symptoms"`
	TimeToFailure string          `json:"timeToFailure"`
	Severity      Severity        `json:"severity"`
	Prevention    []string        `json:"prevention"`
	// AffectedChemistries limits the mode to specific chemistry types. An
	// empty list means universally applicable when no chemistry-specific
	// mode matches.
	AffectedChemistries []string `json:"affectedChemistries,omitempty"`
}

// CompatStatus is the outcome of a compatibility rule.
type CompatStatus string

const (
	StatusCompatible   CompatStatus = "compatible"
	StatusIncompatible CompatStatus = "incompatible"
	StatusConditional  CompatStatus = "conditional"
)

// CompatibilityRule pairs a subject chemistry with another material type.
// Requirement is only meaningful when Status is conditional.
type CompatibilityRule struct {
	ChemistryType string       `json:"chemistryType"`
	MaterialType  string       `json:"materialType"`
	Status        CompatStatus `json:"status"`
	Reason        string       `json:"reason"`
	Requirement   string       `json:"requirement,omitempty"`
}

// ChemistryProfile describes a base polymer family and its behavior flags.
type ChemistryProfile struct {
	Type          string   `json:"type"`
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Aliases       []string `json:"aliases,omitempty"`
	Thermoset     bool     `json:"thermoset"`
	Thermoplastic bool     `json:"thermoplastic"`
	Plasticized   bool     `json:"plasticized"`
	SolventBased  bool     `json:"solventBased"`
	OilSensitive  bool     `json:"oilSensitive"`
	Notes         string   `json:"notes,omitempty"`
}
