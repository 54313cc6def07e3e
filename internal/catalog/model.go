// Package catalog defines the material record schema and its storage
// backends. A material record carries twenty fixed attribute slots grouped
// into four sections: classification, physical properties, performance
// metrics, and engineering data.
package catalog

import (
	"strings"

	"github.com/buildfacts/material-engine/internal/refdata"
)

// Classification holds tiers 1-6: where the material sits in the product
// taxonomy and who makes it.
type Classification struct {
	Division     string `json:"division"`
	Category     string `json:"category"`
	AssemblyType string `json:"assemblyType"`
	Condition    string `json:"condition"`
	Manufacturer string `json:"manufacturer"`
	ProductCode  string `json:"productCode"`
	ProductName  string `json:"productName"`
	FullName     string `json:"fullName,omitempty"`
}

// Physical holds tiers 7-12: composition and form factor.
type Physical struct {
	ChemistryType string  `json:"chemistryType"`
	ChemistryCode string  `json:"chemistryCode"`
	Reinforcement string  `json:"reinforcement,omitempty"`
	Surface       string  `json:"surface,omitempty"`
	ThicknessMil  float64 `json:"thicknessMil,omitempty"`
	Color         string  `json:"color,omitempty"`
	FireClass     string  `json:"fireClass,omitempty"`
}

// Performance holds tiers 13-16: measured behavior. Temperature bounds are
// pointers so a record can omit range data entirely, in which case the
// temperature analyses skip it.
type Performance struct {
	VaporPermeance     string   `json:"vaporPermeance,omitempty"`
	TensileStrengthPSI float64  `json:"tensileStrengthPsi,omitempty"`
	ElongationPct      float64  `json:"elongationPct,omitempty"`
	ServiceTempMinF    *float64 `json:"serviceTempMinF,omitempty"`
	ServiceTempMaxF    *float64 `json:"serviceTempMaxF,omitempty"`
	AppTempMinF        *float64 `json:"appTempMinF,omitempty"`
	AppTempMaxF        *float64 `json:"appTempMaxF,omitempty"`
}

// CompatibilityEntry is one row of a material's own compatibility matrix.
// The subject chemistry is implied by the owning record.
type CompatibilityEntry struct {
	MaterialType string               `json:"materialType"`
	Status       refdata.CompatStatus `json:"status"`
	Reason       string               `json:"reason"`
	Requirement  string               `json:"requirement,omitempty"`
}

// ConstraintSeverity grades an application-constraint violation.
type ConstraintSeverity string

const (
	SeverityInfo    ConstraintSeverity = "info"
	SeverityWarning ConstraintSeverity = "warning"
	SeverityError   ConstraintSeverity = "error"
)

// ApplicationConstraint is a typed limit on how the material may be applied.
// Min and Max are optional, a constraint can be one-sided.
type ApplicationConstraint struct {
	Type        string             `json:"type"`
	Min         *float64           `json:"min,omitempty"`
	Max         *float64           `json:"max,omitempty"`
	Unit        string             `json:"unit,omitempty"`
	Description string             `json:"description"`
	Consequence string             `json:"consequence,omitempty"`
	Severity    ConstraintSeverity `json:"severity"`
}

// CodeReference points at a building-code or approval listing.
type CodeReference struct {
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	Compliant   bool   `json:"compliant"`
}

// Engineering holds tiers 17-20: the reference-data links the answer
// generators reason over.
type Engineering struct {
	FailureModeRefs     []string                `json:"failureModeRefs,omitempty"`
	CompatibilityMatrix []CompatibilityEntry    `json:"compatibilityMatrix,omitempty"`
	Constraints         []ApplicationConstraint `json:"constraints,omitempty"`
	CodeReferences      []CodeReference         `json:"codeReferences,omitempty"`
	FireRatings         []string                `json:"fireRatings,omitempty"`
	InstallationGuide   string                  `json:"installationGuide,omitempty"`
}

// MaterialRecord is the fixed-shape catalog record. The Q&A engine treats it
// as read-only, only the storage layer and import tooling mutate records.
type MaterialRecord struct {
	ID             string         `json:"id"`
	TaxonomyCode   string         `json:"taxonomyCode,omitempty"`
	Classification Classification `json:"classification"`
	Physical       Physical       `json:"physical"`
	Performance    Performance    `json:"performance"`
	Engineering    Engineering    `json:"engineering"`
}

// SearchText concatenates the record's searchable fields, lower-cased, for
// substring matching by the relevance scorer and catalog search.
func (m *MaterialRecord) SearchText() string {
	parts := []string{
		m.Classification.ProductName,
		m.Classification.FullName,
		m.Classification.Manufacturer,
		m.Physical.ChemistryType,
		m.Physical.ChemistryCode,
		m.TaxonomyCode,
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// ChemistryProfile resolves the record's chemistry type against the
// reference tables.
func (m *MaterialRecord) ChemistryProfile() (refdata.ChemistryProfile, bool) {
	return refdata.ProfileForType(strings.ToLower(m.Physical.ChemistryType))
}

// FailureModes resolves the record's failure-mode references, skipping
// unknown IDs.
func (m *MaterialRecord) FailureModes() []refdata.FailureMode {
	var out []refdata.FailureMode
	for _, ref := range m.Engineering.FailureModeRefs {
		if fm, ok := refdata.FailureModeByID(ref); ok {
			out = append(out, fm)
		}
	}
	return out
}

// Float64Ptr is a convenience for building records with optional bounds.
func Float64Ptr(v float64) *float64 { return &v }
