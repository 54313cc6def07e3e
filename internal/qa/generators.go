package qa

import (
	"fmt"
	"strings"

	"github.com/buildfacts/material-engine/internal/catalog"
	"github.com/buildfacts/material-engine/internal/refdata"
)

// generatorFunc produces a structured answer for one intent. Generators are
// pure functions over the parsed question, the selected materials, and the
// caller-supplied context; a material missing the data a sub-analysis needs
// is skipped, never an error.
type generatorFunc func(parsed ParsedQuestion, materials []catalog.MaterialRecord, qctx QuestionContext) EngineeringAnswer

// generatorTable maps each intent to its generator.
func generatorTable() map[Intent]generatorFunc {
	return map[Intent]generatorFunc{
		IntentFailurePrediction:  generateFailurePrediction,
		IntentCompatibilityCheck: generateCompatibility,
		IntentTemperatureCheck:   generateTemperature,
		IntentGuidance:           generateGuidance,
		IntentProperties:         generateProperties,
		IntentCodeCompliance:     generateCodeCompliance,
		IntentTroubleshooting:    generateTroubleshooting,
		IntentSelection:          generateSelection,
		IntentComparison:         generateComparison,
		IntentGeneral:            generateGeneral,
	}
}

// keywordCategory maps extracted condition and failure keywords onto the
// failure categories the prediction generator filters by.
var keywordCategory = map[string]refdata.FailureCategory{
	"water": refdata.CategoryMoisture, "wet": refdata.CategoryMoisture,
	"rain": refdata.CategoryMoisture, "moisture": refdata.CategoryMoisture,
	"humid": refdata.CategoryMoisture, "damp": refdata.CategoryMoisture,
	"submerged": refdata.CategoryMoisture, "ponding": refdata.CategoryMoisture,
	"standing water": refdata.CategoryMoisture, "snow": refdata.CategoryMoisture,
	"leak": refdata.CategoryMoisture, "pond": refdata.CategoryMoisture,

	"cold": refdata.CategoryThermal, "heat": refdata.CategoryThermal,
	"freeze": refdata.CategoryThermal, "frost": refdata.CategoryThermal,
	"ice": refdata.CategoryThermal, "thermal": refdata.CategoryThermal,
	"brittle": refdata.CategoryThermal,

	"uv": refdata.CategoryUV, "sun": refdata.CategoryUV,
	"sunlight": refdata.CategoryUV, "fade": refdata.CategoryUV,
	"chalking": refdata.CategoryUV,

	"chemical": refdata.CategoryChemical, "grease": refdata.CategoryChemical,
	"oil": refdata.CategoryChemical, "exhaust": refdata.CategoryChemical,
	"solvent": refdata.CategoryChemical, "acid": refdata.CategoryChemical,
	"swell": refdata.CategoryChemical, "stain": refdata.CategoryChemical,

	"puncture": refdata.CategoryMechanical, "wind": refdata.CategoryMechanical,
	"uplift": refdata.CategoryMechanical, "hail": refdata.CategoryMechanical,
	"traffic": refdata.CategoryMechanical, "foot traffic": refdata.CategoryMechanical,
	"tear": refdata.CategoryMechanical, "crack": refdata.CategoryMechanical,
	"split": refdata.CategoryMechanical,

	"peel": refdata.CategoryAdhesion, "delaminat": refdata.CategoryAdhesion,
	"blister": refdata.CategoryAdhesion, "wrinkle": refdata.CategoryAdhesion,
	"fishmouth": refdata.CategoryAdhesion, "seam": refdata.CategoryAdhesion,
	"adhesion": refdata.CategoryAdhesion,
}

func baseAnswer(parsed ParsedQuestion, materials []catalog.MaterialRecord) EngineeringAnswer {
	ans := EngineeringAnswer{
		Question:  parsed.Original,
		Intent:    parsed.Intent,
		Materials: materials,
	}
	for _, m := range materials {
		ans.Sources = append(ans.Sources, m.ID)
	}
	return ans
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}

func materialLabel(m *catalog.MaterialRecord) string {
	if m.Classification.ProductName != "" {
		return m.Classification.ProductName
	}
	return m.ID
}

func generateFailurePrediction(parsed ParsedQuestion, materials []catalog.MaterialRecord, _ QuestionContext) EngineeringAnswer {
	ans := baseAnswer(parsed, materials)

	categories := make(map[refdata.FailureCategory]bool)
	for _, kw := range append(append([]string{}, parsed.Entities.Conditions...), parsed.Entities.Failures...) {
		if cat, ok := keywordCategory[kw]; ok {
			categories[cat] = true
		}
	}

	seen := make(map[string]bool)
	var modes []refdata.FailureMode
	for i := range materials {
		m := &materials[i]
		own := m.FailureModes()

		var matched []refdata.FailureMode
		if len(categories) > 0 {
			for _, fm := range own {
				if categories[fm.Category] {
					matched = append(matched, fm)
				}
			}
		}
		if len(matched) == 0 {
			// no category hits, fall back to generic modes for the chemistry
			generic := refdata.FailureModesForChemistry(strings.ToLower(m.Physical.ChemistryType))
			if len(generic) > 3 {
				generic = generic[:3]
			}
			matched = generic
		}

		for _, fm := range matched {
			if seen[fm.ID] {
				continue
			}
			seen[fm.ID] = true
			modes = append(modes, fm)
		}
	}
	ans.FailureModes = modes

	var b strings.Builder
	for _, fm := range modes {
		fmt.Fprintf(&b, "%s (%s, severity %s): caused by %s. Symptoms: %s. Typical onset: %s.\n",
			fm.Name, fm.Category, fm.Severity,
			strings.Join(fm.Causes, "; "),
			strings.Join(fm.Symptoms, "; "),
			fm.TimeToFailure)
		for _, p := range fm.Prevention {
			ans.Recommendations = appendUnique(ans.Recommendations, p)
		}
		if fm.Severity == refdata.SeverityStructural || fm.Severity == refdata.SeverityCatastrophic {
			ans.Warnings = appendUnique(ans.Warnings,
				fmt.Sprintf("%s is a %s-severity failure mode", fm.Name, fm.Severity))
		}
	}
	ans.Explanation = strings.TrimRight(b.String(), "\n")

	if len(modes) > 0 {
		ans.Answer = fmt.Sprintf("%d failure mode(s) are relevant to the described conditions.", len(modes))
		ans.Confidence = 0.85
	} else {
		ans.Answer = "No specific failure modes identified for the described conditions."
		ans.Confidence = 0.5
	}
	return ans
}

// matrixIssues scans a material's own compatibility matrix for incompatible
// or conditional entries matching the other chemistry, by exact type match
// or substring match on the material-type label.
func matrixIssues(m *catalog.MaterialRecord, other string) []CompatibilityIssue {
	var issues []CompatibilityIssue
	for _, entry := range m.Engineering.CompatibilityMatrix {
		if entry.Status == refdata.StatusCompatible {
			continue
		}
		label := strings.ToLower(entry.MaterialType)
		if label != other && !strings.Contains(label, other) {
			continue
		}
		issues = append(issues, CompatibilityIssue{
			MaterialID:   m.ID,
			MaterialName: materialLabel(m),
			OtherType:    entry.MaterialType,
			Status:       entry.Status,
			Reason:       entry.Reason,
			Requirement:  entry.Requirement,
		})
	}
	return issues
}

// globalIssues consults the chemistry-level rule table for pairs the
// material's own matrix does not cover.
func globalIssues(m *catalog.MaterialRecord, other string, covered map[string]bool) []CompatibilityIssue {
	var issues []CompatibilityIssue
	for _, rule := range refdata.RulesForChemistry(strings.ToLower(m.Physical.ChemistryType)) {
		if rule.Status == refdata.StatusCompatible {
			continue
		}
		label := strings.ToLower(rule.MaterialType)
		if label != other && !strings.Contains(label, other) {
			continue
		}
		if covered[label] {
			continue
		}
		covered[label] = true
		issues = append(issues, CompatibilityIssue{
			MaterialID:   m.ID,
			MaterialName: materialLabel(m),
			OtherType:    rule.MaterialType,
			Status:       rule.Status,
			Reason:       rule.Reason,
			Requirement:  rule.Requirement,
		})
	}
	return issues
}

func generateCompatibility(parsed ParsedQuestion, materials []catalog.MaterialRecord, _ QuestionContext) EngineeringAnswer {
	ans := baseAnswer(parsed, materials)

	chemSet := make(map[string]bool)
	var chems []string
	addChem := func(c string) {
		c = strings.ToLower(c)
		if c != "" && !chemSet[c] {
			chemSet[c] = true
			chems = append(chems, c)
		}
	}
	for _, c := range parsed.Entities.Chemistries {
		addChem(c)
	}
	for i := range materials {
		addChem(materials[i].Physical.ChemistryType)
	}

	var issues []CompatibilityIssue
	for i := range materials {
		m := &materials[i]
		own := strings.ToLower(m.Physical.ChemistryType)
		for _, other := range chems {
			if other == own {
				continue
			}
			covered := make(map[string]bool)
			for _, is := range matrixIssues(m, other) {
				covered[strings.ToLower(is.OtherType)] = true
				issues = append(issues, is)
			}
			issues = append(issues, globalIssues(m, other, covered)...)
		}
	}
	ans.CompatibilityIssues = issues

	status := refdata.StatusCompatible
	for _, is := range issues {
		if is.Status == refdata.StatusIncompatible {
			status = refdata.StatusIncompatible
			break
		}
		status = refdata.StatusConditional
	}

	var b strings.Builder
	for _, is := range issues {
		fmt.Fprintf(&b, "%s vs %s: %s (%s).\n", is.MaterialName, is.OtherType, is.Reason, is.Status)
		if is.Status == refdata.StatusConditional && is.Requirement != "" {
			ans.Recommendations = appendUnique(ans.Recommendations, is.Requirement)
		}
		if is.Status == refdata.StatusIncompatible {
			ans.Warnings = appendUnique(ans.Warnings,
				fmt.Sprintf("Do not place %s in contact with %s", is.MaterialName, is.OtherType))
		}
	}
	ans.Explanation = strings.TrimRight(b.String(), "\n")

	switch status {
	case refdata.StatusIncompatible:
		ans.Answer = "The materials in question are incompatible."
	case refdata.StatusConditional:
		ans.Answer = "The materials are conditionally compatible; see requirements."
	default:
		ans.Answer = "No compatibility conflicts found between the materials in question."
	}
	if len(issues) > 0 {
		ans.Confidence = 0.9
	} else {
		ans.Confidence = 0.6
	}
	return ans
}

// toFahrenheit normalizes an extracted temperature to the unit the catalog
// ranges use.
func toFahrenheit(t Temperature) float64 {
	if t.Unit == "C" {
		return t.Value*9/5 + 32
	}
	return t.Value
}

func generateTemperature(parsed ParsedQuestion, materials []catalog.MaterialRecord, qctx QuestionContext) EngineeringAnswer {
	ans := baseAnswer(parsed, materials)
	ans.Confidence = 0.95

	var reqTemp *float64
	if len(parsed.Entities.Temperatures) > 0 {
		v := toFahrenheit(parsed.Entities.Temperatures[0])
		reqTemp = &v
	} else if qctx.TemperatureF != nil {
		reqTemp = qctx.TemperatureF
	}

	var b strings.Builder
	for i := range materials {
		m := &materials[i]
		perf := m.Performance
		if perf.AppTempMinF == nil && perf.AppTempMaxF == nil &&
			perf.ServiceTempMinF == nil && perf.ServiceTempMaxF == nil {
			continue
		}
		label := materialLabel(m)

		if reqTemp == nil {
			if perf.AppTempMinF != nil && perf.AppTempMaxF != nil {
				fmt.Fprintf(&b, "%s: application range %.0fF to %.0fF.", label, *perf.AppTempMinF, *perf.AppTempMaxF)
			}
			if perf.ServiceTempMinF != nil && perf.ServiceTempMaxF != nil {
				fmt.Fprintf(&b, " Service range %.0fF to %.0fF.", *perf.ServiceTempMinF, *perf.ServiceTempMaxF)
			}
			b.WriteString("\n")
			continue
		}

		t := *reqTemp
		switch {
		case perf.AppTempMinF != nil && t < *perf.AppTempMinF:
			ans.ConstraintViolations = append(ans.ConstraintViolations, ConstraintViolation{
				MaterialID:  m.ID,
				Description: fmt.Sprintf("%.0fF is below the %.0fF application minimum for %s", t, *perf.AppTempMinF, label),
				Severity:    catalog.SeverityError,
				Consequence: "adhesion and cure failure at low temperature",
			})
			ans.Warnings = appendUnique(ans.Warnings,
				fmt.Sprintf("%s must not be applied at %.0fF", label, t))
			ans.Recommendations = appendUnique(ans.Recommendations,
				fmt.Sprintf("Wait for temperatures of %.0fF and rising, or select a low-temperature alternative", *perf.AppTempMinF))
			fmt.Fprintf(&b, "%s: %.0fF is below the application minimum of %.0fF.\n", label, t, *perf.AppTempMinF)
		case perf.AppTempMaxF != nil && t > *perf.AppTempMaxF:
			ans.ConstraintViolations = append(ans.ConstraintViolations, ConstraintViolation{
				MaterialID:  m.ID,
				Description: fmt.Sprintf("%.0fF is above the %.0fF application maximum for %s", t, *perf.AppTempMaxF, label),
				Severity:    catalog.SeverityWarning,
				Consequence: "flash drying and poor film formation in heat",
			})
			ans.Recommendations = appendUnique(ans.Recommendations,
				"Apply in early morning or cooler conditions")
			fmt.Fprintf(&b, "%s: %.0fF is above the application maximum of %.0fF.\n", label, t, *perf.AppTempMaxF)
		default:
			fmt.Fprintf(&b, "%s: %.0fF is within the acceptable application range.\n", label, t)
		}
	}
	ans.Explanation = strings.TrimRight(b.String(), "\n")

	switch {
	case reqTemp == nil:
		ans.Answer = "No target temperature given; reported ranges are informational."
	case len(ans.ConstraintViolations) > 0:
		ans.Answer = fmt.Sprintf("%.0fF violates application limits for %d material(s).", *reqTemp, len(ans.ConstraintViolations))
	default:
		ans.Answer = fmt.Sprintf("%.0fF is acceptable for the materials checked.", *reqTemp)
	}
	return ans
}

func formatConstraint(c catalog.ApplicationConstraint) string {
	s := c.Description
	switch {
	case c.Min != nil && c.Max != nil:
		s = fmt.Sprintf("%s (%.0f-%.0f %s)", s, *c.Min, *c.Max, c.Unit)
	case c.Min != nil:
		s = fmt.Sprintf("%s (min %.0f %s)", s, *c.Min, c.Unit)
	case c.Max != nil:
		s = fmt.Sprintf("%s (max %.0f %s)", s, *c.Max, c.Unit)
	}
	return s
}

func generateGuidance(parsed ParsedQuestion, materials []catalog.MaterialRecord, _ QuestionContext) EngineeringAnswer {
	ans := baseAnswer(parsed, materials)
	ans.Confidence = 0.8

	var b strings.Builder
	for i := range materials {
		m := &materials[i]
		label := materialLabel(m)
		constraints := m.Engineering.Constraints
		if len(constraints) > 5 {
			constraints = constraints[:5]
		}
		if len(constraints) > 0 {
			fmt.Fprintf(&b, "%s application constraints:\n", label)
			for _, c := range constraints {
				fmt.Fprintf(&b, "  - %s\n", formatConstraint(c))
			}
		}
		if m.Engineering.InstallationGuide != "" {
			ans.Recommendations = appendUnique(ans.Recommendations,
				fmt.Sprintf("Consult %s", m.Engineering.InstallationGuide))
		}
	}
	ans.Explanation = strings.TrimRight(b.String(), "\n")

	if ans.Explanation == "" && len(ans.Recommendations) == 0 {
		ans.Answer = "No application guidance on record for the selected materials."
	} else {
		ans.Answer = "Application constraints and installation references are listed below."
	}
	return ans
}

func generateProperties(parsed ParsedQuestion, materials []catalog.MaterialRecord, _ QuestionContext) EngineeringAnswer {
	ans := baseAnswer(parsed, materials)
	ans.Confidence = 0.9

	var b strings.Builder
	for i := range materials {
		m := &materials[i]
		fmt.Fprintf(&b, "%s:\n", materialLabel(m))
		if profile, ok := m.ChemistryProfile(); ok {
			fmt.Fprintf(&b, "  Chemistry: %s (%s). %s\n", profile.Name, profile.Code, profile.Notes)
		} else if m.Physical.ChemistryType != "" {
			fmt.Fprintf(&b, "  Chemistry: %s\n", m.Physical.ChemistryType)
		}
		if m.Performance.VaporPermeance != "" {
			fmt.Fprintf(&b, "  Vapor permeance: %s\n", m.Performance.VaporPermeance)
		}
		if m.Performance.TensileStrengthPSI > 0 {
			fmt.Fprintf(&b, "  Tensile strength: %.0f psi\n", m.Performance.TensileStrengthPSI)
		}
		if m.Performance.ElongationPct > 0 {
			fmt.Fprintf(&b, "  Elongation: %.0f%%\n", m.Performance.ElongationPct)
		}
		if m.Physical.ThicknessMil > 0 {
			fmt.Fprintf(&b, "  Thickness: %.0f mil\n", m.Physical.ThicknessMil)
		}
		if m.Physical.FireClass != "" {
			fmt.Fprintf(&b, "  Fire class: %s\n", m.Physical.FireClass)
		}
	}
	ans.Explanation = strings.TrimRight(b.String(), "\n")

	if len(materials) == 0 {
		ans.Answer = "No materials matched the question."
	} else {
		ans.Answer = fmt.Sprintf("Property summary for %d material(s).", len(materials))
	}
	return ans
}

func generateCodeCompliance(parsed ParsedQuestion, materials []catalog.MaterialRecord, _ QuestionContext) EngineeringAnswer {
	ans := baseAnswer(parsed, materials)
	ans.Confidence = 0.85

	var b strings.Builder
	for i := range materials {
		m := &materials[i]
		label := materialLabel(m)
		if len(m.Engineering.FireRatings) > 0 {
			fmt.Fprintf(&b, "%s fire ratings: %s\n", label, strings.Join(m.Engineering.FireRatings, ", "))
		}
		refs := m.Engineering.CodeReferences
		if len(refs) > 5 {
			refs = refs[:5]
		}
		for _, ref := range refs {
			marker := "compliant"
			if !ref.Compliant {
				marker = "non-compliant"
				ans.Warnings = appendUnique(ans.Warnings,
					fmt.Sprintf("%s is non-compliant with %s", label, ref.Code))
			}
			fmt.Fprintf(&b, "  %s: %s (%s)\n", ref.Code, ref.Description, marker)
		}
	}
	ans.Explanation = strings.TrimRight(b.String(), "\n")

	switch {
	case ans.Explanation == "":
		ans.Answer = "No code references on record for the selected materials."
	case len(ans.Warnings) > 0:
		ans.Answer = "Code references listed; non-compliant items flagged."
	default:
		ans.Answer = "All listed code references are compliant."
	}
	return ans
}

func generateTroubleshooting(parsed ParsedQuestion, materials []catalog.MaterialRecord, _ QuestionContext) EngineeringAnswer {
	ans := baseAnswer(parsed, materials)

	seen := make(map[string]bool)
	var modes []refdata.FailureMode
	for i := range materials {
		for _, fm := range materials[i].FailureModes() {
			if seen[fm.ID] {
				continue
			}
			if !modeMatchesSymptoms(fm, parsed.Entities.Failures) {
				continue
			}
			seen[fm.ID] = true
			modes = append(modes, fm)
		}
	}
	ans.FailureModes = modes

	var b strings.Builder
	for _, fm := range modes {
		fmt.Fprintf(&b, "Likely cause: %s. %s. Watch for: %s.\n",
			fm.Name, strings.Join(fm.Causes, "; "), strings.Join(fm.Symptoms, "; "))
		for _, p := range fm.Prevention {
			ans.Recommendations = appendUnique(ans.Recommendations, p)
		}
	}
	ans.Explanation = strings.TrimRight(b.String(), "\n")

	if len(modes) > 0 {
		ans.Answer = fmt.Sprintf("The reported symptoms match %d known failure mode(s).", len(modes))
		ans.Confidence = 0.8
	} else {
		ans.Answer = "The reported symptoms do not match a known failure mode for these materials."
		ans.Confidence = 0.5
	}
	return ans
}

// modeMatchesSymptoms reports whether any reported failure keyword appears
// in the mode's name or symptom text.
func modeMatchesSymptoms(fm refdata.FailureMode, failures []string) bool {
	if len(failures) == 0 {
		return false
	}
	haystack := strings.ToLower(fm.Name + " " + strings.Join(fm.Symptoms, " "))
	for _, kw := range failures {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

func generateSelection(parsed ParsedQuestion, materials []catalog.MaterialRecord, _ QuestionContext) EngineeringAnswer {
	ans := baseAnswer(parsed, materials)
	ans.Confidence = 0.7

	var b strings.Builder
	for i := range materials {
		m := &materials[i]
		fmt.Fprintf(&b, "%s (%s", materialLabel(m), m.Physical.ChemistryType)
		if profile, ok := m.ChemistryProfile(); ok && profile.Notes != "" {
			fmt.Fprintf(&b, ": %s", profile.Notes)
		}
		b.WriteString(")\n")
	}
	ans.Explanation = strings.TrimRight(b.String(), "\n")

	if len(materials) > 0 {
		top := materials[0]
		ans.Answer = fmt.Sprintf("%s is the strongest match for the stated requirements.", materialLabel(&top))
		ans.Recommendations = appendUnique(ans.Recommendations,
			fmt.Sprintf("Review the full record for %s before specifying", materialLabel(&top)))
	} else {
		ans.Answer = "No catalog materials matched the stated requirements."
		ans.Confidence = 0.5
	}
	return ans
}

func generateComparison(parsed ParsedQuestion, materials []catalog.MaterialRecord, qctx QuestionContext) EngineeringAnswer {
	ans := baseAnswer(parsed, materials)
	ans.Confidence = 0.75

	if len(materials) < 2 {
		ans.Answer = "A comparison needs at least two identifiable materials."
		ans.Confidence = 0.5
		return ans
	}

	a, bm := &materials[0], &materials[1]
	var b strings.Builder
	fmt.Fprintf(&b, "%s vs %s:\n", materialLabel(a), materialLabel(bm))
	fmt.Fprintf(&b, "  Chemistry: %s vs %s\n", a.Physical.ChemistryType, bm.Physical.ChemistryType)
	if a.Performance.TensileStrengthPSI > 0 || bm.Performance.TensileStrengthPSI > 0 {
		fmt.Fprintf(&b, "  Tensile strength: %.0f psi vs %.0f psi\n",
			a.Performance.TensileStrengthPSI, bm.Performance.TensileStrengthPSI)
	}
	if a.Performance.ElongationPct > 0 || bm.Performance.ElongationPct > 0 {
		fmt.Fprintf(&b, "  Elongation: %.0f%% vs %.0f%%\n",
			a.Performance.ElongationPct, bm.Performance.ElongationPct)
	}
	if a.Physical.ThicknessMil > 0 || bm.Physical.ThicknessMil > 0 {
		fmt.Fprintf(&b, "  Thickness: %.0f mil vs %.0f mil\n",
			a.Physical.ThicknessMil, bm.Physical.ThicknessMil)
	}
	if a.Physical.FireClass != "" || bm.Physical.FireClass != "" {
		fmt.Fprintf(&b, "  Fire class: %s vs %s\n", a.Physical.FireClass, bm.Physical.FireClass)
	}
	ans.Explanation = strings.TrimRight(b.String(), "\n")
	ans.Answer = fmt.Sprintf("Comparison of %s and %s.", materialLabel(a), materialLabel(bm))
	return ans
}

func generateGeneral(parsed ParsedQuestion, materials []catalog.MaterialRecord, _ QuestionContext) EngineeringAnswer {
	ans := baseAnswer(parsed, materials)
	ans.Confidence = 0.5

	var b strings.Builder
	for i := range materials {
		m := &materials[i]
		fmt.Fprintf(&b, "%s by %s, %s %s.\n",
			materialLabel(m), m.Classification.Manufacturer,
			m.Physical.ChemistryType, m.Classification.Category)
	}
	ans.Explanation = strings.TrimRight(b.String(), "\n")

	if len(materials) > 0 {
		ans.Answer = fmt.Sprintf("Found %d material(s) related to the question.", len(materials))
	} else {
		ans.Answer = "The question could not be matched to catalog materials."
	}
	return ans
}
