package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailureModes_CategoriesValid(t *testing.T) {
	for _, fm := range FailureModes() {
		assert.True(t, ValidCategory(fm.Category), "mode %s has unknown category %q", fm.ID, fm.Category)
		assert.NotEmpty(t, fm.Causes, "mode %s has no causes", fm.ID)
		assert.NotEmpty(t, fm.Prevention, "mode %s has no prevention", fm.ID)
	}
}

func TestFailureModeByID(t *testing.T) {
	fm, ok := FailureModeByID("fm-plasticizer-migration")
	require.True(t, ok)
	assert.Equal(t, CategoryChemical, fm.Category)
	assert.Contains(t, fm.AffectedChemistries, "pvc")

	_, ok = FailureModeByID("fm-does-not-exist")
	assert.False(t, ok)
}

func TestFailureModesForChemistry_IncludesUnrestricted(t *testing.T) {
	modes := FailureModesForChemistry("epdm")
	var ids []string
	for _, fm := range modes {
		ids = append(ids, fm.ID)
	}
	// chemistry-specific mode
	assert.Contains(t, ids, "fm-chemical-attack")
	// unrestricted modes apply to every chemistry
	assert.Contains(t, ids, "fm-adhesion-loss")
	// restricted to other chemistries must be excluded
	assert.NotContains(t, ids, "fm-plasticizer-migration")
}

func TestRulesForChemistry_OrderPreserved(t *testing.T) {
	rules := RulesForChemistry("epdm")
	require.NotEmpty(t, rules)
	assert.Equal(t, "asphalt", rules[0].MaterialType)
	assert.Equal(t, StatusIncompatible, rules[0].Status)
	for _, r := range rules {
		assert.Equal(t, "epdm", r.ChemistryType)
		if r.Status == StatusConditional {
			assert.NotEmpty(t, r.Requirement, "conditional rule vs %s missing requirement", r.MaterialType)
		}
	}
}

func TestMatchChemistry(t *testing.T) {
	tests := []struct {
		text     string
		wantType string
		wantOK   bool
	}{
		{"can i use epdm over asphalt", "epdm", true},
		{"vinyl roof restoration", "pvc", true},
		{"mod bit cap sheet", "modified bitumen", true},
		{"granite countertop", "", false},
	}
	for _, tt := range tests {
		p, ok := MatchChemistry(tt.text)
		assert.Equal(t, tt.wantOK, ok, tt.text)
		if ok {
			assert.Equal(t, tt.wantType, p.Type, tt.text)
		}
	}
}

func TestMatchChemistries_DedupAndOrder(t *testing.T) {
	got := MatchChemistries("epdm rubber roof over asphalt with more asphalt")
	assert.Equal(t, []string{"epdm", "asphalt"}, got)
}
