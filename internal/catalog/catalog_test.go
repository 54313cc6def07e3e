package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchText(t *testing.T) {
	rec := MaterialRecord{
		TaxonomyCode: "07/53/23-EPDM-60",
		Classification: Classification{
			ProductName:  "SureSeal EPDM 60",
			FullName:     "SureSeal 60 mil EPDM Roofing Membrane",
			Manufacturer: "Summit Roofing Systems",
		},
		Physical: Physical{ChemistryType: "epdm", ChemistryCode: "EPDM"},
	}
	text := rec.SearchText()
	assert.Contains(t, text, "sureseal")
	assert.Contains(t, text, "summit roofing")
	assert.Contains(t, text, "epdm")
	assert.Equal(t, text, rec.SearchText(), "search text must be deterministic")
}

func TestFailureModes_SkipsUnknownRefs(t *testing.T) {
	rec := MaterialRecord{
		Engineering: Engineering{
			FailureModeRefs: []string{"fm-puncture", "fm-bogus", "fm-adhesion-loss"},
		},
	}
	modes := rec.FailureModes()
	require.Len(t, modes, 2)
	assert.Equal(t, "fm-puncture", modes[0].ID)
	assert.Equal(t, "fm-adhesion-loss", modes[1].ID)
}

func TestMemoryStore_CRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	seed := SeedRecords()
	for _, r := range seed {
		require.NoError(t, store.Put(ctx, r))
	}

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(seed))
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID, "GetAll must order by ID")
	}

	got, err := store.Get(ctx, "mat-epdm-60")
	require.NoError(t, err)
	assert.Equal(t, "SureSeal EPDM 60", got.Classification.ProductName)

	require.NoError(t, store.Delete(ctx, "mat-epdm-60"))
	_, err = store.Get(ctx, "mat-epdm-60")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "mat-epdm-60"), ErrNotFound)
}

func TestScore_Weights(t *testing.T) {
	rec := &MaterialRecord{
		Classification: Classification{
			ProductName:  "SureSeal EPDM 60",
			Manufacturer: "Summit Roofing Systems",
			ProductCode:  "SRS-E60",
		},
		Physical: Physical{ChemistryType: "epdm", ChemistryCode: "EPDM"},
	}

	// one keyword substring hit
	assert.Equal(t, 2, DefaultWeights.Score(rec, []string{"sureseal"}, nil, nil))
	// exact chemistry match
	assert.Equal(t, 5, DefaultWeights.Score(rec, nil, []string{"epdm"}, nil))
	// material token substring, tokens arrive uppercase from extraction
	assert.Equal(t, 3, DefaultWeights.Score(rec, nil, nil, []string{"EPDM"}))
	// combined
	assert.Equal(t, 10, DefaultWeights.Score(rec, []string{"sureseal"}, []string{"epdm"}, []string{"EPDM"}))
	// no hits
	assert.Equal(t, 0, DefaultWeights.Score(rec, []string{"granite"}, []string{"pvc"}, []string{"XYZ-99"}))
}

func TestSeedRecords_ReferencesResolve(t *testing.T) {
	for _, rec := range SeedRecords() {
		assert.NotEmpty(t, rec.ID)
		assert.NotEmpty(t, rec.Physical.ChemistryType, rec.ID)
		resolved := rec.FailureModes()
		assert.Len(t, resolved, len(rec.Engineering.FailureModeRefs),
			"record %s references unknown failure modes", rec.ID)
	}
}
