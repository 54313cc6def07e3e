package qa

import (
	"sort"
	"strings"

	"github.com/buildfacts/material-engine/internal/catalog"
)

// SelectMaterials picks the materials a question is about. Explicit IDs
// short-circuit scoring: they are resolved in order and missing IDs are
// silently skipped. Otherwise every candidate is scored against the
// extracted keywords and entities, zero scores are dropped, and the top
// maxSubjects survive. The sort is stable so ties keep catalog order and
// repeated calls return the same list.
func SelectMaterials(parsed ParsedQuestion, all []catalog.MaterialRecord, explicitIDs []string, maxSubjects int) []catalog.MaterialRecord {
	if maxSubjects <= 0 {
		maxSubjects = 5
	}

	if len(explicitIDs) > 0 {
		byID := make(map[string]catalog.MaterialRecord, len(all))
		for _, m := range all {
			byID[m.ID] = m
		}
		var out []catalog.MaterialRecord
		for _, id := range explicitIDs {
			if m, ok := byID[id]; ok {
				out = append(out, m)
			}
		}
		return out
	}

	chemistries := make([]string, len(parsed.Entities.Chemistries))
	for i, c := range parsed.Entities.Chemistries {
		chemistries[i] = strings.ToLower(c)
	}

	type scored struct {
		rec   catalog.MaterialRecord
		score int
	}
	candidates := make([]scored, 0, len(all))
	for _, m := range all {
		m := m
		s := catalog.DefaultWeights.Score(&m, parsed.Keywords, chemistries, parsed.Entities.Materials)
		if s > 0 {
			candidates = append(candidates, scored{rec: m, score: s})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > maxSubjects {
		candidates = candidates[:maxSubjects]
	}
	out := make([]catalog.MaterialRecord, len(candidates))
	for i, c := range candidates {
		out[i] = c.rec
	}
	return out
}
