package catalog

import "strings"

// FieldWeights configures the shared relevance scorer. The catalog's generic
// search and the Q&A material selector both score through this one function
// so the two call sites cannot drift.
type FieldWeights struct {
	// KeywordMatch is added once per keyword found as a substring of the
	// record's search text.
	KeywordMatch int
	// ChemistryExact is added once if the record's chemistry type or code
	// equals any extracted chemistry, case-insensitively.
	ChemistryExact int
	// MaterialToken is added once if any candidate material token is a
	// substring of the record's search text.
	MaterialToken int
}

// DefaultWeights are the weights used by both the Q&A selector and catalog
// search.
var DefaultWeights = FieldWeights{
	KeywordMatch:   2,
	ChemistryExact: 5,
	MaterialToken:  3,
}

// Score computes the relevance of a record to a set of extracted terms.
// Keywords and materialTokens are matched as substrings of the record's
// search text; chemistries are matched exactly against the chemistry type
// and code. All inputs are expected lower-cased except materialTokens,
// which are lowered here because the extractor emits them uppercase.
func (w FieldWeights) Score(m *MaterialRecord, keywords, chemistries, materialTokens []string) int {
	text := m.SearchText()
	score := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			score += w.KeywordMatch
		}
	}
	chemType := strings.ToLower(m.Physical.ChemistryType)
	chemCode := strings.ToLower(m.Physical.ChemistryCode)
	for _, c := range chemistries {
		if c == chemType || c == chemCode {
			score += w.ChemistryExact
			break
		}
	}
	for _, tok := range materialTokens {
		if strings.Contains(text, strings.ToLower(tok)) {
			score += w.MaterialToken
			break
		}
	}
	return score
}
