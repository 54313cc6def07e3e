package qa

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/buildfacts/material-engine/internal/refdata"
)

// Temperature is a numeric temperature with its unit marker, F or C.
type Temperature struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// QuestionEntities holds the structured values extracted from a question.
type QuestionEntities struct {
	Materials    []string      `json:"materials,omitempty"`
	Chemistries  []string      `json:"chemistries,omitempty"`
	Temperatures []Temperature `json:"temperatures,omitempty"`
	Conditions   []string      `json:"conditions,omitempty"`
	Failures     []string      `json:"failures,omitempty"`
}

// ParsedQuestion is the result of classifying and extracting a question.
type ParsedQuestion struct {
	Original   string           `json:"original"`
	Intent     Intent           `json:"intent"`
	Keywords   []string         `json:"keywords,omitempty"`
	Entities   QuestionEntities `json:"entities"`
	Confidence float64          `json:"confidence"`
}

// temperatureRe captures an optional sign, digits, and a trailing F/C unit
// marker with or without a degree symbol.
var temperatureRe = regexp.MustCompile(`([+-]?\d+(?:\.\d+)?)\s*°?\s*([FfCc])\b`)

// materialCodeRe matches maximal runs of uppercase letters, digits, and
// hyphens. Runs shorter than three characters or without a letter are
// dropped; remaining false positives only affect relevance scoring.
var materialCodeRe = regexp.MustCompile(`[A-Z0-9-]{3,}`)

// keywordCleanRe strips everything except word characters, hyphens, and the
// degree symbol before keyword tokenization.
var keywordCleanRe = regexp.MustCompile(`[^\w\s°-]`)

// conditionKeywords are environment and exposure words mapped onto failure
// categories by the failure-prediction generator.
var conditionKeywords = []string{
	"wet", "rain", "water", "moisture", "humid", "damp", "submerged",
	"ponding", "standing water", "snow", "ice", "freeze", "frost",
	"cold", "heat", "thermal", "sun", "sunlight", "uv", "exposure",
	"wind", "uplift", "hail", "traffic", "foot traffic", "puncture",
	"chemical", "grease", "oil", "exhaust", "solvent", "acid",
}

// failureKeywords are symptom words matched against failure-mode records.
var failureKeywords = []string{
	"leak", "crack", "blister", "peel", "delaminat", "shrink", "split",
	"tear", "wrinkle", "fishmouth", "chalking", "stain", "mold", "mildew",
	"rot", "fade", "brittle", "soft", "swell", "bubble", "pond",
}

// stopWords are dropped during keyword extraction.
var stopWords = map[string]bool{
	"a": true, "about": true, "above": true, "after": true, "again": true,
	"against": true, "all": true, "also": true, "am": true, "an": true,
	"and": true, "any": true, "are": true, "as": true, "at": true,
	"be": true, "because": true, "been": true, "before": true, "being": true,
	"below": true, "between": true, "both": true, "but": true, "by": true,
	"can": true, "cannot": true, "could": true, "did": true, "do": true,
	"does": true, "doing": true, "down": true, "during": true, "each": true,
	"few": true, "for": true, "from": true, "further": true, "get": true,
	"had": true, "has": true, "have": true, "having": true, "he": true,
	"her": true, "here": true, "hers": true, "him": true, "his": true,
	"how": true, "i": true, "if": true, "in": true, "into": true,
	"is": true, "it": true, "its": true, "itself": true, "just": true,
	"let": true, "like": true, "long": true, "made": true, "make": true,
	"many": true, "may": true, "me": true, "might": true, "more": true,
	"most": true, "much": true, "must": true, "my": true, "myself": true,
	"need": true, "no": true, "nor": true, "not": true, "now": true,
	"of": true, "off": true, "on": true, "once": true, "only": true,
	"or": true, "other": true, "our": true, "ours": true, "out": true,
	"over": true, "own": true, "per": true, "same": true, "shall": true,
	"she": true, "should": true, "so": true, "some": true, "such": true,
	"than": true, "that": true, "the": true, "their": true, "theirs": true,
	"them": true, "then": true, "there": true, "these": true, "they": true,
	"this": true, "those": true, "through": true, "to": true, "too": true,
	"under": true, "until": true, "up": true, "upon": true, "us": true,
	"use": true, "used": true, "using": true, "very": true, "want": true,
	"was": true, "we": true, "well": true, "were": true, "what": true,
	"when": true, "where": true, "which": true, "while": true, "who": true,
	"whom": true, "why": true, "will": true, "with": true, "within": true,
	"without": true, "would": true, "you": true, "your": true, "yours": true,
	"yourself": true,
}

// Extractor pulls entities and keywords out of question text using static
// keyword lists and numeric patterns.
type Extractor struct{}

// NewExtractor creates an entity extractor.
func NewExtractor() *Extractor { return &Extractor{} }

// Extract pulls chemistries, temperatures, condition and failure keywords,
// and candidate material codes out of the question.
func (e *Extractor) Extract(question string) QuestionEntities {
	lower := strings.ToLower(question)

	ents := QuestionEntities{
		Chemistries: refdata.MatchChemistries(lower),
	}

	for _, m := range temperatureRe.FindAllStringSubmatch(question, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		ents.Temperatures = append(ents.Temperatures, Temperature{
			Value: v,
			Unit:  strings.ToUpper(m[2]),
		})
	}

	ents.Conditions = matchKeywordList(lower, conditionKeywords)
	ents.Failures = matchKeywordList(lower, failureKeywords)

	for _, tok := range materialCodeRe.FindAllString(question, -1) {
		if !strings.ContainsAny(tok, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
			continue
		}
		ents.Materials = append(ents.Materials, tok)
	}

	return ents
}

func matchKeywordList(lower string, list []string) []string {
	var out []string
	for _, kw := range list {
		if strings.Contains(lower, kw) {
			out = append(out, kw)
		}
	}
	return out
}

// Keywords tokenizes the question for relevance scoring: lower-cased,
// punctuation stripped, short tokens and stop-words dropped, deduplicated
// preserving first occurrence.
func (e *Extractor) Keywords(question string) []string {
	cleaned := keywordCleanRe.ReplaceAllString(strings.ToLower(question), " ")

	seen := make(map[string]bool)
	var out []string
	for _, tok := range strings.Fields(cleaned) {
		if len(tok) <= 1 || stopWords[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

// Parser combines intent classification and entity extraction.
type Parser struct {
	classifier *IntentClassifier
	extractor  *Extractor
}

// NewParser creates a parser with the built-in classifier and extractor.
func NewParser() *Parser {
	return &Parser{classifier: NewIntentClassifier(), extractor: NewExtractor()}
}

// Parse classifies the question, extracts entities and keywords, and scores
// an advisory confidence in [0, 0.95].
func (p *Parser) Parse(question string) ParsedQuestion {
	parsed := ParsedQuestion{
		Original: question,
		Intent:   p.classifier.Classify(question),
		Keywords: p.extractor.Keywords(question),
		Entities: p.extractor.Extract(question),
	}

	conf := 0.5
	if len(parsed.Entities.Chemistries) > 0 {
		conf += 0.1
	}
	if len(parsed.Entities.Materials) > 0 {
		conf += 0.1
	}
	if len(parsed.Entities.Conditions) > 0 {
		conf += 0.1
	}
	if len(parsed.Entities.Temperatures) > 0 {
		conf += 0.1
	}
	if parsed.Intent != IntentGeneral {
		conf += 0.1
	}
	if conf > 0.95 {
		conf = 0.95
	}
	parsed.Confidence = conf
	return parsed
}
