package qa

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/buildfacts/material-engine/internal/cache"
	"github.com/buildfacts/material-engine/internal/catalog"
	"github.com/buildfacts/material-engine/internal/observability"
	"github.com/buildfacts/material-engine/internal/refdata"
)

// EngineConfig tunes the answer pipeline.
type EngineConfig struct {
	// MaxSubjectMaterials caps how many materials relevance scoring keeps.
	MaxSubjectMaterials int
	// ConfidenceCap bounds every reported probability and confidence.
	ConfidenceCap float64
	// CacheAnswers enables caching of full answers keyed on the
	// normalized question plus context.
	CacheAnswers bool
	CacheTTL     time.Duration
}

// DefaultEngineConfig returns the standard pipeline settings.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		MaxSubjectMaterials: 5,
		ConfidenceCap:       0.95,
		CacheAnswers:        true,
		CacheTTL:            10 * time.Minute,
	}
}

// Engine answers engineering questions over a material store. One Answer
// call reads an immutable snapshot of the catalog and the static reference
// tables; nothing is mutated, so concurrent calls need no locking.
type Engine struct {
	store      catalog.Store
	cache      cache.Client
	logger     *observability.Logger
	parser     *Parser
	generators map[Intent]generatorFunc
	config     EngineConfig
}

// NewEngine creates an engine. The cache client may be nil, in which case
// answers are recomputed on every call.
func NewEngine(store catalog.Store, cacheClient cache.Client, logger *observability.Logger, cfg EngineConfig) *Engine {
	if cfg.MaxSubjectMaterials <= 0 {
		cfg.MaxSubjectMaterials = 5
	}
	if cfg.ConfidenceCap <= 0 || cfg.ConfidenceCap > 1 {
		cfg.ConfidenceCap = 0.95
	}
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &Engine{
		store:      store,
		cache:      cacheClient,
		logger:     logger.WithComponent("qa"),
		parser:     NewParser(),
		generators: generatorTable(),
		config:     cfg,
	}
}

// Parse classifies and extracts a question without answering it.
func (e *Engine) Parse(question string) ParsedQuestion {
	return e.parser.Parse(question)
}

// Answer runs the full pipeline: parse, select subject materials, and
// dispatch to the intent's generator. A nil context pointer means no hints.
func (e *Engine) Answer(ctx context.Context, question string, qctx *QuestionContext) (EngineeringAnswer, error) {
	start := time.Now()
	if qctx == nil {
		qctx = &QuestionContext{}
	}

	cacheKey := e.answerCacheKey(question, qctx)
	if e.cacheEnabled() {
		if raw, err := e.cache.Get(ctx, cacheKey); err == nil {
			var cached EngineeringAnswer
			if err := json.Unmarshal(raw, &cached); err == nil {
				e.logger.WithOperation("answer").Debug().
					Str("cache", "hit").
					Msg("Answer served from cache")
				return cached, nil
			}
		}
	}

	parsed := e.parser.Parse(question)

	all, err := e.store.GetAll(ctx)
	if err != nil {
		return EngineeringAnswer{}, fmt.Errorf("load materials: %w", err)
	}
	materials := SelectMaterials(parsed, all, qctx.MaterialIDs, e.config.MaxSubjectMaterials)

	generate, ok := e.generators[parsed.Intent]
	if !ok {
		generate = generateGeneral
	}
	answer := generate(parsed, materials, *qctx)
	if answer.Confidence > e.config.ConfidenceCap {
		answer.Confidence = e.config.ConfidenceCap
	}

	if e.cacheEnabled() {
		if raw, err := json.Marshal(answer); err == nil {
			_ = e.cache.Set(ctx, cacheKey, raw, e.config.CacheTTL)
		}
	}

	e.logger.WithOperation("answer").Info().
		Str("intent", string(answer.Intent)).
		Int("materials", len(materials)).
		Float64("confidence", answer.Confidence).
		Dur("elapsed", time.Since(start)).
		Msg("Question answered")
	return answer, nil
}

// Conditions are the environment inputs to failure prediction.
type Conditions struct {
	TemperatureF *float64 `json:"temperatureF,omitempty"`
	Moisture     string   `json:"moisture,omitempty"`
	UVExposure   string   `json:"uvExposure,omitempty"`
}

// PredictFailures scores every failure mode of a single material under the
// given conditions. An unknown material ID yields an empty list, not an
// error. Probabilities are capped and the list is sorted descending.
func (e *Engine) PredictFailures(ctx context.Context, materialID string, cond *Conditions) ([]FailurePrediction, error) {
	m, err := e.store.Get(ctx, materialID)
	if err != nil {
		if err == catalog.ErrNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("load material %s: %w", materialID, err)
	}
	if cond == nil {
		cond = &Conditions{}
	}

	outsideService := false
	if cond.TemperatureF != nil {
		t := *cond.TemperatureF
		if m.Performance.ServiceTempMinF != nil && t < *m.Performance.ServiceTempMinF {
			outsideService = true
		}
		if m.Performance.ServiceTempMaxF != nil && t > *m.Performance.ServiceTempMaxF {
			outsideService = true
		}
	}
	wet := cond.Moisture == "wet" || cond.Moisture == "submerged"
	fullUV := cond.UVExposure == "full"

	var predictions []FailurePrediction
	for _, fm := range m.FailureModes() {
		p := 0.3
		factors := []string{"baseline risk"}
		if outsideService {
			p += 0.2
			factors = append(factors, "temperature outside service range")
		}
		if wet && fm.Category == refdata.CategoryMoisture {
			p += 0.3
			factors = append(factors, "wet or submerged exposure")
		}
		if fullUV && fm.Category == refdata.CategoryUV {
			p += 0.2
			factors = append(factors, "full UV exposure")
		}
		if p > e.config.ConfidenceCap {
			p = e.config.ConfidenceCap
		}
		predictions = append(predictions, FailurePrediction{
			Mode:        fm,
			Probability: p,
			Factors:     factors,
		})
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Probability > predictions[j].Probability
	})

	e.logger.WithOperation("predict_failures").Debug().
		Str("material_id", materialID).
		Int("predictions", len(predictions)).
		Msg("Failure prediction complete")
	return predictions, nil
}

// CheckCompatibility resolves both materials and reports their pairwise
// status. Missing IDs produce a result with status "unknown" rather than an
// error.
func (e *Engine) CheckCompatibility(ctx context.Context, id1, id2 string) (CompatibilityResult, error) {
	result := CompatibilityResult{MaterialID1: id1, MaterialID2: id2}

	m1, err1 := e.store.Get(ctx, id1)
	if err1 != nil && err1 != catalog.ErrNotFound {
		return result, fmt.Errorf("load material %s: %w", id1, err1)
	}
	m2, err2 := e.store.Get(ctx, id2)
	if err2 != nil && err2 != catalog.ErrNotFound {
		return result, fmt.Errorf("load material %s: %w", id2, err2)
	}
	if err1 == catalog.ErrNotFound {
		result.NotFound = append(result.NotFound, id1)
	}
	if err2 == catalog.ErrNotFound {
		result.NotFound = append(result.NotFound, id2)
	}
	if len(result.NotFound) > 0 {
		result.Status = "unknown"
		result.Summary = fmt.Sprintf("Material(s) not found: %s", strings.Join(result.NotFound, ", "))
		return result, nil
	}

	issues := pairIssues(&m1, &m2)
	issues = append(issues, pairIssues(&m2, &m1)...)
	result.Issues = issues

	status := refdata.StatusCompatible
	for _, is := range issues {
		if is.Status == refdata.StatusIncompatible {
			status = refdata.StatusIncompatible
			break
		}
		status = refdata.StatusConditional
	}
	result.Status = string(status)
	result.Compatible = status == refdata.StatusCompatible

	switch status {
	case refdata.StatusIncompatible:
		result.Summary = fmt.Sprintf("%s and %s are incompatible: %s",
			materialLabel(&m1), materialLabel(&m2), issues[0].Reason)
	case refdata.StatusConditional:
		result.Summary = fmt.Sprintf("%s and %s are conditionally compatible; review the requirements",
			materialLabel(&m1), materialLabel(&m2))
	default:
		result.Summary = fmt.Sprintf("No conflicts on record between %s and %s",
			materialLabel(&m1), materialLabel(&m2))
	}

	e.logger.WithOperation("check_compatibility").Debug().
		Str("material_id1", id1).
		Str("material_id2", id2).
		Str("status", result.Status).
		Msg("Compatibility check complete")
	return result, nil
}

// pairIssues finds issues the subject material has with the other's
// chemistry, checking the subject's own matrix first and then the global
// rule table for labels the matrix did not cover.
func pairIssues(subject, other *catalog.MaterialRecord) []CompatibilityIssue {
	otherChem := strings.ToLower(other.Physical.ChemistryType)
	if otherChem == "" || otherChem == strings.ToLower(subject.Physical.ChemistryType) {
		return nil
	}
	covered := make(map[string]bool)
	issues := matrixIssues(subject, otherChem)
	for _, is := range issues {
		covered[strings.ToLower(is.OtherType)] = true
	}
	return append(issues, globalIssues(subject, otherChem, covered)...)
}

func (e *Engine) cacheEnabled() bool {
	return e.cache != nil && e.config.CacheAnswers
}

// answerCacheKey folds every context field into the key so two calls with
// different hints never share a cached answer.
func (e *Engine) answerCacheKey(question string, qctx *QuestionContext) string {
	parts := make([]string, 0, len(qctx.MaterialIDs)+4)
	parts = append(parts, qctx.MaterialIDs...)
	if qctx.TemperatureF != nil {
		parts = append(parts, fmt.Sprintf("t%.1f", *qctx.TemperatureF))
	}
	if qctx.HumidityPct != nil {
		parts = append(parts, fmt.Sprintf("h%.1f", *qctx.HumidityPct))
	}
	if qctx.Moisture != "" {
		parts = append(parts, "m:"+qctx.Moisture)
	}
	if qctx.UVExposure != "" {
		parts = append(parts, "uv:"+qctx.UVExposure)
	}
	return cache.AnswerKey(question, parts...)
}
