package pestrisk

import (
	"crop-advisory-service/internal/models"
	"crop-advisory-service/internal/refdata"
)

// Base numeric seeds per stored risk label and the requantization thresholds.
// Raw scores are transient per evaluation; only the quantized level leaves the
// engine.
const (
	seedLow    = 10
	seedMedium = 40
	seedHigh   = 70

	highThreshold   = 70
	mediumThreshold = 40
)

// Context is the immutable input every rule scores against. Rules see the
// original base context, never intermediate scores from sibling rules.
type Context struct {
	Pest     string
	Stage    string
	Current  models.WeatherSnapshot
	Forecast []models.ForecastDay
}

// Rule contributes an additive score delta for a pest in a weather context.
// Implementations must be pure functions of the context.
type Rule interface {
	Name() string
	Score(ctx Context) int
}

// Engine computes pest risk levels from the reference table and an ordered,
// extensible rule registry.
type Engine struct {
	tables *refdata.Tables
	rules  []Rule
}

// NewEngine builds an engine over the given reference tables and rules.
func NewEngine(tables *refdata.Tables, rules []Rule) *Engine {
	return &Engine{tables: tables, rules: rules}
}

// Evaluate returns the risk-adjusted pest candidates for a crop stage.
// Without current weather the base table entries are returned unmodified.
func (e *Engine) Evaluate(crop, stage string, current *models.WeatherSnapshot, forecast []models.ForecastDay) []models.PestCandidate {
	candidates := e.tables.PestsFor(crop, stage)
	if current == nil {
		return candidates
	}

	for i, cand := range candidates {
		score := seedFor(cand.Risk)
		ctx := Context{
			Pest:     cand.Pest,
			Stage:    stage,
			Current:  *current,
			Forecast: forecast,
		}
		for _, rule := range e.rules {
			score += rule.Score(ctx)
		}
		candidates[i].Risk = quantize(clamp(score))
	}
	return candidates
}

func seedFor(risk models.RiskLevel) int {
	switch risk {
	case models.RiskHigh:
		return seedHigh
	case models.RiskMedium:
		return seedMedium
	default:
		return seedLow
	}
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func quantize(score int) models.RiskLevel {
	switch {
	case score >= highThreshold:
		return models.RiskHigh
	case score >= mediumThreshold:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}
