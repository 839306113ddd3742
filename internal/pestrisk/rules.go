package pestrisk

import "strings"

// DefaultRules returns the standard rule registry in evaluation order.
// All deltas are additive and independent, so adding or reordering rules is
// safe without touching existing ones.
func DefaultRules() []Rule {
	return []Rule{
		FungalWeatherRule{},
		HeatLovingRule{},
		AphidTemperatureRule{},
		StageConditionRule{},
		ForecastLookaheadRule{},
	}
}

// fungal name fragments cover blights, mildews, and leaf-spot diseases
var fungalFragments = []string{"fungus", "blight", "mildew", "blotch", "leaf spot"}

func isFungal(pest string) bool {
	name := strings.ToLower(pest)
	for _, frag := range fungalFragments {
		if strings.Contains(name, frag) {
			return true
		}
	}
	return false
}

func mentionsRain(description string) bool {
	return strings.Contains(strings.ToLower(description), "rain")
}

// FungalWeatherRule raises fungal and blight organisms under wet conditions:
// +40 when the current description mentions rain, +20 when humidity exceeds 85%.
type FungalWeatherRule struct{}

func (FungalWeatherRule) Name() string { return "fungal-weather" }

func (FungalWeatherRule) Score(ctx Context) int {
	if !isFungal(ctx.Pest) {
		return 0
	}
	delta := 0
	if mentionsRain(ctx.Current.Description) {
		delta += 40
	}
	if ctx.Current.Humidity > 85 {
		delta += 20
	}
	return delta
}

var heatLovingPests = map[string]bool{
	"Whitefly":     true,
	"Jassids":      true,
	"Thrips":       true,
	"Mango Hopper": true,
}

// HeatLovingRule adds +30 for heat-favoring species above 28°C.
type HeatLovingRule struct{}

func (HeatLovingRule) Name() string { return "heat-loving" }

func (HeatLovingRule) Score(ctx Context) int {
	if heatLovingPests[ctx.Pest] && ctx.Current.Temperature > 28 {
		return 30
	}
	return 0
}

// AphidTemperatureRule models aphid activity: +20 in the 18–25°C comfort band,
// −10 above 30°C.
type AphidTemperatureRule struct{}

func (AphidTemperatureRule) Name() string { return "aphid-temperature" }

func (AphidTemperatureRule) Score(ctx Context) int {
	if ctx.Pest != "Aphid" {
		return 0
	}
	t := ctx.Current.Temperature
	switch {
	case t >= 18 && t <= 25:
		return 20
	case t > 30:
		return -10
	default:
		return 0
	}
}

// StageConditionRule adds +25 for whitefly during cotton boll formation when
// humidity stays low.
type StageConditionRule struct{}

func (StageConditionRule) Name() string { return "stage-condition" }

func (StageConditionRule) Score(ctx Context) int {
	if ctx.Pest == "Whitefly" && strings.EqualFold(ctx.Stage, "boll-formation") && ctx.Current.Humidity < 60 {
		return 25
	}
	return 0
}

// ForecastLookaheadRule adds +15 for fungal pests when rain shows up in any of
// the next three forecast days.
type ForecastLookaheadRule struct{}

func (ForecastLookaheadRule) Name() string { return "forecast-lookahead" }

func (ForecastLookaheadRule) Score(ctx Context) int {
	if !isFungal(ctx.Pest) {
		return 0
	}
	days := ctx.Forecast
	if len(days) > 3 {
		days = days[:3]
	}
	for _, day := range days {
		if mentionsRain(day.Description) {
			return 15
		}
	}
	return 0
}
