package pestrisk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crop-advisory-service/internal/models"
	"crop-advisory-service/internal/refdata"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	tables, err := refdata.Default()
	require.NoError(t, err)
	return NewEngine(tables, DefaultRules())
}

func TestQuantizeThresholds(t *testing.T) {
	tests := []struct {
		score int
		want  models.RiskLevel
	}{
		{0, models.RiskLow},
		{39, models.RiskLow},
		{40, models.RiskMedium},
		{69, models.RiskMedium},
		{70, models.RiskHigh},
		{100, models.RiskHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, quantize(tt.score), "score %d", tt.score)
	}
}

func TestClampBounds(t *testing.T) {
	assert.Equal(t, 0, clamp(-15))
	assert.Equal(t, 100, clamp(135))
	assert.Equal(t, 55, clamp(55))
}

func TestEvaluateMissingWeatherReturnsBaseTable(t *testing.T) {
	e := newEngine(t)

	got := e.Evaluate("wheat", "tillering", nil, nil)

	require.Equal(t, []models.PestCandidate{
		{Pest: "Aphid", Risk: models.RiskHigh},
		{Pest: "Termites", Risk: models.RiskMedium},
	}, got)
}

func TestEvaluateUnknownCropFallsBackToGenericPest(t *testing.T) {
	e := newEngine(t)
	weather := &models.WeatherSnapshot{Description: "clear sky", Temperature: 25, Humidity: 50}

	got := e.Evaluate("quinoa", "flowering", weather, nil)

	require.Len(t, got, 1)
	assert.Equal(t, refdata.GenericPest, got[0].Pest)
	assert.Equal(t, models.RiskLow, got[0].Risk)
}

func TestEvaluateRainyFloweringRiceRaisesBlastFungus(t *testing.T) {
	e := newEngine(t)
	// base Medium (40) + rain (40) + humidity>85 (20) = 100 -> High
	weather := &models.WeatherSnapshot{Description: "moderate rain", Temperature: 22, Humidity: 90}

	got := e.Evaluate("rice", "flowering", weather, nil)

	byPest := map[string]models.RiskLevel{}
	for _, c := range got {
		byPest[c.Pest] = c.Risk
	}
	assert.Equal(t, models.RiskHigh, byPest["Blast Fungus"])
}

func TestEvaluateBollFormationWhiteflyStaysHigh(t *testing.T) {
	e := newEngine(t)
	// base High (70) + stage condition (25) = 95, clamped inside [0,100] -> High
	weather := &models.WeatherSnapshot{Description: "clear sky", Temperature: 25, Humidity: 50}

	got := e.Evaluate("cotton", "boll-formation", weather, nil)

	byPest := map[string]models.RiskLevel{}
	for _, c := range got {
		byPest[c.Pest] = c.Risk
	}
	assert.Equal(t, models.RiskHigh, byPest["Whitefly"])
}

func TestEvaluateIsDeterministic(t *testing.T) {
	e := newEngine(t)
	weather := &models.WeatherSnapshot{Description: "light rain", Temperature: 27, Humidity: 88}
	forecast := []models.ForecastDay{{Description: "heavy rain"}}

	first := e.Evaluate("rice", "flowering", weather, forecast)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, e.Evaluate("rice", "flowering", weather, forecast))
	}
}

func TestEvaluateNeverAltersPestNames(t *testing.T) {
	e := newEngine(t)
	weather := &models.WeatherSnapshot{Description: "heavy rain", Temperature: 35, Humidity: 95}

	base := e.Evaluate("rice", "flowering", nil, nil)
	scored := e.Evaluate("rice", "flowering", weather, nil)

	require.Equal(t, len(base), len(scored))
	for i := range base {
		assert.Equal(t, base[i].Pest, scored[i].Pest)
	}
}

func TestAphidTemperatureRule(t *testing.T) {
	rule := AphidTemperatureRule{}
	tests := []struct {
		name string
		pest string
		temp float64
		want int
	}{
		{"comfort band", "Aphid", 20, 20},
		{"band lower edge", "Aphid", 18, 20},
		{"band upper edge", "Aphid", 25, 20},
		{"too hot", "Aphid", 31, -10},
		{"between band and heat", "Aphid", 28, 0},
		{"not an aphid", "Whitefly", 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := Context{Pest: tt.pest, Current: models.WeatherSnapshot{Temperature: tt.temp}}
			assert.Equal(t, tt.want, rule.Score(ctx))
		})
	}
}

func TestHeatLovingRule(t *testing.T) {
	rule := HeatLovingRule{}
	assert.Equal(t, 30, rule.Score(Context{Pest: "Whitefly", Current: models.WeatherSnapshot{Temperature: 29}}))
	assert.Equal(t, 0, rule.Score(Context{Pest: "Whitefly", Current: models.WeatherSnapshot{Temperature: 28}}))
	assert.Equal(t, 0, rule.Score(Context{Pest: "Stem Borer", Current: models.WeatherSnapshot{Temperature: 35}}))
}

func TestFungalWeatherRule(t *testing.T) {
	rule := FungalWeatherRule{}
	tests := []struct {
		name  string
		pest  string
		desc  string
		humid int
		want  int
	}{
		{"rain and humidity", "Blast Fungus", "moderate rain", 90, 60},
		{"rain only", "Late Blight", "light rain", 70, 40},
		{"humidity only", "Powdery Mildew", "overcast clouds", 86, 20},
		{"dry", "Sigatoka Leaf Spot", "clear sky", 40, 0},
		{"not fungal", "Stem Borer", "moderate rain", 90, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := Context{Pest: tt.pest, Current: models.WeatherSnapshot{Description: tt.desc, Humidity: tt.humid}}
			assert.Equal(t, tt.want, rule.Score(ctx))
		})
	}
}

func TestForecastLookaheadRuleOnlyChecksThreeDays(t *testing.T) {
	rule := ForecastLookaheadRule{}
	forecast := []models.ForecastDay{
		{Description: "clear sky"},
		{Description: "few clouds"},
		{Description: "scattered clouds"},
		{Description: "heavy rain"}, // day 4: out of the lookahead window
	}
	ctx := Context{Pest: "Blast Fungus", Forecast: forecast}
	assert.Equal(t, 0, rule.Score(ctx))

	ctx.Forecast[2].Description = "light rain"
	assert.Equal(t, 15, rule.Score(ctx))
}
