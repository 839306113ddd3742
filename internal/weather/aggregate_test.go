package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkSample(dt int64, temp float64, humidity int, desc, icon string) sample {
	s := sample{Dt: dt}
	s.Main.Temp = temp
	s.Main.Humidity = humidity
	s.Weather = []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	}{{Description: desc, Icon: icon}}
	return s
}

func TestAggregateDailyBucketsAndBounds(t *testing.T) {
	day1 := time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC).Unix()
	day2 := time.Date(2024, 9, 16, 0, 0, 0, 0, time.UTC).Unix()

	samples := []sample{
		mkSample(day1+0*3600, 24.5, 70, "clear sky", "01d"),
		mkSample(day1+3*3600, 22.1, 75, "clear sky", "01d"),
		mkSample(day1+6*3600, 28.9, 60, "few clouds", "02d"),
		mkSample(day1+9*3600, 31.2, 55, "clear sky", "01d"),
		mkSample(day2+0*3600, 21.0, 80, "light rain", "10d"),
		mkSample(day2+3*3600, 19.4, 85, "light rain", "10d"),
		mkSample(day2+6*3600, 23.3, 78, "moderate rain", "10d"),
		mkSample(day2+9*3600, 25.7, 72, "light rain", "10d"),
	}

	days := aggregateDaily(samples, 0)

	require.Len(t, days, 2)

	assert.Equal(t, "2024-09-15", days[0].Date.Format("2006-01-02"))
	assert.Equal(t, 22.1, days[0].TempMin)
	assert.Equal(t, 31.2, days[0].TempMax)
	assert.Equal(t, "clear sky", days[0].Description)
	assert.Equal(t, "01d", days[0].Icon)

	assert.Equal(t, "2024-09-16", days[1].Date.Format("2006-01-02"))
	assert.Equal(t, 19.4, days[1].TempMin)
	assert.Equal(t, 25.7, days[1].TempMax)
	assert.Equal(t, "light rain", days[1].Description)
}

func TestAggregateDailyModalTieBreaksFirstSeen(t *testing.T) {
	day := time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC).Unix()
	samples := []sample{
		mkSample(day+0*3600, 20, 70, "clear sky", "01d"),
		mkSample(day+3*3600, 21, 70, "light rain", "10d"),
		mkSample(day+6*3600, 22, 70, "clear sky", "01d"),
		mkSample(day+9*3600, 23, 70, "light rain", "10d"),
	}

	days := aggregateDaily(samples, 0)

	require.Len(t, days, 1)
	assert.Equal(t, "clear sky", days[0].Description)
}

func TestAggregateDailyUsesProviderTimezone(t *testing.T) {
	// 20:00 UTC on the 15th is 01:30 on the 16th at UTC+5:30
	dt := time.Date(2024, 9, 15, 20, 0, 0, 0, time.UTC).Unix()
	samples := []sample{mkSample(dt, 25, 60, "clear sky", "01n")}

	utcDays := aggregateDaily(samples, 0)
	istDays := aggregateDaily(samples, 19800)

	require.Len(t, utcDays, 1)
	require.Len(t, istDays, 1)
	assert.Equal(t, "2024-09-15", utcDays[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-09-16", istDays[0].Date.Format("2006-01-02"))
}

func TestAggregateDailyCapsAtFiveDays(t *testing.T) {
	var samples []sample
	start := time.Date(2024, 9, 15, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		dt := start.AddDate(0, 0, i).Unix()
		samples = append(samples, mkSample(dt, 20+float64(i), 60, "clear sky", "01d"))
	}

	days := aggregateDaily(samples, 0)

	require.Len(t, days, maxForecastDays)
	for i := 1; i < len(days); i++ {
		assert.True(t, days[i].Date.After(days[i-1].Date), "dates must ascend")
	}
	assert.Equal(t, "2024-09-15", days[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-09-19", days[4].Date.Format("2006-01-02"))
}

func TestFrequencyModeEmpty(t *testing.T) {
	assert.Equal(t, "", newFrequency().mode())
}
