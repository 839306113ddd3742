package weather

import (
	"time"

	"crop-advisory-service/internal/models"
)

// maxForecastDays caps the daily forecast horizon.
const maxForecastDays = 5

// aggregateDaily buckets sub-daily samples by calendar date in the provider's
// timezone offset and summarizes each date: min/max temperature plus the most
// frequent description and icon (ties broken by first-seen order). Dates come
// out ascending, capped at maxForecastDays.
func aggregateDaily(samples []sample, tzOffsetSeconds int) []models.ForecastDay {
	loc := time.UTC
	if tzOffsetSeconds != 0 {
		loc = time.FixedZone("provider", tzOffsetSeconds)
	}

	type bucket struct {
		day          time.Time
		tempMin      float64
		tempMax      float64
		descriptions *frequency
		icons        *frequency
	}

	var order []string
	buckets := map[string]*bucket{}

	for _, s := range samples {
		ts := time.Unix(s.Dt, 0).In(loc)
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
		key := day.Format("2006-01-02")

		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				day:          day,
				tempMin:      s.Main.Temp,
				tempMax:      s.Main.Temp,
				descriptions: newFrequency(),
				icons:        newFrequency(),
			}
			buckets[key] = b
			order = append(order, key)
		}
		if s.Main.Temp < b.tempMin {
			b.tempMin = s.Main.Temp
		}
		if s.Main.Temp > b.tempMax {
			b.tempMax = s.Main.Temp
		}
		b.descriptions.add(s.description())
		b.icons.add(s.icon())
	}

	// samples arrive in chronological order, so first-seen order is ascending
	if len(order) > maxForecastDays {
		order = order[:maxForecastDays]
	}

	days := make([]models.ForecastDay, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		days = append(days, models.ForecastDay{
			Date:        b.day,
			TempMin:     b.tempMin,
			TempMax:     b.tempMax,
			Description: b.descriptions.mode(),
			Icon:        b.icons.mode(),
		})
	}
	return days
}

// frequency counts string occurrences, preserving first-seen order for
// tie-breaking.
type frequency struct {
	counts map[string]int
	order  []string
}

func newFrequency() *frequency {
	return &frequency{counts: map[string]int{}}
}

func (f *frequency) add(s string) {
	if _, ok := f.counts[s]; !ok {
		f.order = append(f.order, s)
	}
	f.counts[s]++
}

func (f *frequency) mode() string {
	best := ""
	bestCount := 0
	for _, s := range f.order {
		if f.counts[s] > bestCount {
			best = s
			bestCount = f.counts[s]
		}
	}
	return best
}
