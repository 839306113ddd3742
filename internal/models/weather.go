package models

import "time"

// WeatherSnapshot is the most recent reading available for a location.
// Immutable once produced.
type WeatherSnapshot struct {
	Temperature float64 `json:"temp"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    int     `json:"humidity"`
}

// ForecastDay is one calendar date's summary aggregated from sub-daily samples.
type ForecastDay struct {
	Date        time.Time `json:"date"`
	TempMin     float64   `json:"temp_min"`
	TempMax     float64   `json:"temp_max"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}
