package models

import "time"

// GovtScheme is a government support scheme applicable to a crop.
type GovtScheme struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// Precaution carries a translation key plus substitution context so rich
// clients can render it in their own locale.
type Precaution struct {
	Key     string            `json:"key"`
	Context map[string]string `json:"context"`
}

// WaterInfo summarizes seasonal water availability and requirement for a crop.
type WaterInfo struct {
	Availability   string `json:"availability"`
	Requirement    string `json:"requirement"`
	Recommendation string `json:"recommendation"`
}

// AdvisoryBundle is the complete structured advisory for one farmer request.
// Created fresh per request; only its flattened text form is logged.
type AdvisoryBundle struct {
	DailyAdvice        string           `json:"daily_advice"`
	CurrentWeather     *WeatherSnapshot `json:"current_weather"`
	Forecast           []ForecastDay    `json:"forecast"`
	PestPredictions    []PestCandidate  `json:"pest_predictions"`
	Recommendation     string           `json:"recommendation"`
	Precaution         Precaution       `json:"precaution"`
	GovtSchemes        []GovtScheme     `json:"govt_schemes"`
	SoilRecommendation string           `json:"soil_recommendation,omitempty"`
	WaterInfo          *WaterInfo       `json:"water_info"`
	CropHealth         *CropHealth      `json:"crop_health,omitempty"`
}

// AdvisoryLog is one delivered advisory as persisted for history queries.
type AdvisoryLog struct {
	ID           int       `json:"id"`
	FarmerID     int       `json:"farmer_id"`
	Crop         string    `json:"crop"`
	AdvisoryText string    `json:"advisory_text"`
	DateSent     time.Time `json:"date_sent"`
}

// PricePoint is one day's market price for a crop.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// MarketPrice is the static price history exposed per crop.
type MarketPrice struct {
	Unit    string       `json:"unit"`
	History []PricePoint `json:"history"`
}
