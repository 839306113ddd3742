package models

// RiskLevel is the quantized three-tier pest threat classification. Raw scores
// never leave the risk engine.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Rank orders risk levels for comparison (High > Medium > Low).
func (r RiskLevel) Rank() int {
	switch r {
	case RiskHigh:
		return 3
	case RiskMedium:
		return 2
	case RiskLow:
		return 1
	default:
		return 0
	}
}

// PestCandidate is a pest threatening a crop stage. The engine adjusts Risk
// only; the pest name is never altered.
type PestCandidate struct {
	Pest string    `json:"pest"`
	Risk RiskLevel `json:"risk"`
}

// CropHealthStatus is the vegetation-index health band.
type CropHealthStatus string

const (
	HealthHealthy  CropHealthStatus = "Healthy"
	HealthModerate CropHealthStatus = "Moderate"
	HealthStressed CropHealthStatus = "Stressed"
)

// CropHealth is a satellite-proxy crop canopy assessment. Either fully present
// or entirely absent; never partial.
type CropHealth struct {
	Status     CropHealthStatus `json:"status"`
	NDVI       float64          `json:"ndvi"`
	Message    string           `json:"message"`
	MessageKey string           `json:"message_key"`
}
