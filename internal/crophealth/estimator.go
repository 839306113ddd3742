package crophealth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"crop-advisory-service/internal/models"
)

// Vegetation index bands.
const (
	healthyThreshold  = 0.65
	moderateThreshold = 0.40
)

// Estimator fetches a vegetation index for a location from a remote-sensing
// processor service and classifies it into a health band.
type Estimator struct {
	baseURL string
	http    *http.Client
	logger  *logrus.Logger
}

// NewEstimator builds an estimator. An empty baseURL means the collaborator is
// not deployed; every estimate is then absent.
func NewEstimator(baseURL string, timeout time.Duration, logger *logrus.Logger) *Estimator {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Estimator{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type ndviResponse struct {
	NDVI float64 `json:"ndvi"`
}

// Estimate returns the crop health for a location, or nil when the index
// service is unconfigured, unreachable, or returns an unusable payload.
// A CropHealth is always fully populated or entirely absent.
func (e *Estimator) Estimate(ctx context.Context, lat, lon float64) *models.CropHealth {
	if e.baseURL == "" {
		return nil
	}

	ndvi, err := e.fetchIndex(ctx, lat, lon)
	if err != nil {
		e.logger.Errorf("Vegetation index fetch failed for (%.4f, %.4f): %v", lat, lon, err)
		return nil
	}
	return Classify(ndvi)
}

// Classify bands a vegetation index value into a CropHealth.
func Classify(ndvi float64) *models.CropHealth {
	h := &models.CropHealth{NDVI: ndvi}
	switch {
	case ndvi > healthyThreshold:
		h.Status = models.HealthHealthy
		h.MessageKey = "crop_health_healthy"
	case ndvi > moderateThreshold:
		h.Status = models.HealthModerate
		h.MessageKey = "crop_health_moderate"
	default:
		h.Status = models.HealthStressed
		h.MessageKey = "crop_health_stressed"
	}
	return h
}

func (e *Estimator) fetchIndex(ctx context.Context, lat, lon float64) (float64, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"/ndvi?"+q.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("build index request: %w", err)
	}

	resp, err := e.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("index request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("index service returned status %d", resp.StatusCode)
	}

	var payload ndviResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decode index payload: %w", err)
	}
	return payload.NDVI, nil
}
