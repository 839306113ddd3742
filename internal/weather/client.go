package weather

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

// Client fetches forecast samples from an OpenWeatherMap-compatible provider
// and normalizes them into one current reading plus daily summaries.
//
// Provider failures of any kind degrade to absent data; the pipeline caller
// never sees an error.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *logrus.Logger
}

// NewClient builds a weather client with a bounded request timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *logrus.Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// forecastResponse mirrors the provider's 3-hourly forecast payload.
type forecastResponse struct {
	City struct {
		Timezone int `json:"timezone"` // offset from UTC in seconds
	} `json:"city"`
	List []sample `json:"list"`
}

type sample struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

func (s sample) description() string {
	if len(s.Weather) == 0 {
		return ""
	}
	return s.Weather[0].Description
}

func (s sample) icon() string {
	if len(s.Weather) == 0 {
		return ""
	}
	return s.Weather[0].Icon
}

// Fetch returns the current weather snapshot and the daily forecast for a
// location. On any provider error it returns (nil, nil) and logs the cause.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, []models.ForecastDay) {
	raw, err := c.fetchForecast(ctx, lat, lon)
	if err != nil {
		c.logger.Errorf("Weather fetch failed for (%.4f, %.4f): %v", lat, lon, err)
		return nil, nil
	}
	if len(raw.List) == 0 {
		c.logger.Warnf("Weather provider returned no samples for (%.4f, %.4f)", lat, lon)
		return nil, nil
	}

	// current reading is the nearest sample in time, not an aggregate
	first := raw.List[0]
	current := &models.WeatherSnapshot{
		Temperature: first.Main.Temp,
		Description: first.description(),
		Icon:        first.icon(),
		Humidity:    first.Main.Humidity,
	}

	return current, aggregateDaily(raw.List, raw.City.Timezone)
}

func (c *Client) fetchForecast(ctx context.Context, lat, lon float64) (*forecastResponse, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/forecast?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build forecast request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast provider returned status %d", resp.StatusCode)
	}

	var payload forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode forecast payload: %w", err)
	}
	return &payload, nil
}
