package advisory

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crop-advisory-service/internal/config"
	"crop-advisory-service/internal/models"
	"crop-advisory-service/internal/pestrisk"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type stubWeather struct {
	current  *models.WeatherSnapshot
	forecast []models.ForecastDay
}

func (s *stubWeather) Fetch(_ context.Context, _, _ float64) (*models.WeatherSnapshot, []models.ForecastDay) {
	return s.current, s.forecast
}

type stubHealth struct {
	health *models.CropHealth
}

func (s *stubHealth) Estimate(_ context.Context, _, _ float64) *models.CropHealth {
	return s.health
}

type stubDispatcher struct {
	mu       sync.Mutex
	attempts []models.NotificationAttempt
	calls    int
}

func (s *stubDispatcher) Dispatch(_ context.Context, requestID string, farmer models.Farmer, _ string) []models.NotificationAttempt {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	out := make([]models.NotificationAttempt, len(s.attempts))
	copy(out, s.attempts)
	for i := range out {
		out[i].RequestID = requestID
		out[i].FarmerID = farmer.ID
	}
	return out
}

type memStore struct {
	mu          sync.Mutex
	logs        []models.AdvisoryLog
	attempts    []models.NotificationAttempt
	logFailures int
	done        chan struct{}
}

func newMemStore() *memStore {
	return &memStore{done: make(chan struct{}, 16)}
}

func (m *memStore) CreateAdvisoryLog(_ context.Context, log models.AdvisoryLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.logFailures > 0 {
		m.logFailures--
		return fmt.Errorf("connection reset")
	}
	m.logs = append(m.logs, log)
	m.done <- struct{}{}
	return nil
}

func (m *memStore) CreateNotificationAttempt(_ context.Context, attempt models.NotificationAttempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts = append(m.attempts, attempt)
	return nil
}

func newTestService(t *testing.T, weather WeatherFetcher, health HealthEstimator, dispatcher ChannelDispatcher, store Store) *Service {
	t.Helper()
	tables := testTables(t)
	engine := pestrisk.NewEngine(tables, pestrisk.DefaultRules())
	cfg := config.Config{}
	cfg.Advisory.QueueSize = 8
	cfg.Advisory.MaxWorkers = 1
	return NewService(weather, health, engine, tables, dispatcher, store, testLogger(), cfg)
}

func testServiceFarmer() models.Farmer {
	return models.Farmer{
		ID: 7, Name: "Asha", PhoneNumber: "+919876543210",
		Crop: "rice", CropStage: "flowering", SoilType: "loamy", Language: "English",
		Latitude: 17.38, Longitude: 78.48,
		EnableSMS: true,
	}
}

func TestComputeAdvisoryAllUpstreamsAbsent(t *testing.T) {
	svc := newTestService(t, &stubWeather{}, &stubHealth{}, &stubDispatcher{}, newMemStore())

	bundle, message := svc.ComputeAdvisory(context.Background(), testServiceFarmer())

	assert.Nil(t, bundle.CurrentWeather)
	assert.Empty(t, bundle.Forecast)
	assert.Nil(t, bundle.CropHealth)
	assert.Equal(t, "Weather data unavailable.", bundle.DailyAdvice)

	// the rest of the bundle is still fully populated
	assert.NotEmpty(t, bundle.PestPredictions)
	assert.NotEmpty(t, bundle.Recommendation)
	assert.NotEmpty(t, bundle.SoilRecommendation)
	assert.NotEmpty(t, bundle.GovtSchemes)
	assert.NotEmpty(t, bundle.Precaution.Key)
	assert.NotEmpty(t, message)
}

func TestComputeAdvisoryWithWeatherAndHealth(t *testing.T) {
	weather := &stubWeather{
		current:  &models.WeatherSnapshot{Temperature: 27.5, Description: "light rain", Humidity: 88},
		forecast: []models.ForecastDay{{Description: "moderate rain"}},
	}
	health := &stubHealth{health: &models.CropHealth{Status: models.HealthHealthy, NDVI: 0.72, MessageKey: "crop_health_healthy"}}
	svc := newTestService(t, weather, health, &stubDispatcher{}, newMemStore())

	bundle, message := svc.ComputeAdvisory(context.Background(), testServiceFarmer())

	require.NotNil(t, bundle.CurrentWeather)
	require.NotNil(t, bundle.CropHealth)
	assert.Contains(t, bundle.CropHealth.Message, "NDVI: 0.72")
	assert.Equal(t, "precaution_rain", bundle.Precaution.Key)
	assert.Contains(t, message, "light rain")

	// rain plus high humidity lifts the fungal candidate to the top band
	byPest := map[string]models.RiskLevel{}
	for _, p := range bundle.PestPredictions {
		byPest[p.Pest] = p.Risk
	}
	assert.Equal(t, models.RiskHigh, byPest["Blast Fungus"])
}

func TestQueueDeliveryDropsWhenFull(t *testing.T) {
	svc := newTestService(t, &stubWeather{}, &stubHealth{}, &stubDispatcher{}, newMemStore())
	svc.tasks = make(chan models.DeliveryTask, 1)

	first := svc.QueueDelivery(testServiceFarmer(), "msg")
	second := svc.QueueDelivery(testServiceFarmer(), "msg")

	assert.NotEmpty(t, first)
	assert.NotEmpty(t, second)
	assert.NotEqual(t, first, second)
	assert.Len(t, svc.tasks, 1)
}

func TestDeliverPersistsLogAndAttempts(t *testing.T) {
	dispatcher := &stubDispatcher{attempts: []models.NotificationAttempt{
		{Channel: models.ChannelSMS, Outcome: models.OutcomeSent},
		{Channel: models.ChannelTelegram, Outcome: models.OutcomeFailed, Detail: "chat not found"},
	}}
	store := newMemStore()
	svc := newTestService(t, &stubWeather{}, &stubHealth{}, dispatcher, store)

	task := models.DeliveryTask{RequestID: "req-1", Farmer: testServiceFarmer(), Message: "advisory text"}
	attempts := svc.Deliver(task)

	require.Len(t, attempts, 2)
	require.Len(t, store.logs, 1)
	assert.Equal(t, 7, store.logs[0].FarmerID)
	assert.Equal(t, "advisory text", store.logs[0].AdvisoryText)
	require.Len(t, store.attempts, 2)
	assert.Equal(t, "req-1", store.attempts[0].RequestID)
}

func TestDeliverRetriesLogWrite(t *testing.T) {
	store := newMemStore()
	store.logFailures = 2
	svc := newTestService(t, &stubWeather{}, &stubHealth{}, &stubDispatcher{}, store)

	svc.Deliver(models.DeliveryTask{RequestID: "req-2", Farmer: testServiceFarmer(), Message: "advisory text"})

	require.Len(t, store.logs, 1)
}

func TestWorkerDrainsQueue(t *testing.T) {
	dispatcher := &stubDispatcher{attempts: []models.NotificationAttempt{
		{Channel: models.ChannelSMS, Outcome: models.OutcomeSimulated},
	}}
	store := newMemStore()
	svc := newTestService(t, &stubWeather{}, &stubHealth{}, dispatcher, store)

	var wg sync.WaitGroup
	svc.Start(&wg)
	defer func() {
		svc.Stop()
		wg.Wait()
	}()

	requestID := svc.QueueDelivery(testServiceFarmer(), "advisory text")
	require.NotEmpty(t, requestID)

	select {
	case <-store.done:
	case <-time.After(5 * time.Second):
		t.Fatal("delivery worker did not process the task")
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	require.Len(t, store.attempts, 1)
	assert.Equal(t, requestID, store.attempts[0].RequestID)
}
