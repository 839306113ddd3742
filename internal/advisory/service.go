package advisory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"crop-advisory-service/internal/config"
	"crop-advisory-service/internal/models"
	"crop-advisory-service/internal/refdata"
	"crop-advisory-service/internal/utils"
)

// Pipeline states, logged per request. WeatherFetched is reached even when the
// fetch itself failed; the failure travels forward as absent data.
const (
	StateReceived       = "received"
	StateWeatherFetched = "weather_fetched"
	StateRiskEvaluated  = "risk_evaluated"
	StateComposed       = "composed"
	StateDelivered      = "delivered"
)

// WeatherFetcher is the weather provider boundary.
type WeatherFetcher interface {
	Fetch(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, []models.ForecastDay)
}

// HealthEstimator is the crop-health provider boundary.
type HealthEstimator interface {
	Estimate(ctx context.Context, lat, lon float64) *models.CropHealth
}

// RiskEvaluator is the pest risk engine boundary.
type RiskEvaluator interface {
	Evaluate(crop, stage string, current *models.WeatherSnapshot, forecast []models.ForecastDay) []models.PestCandidate
}

// ChannelDispatcher sends a composed message over the farmer's enabled
// channels and reports one attempt per channel.
type ChannelDispatcher interface {
	Dispatch(ctx context.Context, requestID string, farmer models.Farmer, message string) []models.NotificationAttempt
}

// Store persists the durable side effects of the deferred delivery phase.
type Store interface {
	CreateAdvisoryLog(ctx context.Context, log models.AdvisoryLog) error
	CreateNotificationAttempt(ctx context.Context, attempt models.NotificationAttempt) error
}

// Service coordinates the advisory pipeline: synchronous compute-and-return of
// the structured bundle, deferred send-and-log of the flattened text.
type Service struct {
	weather    WeatherFetcher
	health     HealthEstimator
	engine     RiskEvaluator
	resolver   *Resolver
	composer   *Composer
	dispatcher ChannelDispatcher
	store      Store
	logger     *logrus.Logger
	config     config.Config

	tasks  chan models.DeliveryTask
	ctx    context.Context
	cancel context.CancelFunc
	wg     *sync.WaitGroup
}

// NewService wires the pipeline components together.
func NewService(
	weather WeatherFetcher,
	health HealthEstimator,
	engine RiskEvaluator,
	tables *refdata.Tables,
	dispatcher ChannelDispatcher,
	store Store,
	logger *logrus.Logger,
	cfg config.Config,
) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		weather:    weather,
		health:     health,
		engine:     engine,
		resolver:   NewResolver(tables),
		composer:   NewComposer(tables),
		dispatcher: dispatcher,
		store:      store,
		logger:     logger,
		config:     cfg,
		tasks:      make(chan models.DeliveryTask, cfg.Advisory.QueueSize),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start launches the delivery worker pool.
func (s *Service) Start(wg *sync.WaitGroup) {
	s.wg = wg
	for i := 0; i < s.config.Advisory.MaxWorkers; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}
}

// Stop cancels the worker pool.
func (s *Service) Stop() {
	s.cancel()
}

// ComputeAdvisory runs the synchronous pipeline and returns the structured
// bundle plus the flattened message. It always returns a complete, well-typed
// bundle; upstream failures become absent optional fields.
func (s *Service) ComputeAdvisory(ctx context.Context, farmer models.Farmer) (models.AdvisoryBundle, string) {
	requestID := uuid.NewString()
	s.logger.Infof("Advisory %s: %s for farmer %d (%s/%s)", requestID, StateReceived, farmer.ID, farmer.Crop, farmer.CropStage)

	// weather and crop health are independent; fetch them in parallel, both
	// degrade to absent on failure and never fail the group
	var (
		current  *models.WeatherSnapshot
		forecast []models.ForecastDay
		health   *models.CropHealth
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		current, forecast = s.weather.Fetch(gctx, farmer.Latitude, farmer.Longitude)
		return nil
	})
	g.Go(func() error {
		health = s.health.Estimate(gctx, farmer.Latitude, farmer.Longitude)
		return nil
	})
	_ = g.Wait()
	s.logger.Debugf("Advisory %s: %s (current=%v, days=%d)", requestID, StateWeatherFetched, current != nil, len(forecast))

	pests := s.engine.Evaluate(farmer.Crop, farmer.CropStage, current, forecast)
	recommendation, topPest := s.resolver.Recommend(pests)
	s.logger.Debugf("Advisory %s: %s (top=%q)", requestID, StateRiskEvaluated, topPest)

	bundle, message := s.composer.Compose(ComposeInput{
		Farmer:             farmer,
		Current:            current,
		Forecast:           forecast,
		Pests:              pests,
		Recommendation:     recommendation,
		TopPest:            topPest,
		SoilRecommendation: s.resolver.SoilAdvice(farmer.SoilType),
		Schemes:            s.resolver.Schemes(farmer.Crop),
		Health:             health,
	})
	s.logger.Infof("Advisory %s: %s for farmer %d", requestID, StateComposed, farmer.ID)

	return bundle, message
}

// QueueDelivery hands the flattened message to the delivery workers. The
// caller's request can end; the queued work runs on its own lifetime.
func (s *Service) QueueDelivery(farmer models.Farmer, message string) string {
	task := models.DeliveryTask{
		RequestID: uuid.NewString(),
		Farmer:    farmer,
		Message:   message,
		Queued:    time.Now(),
	}
	select {
	case s.tasks <- task:
		s.logger.Infof("Queued delivery: request_id=%s farmer=%d", task.RequestID, farmer.ID)
	default:
		s.logger.Errorf("Queue full, dropping delivery: request_id=%s farmer=%d", task.RequestID, farmer.ID)
	}
	return task.RequestID
}

// worker processes delivery tasks until the service is stopped.
func (s *Service) worker(id int) {
	defer s.wg.Done()
	for {
		select {
		case <-s.ctx.Done():
			s.logger.Infof("Delivery worker %d stopped", id)
			return
		case task := <-s.tasks:
			s.Deliver(task)
		}
	}
}

// Deliver performs the deferred phase: dispatch over all enabled channels,
// then log the advisory and the per-channel attempts. It runs on a fresh
// context so an abandoned caller request cannot cancel it.
func (s *Service) Deliver(task models.DeliveryTask) []models.NotificationAttempt {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	attempts := s.dispatcher.Dispatch(ctx, task.RequestID, task.Farmer, task.Message)

	// a transient store error must not lose the advisory history entry
	err := utils.Retry(s.logger, 3, time.Second, func() error {
		return s.store.CreateAdvisoryLog(ctx, models.AdvisoryLog{
			FarmerID:     task.Farmer.ID,
			Crop:         task.Farmer.Crop,
			AdvisoryText: task.Message,
			DateSent:     time.Now().UTC(),
		})
	})
	if err != nil {
		s.logger.Errorf("Advisory %s: log write failed: %v", task.RequestID, err)
	}

	for _, attempt := range attempts {
		if err := s.store.CreateNotificationAttempt(ctx, attempt); err != nil {
			s.logger.Errorf("Advisory %s: attempt record failed for %s: %v", task.RequestID, attempt.Channel, err)
		}
	}

	s.logger.Infof("Advisory %s: %s (%d attempts)", task.RequestID, StateDelivered, len(attempts))
	return attempts
}
