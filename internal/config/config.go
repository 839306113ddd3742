package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment.
type Config struct {
	DB struct {
		DSN string
	}
	Weather struct {
		BaseURL string
		APIKey  string
		Timeout time.Duration
	}
	CropHealth struct {
		BaseURL string
		Timeout time.Duration
	}
	Twilio struct {
		AccountSID string
		AuthToken  string
		FromNumber string
	}
	Telegram struct {
		BotToken      string
		RatePerSecond int
	}
	Kafka struct {
		Broker  string
		Topic   string
		GroupID string
	}
	API struct {
		Port     string
		BasePath string
	}
	Advisory struct {
		QueueSize      int
		MaxWorkers     int
		ChannelTimeout time.Duration
	}
	Logging struct {
		Dir   string
		Level string
	}
}

// Load reads environment variables, applies defaults, and returns a Config.
func Load() (Config, error) {
	// Load .env if present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config

	cfg.DB.DSN = os.Getenv("DB_DSN")

	// Weather provider settings
	cfg.Weather.BaseURL = os.Getenv("WEATHER_BASE_URL")
	cfg.Weather.APIKey = os.Getenv("WEATHER_API_KEY")
	cfg.Weather.Timeout = durationEnv("WEATHER_TIMEOUT_SECONDS", 5*time.Second)

	// Crop health (vegetation index) provider settings
	cfg.CropHealth.BaseURL = os.Getenv("CROP_HEALTH_BASE_URL")
	cfg.CropHealth.Timeout = durationEnv("CROP_HEALTH_TIMEOUT_SECONDS", 5*time.Second)

	// Twilio settings (SMS + voice)
	cfg.Twilio.AccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
	cfg.Twilio.AuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
	cfg.Twilio.FromNumber = os.Getenv("TWILIO_FROM_NUMBER")

	// Telegram settings
	cfg.Telegram.BotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	if r, err := strconv.Atoi(os.Getenv("TELEGRAM_RATE_LIMIT")); err == nil {
		cfg.Telegram.RatePerSecond = r
	}

	// Kafka settings (optional ingestion path)
	cfg.Kafka.Broker = os.Getenv("KAFKA_BROKER")
	cfg.Kafka.Topic = os.Getenv("KAFKA_TOPIC")
	cfg.Kafka.GroupID = os.Getenv("KAFKA_GROUP_ID")

	// API settings
	cfg.API.Port = os.Getenv("API_PORT")
	cfg.API.BasePath = os.Getenv("API_BASE_PATH")

	// Delivery worker settings
	if qs, err := strconv.Atoi(os.Getenv("QUEUE_SIZE")); err == nil {
		cfg.Advisory.QueueSize = qs
	}
	if mw, err := strconv.Atoi(os.Getenv("MAX_WORKERS")); err == nil {
		cfg.Advisory.MaxWorkers = mw
	}
	cfg.Advisory.ChannelTimeout = durationEnv("CHANNEL_TIMEOUT_SECONDS", 5*time.Second)

	// Logging settings
	cfg.Logging.Dir = os.Getenv("LOG_DIR")
	cfg.Logging.Level = os.Getenv("LOG_LEVEL")

	// Validate required settings
	missing := []string{}
	if cfg.DB.DSN == "" {
		missing = append(missing, "DB_DSN")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required configurations: %v", missing)
	}

	// Apply defaults
	if cfg.Weather.BaseURL == "" {
		cfg.Weather.BaseURL = "https://api.openweathermap.org/data/2.5"
	}
	if cfg.Telegram.RatePerSecond == 0 {
		cfg.Telegram.RatePerSecond = 20
	}
	if cfg.Kafka.Topic == "" {
		cfg.Kafka.Topic = "advisory_requests"
	}
	if cfg.Kafka.GroupID == "" {
		cfg.Kafka.GroupID = "crop-advisory-service"
	}
	if cfg.API.Port == "" {
		cfg.API.Port = ":8080"
	}
	if cfg.API.BasePath == "" {
		cfg.API.BasePath = "/api/v0"
	}
	if cfg.Advisory.QueueSize == 0 {
		cfg.Advisory.QueueSize = 500
	}
	if cfg.Advisory.MaxWorkers == 0 {
		cfg.Advisory.MaxWorkers = 10
	}

	return cfg, nil
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if s, err := strconv.Atoi(os.Getenv(key)); err == nil && s > 0 {
		return time.Duration(s) * time.Second
	}
	return fallback
}
