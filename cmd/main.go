package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"crop-advisory-service/internal/advisory"
	"crop-advisory-service/internal/api"
	"crop-advisory-service/internal/config"
	"crop-advisory-service/internal/crophealth"
	"crop-advisory-service/internal/db"
	"crop-advisory-service/internal/kafka"
	"crop-advisory-service/internal/logging"
	"crop-advisory-service/internal/notify"
	"crop-advisory-service/internal/pestrisk"
	"crop-advisory-service/internal/refdata"
	"crop-advisory-service/internal/weather"
	"crop-advisory-service/pkg/sms"
	"crop-advisory-service/pkg/telegram"
	"crop-advisory-service/pkg/voice"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	// Reference data
	tables, err := refdata.Default()
	if err != nil {
		logger.Errorf("Reference data load failed: %v", err)
		log.Fatalf("Reference data load failed: %v", err)
	}

	// Connect to database
	dbConn, err := db.New(cfg.DB.DSN)
	if err != nil {
		logger.Errorf("Failed to connect to database: %v", err)
		log.Fatalf("Database connection failed: %v", err)
	}
	defer dbConn.Close()

	// Notification transports; nil transports fall back to simulated delivery
	var smsClient notify.TextSender
	var voiceClient notify.VoiceCaller
	if cfg.Twilio.AccountSID != "" && cfg.Twilio.AuthToken != "" && cfg.Twilio.FromNumber != "" {
		smsClient = sms.New(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber)
		voiceClient = voice.New(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber)
	} else {
		logger.Warnf("Twilio not configured; SMS and voice deliveries will be simulated")
	}

	var chatClient notify.ChatSender
	if cfg.Telegram.BotToken != "" {
		tg, err := telegram.New(cfg.Telegram.BotToken, cfg.Telegram.RatePerSecond)
		if err != nil {
			logger.Errorf("Telegram init failed: %v", err)
			log.Fatalf("Telegram init failed: %v", err)
		}
		chatClient = tg
	} else {
		logger.Warnf("Telegram not configured; chat deliveries will be simulated")
	}

	hub := notify.NewEventHub(logger)
	dispatcher := notify.NewDispatcher(smsClient, chatClient, voiceClient, hub, cfg.Advisory.ChannelTimeout, logger)

	// Advisory pipeline
	weatherClient := weather.NewClient(cfg.Weather.BaseURL, cfg.Weather.APIKey, cfg.Weather.Timeout, logger)
	healthEstimator := crophealth.NewEstimator(cfg.CropHealth.BaseURL, cfg.CropHealth.Timeout, logger)
	engine := pestrisk.NewEngine(tables, pestrisk.DefaultRules())

	svc := advisory.NewService(weatherClient, healthEstimator, engine, tables, dispatcher, dbConn, logger, cfg)
	var wg sync.WaitGroup
	svc.Start(&wg)

	ctx, cancel := context.WithCancel(context.Background())

	// Kafka ingestion is optional; start it only when a broker is configured
	var consumer *kafka.Consumer
	if cfg.Kafka.Broker != "" {
		consumer = kafka.NewConsumer(strings.Split(cfg.Kafka.Broker, ","), cfg.Kafka.Topic, cfg.Kafka.GroupID, svc, dbConn, logger)
		consumer.Start(ctx, &wg)
	}

	// Start API server
	handler := api.NewHandler(dbConn, svc, tables, hub, logger)
	router := api.NewRouter(handler, logger, cfg)
	go func() {
		logger.Infof("Starting API server on %s", cfg.API.Port)
		if err := router.Run(cfg.API.Port); err != nil {
			logger.Errorf("API server failed: %v", err)
		}
	}()

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	logger.Infof("Shutting down...")
	cancel()
	if consumer != nil {
		consumer.Close()
	}
	svc.Stop()
	wg.Wait()
	logger.Infof("Service stopped")
}
