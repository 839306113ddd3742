package kafka

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"crop-advisory-service/internal/advisory"
	"crop-advisory-service/internal/db"
)

// Consumer ingests advisory requests published by other services and feeds
// them through the same compute-and-deliver pipeline the HTTP layer uses.
type Consumer struct {
	reader *kafka.Reader
	svc    *advisory.Service
	db     *db.DB
	logger *logrus.Logger
}

func NewConsumer(brokers []string, topic, groupID string, svc *advisory.Service, db *db.DB, logger *logrus.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: groupID,
	})
	return &Consumer{reader: reader, svc: svc, db: db, logger: logger}
}

// advisoryRequest is the expected message payload.
type advisoryRequest struct {
	FarmerID int `json:"farmer_id"`
}

// Start reads messages until the context is cancelled.
func (c *Consumer) Start(ctx context.Context, wg *sync.WaitGroup) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.logger.Infof("Kafka consumer started on topic %s", c.reader.Config().Topic)
		for {
			msg, err := c.reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				c.logger.Errorf("Read message failed: %v", err)
				continue
			}

			var req advisoryRequest
			if err := json.Unmarshal(msg.Value, &req); err != nil {
				c.logger.Errorf("Unmarshal message failed: %v", err)
				continue
			}
			if req.FarmerID < 1 {
				c.logger.Errorf("Invalid message: missing farmer_id")
				continue
			}

			farmer, err := c.db.GetFarmer(ctx, req.FarmerID)
			if err != nil {
				c.logger.Errorf("Farmer %d lookup failed: %v", req.FarmerID, err)
				continue
			}

			_, message := c.svc.ComputeAdvisory(ctx, farmer)
			requestID := c.svc.QueueDelivery(farmer, message)
			c.logger.Infof("Processed advisory request for farmer %d (request_id=%s)", req.FarmerID, requestID)
		}
	}()
}

func (c *Consumer) Close() {
	if err := c.reader.Close(); err != nil {
		c.logger.Errorf("Kafka reader close failed: %v", err)
	}
}
