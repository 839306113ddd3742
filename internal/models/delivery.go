package models

import "time"

// Channel is one independent notification delivery mechanism.
type Channel string

const (
	ChannelSMS      Channel = "sms"
	ChannelTelegram Channel = "telegram"
	ChannelVoice    Channel = "voice"
)

// Attempt outcomes. A failure on one channel is an independent observation,
// never aggregated into a single pass/fail.
const (
	OutcomeSent      = "sent"
	OutcomeSimulated = "simulated"
	OutcomeFailed    = "failed"
)

// NotificationAttempt records one delivery attempt on one channel.
type NotificationAttempt struct {
	RequestID string    `json:"request_id"`
	FarmerID  int       `json:"farmer_id"`
	Channel   Channel   `json:"channel"`
	Recipient string    `json:"recipient"`
	Outcome   string    `json:"outcome"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DeliveryTask is the unit of deferred work handed from the synchronous
// advisory path to the delivery workers.
type DeliveryTask struct {
	RequestID string
	Farmer    Farmer
	Message   string
	Queued    time.Time
}
