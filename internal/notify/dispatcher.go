package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"crop-advisory-service/internal/models"
)

// TextSender delivers a text body to a phone number (SMS boundary).
type TextSender interface {
	SendText(ctx context.Context, toNumber, body string) (string, error)
}

// ChatSender delivers a message to a chat ID (chat-app boundary).
type ChatSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// VoiceCaller initiates a spoken call to a phone number (voice boundary).
type VoiceCaller interface {
	Call(ctx context.Context, toNumber, spokenText string) (string, error)
}

// Dispatcher sends a composed message over the farmer's enabled channels.
// Channels are mutually independent: each attempt runs in its own goroutine
// with its own timeout, and one channel's failure or panic never blocks or
// aborts the others. A nil transport routes that channel to a simulated
// delivery, which keeps unconfigured environments deterministic.
type Dispatcher struct {
	sms     TextSender
	chat    ChatSender
	voice   VoiceCaller
	events  *EventHub
	timeout time.Duration
	logger  *logrus.Logger
}

// NewDispatcher wires the dispatcher. Any transport may be nil.
func NewDispatcher(sms TextSender, chat ChatSender, voice VoiceCaller, events *EventHub, timeout time.Duration, logger *logrus.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Dispatcher{
		sms:     sms,
		chat:    chat,
		voice:   voice,
		events:  events,
		timeout: timeout,
		logger:  logger,
	}
}

// Dispatch attempts delivery on every enabled channel and returns one attempt
// record per channel. It never returns an error; failures are observations.
func (d *Dispatcher) Dispatch(ctx context.Context, requestID string, farmer models.Farmer, message string) []models.NotificationAttempt {
	channels := farmer.Channels()
	if len(channels) == 0 {
		d.logger.Infof("Delivery %s: no channels enabled for farmer %d", requestID, farmer.ID)
		return nil
	}

	attempts := make([]models.NotificationAttempt, len(channels))
	var wg sync.WaitGroup
	for i, ch := range channels {
		wg.Add(1)
		go func(i int, ch models.Channel) {
			defer wg.Done()
			attempts[i] = d.attempt(ctx, requestID, farmer, ch, message)
		}(i, ch)
	}
	wg.Wait()

	for _, a := range attempts {
		d.logger.Infof("Delivery %s: %s via %s -> %s %s", requestID, a.Recipient, a.Channel, a.Outcome, a.Detail)
		if d.events != nil {
			d.events.Publish(farmer.ID, a)
		}
	}
	return attempts
}

func (d *Dispatcher) attempt(ctx context.Context, requestID string, farmer models.Farmer, ch models.Channel, message string) (attempt models.NotificationAttempt) {
	attempt = models.NotificationAttempt{
		RequestID: requestID,
		FarmerID:  farmer.ID,
		Channel:   ch,
		Recipient: farmer.PhoneNumber,
		CreatedAt: time.Now().UTC(),
	}
	if ch == models.ChannelTelegram {
		attempt.Recipient = fmt.Sprintf("%d", farmer.TelegramChatID)
	}

	// a panicking transport is just another failed attempt
	defer func() {
		if r := recover(); r != nil {
			attempt.Outcome = models.OutcomeFailed
			attempt.Detail = fmt.Sprintf("panic during dispatch: %v", r)
		}
	}()

	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	detail, err := d.send(sendCtx, ch, farmer, message)
	switch {
	case err == errSimulated:
		attempt.Outcome = models.OutcomeSimulated
		attempt.Detail = "no transport configured; delivery simulated"
	case err != nil:
		attempt.Outcome = models.OutcomeFailed
		attempt.Detail = err.Error()
	default:
		attempt.Outcome = models.OutcomeSent
		attempt.Detail = detail
	}
	return attempt
}

// errSimulated marks the simulate-and-log fallback; not a failure.
var errSimulated = fmt.Errorf("transport not configured")

func (d *Dispatcher) send(ctx context.Context, ch models.Channel, farmer models.Farmer, message string) (string, error) {
	switch ch {
	case models.ChannelSMS:
		if d.sms == nil {
			return "", errSimulated
		}
		return d.sms.SendText(ctx, farmer.PhoneNumber, message)
	case models.ChannelTelegram:
		if d.chat == nil {
			return "", errSimulated
		}
		if farmer.TelegramChatID == 0 {
			return "", fmt.Errorf("no telegram chat registered for farmer %d", farmer.ID)
		}
		return "", d.chat.SendMessage(ctx, farmer.TelegramChatID, message)
	case models.ChannelVoice:
		if d.voice == nil {
			return "", errSimulated
		}
		return d.voice.Call(ctx, farmer.PhoneNumber, message)
	default:
		return "", fmt.Errorf("unknown channel %q", ch)
	}
}
