package notify

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crop-advisory-service/internal/models"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type fakeSMS struct {
	err   error
	panic bool
	sent  []string
}

func (f *fakeSMS) SendText(_ context.Context, to, body string) (string, error) {
	if f.panic {
		panic("transport blew up")
	}
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, to)
	return "SM123", nil
}

type fakeChat struct {
	err  error
	sent []int64
}

func (f *fakeChat) SendMessage(_ context.Context, chatID int64, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, chatID)
	return nil
}

type fakeVoice struct {
	slow bool
}

func (f *fakeVoice) Call(ctx context.Context, to, text string) (string, error) {
	if f.slow {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(10 * time.Second):
		}
	}
	return "CA123", nil
}

func testFarmer() models.Farmer {
	return models.Farmer{
		ID:             7,
		PhoneNumber:    "+919876543210",
		TelegramChatID: 424242,
		EnableSMS:      true,
		EnableTelegram: true,
	}
}

func byChannel(attempts []models.NotificationAttempt) map[models.Channel]models.NotificationAttempt {
	out := map[models.Channel]models.NotificationAttempt{}
	for _, a := range attempts {
		out[a.Channel] = a
	}
	return out
}

func TestDispatchFailedChannelDoesNotAffectOthers(t *testing.T) {
	sms := &fakeSMS{err: fmt.Errorf("twilio: 30007 carrier violation")}
	chat := &fakeChat{}
	d := NewDispatcher(sms, chat, nil, nil, time.Second, testLogger())

	attempts := d.Dispatch(context.Background(), "req-1", testFarmer(), "hello")

	require.Len(t, attempts, 2)
	got := byChannel(attempts)
	assert.Equal(t, models.OutcomeFailed, got[models.ChannelSMS].Outcome)
	assert.Contains(t, got[models.ChannelSMS].Detail, "carrier violation")
	assert.Equal(t, models.OutcomeSent, got[models.ChannelTelegram].Outcome)
	assert.Equal(t, []int64{424242}, chat.sent)
}

func TestDispatchPanickingChannelIsIsolated(t *testing.T) {
	sms := &fakeSMS{panic: true}
	chat := &fakeChat{}
	d := NewDispatcher(sms, chat, nil, nil, time.Second, testLogger())

	attempts := d.Dispatch(context.Background(), "req-2", testFarmer(), "hello")

	require.Len(t, attempts, 2)
	got := byChannel(attempts)
	assert.Equal(t, models.OutcomeFailed, got[models.ChannelSMS].Outcome)
	assert.Contains(t, got[models.ChannelSMS].Detail, "panic during dispatch")
	assert.Equal(t, models.OutcomeSent, got[models.ChannelTelegram].Outcome)
}

func TestDispatchNilTransportsSimulate(t *testing.T) {
	d := NewDispatcher(nil, nil, nil, nil, time.Second, testLogger())
	farmer := testFarmer()
	farmer.EnableVoice = true

	attempts := d.Dispatch(context.Background(), "req-3", farmer, "hello")

	require.Len(t, attempts, 3)
	for _, a := range attempts {
		assert.Equal(t, models.OutcomeSimulated, a.Outcome)
		assert.Equal(t, "no transport configured; delivery simulated", a.Detail)
	}
}

func TestDispatchTelegramWithoutChatIDFails(t *testing.T) {
	chat := &fakeChat{}
	d := NewDispatcher(nil, chat, nil, nil, time.Second, testLogger())
	farmer := testFarmer()
	farmer.EnableSMS = false
	farmer.TelegramChatID = 0

	attempts := d.Dispatch(context.Background(), "req-4", farmer, "hello")

	require.Len(t, attempts, 1)
	assert.Equal(t, models.OutcomeFailed, attempts[0].Outcome)
	assert.Contains(t, attempts[0].Detail, "no telegram chat registered")
	assert.Empty(t, chat.sent)
}

func TestDispatchSlowChannelTimesOut(t *testing.T) {
	d := NewDispatcher(nil, nil, &fakeVoice{slow: true}, nil, 50*time.Millisecond, testLogger())
	farmer := testFarmer()
	farmer.EnableSMS = false
	farmer.EnableTelegram = false
	farmer.EnableVoice = true

	start := time.Now()
	attempts := d.Dispatch(context.Background(), "req-5", farmer, "hello")

	require.Len(t, attempts, 1)
	assert.Equal(t, models.OutcomeFailed, attempts[0].Outcome)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestDispatchNoChannelsEnabled(t *testing.T) {
	d := NewDispatcher(&fakeSMS{}, &fakeChat{}, nil, nil, time.Second, testLogger())
	farmer := testFarmer()
	farmer.EnableSMS = false
	farmer.EnableTelegram = false

	attempts := d.Dispatch(context.Background(), "req-6", farmer, "hello")

	assert.Empty(t, attempts)
}

func TestDispatchRecipientPerChannel(t *testing.T) {
	d := NewDispatcher(nil, nil, nil, nil, time.Second, testLogger())

	attempts := d.Dispatch(context.Background(), "req-7", testFarmer(), "hello")

	got := byChannel(attempts)
	assert.Equal(t, "+919876543210", got[models.ChannelSMS].Recipient)
	assert.Equal(t, "424242", got[models.ChannelTelegram].Recipient)
}
