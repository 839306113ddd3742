package telegram

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"golang.org/x/time/rate"
)

// Client sends chat messages through a shared Telegram bot, throttled by a
// global rate limiter. Safe for concurrent use.
type Client struct {
	bot     *bot.Bot
	limiter *rate.Limiter
}

// New initializes the bot once for the process lifetime.
func New(botToken string, ratePerSecond int) (*Client, error) {
	b, err := bot.New(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Telegram bot: %w", err)
	}
	if ratePerSecond <= 0 {
		ratePerSecond = 20
	}
	return &Client{
		bot:     b,
		limiter: rate.NewLimiter(rate.Limit(float64(ratePerSecond)), ratePerSecond),
	}, nil
}

// SendMessage delivers one chat message to a chat ID.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("telegram rate limit exceeded: %w", err)
	}
	if _, err := c.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}); err != nil {
		return fmt.Errorf("failed to send Telegram message to chat_id %d: %w", chatID, err)
	}
	return nil
}
