package sms

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Client sends text messages through the Twilio Messages API. It is stateless
// configuration plus immutable credentials and safe for concurrent use.
type Client struct {
	api  *twilio.RestClient
	from string
}

// New builds an SMS client. Created once at startup and shared.
func New(accountSID, authToken, fromNumber string) *Client {
	return &Client{
		api: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: fromNumber,
	}
}

// SendText delivers one SMS and returns the provider message SID.
func (c *Client) SendText(_ context.Context, toNumber, body string) (string, error) {
	if !strings.HasPrefix(toNumber, "+") {
		return "", fmt.Errorf("invalid phone number: %s", toNumber)
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(c.from)
	params.SetBody(body)

	resp, err := c.api.Api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("failed to send SMS to %s: %w", toNumber, err)
	}
	if resp.Sid == nil {
		return "", nil
	}
	return *resp.Sid, nil
}
