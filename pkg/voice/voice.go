package voice

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Client initiates text-to-speech voice calls through the Twilio Calls API.
// Safe for concurrent use.
type Client struct {
	api  *twilio.RestClient
	from string
}

// New builds a voice client. Created once at startup and shared.
func New(accountSID, authToken, fromNumber string) *Client {
	return &Client{
		api: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: fromNumber,
	}
}

// Call places one call that speaks the given text and returns the call SID.
func (c *Client) Call(_ context.Context, toNumber, spokenText string) (string, error) {
	if !strings.HasPrefix(toNumber, "+") {
		return "", fmt.Errorf("invalid phone number: %s", toNumber)
	}

	var escaped strings.Builder
	if err := xml.EscapeText(&escaped, []byte(spokenText)); err != nil {
		return "", fmt.Errorf("failed to encode spoken text: %w", err)
	}

	params := &twilioApi.CreateCallParams{}
	params.SetTo(toNumber)
	params.SetFrom(c.from)
	params.SetTwiml(fmt.Sprintf("<Response><Say>%s</Say></Response>", escaped.String()))

	resp, err := c.api.Api.CreateCall(params)
	if err != nil {
		return "", fmt.Errorf("failed to place call to %s: %w", toNumber, err)
	}
	if resp.Sid == nil {
		return "", nil
	}
	return *resp.Sid, nil
}
