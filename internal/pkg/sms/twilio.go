package sms

import (
	"context"
	"errors"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var (
	// ErrTwilioCredentialsRequired is returned when the account SID or auth token is missing.
	ErrTwilioCredentialsRequired = errors.New("twilio account sid and auth token are required")
	// ErrTwilioFromRequired is returned when no sender number is configured.
	ErrTwilioFromRequired = errors.New("twilio sender number is required")
	// ErrNoRecipient is returned when Message.To is empty.
	ErrNoRecipient = errors.New("no recipient provided")
)

// Twilio is an SMS implementation backed by the Twilio REST API.
type Twilio struct {
	client *twilio.RestClient
	from   string
}

// TwilioConfig configures the Twilio implementation.
type TwilioConfig struct {
	// AccountSID is the Twilio account identifier.
	AccountSID string
	// AuthToken is the Twilio API auth token.
	AuthToken string
	// From is the sender phone number in E.164 format.
	From string
}

// NewTwilio constructs a Twilio SMS sender.
func NewTwilio(cfg TwilioConfig) (*Twilio, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" {
		return nil, ErrTwilioCredentialsRequired
	}
	if cfg.From == "" {
		return nil, ErrTwilioFromRequired
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &Twilio{client: client, from: cfg.From}, nil
}

// Send delivers a message through the Twilio API.
func (t *Twilio) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if msg.To == "" {
		return ErrNoRecipient
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(msg.To)
	params.SetFrom(t.from)
	params.SetBody(msg.Body)

	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio create message: %w", err)
	}

	return nil
}
