// Package sms defines the contracts for sending text messages.
//
// Handlers and use cases work with the SMS interface and Message payload; the
// concrete gateway (Twilio) is implemented elsewhere in this package.
package sms
