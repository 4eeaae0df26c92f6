// Package messaging provides a small publisher abstraction over a message
// broker.
//
// Business code depends on the Messaging interface so the broker can be
// replaced without touching publishers. The concrete implementation here is
// NATS.
package messaging
