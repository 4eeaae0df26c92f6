package entity

import (
	"crypto/subtle"
	"time"
)

// OTP is the per-user one-time passcode record. There is at most one per
// principal; resending replaces Code and SentAt in place.
type OTP struct {
	UserID    int64
	Code      string
	SentAt    *time.Time
	Verified  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExpired reports whether the code can no longer be accepted at now.
//
// A record that was never dispatched (nil SentAt) is expired. The boundary is
// inclusive: at exactly SentAt+ttl the code is expired.
func (o OTP) IsExpired(now time.Time, ttl time.Duration) bool {
	if o.SentAt == nil {
		return true
	}
	return !now.Before(o.SentAt.Add(ttl))
}

// Matches reports whether the submitted code equals the stored code.
func (o OTP) Matches(code string) bool {
	if o.Code == "" || code == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(o.Code), []byte(code)) == 1
}
