package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOTPIsExpired(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	ttl := 6 * time.Minute
	sentAt := now.Add(-3 * time.Minute)

	tests := []struct {
		name string
		otp  OTP
		want bool
	}{
		{
			name: "never dispatched",
			otp:  OTP{Code: "123456"},
			want: true,
		},
		{
			name: "within window",
			otp:  OTP{Code: "123456", SentAt: &sentAt},
			want: false,
		},
		{
			name: "exactly at boundary",
			otp: OTP{Code: "123456", SentAt: func() *time.Time {
				ts := now.Add(-ttl)
				return &ts
			}()},
			want: true,
		},
		{
			name: "past boundary",
			otp: OTP{Code: "123456", SentAt: func() *time.Time {
				ts := now.Add(-ttl - time.Second)
				return &ts
			}()},
			want: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.otp.IsExpired(now, ttl))
		})
	}
}

func TestOTPMatches(t *testing.T) {
	otp := OTP{Code: "123456"}

	assert.True(t, otp.Matches("123456"))
	assert.False(t, otp.Matches("654321"))
	assert.False(t, otp.Matches(""))
	assert.False(t, OTP{}.Matches("123456"))
}
