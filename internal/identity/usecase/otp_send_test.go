package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/etradehq/identity/internal/identity/entity"
	"github.com/etradehq/identity/internal/pkg/goerror"
	"github.com/etradehq/identity/internal/pkg/idempotency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPSend_EmailChannel(t *testing.T) {
	f := newFixture(t)

	f.db.getUserOTP = func(context.Context, entity.Identifier) (*entity.UserOTP, error) {
		return userOTPFixture(entity.UserStatusUnverified, nil), nil
	}
	f.db.ensureOTP = func(context.Context, int64) error { return nil }

	var savedCode string
	var savedAt time.Time
	f.db.saveOTPDispatch = func(_ context.Context, _ int64, code string, sentAt time.Time) error {
		savedCode = code
		savedAt = sentAt
		return nil
	}

	err := f.uc.OTPSend(context.Background(), OTPSendInput{
		Email:   "jane@example.com",
		Purpose: entity.PurposeActivation,
	})
	require.NoError(t, err)

	require.Len(t, f.disp.calls, 1)
	assert.Equal(t, entity.ChannelEmail, f.disp.calls[0].Channel)
	assert.Equal(t, "jane@example.com", f.disp.calls[0].Destination)
	assert.Equal(t, "123456", f.disp.calls[0].Code)

	assert.Equal(t, "123456", savedCode)
	assert.Equal(t, testNow, savedAt)
}

func TestOTPSend_PhoneUsesSMSChannel(t *testing.T) {
	f := newFixture(t)

	f.db.getUserOTP = func(context.Context, entity.Identifier) (*entity.UserOTP, error) {
		return userOTPFixture(entity.UserStatusUnverified, nil), nil
	}
	f.db.ensureOTP = func(context.Context, int64) error { return nil }
	f.db.saveOTPDispatch = func(context.Context, int64, string, time.Time) error { return nil }

	err := f.uc.OTPSend(context.Background(), OTPSendInput{
		PhoneNumber: "+15550001111",
		Purpose:     entity.PurposePasswordReset,
	})
	require.NoError(t, err)

	require.Len(t, f.disp.calls, 1)
	assert.Equal(t, entity.ChannelSMS, f.disp.calls[0].Channel)
	assert.Equal(t, "+15550001111", f.disp.calls[0].Destination)
}

func TestOTPSend_CommitOnlyAfterDispatch(t *testing.T) {
	f := newFixture(t)
	f.disp.err = assert.AnError

	f.db.getUserOTP = func(context.Context, entity.Identifier) (*entity.UserOTP, error) {
		return userOTPFixture(entity.UserStatusUnverified, &entity.OTP{
			UserID: 42, Code: "999999", SentAt: sentAgo(time.Minute),
		}), nil
	}
	f.db.ensureOTP = func(context.Context, int64) error { return nil }

	saved := false
	f.db.saveOTPDispatch = func(context.Context, int64, string, time.Time) error {
		saved = true
		return nil
	}

	err := f.uc.OTPSend(context.Background(), OTPSendInput{
		Email:   "jane@example.com",
		Purpose: entity.PurposeActivation,
	})
	require.Error(t, err)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeUnavailable, gerr.Code())
	assert.Equal(t, http.StatusServiceUnavailable, gerr.StatusCode())
	assert.False(t, saved, "failed delivery must leave the stored code untouched")
}

func TestOTPSend_Cooldown(t *testing.T) {
	f := newFixture(t)
	f.idemp.execErr = idempotency.ErrAlreadyCompleted

	f.db.getUserOTP = func(context.Context, entity.Identifier) (*entity.UserOTP, error) {
		return userOTPFixture(entity.UserStatusUnverified, nil), nil
	}

	err := f.uc.OTPSend(context.Background(), OTPSendInput{
		Email:   "jane@example.com",
		Purpose: entity.PurposeActivation,
	})
	requireBusinessError(t, err, "Please wait before requesting another code", http.StatusTooManyRequests)
	assert.Empty(t, f.disp.calls)
}

func TestOTPSend_ActivationForVerifiedAccount(t *testing.T) {
	f := newFixture(t)

	f.db.getUserOTP = func(context.Context, entity.Identifier) (*entity.UserOTP, error) {
		return userOTPFixture(entity.UserStatusActive, &entity.OTP{
			UserID: 42, Code: "999999", SentAt: sentAgo(time.Minute), Verified: true,
		}), nil
	}

	err := f.uc.OTPSend(context.Background(), OTPSendInput{
		Email:   "jane@example.com",
		Purpose: entity.PurposeActivation,
	})
	requireBusinessError(t, err, "Account is already verified", http.StatusConflict)
}

func TestOTPSend_PasswordResetForVerifiedAccount(t *testing.T) {
	f := newFixture(t)

	f.db.getUserOTP = func(context.Context, entity.Identifier) (*entity.UserOTP, error) {
		return userOTPFixture(entity.UserStatusActive, &entity.OTP{
			UserID: 42, Code: "999999", SentAt: sentAgo(time.Minute), Verified: true,
		}), nil
	}
	f.db.ensureOTP = func(context.Context, int64) error { return nil }
	f.db.saveOTPDispatch = func(context.Context, int64, string, time.Time) error { return nil }

	err := f.uc.OTPSend(context.Background(), OTPSendInput{
		Email:   "jane@example.com",
		Purpose: entity.PurposePasswordReset,
	})
	require.NoError(t, err, "verified accounts may still request password-reset codes")
}

func TestOTPSend_DisabledAccount(t *testing.T) {
	f := newFixture(t)

	f.db.getUserOTP = func(context.Context, entity.Identifier) (*entity.UserOTP, error) {
		return userOTPFixture(entity.UserStatusBanned, nil), nil
	}

	err := f.uc.OTPSend(context.Background(), OTPSendInput{
		Email:   "jane@example.com",
		Purpose: entity.PurposeActivation,
	})
	requireBusinessError(t, err, "User account is disabled", http.StatusForbidden)
}

func TestOTPSend_NotRegistered(t *testing.T) {
	f := newFixture(t)

	f.db.getUserOTP = func(context.Context, entity.Identifier) (*entity.UserOTP, error) {
		return nil, goerror.ErrNotFound
	}

	err := f.uc.OTPSend(context.Background(), OTPSendInput{
		Email:   "nobody@example.com",
		Purpose: entity.PurposeActivation,
	})
	requireBusinessError(t, err, "The account is not registered", http.StatusNotFound)
}

func TestOTPSend_UnknownPurpose(t *testing.T) {
	f := newFixture(t)

	err := f.uc.OTPSend(context.Background(), OTPSendInput{
		Email:   "jane@example.com",
		Purpose: entity.PurposeUnknown,
	})
	require.Error(t, err)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.TypeValidation, gerr.Type())
}
