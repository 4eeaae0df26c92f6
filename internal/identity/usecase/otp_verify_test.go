package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/etradehq/identity/internal/identity/entity"
	"github.com/etradehq/identity/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const activationRejection = "Your security code is wrong, expired or this account is already verified"

func TestOTPVerify_ActivationSuccess(t *testing.T) {
	f := newFixture(t)

	f.db.getUserOTP = func(context.Context, entity.Identifier) (*entity.UserOTP, error) {
		return userOTPFixture(entity.UserStatusUnverified, &entity.OTP{
			UserID: 42, Code: "123456", SentAt: sentAgo(time.Minute),
		}), nil
	}
	f.db.activateUser = func(_ context.Context, userID int64, code string) (bool, error) {
		assert.Equal(t, int64(42), userID)
		assert.Equal(t, "123456", code)
		return true, nil
	}

	err := f.uc.OTPVerify(context.Background(), OTPVerifyInput{
		Email:   "jane@example.com",
		Code:    "123456",
		Purpose: entity.PurposeActivation,
	})
	require.NoError(t, err)

	require.Len(t, f.msg.activations, 1)
	assert.Equal(t, int64(42), f.msg.activations[0].UserID)
}

func TestOTPVerify_ActivationWrongCode(t *testing.T) {
	f := newFixture(t)

	f.db.getUserOTP = func(context.Context, entity.Identifier) (*entity.UserOTP, error) {
		return userOTPFixture(entity.UserStatusUnverified, &entity.OTP{
			UserID: 42, Code: "123456", SentAt: sentAgo(time.Minute),
		}), nil
	}

	err := f.uc.OTPVerify(context.Background(), OTPVerifyInput{
		Email:   "jane@example.com",
		Code:    "000000",
		Purpose: entity.PurposeActivation,
	})
	requireBusinessError(t, err, activationRejection, http.StatusUnauthorized)
}

func TestOTPVerify_ActivationExpiredCode(t *testing.T) {
	f := newFixture(t)

	f.db.getUserOTP = func(context.Context, entity.Identifier) (*entity.UserOTP, error) {
		return userOTPFixture(entity.UserStatusUnverified, &entity.OTP{
			UserID: 42, Code: "123456", SentAt: sentAgo(6 * time.Minute),
		}), nil
	}

	err := f.uc.OTPVerify(context.Background(), OTPVerifyInput{
		Email:   "jane@example.com",
		Code:    "123456",
		Purpose: entity.PurposeActivation,
	})
	requireBusinessError(t, err, activationRejection, http.StatusUnauthorized)
}

func TestOTPVerify_ActivationAlreadyVerified(t *testing.T) {
	f := newFixture(t)

	f.db.getUserOTP = func(context.Context, entity.Identifier) (*entity.UserOTP, error) {
		return userOTPFixture(entity.UserStatusActive, &entity.OTP{
			UserID: 42, Code: "123456", SentAt: sentAgo(time.Minute), Verified: true,
		}), nil
	}

	err := f.uc.OTPVerify(context.Background(), OTPVerifyInput{
		Email:   "jane@example.com",
		Code:    "123456",
		Purpose: entity.PurposeActivation,
	})
	requireBusinessError(t, err, activationRejection, http.StatusUnauthorized)
}

func TestOTPVerify_ActivationNeverDispatched(t *testing.T) {
	f := newFixture(t)

	f.db.getUserOTP = func(context.Context, entity.Identifier) (*entity.UserOTP, error) {
		return userOTPFixture(entity.UserStatusUnverified, &entity.OTP{UserID: 42, Code: "123456"}), nil
	}

	err := f.uc.OTPVerify(context.Background(), OTPVerifyInput{
		Email:   "jane@example.com",
		Code:    "123456",
		Purpose: entity.PurposeActivation,
	})
	requireBusinessError(t, err, activationRejection, http.StatusUnauthorized)
}

func TestOTPVerify_ActivationLostRace(t *testing.T) {
	f := newFixture(t)

	f.db.getUserOTP = func(context.Context, entity.Identifier) (*entity.UserOTP, error) {
		return userOTPFixture(entity.UserStatusUnverified, &entity.OTP{
			UserID: 42, Code: "123456", SentAt: sentAgo(time.Minute),
		}), nil
	}
	f.db.activateUser = func(context.Context, int64, string) (bool, error) {
		return false, nil
	}

	err := f.uc.OTPVerify(context.Background(), OTPVerifyInput{
		Email:   "jane@example.com",
		Code:    "123456",
		Purpose: entity.PurposeActivation,
	})
	requireBusinessError(t, err, activationRejection, http.StatusUnauthorized)
	assert.Empty(t, f.msg.activations)
}

func TestOTPVerify_PasswordResetDoesNotConsume(t *testing.T) {
	f := newFixture(t)

	f.db.getUserOTP = func(context.Context, entity.Identifier) (*entity.UserOTP, error) {
		return userOTPFixture(entity.UserStatusActive, &entity.OTP{
			UserID: 42, Code: "123456", SentAt: sentAgo(time.Minute), Verified: true,
		}), nil
	}
	f.db.activateUser = func(context.Context, int64, string) (bool, error) {
		t.Fatal("password-reset verification must not touch the verified flag")
		return false, nil
	}

	err := f.uc.OTPVerify(context.Background(), OTPVerifyInput{
		Email:   "jane@example.com",
		Code:    "123456",
		Purpose: entity.PurposePasswordReset,
	})
	require.NoError(t, err)
	assert.Empty(t, f.msg.activations)
}

func TestOTPVerify_PasswordResetWrongCode(t *testing.T) {
	f := newFixture(t)

	f.db.getUserOTP = func(context.Context, entity.Identifier) (*entity.UserOTP, error) {
		return userOTPFixture(entity.UserStatusActive, &entity.OTP{
			UserID: 42, Code: "123456", SentAt: sentAgo(time.Minute), Verified: true,
		}), nil
	}

	err := f.uc.OTPVerify(context.Background(), OTPVerifyInput{
		Email:   "jane@example.com",
		Code:    "654321",
		Purpose: entity.PurposePasswordReset,
	})
	requireBusinessError(t, err, "Your security code is wrong or expired", http.StatusUnauthorized)
}

func TestOTPVerify_NotRegistered(t *testing.T) {
	f := newFixture(t)

	f.db.getUserOTP = func(context.Context, entity.Identifier) (*entity.UserOTP, error) {
		return nil, goerror.ErrNotFound
	}

	err := f.uc.OTPVerify(context.Background(), OTPVerifyInput{
		Email:   "nobody@example.com",
		Code:    "123456",
		Purpose: entity.PurposeActivation,
	})
	requireBusinessError(t, err, "The account is not registered", http.StatusNotFound)
}
