package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/etradehq/identity/internal/identity/entity"
	"github.com/etradehq/identity/internal/pkg/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordReset_Success(t *testing.T) {
	f := newFixture(t)

	f.db.getUserOTP = func(context.Context, entity.Identifier) (*entity.UserOTP, error) {
		return userOTPFixture(entity.UserStatusActive, &entity.OTP{
			UserID: 42, Code: "123456", SentAt: sentAgo(time.Minute), Verified: true,
		}), nil
	}

	var storedHash string
	f.db.updateUserCredential = func(_ context.Context, userID int64, hash string) error {
		assert.Equal(t, int64(42), userID)
		storedHash = hash
		return nil
	}
	f.db.activateUser = func(context.Context, int64, string) (bool, error) {
		t.Fatal("password reset must not change the verified flag")
		return false, nil
	}

	err := f.uc.PasswordReset(context.Background(), PasswordResetInput{
		Email:       "jane@example.com",
		Code:        "123456",
		NewPassword: "NewSecret123!",
	})
	require.NoError(t, err)
	assert.True(t, hash.NewBcrypt(4, "").Verify(storedHash, "NewSecret123!"))
}

// An unverified account can still reset its password; the account stays
// unverified afterwards.
func TestPasswordReset_UnverifiedAccount(t *testing.T) {
	f := newFixture(t)

	f.db.getUserOTP = func(context.Context, entity.Identifier) (*entity.UserOTP, error) {
		return userOTPFixture(entity.UserStatusUnverified, &entity.OTP{
			UserID: 42, Code: "123456", SentAt: sentAgo(time.Minute),
		}), nil
	}
	f.db.updateUserCredential = func(context.Context, int64, string) error { return nil }

	err := f.uc.PasswordReset(context.Background(), PasswordResetInput{
		Email:       "jane@example.com",
		Code:        "123456",
		NewPassword: "NewSecret123!",
	})
	require.NoError(t, err)
}

func TestPasswordReset_WrongCode(t *testing.T) {
	f := newFixture(t)

	f.db.getUserOTP = func(context.Context, entity.Identifier) (*entity.UserOTP, error) {
		return userOTPFixture(entity.UserStatusActive, &entity.OTP{
			UserID: 42, Code: "123456", SentAt: sentAgo(time.Minute), Verified: true,
		}), nil
	}

	err := f.uc.PasswordReset(context.Background(), PasswordResetInput{
		Email:       "jane@example.com",
		Code:        "000000",
		NewPassword: "NewSecret123!",
	})
	requireBusinessError(t, err, "Your security code is wrong or expired", http.StatusUnauthorized)
}

func TestPasswordReset_ExpiredCode(t *testing.T) {
	f := newFixture(t)

	f.db.getUserOTP = func(context.Context, entity.Identifier) (*entity.UserOTP, error) {
		return userOTPFixture(entity.UserStatusActive, &entity.OTP{
			UserID: 42, Code: "123456", SentAt: sentAgo(10 * time.Minute), Verified: true,
		}), nil
	}

	err := f.uc.PasswordReset(context.Background(), PasswordResetInput{
		Email:       "jane@example.com",
		Code:        "123456",
		NewPassword: "NewSecret123!",
	})
	requireBusinessError(t, err, "Your security code is wrong or expired", http.StatusUnauthorized)
}

func TestPasswordReset_DisabledAccount(t *testing.T) {
	f := newFixture(t)

	f.db.getUserOTP = func(context.Context, entity.Identifier) (*entity.UserOTP, error) {
		return userOTPFixture(entity.UserStatusInactive, &entity.OTP{
			UserID: 42, Code: "123456", SentAt: sentAgo(time.Minute),
		}), nil
	}

	err := f.uc.PasswordReset(context.Background(), PasswordResetInput{
		Email:       "jane@example.com",
		Code:        "123456",
		NewPassword: "NewSecret123!",
	})
	requireBusinessError(t, err, "User account is disabled", http.StatusForbidden)
}
