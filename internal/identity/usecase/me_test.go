package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/etradehq/identity/internal/identity/entity"
	"github.com/etradehq/identity/internal/pkg/goerror"
	"github.com/etradehq/identity/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMe_Success(t *testing.T) {
	f := newFixture(t)

	f.db.getUserOTPByID = func(_ context.Context, userID int64) (*entity.UserOTP, error) {
		assert.Equal(t, int64(42), userID)
		return userOTPFixture(entity.UserStatusActive, &entity.OTP{
			UserID: 42, Code: "123456", SentAt: sentAgo(time.Minute), Verified: true,
		}), nil
	}

	ctx := jwt.SetAuth(context.Background(), jwt.Claims{UserID: 42, UserIdentifier: "jane@example.com"})
	out, err := f.uc.Me(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(42), out.ID)
	assert.Equal(t, "jane@example.com", out.Email)
	assert.Equal(t, "Active", out.Status)
	assert.True(t, out.Verified)
}

func TestMe_Unauthenticated(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Me(context.Background())
	requireBusinessError(t, err, "Authentication required", http.StatusUnauthorized)
}

func TestMe_AccountGone(t *testing.T) {
	f := newFixture(t)

	f.db.getUserOTPByID = func(context.Context, int64) (*entity.UserOTP, error) {
		return nil, goerror.ErrNotFound
	}

	ctx := jwt.SetAuth(context.Background(), jwt.Claims{UserID: 42})
	_, err := f.uc.Me(ctx)
	requireBusinessError(t, err, "Account not found", http.StatusNotFound)
}

func TestMe_NoPasscodeRecord(t *testing.T) {
	f := newFixture(t)

	f.db.getUserOTPByID = func(context.Context, int64) (*entity.UserOTP, error) {
		return userOTPFixture(entity.UserStatusUnverified, nil), nil
	}

	ctx := jwt.SetAuth(context.Background(), jwt.Claims{UserID: 42})
	out, err := f.uc.Me(ctx)
	require.NoError(t, err)
	assert.False(t, out.Verified)
}
