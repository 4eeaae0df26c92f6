package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/etradehq/identity/internal/identity/entity"
	"github.com/etradehq/identity/internal/pkg/goerror"
	"github.com/etradehq/identity/internal/pkg/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginInfoFixture(t *testing.T, status entity.UserStatus, verified bool) *entity.UserLoginInfo {
	t.Helper()

	hashed, err := hash.NewBcrypt(4, "").Hash("Secret123!")
	require.NoError(t, err)

	return &entity.UserLoginInfo{
		ID:          42,
		Email:       "jane@example.com",
		Status:      status,
		Password:    string(hashed),
		OTPVerified: verified,
	}
}

func TestLogin_Success(t *testing.T) {
	f := newFixture(t)

	f.db.getUserLoginInfo = func(context.Context, entity.Identifier) (*entity.UserLoginInfo, error) {
		return loginInfoFixture(t, entity.UserStatusActive, true), nil
	}

	out, err := f.uc.Login(context.Background(), LoginInput{
		Email:    "jane@example.com",
		Password: "Secret123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
}

func TestLogin_UnknownIdentifier(t *testing.T) {
	f := newFixture(t)

	f.db.getUserLoginInfo = func(context.Context, entity.Identifier) (*entity.UserLoginInfo, error) {
		return nil, goerror.ErrNotFound
	}

	_, err := f.uc.Login(context.Background(), LoginInput{
		Email:    "nobody@example.com",
		Password: "Secret123!",
	})
	requireBusinessError(t, err, "Invalid identifier or password", http.StatusUnauthorized)
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newFixture(t)

	f.db.getUserLoginInfo = func(context.Context, entity.Identifier) (*entity.UserLoginInfo, error) {
		return loginInfoFixture(t, entity.UserStatusActive, true), nil
	}

	_, err := f.uc.Login(context.Background(), LoginInput{
		Email:    "jane@example.com",
		Password: "WrongPassword1!",
	})
	requireBusinessError(t, err, "Invalid identifier or password", http.StatusUnauthorized)
}

// A wrong password on a disabled account yields the credential error, not the
// account-state one, so credentials are always checked first.
func TestLogin_WrongPasswordOnDisabledAccount(t *testing.T) {
	f := newFixture(t)

	f.db.getUserLoginInfo = func(context.Context, entity.Identifier) (*entity.UserLoginInfo, error) {
		return loginInfoFixture(t, entity.UserStatusBanned, true), nil
	}

	_, err := f.uc.Login(context.Background(), LoginInput{
		Email:    "jane@example.com",
		Password: "WrongPassword1!",
	})
	requireBusinessError(t, err, "Invalid identifier or password", http.StatusUnauthorized)
}

func TestLogin_DisabledAccount(t *testing.T) {
	f := newFixture(t)

	for _, status := range []entity.UserStatus{entity.UserStatusBanned, entity.UserStatusInactive} {
		f.db.getUserLoginInfo = func(context.Context, entity.Identifier) (*entity.UserLoginInfo, error) {
			return loginInfoFixture(t, status, true), nil
		}

		_, err := f.uc.Login(context.Background(), LoginInput{
			Email:    "jane@example.com",
			Password: "Secret123!",
		})
		requireBusinessError(t, err, "User account is disabled", http.StatusForbidden)
	}
}

func TestLogin_UnverifiedAccount(t *testing.T) {
	f := newFixture(t)

	f.db.getUserLoginInfo = func(context.Context, entity.Identifier) (*entity.UserLoginInfo, error) {
		return loginInfoFixture(t, entity.UserStatusUnverified, false), nil
	}

	_, err := f.uc.Login(context.Background(), LoginInput{
		Email:    "jane@example.com",
		Password: "Secret123!",
	})
	requireBusinessError(t, err, "User account is not verified", http.StatusForbidden)
}

func TestLogin_PhoneIdentifier(t *testing.T) {
	f := newFixture(t)

	f.db.getUserLoginInfo = func(_ context.Context, id entity.Identifier) (*entity.UserLoginInfo, error) {
		assert.Equal(t, "+15550001111", id.PhoneNumber)
		assert.Empty(t, id.Email)
		return loginInfoFixture(t, entity.UserStatusActive, true), nil
	}

	out, err := f.uc.Login(context.Background(), LoginInput{
		PhoneNumber: "+15550001111",
		Password:    "Secret123!",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
}
