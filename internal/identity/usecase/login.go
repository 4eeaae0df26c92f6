package usecase

import (
	"context"
	"log/slog"

	"github.com/etradehq/identity/internal/identity/entity"
	"github.com/etradehq/identity/internal/pkg/goerror"
)

type LoginInput struct {
	Email       string `validate:"omitempty,email,required_without=PhoneNumber,excluded_with=PhoneNumber"`
	PhoneNumber string `validate:"omitempty,phone_e164"`
	Password    string `validate:"required"`
}

type LoginOutput struct {
	AccessToken string
}

// Login authenticates an identifier+password pair and issues a session token.
//
// The password is checked before any account-state disclosure, and an unknown
// identifier is indistinguishable from a wrong password.
func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	in.Email = normalizeEmail(in.Email)
	in.PhoneNumber = normalizePhone(in.PhoneNumber)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	id := entity.Identifier{Email: in.Email, PhoneNumber: in.PhoneNumber}
	user, err := s.repoDB.GetUserLoginInfo(ctx, id)
	if isNotFound(err) {
		slog.WarnContext(ctx, "user account not found", "identifier", id.Value())
		return nil, goerror.NewBusiness("Invalid identifier or password", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user login info", "identifier", id.Value(), "error", err)
		return nil, goerror.NewServer(err)
	}

	if !s.bcrypt.Verify(user.Password, in.Password) {
		slog.WarnContext(ctx, "password user account not match", "user_id", user.ID)
		return nil, goerror.NewBusiness("Invalid identifier or password", goerror.CodeUnauthorized)
	}

	sts := user.Status.Ensure()
	if sts.IsDisabled() || sts == entity.UserStatusUnknown {
		slog.WarnContext(ctx, "login for disabled account", "user_id", user.ID, "status", sts.String())
		return nil, goerror.NewBusiness("User account is disabled", goerror.CodeForbidden)
	}

	if !user.OTPVerified {
		slog.WarnContext(ctx, "login for unverified account", "user_id", user.ID)
		return nil, goerror.NewBusiness("User account is not verified", goerror.CodeForbidden)
	}

	acToken, err := s.jwt.Generate(user.ID, id.Value())
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access jwt token", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &LoginOutput{AccessToken: acToken}, nil
}
