package usecase

import (
	"context"
	"log/slog"

	"github.com/etradehq/identity/internal/identity/entity"
	"github.com/etradehq/identity/internal/pkg/goerror"
)

type PasswordResetInput struct {
	Email       string `validate:"omitempty,email,required_without=PhoneNumber,excluded_with=PhoneNumber"`
	PhoneNumber string `validate:"omitempty,phone_e164"`
	Code        string `validate:"required"`
	NewPassword string `validate:"required,password"`
}

// PasswordReset replaces the credential after the passcode passes the
// password-reset rule. The verified flag is left untouched, so an account
// that never activated stays unverified even after a successful reset.
func (s *Usecase) PasswordReset(ctx context.Context, in PasswordResetInput) error {
	ctx, span := s.startSpan(ctx, "PasswordReset")
	defer span.End()

	in.Email = normalizeEmail(in.Email)
	in.PhoneNumber = normalizePhone(in.PhoneNumber)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	id := entity.Identifier{Email: in.Email, PhoneNumber: in.PhoneNumber}
	uo, err := s.getUserOTP(ctx, id)
	if err != nil {
		return err
	}

	if uo.User.Status.Ensure().IsDisabled() {
		slog.WarnContext(ctx, "password reset for disabled account", "user_id", uo.User.ID)
		return goerror.NewBusiness("User account is disabled", goerror.CodeForbidden)
	}

	if err := s.checkOTP(uo.OTP, in.Code, entity.PurposePasswordReset); err != nil {
		return err
	}

	newHash, err := s.bcrypt.Hash(in.NewPassword)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash new password", "user_id", uo.User.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.UpdateUserCredential(ctx, uo.User.ID, string(newHash)); err != nil {
		slog.ErrorContext(ctx, "failed to repo update user credential", "user_id", uo.User.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
