package usecase

import (
	"context"
	"log/slog"

	"github.com/etradehq/identity/internal/identity/entity"
	"github.com/etradehq/identity/internal/pkg/goerror"
)

type OTPVerifyInput struct {
	Email       string `validate:"omitempty,email,required_without=PhoneNumber,excluded_with=PhoneNumber"`
	PhoneNumber string `validate:"omitempty,phone_e164"`
	Code        string `validate:"required"`
	Purpose     entity.Purpose
}

// OTPVerify checks a submitted code against the stored record under the
// purpose's acceptance rule.
//
// Activation consumes the code: the verified flag flips and the principal is
// promoted to Active in one transaction, so a second attempt with the same
// code is rejected. Password-reset verification mutates nothing.
func (s *Usecase) OTPVerify(ctx context.Context, in OTPVerifyInput) error {
	ctx, span := s.startSpan(ctx, "OTPVerify")
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

	if err := s.checkOTP(uo.OTP, in.Code, in.Purpose); err != nil {
		return err
	}

	if in.Purpose != entity.PurposeActivation {
		return nil
	}

	ok, err := s.repoDB.ActivateUser(ctx, uo.User.ID, in.Code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo activate user", "user_id", uo.User.ID, "error", err)
		return goerror.NewServer(err)
	}
	if !ok {
		// lost the race against a concurrent verify or resend
		return goerror.NewBusiness(
			"Your security code is wrong, expired or this account is already verified",
			goerror.CodeUnauthorized,
		)
	}

	if err := s.repoMessaging.PublishUserActivation(ctx, UserActivationEvent{
		UserID:      uo.User.ID,
		Email:       uo.User.Email,
		PhoneNumber: uo.User.PhoneNumber,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish user activation", "user_id", uo.User.ID, "error", err)
	}

	return nil
}
