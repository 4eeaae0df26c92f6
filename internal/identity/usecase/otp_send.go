package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/etradehq/identity/internal/identity/entity"
	"github.com/etradehq/identity/internal/pkg/goerror"
	"github.com/etradehq/identity/internal/pkg/idempotency"
)

type OTPSendInput struct {
	Email       string `validate:"omitempty,email,required_without=PhoneNumber,excluded_with=PhoneNumber"`
	PhoneNumber string `validate:"omitempty,phone_e164"`
	Purpose     entity.Purpose
}

// OTPSend regenerates the principal's passcode and dispatches it over the
// channel implied by the identifier used. The new code and its sent time are
// persisted only after the gateway confirms delivery, so a failed dispatch
// leaves the previous record untouched. Sends for the same principal are
// serialized through a redis lock.
func (s *Usecase) OTPSend(ctx context.Context, in OTPSendInput) error {
	ctx, span := s.startSpan(ctx, "OTPSend")
	defer span.End()

	in.Email = normalizeEmail(in.Email)
	in.PhoneNumber = normalizePhone(in.PhoneNumber)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}
	if in.Purpose != entity.PurposeActivation && in.Purpose != entity.PurposePasswordReset {
		return goerror.NewInvalidInput(nil, "purpose", "purpose must be activation or password_reset")
	}

	id := entity.Identifier{Email: in.Email, PhoneNumber: in.PhoneNumber}
	uo, err := s.getUserOTP(ctx, id)
	if err != nil {
		return err
	}

	if uo.User.Status.Ensure().IsDisabled() {
		slog.WarnContext(ctx, "otp send for disabled account", "user_id", uo.User.ID)
		return goerror.NewBusiness("User account is disabled", goerror.CodeForbidden)
	}

	if in.Purpose == entity.PurposeActivation && uo.OTP != nil && uo.OTP.Verified {
		return goerror.NewBusiness("Account is already verified", goerror.CodeConflict)
	}

	key := fmt.Sprintf("otp:send:%d", uo.User.ID)
	err = s.idemp.Exec(ctx, key, func(ctx context.Context) error {
		return s.generateAndDispatch(ctx, uo.User.ID, id)
	},
		idempotency.WithLockDuration(s.cfg.GetSecond("modules.identity.dispatch_timeout_seconds")*2),
		idempotency.WithStateTTL(s.cfg.GetSecond("modules.identity.send_cooldown_seconds")),
	)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, idempotency.ErrAlreadyInProgress),
		errors.Is(err, idempotency.ErrAlreadyCompleted),
		errors.Is(err, idempotency.ErrAlreadyFailed):
		return goerror.NewBusiness("Please wait before requesting another code", goerror.CodeTooManyRequest)
	default:
		return err
	}
}

func (s *Usecase) generateAndDispatch(ctx context.Context, userID int64, id entity.Identifier) error {
	code, err := s.otp.Generate(s.cfg.GetInt("modules.identity.token_length"))
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate security code", "user_id", userID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.EnsureOTP(ctx, userID); err != nil {
		slog.ErrorContext(ctx, "failed to repo ensure otp record", "user_id", userID, "error", err)
		return goerror.NewServer(err)
	}

	dctx, cancel := context.WithTimeout(ctx, s.cfg.GetSecond("modules.identity.dispatch_timeout_seconds"))
	defer cancel()

	if err := s.dispatcher.Dispatch(dctx, id.Channel(), id.Value(), code); err != nil {
		slog.WarnContext(ctx, "failed to dispatch security code",
			"user_id", userID, "channel", id.Channel().String(), "error", err)
		return goerror.NewServerMsg(err, "Failed to deliver verification code", goerror.CodeUnavailable)
	}

	sentAt := s.clock.Now()
	if err := s.repoDB.SaveOTPDispatch(ctx, userID, code, sentAt); err != nil {
		slog.ErrorContext(ctx, "failed to repo save otp dispatch", "user_id", userID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
