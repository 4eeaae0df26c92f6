package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/etradehq/identity/internal/identity/entity"
	"github.com/etradehq/identity/internal/pkg/goerror"
)

type RegisterInput struct {
	Email       string `validate:"omitempty,email,required_without=PhoneNumber"`
	PhoneNumber string `validate:"omitempty,phone_e164"`
	Password    string `validate:"required,password"`
	FirstName   string `validate:"omitempty,max=100"`
	LastName    string `validate:"omitempty,max=100"`
}

// Register creates an Unverified principal with a blank, undelivered passcode
// record. No code is generated or dispatched here; the caller must follow up
// with an explicit send.
func (s *Usecase) Register(ctx context.Context, in RegisterInput) error {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Email = normalizeEmail(in.Email)
	in.PhoneNumber = normalizePhone(in.PhoneNumber)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if in.Email != "" {
		if err := s.ensureIdentifierFree(ctx, entity.Identifier{Email: in.Email}, "Email"); err != nil {
			return err
		}
	}
	if in.PhoneNumber != "" {
		if err := s.ensureIdentifierFree(ctx, entity.Identifier{PhoneNumber: in.PhoneNumber}, "Phone number"); err != nil {
			return err
		}
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return goerror.NewServer(err)
	}

	newUser := entity.NewUser{
		ID:          s.uid.Generate(),
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Status:      entity.UserStatusUnverified,
	}

	if err := s.repoDB.NewRegistration(ctx, newUser, string(hashedPassword)); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return goerror.NewBusiness("Email or phone number already registered", goerror.CodeConflict)
		}

		slog.ErrorContext(ctx, "failed to repo user registration", "user_id", newUser.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoMessaging.PublishUserRegistration(ctx, UserRegistrationEvent{
		UserID:      newUser.ID,
		Email:       newUser.Email,
		PhoneNumber: newUser.PhoneNumber,
		FirstName:   newUser.FirstName,
		LastName:    newUser.LastName,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish user registration", "user_id", newUser.ID, "error", err)
	}

	return nil
}

func (s *Usecase) ensureIdentifierFree(ctx context.Context, id entity.Identifier, label string) error {
	var (
		user *entity.User
		err  error
	)
	if id.Email != "" {
		user, err = s.repoDB.GetUserByEmail(ctx, id.Email)
	} else {
		user, err = s.repoDB.GetUserByPhone(ctx, id.PhoneNumber)
	}

	if err == nil {
		switch user.Status.Ensure() {
		case entity.UserStatusActive:
			return goerror.NewBusiness(label+" already registered", goerror.CodeConflict)
		case entity.UserStatusUnverified:
			return goerror.NewBusiness("Account not verified", goerror.CodeConflict)
		case entity.UserStatusInactive:
			return goerror.NewBusiness("Account deactivated", goerror.CodeConflict)
		default:
			return goerror.NewBusiness("Account not allowed", goerror.CodeForbidden)
		}
	}

	if !isNotFound(err) {
		slog.ErrorContext(ctx, "failed to repo get user by identifier", "identifier", id.Value(), "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
