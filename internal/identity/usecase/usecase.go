package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/etradehq/identity/internal/identity/entity"
	"github.com/etradehq/identity/internal/pkg/clock"
	"github.com/etradehq/identity/internal/pkg/config"
	"github.com/etradehq/identity/internal/pkg/goerror"
	"github.com/etradehq/identity/internal/pkg/hash"
	"github.com/etradehq/identity/internal/pkg/idempotency"
	"github.com/etradehq/identity/internal/pkg/instrument"
	"github.com/etradehq/identity/internal/pkg/jwt"
	"github.com/etradehq/identity/internal/pkg/otp"
	"github.com/etradehq/identity/internal/pkg/uid"
	"github.com/etradehq/identity/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type UserRegistrationEvent struct {
	UserID      int64
	Email       string
	PhoneNumber string
	FirstName   string
	LastName    string
}

type UserActivationEvent struct {
	UserID      int64
	Email       string
	PhoneNumber string
}

type repoMessaging interface {
	PublishUserRegistration(ctx context.Context, msg UserRegistrationEvent) error
	PublishUserActivation(ctx context.Context, msg UserActivationEvent) error
}

type repoDB interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*entity.User, error)
	GetUserLoginInfo(ctx context.Context, id entity.Identifier) (*entity.UserLoginInfo, error)
	GetUserOTP(ctx context.Context, id entity.Identifier) (*entity.UserOTP, error)
	GetUserOTPByID(ctx context.Context, userID int64) (*entity.UserOTP, error)

	NewRegistration(ctx context.Context, user entity.NewUser, hash string) error
	EnsureOTP(ctx context.Context, userID int64) error
	SaveOTPDispatch(ctx context.Context, userID int64, code string, sentAt time.Time) error
	ActivateUser(ctx context.Context, userID int64, code string) (bool, error)
	UpdateUserCredential(ctx context.Context, userID int64, hash string) error
}

// dispatcher delivers a passcode out-of-band. Implementations own the
// transport (SMS gateway, SMTP) and the message wording.
type dispatcher interface {
	Dispatch(ctx context.Context, ch entity.Channel, destination, code string) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	dispatcher    dispatcher
	idemp         idempotency.Idempotency
	validator     validator.Validator
	cfg           config.Config
	bcrypt        hash.Hash
	uid           uid.NumberID
	otp           otp.Generator
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Dispatcher    dispatcher
	Idempotency   idempotency.Idempotency
	Validator     validator.Validator
	Config        config.Config
	Bcrypt        hash.Hash
	UID           uid.NumberID
	OTP           otp.Generator
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		dispatcher:    dep.Dispatcher,
		idemp:         dep.Idempotency,
		validator:     dep.Validator,
		cfg:           dep.Config,
		bcrypt:        dep.Bcrypt,
		uid:           dep.UID,
		otp:           dep.OTP,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

func isNotFound(err error) bool {
	return errors.Is(err, goerror.ErrNotFound)
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

func normalizePhone(phone string) string {
	return strings.TrimSpace(phone)
}

// getUserOTP resolves a principal and its passcode record by identifier,
// translating a miss into the not-registered business error.
func (s *Usecase) getUserOTP(ctx context.Context, id entity.Identifier) (*entity.UserOTP, error) {
	uo, err := s.repoDB.GetUserOTP(ctx, id)
	if err == nil {
		return uo, nil
	}

	if isNotFound(err) {
		slog.WarnContext(ctx, "account not registered", "identifier", id.Value())
		return nil, goerror.NewBusiness("The account is not registered", goerror.CodeNotFound)
	}

	slog.ErrorContext(ctx, "failed to repo get user otp", "identifier", id.Value(), "error", err)
	return nil, goerror.NewServer(err)
}

// checkOTP applies the per-purpose acceptance rule. Rejection reasons are
// deliberately not decomposed for the caller.
func (s *Usecase) checkOTP(rec *entity.OTP, code string, purpose entity.Purpose) error {
	ttl := s.cfg.GetMinute("modules.identity.token_expire_minutes")
	now := s.clock.Now()

	switch purpose {
	case entity.PurposeActivation:
		if rec == nil || rec.IsExpired(now, ttl) || !rec.Matches(code) || rec.Verified {
			return goerror.NewBusiness(
				"Your security code is wrong, expired or this account is already verified",
				goerror.CodeUnauthorized,
			)
		}

	case entity.PurposePasswordReset:
		if rec == nil || rec.IsExpired(now, ttl) || !rec.Matches(code) {
			return goerror.NewBusiness("Your security code is wrong or expired", goerror.CodeUnauthorized)
		}

	default:
		return goerror.NewInvalidInput(nil, "purpose", "purpose must be activation or password_reset")
	}

	return nil
}
