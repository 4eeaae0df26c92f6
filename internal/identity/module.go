package identity

import (
	"github.com/etradehq/identity/internal/identity/inbound"
	"github.com/etradehq/identity/internal/identity/outbound/db"
	"github.com/etradehq/identity/internal/identity/outbound/dispatch"
	"github.com/etradehq/identity/internal/identity/outbound/mq"
	"github.com/etradehq/identity/internal/identity/usecase"
	"github.com/etradehq/identity/internal/pkg/clock"
	"github.com/etradehq/identity/internal/pkg/config"
	"github.com/etradehq/identity/internal/pkg/hash"
	"github.com/etradehq/identity/internal/pkg/idempotency"
	"github.com/etradehq/identity/internal/pkg/instrument"
	"github.com/etradehq/identity/internal/pkg/jwt"
	"github.com/etradehq/identity/internal/pkg/mail"
	"github.com/etradehq/identity/internal/pkg/messaging"
	"github.com/etradehq/identity/internal/pkg/otp"
	"github.com/etradehq/identity/internal/pkg/router"
	"github.com/etradehq/identity/internal/pkg/sms"
	"github.com/etradehq/identity/internal/pkg/uid"
	"github.com/etradehq/identity/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	CacheConn   *redis.Client              `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Messaging   messaging.Messaging        `validate:"required"`
	Mail        mail.Mail                  `validate:"required"`
	SMS         sms.SMS                    `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	Bcrypt      hash.Hash                  `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	OTP         otp.Generator              `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
	JWT         jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbIdentity := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)
	codeDispatch := dispatch.NewDispatcher(dep.Mail, dep.SMS, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbIdentity,
		RepoMessaging: repoMsg,
		Dispatcher:    codeDispatch,
		Idempotency:   dep.Idempotency,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Bcrypt:        dep.Bcrypt,
		UID:           dep.UID,
		OTP:           dep.OTP,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
