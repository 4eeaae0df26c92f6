package app

import (
	"context"
	"net/http"

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

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	validator validator.Validator
	clock     clock.Clocker
	bcrypt    hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	otp       otp.Generator
	jwt       jwt.JWT

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	idemp     idempotency.Idempotency
	mail      mail.Mail
	sms       sms.SMS
	messaging messaging.Messaging

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initSMS()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
