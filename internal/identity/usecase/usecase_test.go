package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/etradehq/identity/internal/identity/entity"
	"github.com/etradehq/identity/internal/pkg/hash"
	"github.com/etradehq/identity/internal/pkg/idempotency"
	"github.com/etradehq/identity/internal/pkg/instrument"
	"github.com/etradehq/identity/internal/pkg/jwt"
	"github.com/etradehq/identity/internal/pkg/validator"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

type fakeDB struct {
	getUserByEmail       func(ctx context.Context, email string) (*entity.User, error)
	getUserByPhone       func(ctx context.Context, phone string) (*entity.User, error)
	getUserLoginInfo     func(ctx context.Context, id entity.Identifier) (*entity.UserLoginInfo, error)
	getUserOTP           func(ctx context.Context, id entity.Identifier) (*entity.UserOTP, error)
	getUserOTPByID       func(ctx context.Context, userID int64) (*entity.UserOTP, error)
	newRegistration      func(ctx context.Context, user entity.NewUser, hash string) error
	ensureOTP            func(ctx context.Context, userID int64) error
	saveOTPDispatch      func(ctx context.Context, userID int64, code string, sentAt time.Time) error
	activateUser         func(ctx context.Context, userID int64, code string) (bool, error)
	updateUserCredential func(ctx context.Context, userID int64, hash string) error
}

func (f *fakeDB) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.getUserByEmail(ctx, email)
}

func (f *fakeDB) GetUserByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return f.getUserByPhone(ctx, phone)
}

func (f *fakeDB) GetUserLoginInfo(ctx context.Context, id entity.Identifier) (*entity.UserLoginInfo, error) {
	return f.getUserLoginInfo(ctx, id)
}

func (f *fakeDB) GetUserOTP(ctx context.Context, id entity.Identifier) (*entity.UserOTP, error) {
	return f.getUserOTP(ctx, id)
}

func (f *fakeDB) GetUserOTPByID(ctx context.Context, userID int64) (*entity.UserOTP, error) {
	return f.getUserOTPByID(ctx, userID)
}

func (f *fakeDB) NewRegistration(ctx context.Context, user entity.NewUser, hash string) error {
	return f.newRegistration(ctx, user, hash)
}

func (f *fakeDB) EnsureOTP(ctx context.Context, userID int64) error {
	return f.ensureOTP(ctx, userID)
}

func (f *fakeDB) SaveOTPDispatch(ctx context.Context, userID int64, code string, sentAt time.Time) error {
	return f.saveOTPDispatch(ctx, userID, code, sentAt)
}

func (f *fakeDB) ActivateUser(ctx context.Context, userID int64, code string) (bool, error) {
	return f.activateUser(ctx, userID, code)
}

func (f *fakeDB) UpdateUserCredential(ctx context.Context, userID int64, hash string) error {
	return f.updateUserCredential(ctx, userID, hash)
}

type fakeMessaging struct {
	registrations []UserRegistrationEvent
	activations   []UserActivationEvent
	err           error
}

func (f *fakeMessaging) PublishUserRegistration(_ context.Context, msg UserRegistrationEvent) error {
	f.registrations = append(f.registrations, msg)
	return f.err
}

func (f *fakeMessaging) PublishUserActivation(_ context.Context, msg UserActivationEvent) error {
	f.activations = append(f.activations, msg)
	return f.err
}

type dispatchCall struct {
	Channel     entity.Channel
	Destination string
	Code        string
}

type fakeDispatcher struct {
	calls []dispatchCall
	err   error
}

func (f *fakeDispatcher) Dispatch(_ context.Context, ch entity.Channel, destination, code string) error {
	f.calls = append(f.calls, dispatchCall{Channel: ch, Destination: destination, Code: code})
	return f.err
}

// fakeIdempotency runs the callback inline unless execErr forces a state.
type fakeIdempotency struct {
	execErr error
}

func (f *fakeIdempotency) Acquire(context.Context, string, time.Duration) (idempotency.State, error) {
	return idempotency.StateNone, nil
}

func (f *fakeIdempotency) MarkCompleted(context.Context, string, time.Duration) error { return nil }

func (f *fakeIdempotency) MarkFailed(context.Context, string, time.Duration) error { return nil }

func (f *fakeIdempotency) Exec(ctx context.Context, _ string, fn func(context.Context) error, _ ...idempotency.Option) error {
	if f.execErr != nil {
		return f.execErr
	}
	return fn(ctx)
}

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

type fixedUID struct{ id int64 }

func (f fixedUID) Generate() int64 { return f.id }

type fixedOTPGen struct {
	code string
	err  error
}

func (f fixedOTPGen) Generate(int) (string, error) { return f.code, f.err }

type fakeJWT struct {
	token string
	err   error
}

func (f fakeJWT) Generate(int64, string) (string, error) { return f.token, f.err }

func (f fakeJWT) Verify(string) (jwt.Claims, error) { return jwt.Claims{}, nil }

type stubConfig struct {
	ints map[string]int
}

func (c stubConfig) Close() error                       { return nil }
func (c stubConfig) GetSecond(key string) time.Duration { return time.Duration(c.ints[key]) * time.Second }
func (c stubConfig) GetMinute(key string) time.Duration { return time.Duration(c.ints[key]) * time.Minute }
func (c stubConfig) GetHour(key string) time.Duration   { return time.Duration(c.ints[key]) * time.Hour }
func (c stubConfig) GetDay(key string) time.Duration    { return time.Duration(c.ints[key]) * 24 * time.Hour }
func (c stubConfig) GetInt(key string) int              { return c.ints[key] }
func (c stubConfig) GetInt32(key string) int32          { return int32(c.ints[key]) }
func (c stubConfig) GetInt64(key string) int64          { return int64(c.ints[key]) }
func (c stubConfig) GetUint(key string) uint            { return uint(c.ints[key]) }
func (c stubConfig) GetUint16(key string) uint16        { return uint16(c.ints[key]) }
func (c stubConfig) GetUint32(key string) uint32        { return uint32(c.ints[key]) }
func (c stubConfig) GetUint64(key string) uint64        { return uint64(c.ints[key]) }
func (c stubConfig) GetFloat32(string) float32          { return 0 }
func (c stubConfig) GetFloat64(string) float64          { return 0 }
func (c stubConfig) GetBool(string) bool                { return false }
func (c stubConfig) GetString(string) string            { return "" }
func (c stubConfig) GetBinary(string) []byte            { return nil }
func (c stubConfig) GetArray(string) []string           { return nil }
func (c stubConfig) GetMap(string) map[string]string    { return nil }

type fixture struct {
	uc    *Usecase
	db    *fakeDB
	msg   *fakeMessaging
	disp  *fakeDispatcher
	idemp *fakeIdempotency
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	f := &fixture{
		db:    &fakeDB{},
		msg:   &fakeMessaging{},
		disp:  &fakeDispatcher{},
		idemp: &fakeIdempotency{},
	}

	f.uc = New(Dependency{
		RepoDB:        f.db,
		RepoMessaging: f.msg,
		Dispatcher:    f.disp,
		Idempotency:   f.idemp,
		Validator:     v,
		Config: stubConfig{ints: map[string]int{
			"modules.identity.token_length":             6,
			"modules.identity.token_expire_minutes":     6,
			"modules.identity.dispatch_timeout_seconds": 10,
			"modules.identity.send_cooldown_seconds":    60,
		}},
		Bcrypt:     hash.NewBcrypt(4, ""),
		UID:        fixedUID{id: 777},
		OTP:        fixedOTPGen{code: "123456"},
		Clock:      fixedClock{now: testNow},
		JWT:        fakeJWT{token: "signed-token"},
		Instrument: instrument.NewNoop(),
	})

	return f
}

func sentAgo(d time.Duration) *time.Time {
	t := testNow.Add(-d)
	return &t
}

func userOTPFixture(status entity.UserStatus, otp *entity.OTP) *entity.UserOTP {
	return &entity.UserOTP{
		User: entity.User{
			ID:          42,
			Email:       "jane@example.com",
			PhoneNumber: "+15550001111",
			FirstName:   "Jane",
			LastName:    "Doe",
			Status:      status,
		},
		OTP: otp,
	}
}

func requireBusinessError(t *testing.T, err error, msg string, status int) {
	t.Helper()

	var gerr interface {
		Msg() string
		StatusCode() int
	}
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, msg, gerr.Msg())
	require.Equal(t, status, gerr.StatusCode())
}
