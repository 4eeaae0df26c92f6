package entity

import "time"

// User is a registered principal. Email and PhoneNumber are independent
// identifier namespaces; at least one is always set.
type User struct {
	ID          int64
	Email       string
	PhoneNumber string
	FirstName   string
	LastName    string
	Status      UserStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Identifier returns the user's primary contact identifier, preferring email.
func (u User) Identifier() string {
	if u.Email != "" {
		return u.Email
	}
	return u.PhoneNumber
}

// NewUser carries the fields needed to create a principal.
type NewUser struct {
	ID          int64
	Email       string
	PhoneNumber string
	FirstName   string
	LastName    string
	Status      UserStatus
}

// Identifier selects a principal by exactly one identifier namespace.
type Identifier struct {
	Email       string
	PhoneNumber string
}

// Value returns the identifier string, preferring email.
func (i Identifier) Value() string {
	if i.Email != "" {
		return i.Email
	}
	return i.PhoneNumber
}

// Channel returns the delivery channel implied by the identifier namespace.
func (i Identifier) Channel() Channel {
	if i.Email != "" {
		return ChannelEmail
	}
	return ChannelSMS
}

// UserLoginInfo is the projection used by the credential gate.
type UserLoginInfo struct {
	ID          int64
	Email       string
	PhoneNumber string
	Status      UserStatus
	Password    string
	OTPVerified bool
}

// UserOTP joins a principal with its passcode record. OTP is nil when the
// record has not been created yet.
type UserOTP struct {
	User User
	OTP  *OTP
}
