package entity

type UserStatus int16

const (
	// UserStatusUnknown is mean status is not known / not set.
	UserStatusUnknown UserStatus = 0

	// UserStatusUnverified mean user exists but has not completed verification.
	UserStatusUnverified UserStatus = 1

	// UserStatusActive mean user is verified and allowed to use the app.
	UserStatusActive UserStatus = 2

	// UserStatusBanned mean user is blocked from using the app (policy/abuse/etc).
	UserStatusBanned UserStatus = 3

	// UserStatusInactive mean user is not currently active (e.g., deactivated, closed).
	UserStatusInactive UserStatus = 4
)

func (us UserStatus) String() string {
	switch us {
	case UserStatusActive:
		return "Active"
	case UserStatusBanned:
		return "Banned"
	case UserStatusInactive:
		return "Inactive"
	case UserStatusUnverified:
		return "Unverified"
	default:
		return "Unknown"
	}
}

func (us UserStatus) Ensure() UserStatus {
	switch us {
	case UserStatusActive:
		return UserStatusActive
	case UserStatusBanned:
		return UserStatusBanned
	case UserStatusInactive:
		return UserStatusInactive
	case UserStatusUnverified:
		return UserStatusUnverified
	default:
		return UserStatusUnknown
	}
}

// IsDisabled reports whether the account may no longer authenticate at all.
func (us UserStatus) IsDisabled() bool {
	return us == UserStatusBanned || us == UserStatusInactive
}

// Purpose distinguishes how a passcode is consumed during verification.
type Purpose int16

const (
	PurposeUnknown       Purpose = 0
	PurposeActivation    Purpose = 1
	PurposePasswordReset Purpose = 2
)

func PurposeFromString(str string) Purpose {
	switch str {
	case "activation":
		return PurposeActivation
	case "password_reset":
		return PurposePasswordReset
	default:
		return PurposeUnknown
	}
}

func (p Purpose) String() string {
	switch p {
	case PurposeActivation:
		return "activation"
	case PurposePasswordReset:
		return "password_reset"
	default:
		return "unknown"
	}
}

// Channel is the delivery transport for a passcode.
type Channel int16

const (
	ChannelUnknown Channel = 0
	ChannelSMS     Channel = 1
	ChannelEmail   Channel = 2
)

func (c Channel) String() string {
	switch c {
	case ChannelSMS:
		return "sms"
	case ChannelEmail:
		return "email"
	default:
		return "unknown"
	}
}
