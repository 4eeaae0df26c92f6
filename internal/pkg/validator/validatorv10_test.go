package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email       string `validate:"omitempty,email,required_without=PhoneNumber"`
	PhoneNumber string `validate:"omitempty,phone_e164"`
	Password    string `validate:"required,password"`
}

func TestV10Validator(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	tests := []struct {
		name    string
		in      signupForm
		wantErr []string
	}{
		{
			name: "valid email",
			in:   signupForm{Email: "jane@example.com", Password: "Secret123!"},
		},
		{
			name: "valid phone",
			in:   signupForm{PhoneNumber: "+15550001111", Password: "Secret123!"},
		},
		{
			name:    "no identifier",
			in:      signupForm{Password: "Secret123!"},
			wantErr: []string{"email"},
		},
		{
			name:    "bad email",
			in:      signupForm{Email: "not-an-email", Password: "Secret123!"},
			wantErr: []string{"email"},
		},
		{
			name:    "bad phone",
			in:      signupForm{PhoneNumber: "555-0011", Password: "Secret123!"},
			wantErr: []string{"phone_number"},
		},
		{
			name:    "phone too short",
			in:      signupForm{PhoneNumber: "+1234", Password: "Secret123!"},
			wantErr: []string{"phone_number"},
		},
		{
			name:    "password too short",
			in:      signupForm{Email: "jane@example.com", Password: "short"},
			wantErr: []string{"password"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.in)
			if len(tc.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}

			var verr V10ValidationError
			require.ErrorAs(t, err, &verr)
			for _, field := range tc.wantErr {
				assert.Contains(t, verr.Values(), field)
			}
		})
	}
}

func TestV10ValidationErrorMessage(t *testing.T) {
	v, err := NewV10Validator()
	require.NoError(t, err)

	err = v.Validate(signupForm{PhoneNumber: "abc", Password: "Secret123!"})

	var verr V10ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "PhoneNumber must be a valid phone number in E.164 format", verr["phone_number"])
}
