package inbound

type RegisterRequest struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
}

type RegisterResponse struct{}

func (RegisterResponse) Message() string {
	return "Registration successful. Request a verification code to activate your account."
}

type OTPSendRequest struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Purpose     string `json:"purpose"`
}

type OTPSendResponse struct{}

func (OTPSendResponse) Message() string {
	return "A verification code has been sent."
}

type OTPVerifyRequest struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Code        string `json:"code"`
	Purpose     string `json:"purpose"`
}

type OTPVerifyResponse struct{}

func (OTPVerifyResponse) Message() string {
	return "Verification successful."
}

type LoginRequest struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type PasswordResetRequest struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

type PasswordResetResponse struct{}

func (PasswordResetResponse) Message() string {
	return "Password has been reset. You can now log in with your new password."
}

type MeResponse struct {
	ID          int64  `json:"id,string"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Status      string `json:"status"`
	Verified    bool   `json:"verified"`
}
