package inbound

import (
	"github.com/etradehq/identity/internal/identity/entity"
	"github.com/etradehq/identity/internal/identity/usecase"
	"github.com/etradehq/identity/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for registration, verification and
// authentication workflows.
type HTTPEndpoint struct {
	uc uc
}

// Register creates a new user account.
// @Summary Register user
// @Description Creates a new account identified by email and/or phone number. No verification code is sent automatically.
// @Tags Identity
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 200 {object} router.successResponse "Registration result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 409 {object} router.errorResponse "Identifier already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/register [post]
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
	}); err != nil {
		return nil, err
	}

	return RegisterResponse{}, nil
}

// OTPSend generates a verification code and delivers it over the
// identifier's channel.
// @Summary Send verification code
// @Description Generates a one-time code and sends it by email or SMS, for account activation or password reset.
// @Tags Identity
// @Accept json
// @Produce json
// @Param request body OTPSendRequest true "Send payload"
// @Success 200 {object} router.successResponse "Send result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 404 {object} router.errorResponse "Account not registered"
// @Failure 409 {object} router.errorResponse "Account already verified"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 429 {object} router.errorResponse "Cooldown active"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Failure 503 {object} router.errorResponse "Delivery gateway unavailable"
// @Router /api/v1/identity/otp/send [post]
func (h *HTTPEndpoint) OTPSend(r *router.Request) (any, error) {
	var req OTPSendRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.OTPSend(r.Context(), usecase.OTPSendInput{
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Purpose:     entity.PurposeFromString(req.Purpose),
	}); err != nil {
		return nil, err
	}

	return OTPSendResponse{}, nil
}

// OTPVerify checks a verification code and, for activation, marks the
// account verified.
// @Summary Verify code
// @Description Validates the one-time code. Activation also promotes the account to active.
// @Tags Identity
// @Accept json
// @Produce json
// @Param request body OTPVerifyRequest true "Verify payload"
// @Success 200 {object} router.successResponse "Verification result"
// @Failure 400 {object} router.errorResponse "Invalid request body or code"
// @Failure 404 {object} router.errorResponse "Account not registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/otp/verify [post]
func (h *HTTPEndpoint) OTPVerify(r *router.Request) (any, error) {
	var req OTPVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.OTPVerify(r.Context(), usecase.OTPVerifyInput{
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Code:        req.Code,
		Purpose:     entity.PurposeFromString(req.Purpose),
	}); err != nil {
		return nil, err
	}

	return OTPVerifyResponse{}, nil
}

// Login authenticates an identifier and password pair.
// @Summary Authenticate user
// @Description Validates credentials and returns an access token.
// @Tags Identity
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} router.successResponse{data=LoginResponse} "Authentication result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid credentials"
// @Failure 403 {object} router.errorResponse "Account disabled or not verified"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{AccessToken: resp.AccessToken}, nil
}

// PasswordReset replaces the password after verifying a reset code.
// @Summary Reset password
// @Description Validates a password-reset code and replaces the account password.
// @Tags Identity
// @Accept json
// @Produce json
// @Param request body PasswordResetRequest true "Reset payload"
// @Success 200 {object} router.successResponse "Reset result"
// @Failure 400 {object} router.errorResponse "Invalid request body or code"
// @Failure 404 {object} router.errorResponse "Account not registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/password/reset [post]
func (h *HTTPEndpoint) PasswordReset(r *router.Request) (any, error) {
	var req PasswordResetRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PasswordReset(r.Context(), usecase.PasswordResetInput{
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Code:        req.Code,
		NewPassword: req.NewPassword,
	}); err != nil {
		return nil, err
	}

	return PasswordResetResponse{}, nil
}

// Me returns the authenticated user's detail.
// @Summary Current user
// @Description Returns the profile of the authenticated user.
// @Tags Identity
// @Produce json
// @Success 200 {object} router.successResponse{data=MeResponse} "User detail"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 404 {object} router.errorResponse "Account not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/v1/identity/me [get]
func (h *HTTPEndpoint) Me(r *router.Request) (any, error) {
	resp, err := h.uc.Me(r.Context())
	if err != nil {
		return nil, err
	}

	return MeResponse{
		ID:          resp.ID,
		Email:       resp.Email,
		PhoneNumber: resp.PhoneNumber,
		FirstName:   resp.FirstName,
		LastName:    resp.LastName,
		Status:      resp.Status,
		Verified:    resp.Verified,
	}, nil
}
