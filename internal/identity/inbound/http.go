package inbound

import (
	"context"

	"github.com/etradehq/identity/internal/identity/usecase"
	"github.com/etradehq/identity/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) error
	OTPSend(ctx context.Context, in usecase.OTPSendInput) error
	OTPVerify(ctx context.Context, in usecase.OTPVerifyInput) error
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	PasswordReset(ctx context.Context, in usecase.PasswordResetInput) error
	Me(ctx context.Context) (*usecase.MeOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Registration & verification
	r.POST("/api/v1/identity/register", end.Register)
	r.POST("/api/v1/identity/otp/send", end.OTPSend)
	r.POST("/api/v1/identity/otp/verify", end.OTPVerify)

	// Authentication
	r.POST("/api/v1/identity/login", end.Login)
	r.POST("/api/v1/identity/password/reset", end.PasswordReset)

	// Profile (need authenticated)
	r.GET("/api/v1/identity/me", end.Me)
}
