package inbound

import (
	"context"

	"github.com/notewallet/notewallet/internal/account/usecase"
	"github.com/notewallet/notewallet/internal/pkg/router"
)

type uc interface {
	RegisterSendOTP(ctx context.Context, in usecase.RegisterSendOTPInput) error
	RegisterVerifyOTP(ctx context.Context, in usecase.RegisterVerifyOTPInput) (*usecase.RegisterVerifyOTPOutput, error)
	LoginSendOTP(ctx context.Context, in usecase.LoginSendOTPInput) error
	LoginVerifyOTP(ctx context.Context, in usecase.LoginVerifyOTPInput) (*usecase.LoginVerifyOTPOutput, error)
	Profile(ctx context.Context) (*usecase.ProfileOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Registration & Login (public)
	r.POST("/register/send-otp", end.RegisterSendOTP)
	r.POST("/register/verify-otp", end.RegisterVerifyOTP)
	r.POST("/login/send-otp", end.LoginSendOTP)
	r.POST("/login/verify-otp", end.LoginVerifyOTP)

	// Profile (need authenticated)
	r.GET("/me", end.Profile)
}
