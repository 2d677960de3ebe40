package inbound

import (
	"github.com/notewallet/notewallet/internal/account/usecase"
	"github.com/notewallet/notewallet/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for registration, login, and profile.
type HTTPEndpoint struct {
	uc uc
}

// RegisterSendOTP starts registration by emailing a verification code.
func (h *HTTPEndpoint) RegisterSendOTP(r *router.Request) (any, error) {
	var req RegisterSendOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.RegisterSendOTP(r.Context(), usecase.RegisterSendOTPInput{
		Name:  req.Name,
		DOB:   req.DOB,
		Email: req.Email,
	}); err != nil {
		return nil, err
	}

	return RegisterSendOTPResponse{Message: "OTP sent to email"}, nil
}

// RegisterVerifyOTP completes registration and returns a session token.
func (h *HTTPEndpoint) RegisterVerifyOTP(r *router.Request) (any, error) {
	var req VerifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.RegisterVerifyOTP(r.Context(), usecase.RegisterVerifyOTPInput{
		Email: req.Email,
		OTP:   req.OTP,
	})
	if err != nil {
		return nil, err
	}

	return RegisterVerifyOTPResponse{
		Success: true,
		Message: "Account created successfully!",
		Token:   resp.Token,
	}, nil
}

// LoginSendOTP emails a login code to a verified account.
func (h *HTTPEndpoint) LoginSendOTP(r *router.Request) (any, error) {
	var req LoginSendOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.LoginSendOTP(r.Context(), usecase.LoginSendOTPInput{
		Email: req.Email,
	}); err != nil {
		return nil, err
	}

	return LoginSendOTPResponse{Message: "OTP sent to your email"}, nil
}

// LoginVerifyOTP checks a login code and returns a session token.
func (h *HTTPEndpoint) LoginVerifyOTP(r *router.Request) (any, error) {
	var req VerifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.LoginVerifyOTP(r.Context(), usecase.LoginVerifyOTPInput{
		Email: req.Email,
		OTP:   req.OTP,
	})
	if err != nil {
		return nil, err
	}

	return LoginVerifyOTPResponse{
		Success: true,
		Message: "Login successful",
		Token:   resp.Token,
	}, nil
}

// Profile returns the authenticated account's name and email.
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return ProfileResponse{Name: resp.Name, Email: resp.Email}, nil
}
