package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/notewallet/notewallet/internal/account/entity"
	"github.com/notewallet/notewallet/internal/pkg/goerror"
)

type LoginVerifyOTPInput struct {
	Email string `validate:"required,email"`
	OTP   string `validate:"required"`
}

type LoginVerifyOTPOutput struct {
	Token string
}

// LoginVerifyOTP checks a login code and issues a session token. The stored
// code is cleared on success so it cannot be replayed.
func (s *Usecase) LoginVerifyOTP(ctx context.Context, in LoginVerifyOTPInput) (*LoginVerifyOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "LoginVerifyOTP")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.OTP = strings.TrimSpace(in.OTP)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	acc, err := s.repoDB.GetAccountByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if acc.Status.Ensure() != entity.AccountStatusActive {
		return nil, goerror.NewBusiness("Please verify your email first", goerror.CodeForbidden)
	}

	if acc.OTPHash == nil || !s.hmac.Verify(*acc.OTPHash, in.OTP) {
		slog.WarnContext(ctx, "login otp mismatch", "account_id", acc.ID)
		return nil, goerror.NewBusiness("Invalid or expired OTP", goerror.CodeInvalidInput)
	}

	if acc.OTPExpiresAt == nil || s.clock.Now().After(*acc.OTPExpiresAt) {
		slog.WarnContext(ctx, "login otp expired", "account_id", acc.ID)
		return nil, goerror.NewBusiness("Invalid or expired OTP", goerror.CodeInvalidInput)
	}

	if err := s.repoDB.ClearOTP(ctx, acc.ID); err != nil {
		slog.ErrorContext(ctx, "failed to repo clear otp", "account_id", acc.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	token, err := s.jwt.Generate(acc.ID, acc.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate session token", "account_id", acc.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &LoginVerifyOTPOutput{Token: token}, nil
}
