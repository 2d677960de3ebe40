package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/notewallet/notewallet/internal/account/entity"
	"github.com/notewallet/notewallet/internal/pkg/goerror"
)

type RegisterVerifyOTPInput struct {
	Email string `validate:"required,email"`
	OTP   string `validate:"required"`
}

type RegisterVerifyOTPOutput struct {
	Token string
}

// RegisterVerifyOTP completes registration: it checks the presented code
// against the stored one, activates the account, and issues a session token.
// The code check runs before the expiry check.
func (s *Usecase) RegisterVerifyOTP(ctx context.Context, in RegisterVerifyOTPInput) (*RegisterVerifyOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "RegisterVerifyOTP")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.OTP = strings.TrimSpace(in.OTP)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	acc, err := s.repoDB.GetAccountByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("No user found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if acc.Status.Ensure() == entity.AccountStatusActive {
		return nil, goerror.NewBusiness("User already verified", goerror.CodeConflict)
	}

	if acc.OTPHash == nil || !s.hmac.Verify(*acc.OTPHash, in.OTP) {
		slog.WarnContext(ctx, "registration otp mismatch", "account_id", acc.ID)
		return nil, goerror.NewBusiness("Invalid OTP", goerror.CodeInvalidInput)
	}

	if acc.OTPExpiresAt == nil || s.clock.Now().After(*acc.OTPExpiresAt) {
		slog.WarnContext(ctx, "registration otp expired", "account_id", acc.ID)
		return nil, goerror.NewBusiness("OTP expired", goerror.CodeInvalidInput)
	}

	if err := s.repoDB.VerifyAccount(ctx, acc.ID); err != nil {
		slog.ErrorContext(ctx, "failed to repo verify account", "account_id", acc.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	token, err := s.jwt.Generate(acc.ID, acc.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate session token", "account_id", acc.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &RegisterVerifyOTPOutput{Token: token}, nil
}
