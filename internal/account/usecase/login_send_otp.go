package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/notewallet/notewallet/internal/account/entity"
	"github.com/notewallet/notewallet/internal/pkg/goerror"
	"github.com/notewallet/notewallet/internal/pkg/mail"
)

type LoginSendOTPInput struct {
	Email string `validate:"required,email"`
}

// LoginSendOTP issues a login code to an already verified account.
func (s *Usecase) LoginSendOTP(ctx context.Context, in LoginSendOTPInput) error {
	ctx, span := s.startSpan(ctx, "LoginSendOTP")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.checkRateLimit(ctx, "login", in.Email); err != nil {
		return err
	}

	acc, err := s.repoDB.GetAccountByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	if acc.Status.Ensure() != entity.AccountStatusActive {
		return goerror.NewBusiness(
			"Registration incomplete: verify your email to activate your account.",
			goerror.CodeForbidden,
		)
	}

	code, codeHash, err := s.issueOTP(ctx)
	if err != nil {
		return err
	}

	ttl := s.otpTTL()
	if err := s.repoDB.SetOTP(ctx, entity.PendingOTP{
		AccountID: acc.ID,
		OTPHash:   codeHash,
		ExpiresAt: s.clock.Now().Add(ttl),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo set login otp", "account_id", acc.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.mailer.Send(ctx, mail.Message{
		To:       []string{in.Email},
		Subject:  "Your login OTP - NoteWallet",
		TextBody: s.otpMailBody(code, ttl),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to send login otp email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
