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

type RegisterSendOTPInput struct {
	Name  string `validate:"required,min=2,max=100,alphaspace"`
	DOB   string `validate:"required,birthdate"`
	Email string `validate:"required,email"`
}

// RegisterSendOTP starts registration: it creates (or refreshes) a pending
// account and emails a one-time code to the address.
func (s *Usecase) RegisterSendOTP(ctx context.Context, in RegisterSendOTPInput) error {
	ctx, span := s.startSpan(ctx, "RegisterSendOTP")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Name = strings.TrimSpace(in.Name)
	in.DOB = strings.TrimSpace(in.DOB)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.checkRateLimit(ctx, "register", in.Email); err != nil {
		return err
	}

	acc, err := s.repoDB.GetAccountByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	if acc != nil && acc.Status.Ensure() == entity.AccountStatusActive {
		return goerror.NewBusiness("User already exists", goerror.CodeConflict)
	}

	code, codeHash, err := s.issueOTP(ctx)
	if err != nil {
		return err
	}

	ttl := s.otpTTL()
	expiresAt := s.clock.Now().Add(ttl)

	if acc == nil {
		err = s.repoDB.CreateAccount(ctx, entity.NewAccount{
			ID:        s.uid.Generate(),
			Name:      in.Name,
			DOB:       in.DOB,
			Email:     in.Email,
			Status:    entity.AccountStatusUnverified,
			OTPHash:   codeHash,
			ExpiresAt: expiresAt,
		})
	} else {
		// Re-registration before verification refreshes the profile fields
		// along with the code.
		err = s.repoDB.UpdatePendingAccount(ctx, entity.UpdatePendingAccount{
			ID:        acc.ID,
			Name:      in.Name,
			DOB:       in.DOB,
			OTPHash:   codeHash,
			ExpiresAt: expiresAt,
		})
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo persist pending account", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	body := s.otpMailBody(code, ttl)
	if err := s.mailer.Send(ctx, mail.Message{
		To:       []string{in.Email},
		Subject:  "NoteWallet - Verify your account",
		TextBody: body,
		HTMLBody: "<p>" + body + "</p>",
	}); err != nil {
		slog.ErrorContext(ctx, "failed to send registration otp email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
