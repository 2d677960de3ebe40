package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/notewallet/notewallet/internal/account/entity"
)

func TestRegisterSendOTP_NewAccount(t *testing.T) {
	env := newTestEnv(t)

	err := env.uc.RegisterSendOTP(context.Background(), RegisterSendOTPInput{
		Name:  "Ada Lovelace",
		DOB:   "1990-12-10",
		Email: "Ada@Example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(env.repo.created) != 1 {
		t.Fatalf("expected 1 account created, got %d", len(env.repo.created))
	}

	created := env.repo.created[0]
	if created.Email != "ada@example.com" {
		t.Fatalf("expected lowercased email, got %q", created.Email)
	}
	if created.Status != entity.AccountStatusUnverified {
		t.Fatalf("expected unverified status, got %v", created.Status)
	}
	if !env.hmac.Verify(created.OTPHash, "123456") {
		t.Fatal("stored otp hash does not match the generated code")
	}
	if want := testNow.Add(10 * time.Minute); !created.ExpiresAt.Equal(want) {
		t.Fatalf("expected expiry %v, got %v", want, created.ExpiresAt)
	}

	if len(env.mailer.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(env.mailer.sent))
	}
	msg := env.mailer.sent[0]
	if msg.Subject != "NoteWallet - Verify your account" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	if msg.TextBody != "Your OTP is 123456. It is valid for 10 minutes." {
		t.Fatalf("unexpected body %q", msg.TextBody)
	}
	if len(msg.To) != 1 || msg.To[0] != "ada@example.com" {
		t.Fatalf("unexpected recipients %v", msg.To)
	}
}

func TestRegisterSendOTP_AlreadyVerified(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, entity.Account{
		ID:     1,
		Email:  "ada@example.com",
		Status: entity.AccountStatusActive,
	})

	err := env.uc.RegisterSendOTP(context.Background(), RegisterSendOTPInput{
		Name:  "Ada Lovelace",
		DOB:   "1990-12-10",
		Email: "ada@example.com",
	})

	wantBusinessError(t, err, "User already exists", http.StatusBadRequest)

	if len(env.mailer.sent) != 0 {
		t.Fatal("no email should be sent for a verified account")
	}
}

func TestRegisterSendOTP_PendingAccountRefreshed(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, entity.Account{
		ID:      7,
		Name:    "Old Name",
		DOB:     "1980-01-01",
		Email:   "ada@example.com",
		Status:  entity.AccountStatusUnverified,
		OTPHash: env.otpHash(t, "999999"),
	})

	err := env.uc.RegisterSendOTP(context.Background(), RegisterSendOTPInput{
		Name:  "Ada Lovelace",
		DOB:   "1990-12-10",
		Email: "ada@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(env.repo.created) != 0 {
		t.Fatal("existing pending account must be updated, not recreated")
	}
	if len(env.repo.updated) != 1 {
		t.Fatalf("expected 1 update, got %d", len(env.repo.updated))
	}

	upd := env.repo.updated[0]
	if upd.ID != 7 || upd.Name != "Ada Lovelace" || upd.DOB != "1990-12-10" {
		t.Fatalf("unexpected update payload %+v", upd)
	}
	if !env.hmac.Verify(upd.OTPHash, "123456") {
		t.Fatal("refreshed otp hash does not match the new code")
	}
}

func TestRegisterSendOTP_RateLimited(t *testing.T) {
	env := newTestEnv(t)
	env.limiter.allow = false

	err := env.uc.RegisterSendOTP(context.Background(), RegisterSendOTPInput{
		Name:  "Ada Lovelace",
		DOB:   "1990-12-10",
		Email: "ada@example.com",
	})

	wantBusinessError(t, err, "Too many OTP requests, please try again later", http.StatusTooManyRequests)

	if len(env.repo.created)+len(env.repo.updated) != 0 {
		t.Fatal("nothing should be persisted when rate limited")
	}
	if len(env.limiter.keys) != 1 || env.limiter.keys[0] != "register:ada@example.com" {
		t.Fatalf("unexpected limiter keys %v", env.limiter.keys)
	}
}

func TestRegisterSendOTP_MailFailureAfterPersist(t *testing.T) {
	env := newTestEnv(t)
	env.mailer.err = errors.New("smtp connection refused")

	err := env.uc.RegisterSendOTP(context.Background(), RegisterSendOTPInput{
		Name:  "Ada Lovelace",
		DOB:   "1990-12-10",
		Email: "ada@example.com",
	})

	wantBusinessError(t, err, "Server error", http.StatusInternalServerError)

	// The pending account and its code are written before dispatch, so a
	// failed send leaves them in place.
	if len(env.repo.created) != 1 {
		t.Fatalf("expected the pending account to be persisted, got %d creates", len(env.repo.created))
	}
	if !env.hmac.Verify(env.repo.created[0].OTPHash, "123456") {
		t.Fatal("persisted otp hash must survive the failed send")
	}
}

func TestRegisterSendOTP_InvalidInput(t *testing.T) {
	env := newTestEnv(t)

	cases := map[string]RegisterSendOTPInput{
		"missing email": {Name: "Ada Lovelace", DOB: "1990-12-10"},
		"bad email":     {Name: "Ada Lovelace", DOB: "1990-12-10", Email: "not-an-email"},
		"bad dob":       {Name: "Ada Lovelace", DOB: "12/10/1990", Email: "ada@example.com"},
		"future dob":    {Name: "Ada Lovelace", DOB: "2999-01-01", Email: "ada@example.com"},
		"numeric name":  {Name: "4d4", DOB: "1990-12-10", Email: "ada@example.com"},
	}

	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if err := env.uc.RegisterSendOTP(context.Background(), in); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
