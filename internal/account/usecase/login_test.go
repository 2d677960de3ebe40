package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/notewallet/notewallet/internal/account/entity"
)

func activeAccount(env *testEnv, t *testing.T, code string) entity.Account {
	t.Helper()
	expires := testNow.Add(10 * time.Minute)
	return entity.Account{
		ID:           42,
		Name:         "Ada Lovelace",
		Email:        "ada@example.com",
		Status:       entity.AccountStatusActive,
		OTPHash:      env.otpHash(t, code),
		OTPExpiresAt: &expires,
	}
}

func TestLoginSendOTP_Success(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, entity.Account{
		ID:     42,
		Email:  "ada@example.com",
		Status: entity.AccountStatusActive,
	})

	if err := env.uc.LoginSendOTP(context.Background(), LoginSendOTPInput{
		Email: "ada@example.com",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(env.repo.setOTPs) != 1 {
		t.Fatalf("expected 1 otp stored, got %d", len(env.repo.setOTPs))
	}
	stored := env.repo.setOTPs[0]
	if stored.AccountID != 42 {
		t.Fatalf("otp stored for wrong account %d", stored.AccountID)
	}
	if !env.hmac.Verify(stored.OTPHash, "123456") {
		t.Fatal("stored otp hash does not match the generated code")
	}
	if want := testNow.Add(10 * time.Minute); !stored.ExpiresAt.Equal(want) {
		t.Fatalf("expected expiry %v, got %v", want, stored.ExpiresAt)
	}

	if len(env.mailer.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(env.mailer.sent))
	}
	if got := env.mailer.sent[0].Subject; got != "Your login OTP - NoteWallet" {
		t.Fatalf("unexpected subject %q", got)
	}
}

func TestLoginSendOTP_UnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	err := env.uc.LoginSendOTP(context.Background(), LoginSendOTPInput{Email: "ghost@example.com"})
	wantBusinessError(t, err, "User not found", http.StatusNotFound)
}

func TestLoginSendOTP_Unverified(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, entity.Account{
		ID:     42,
		Email:  "ada@example.com",
		Status: entity.AccountStatusUnverified,
	})

	err := env.uc.LoginSendOTP(context.Background(), LoginSendOTPInput{Email: "ada@example.com"})
	wantBusinessError(t, err,
		"Registration incomplete: verify your email to activate your account.",
		http.StatusForbidden)
}

func TestLoginSendOTP_RateLimited(t *testing.T) {
	env := newTestEnv(t)
	env.limiter.allow = false

	err := env.uc.LoginSendOTP(context.Background(), LoginSendOTPInput{Email: "ada@example.com"})
	wantBusinessError(t, err, "Too many OTP requests, please try again later", http.StatusTooManyRequests)

	if len(env.limiter.keys) != 1 || env.limiter.keys[0] != "login:ada@example.com" {
		t.Fatalf("unexpected limiter keys %v", env.limiter.keys)
	}
}

func TestLoginSendOTP_MailFailureAfterPersist(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, entity.Account{
		ID:     42,
		Email:  "ada@example.com",
		Status: entity.AccountStatusActive,
	})
	env.mailer.err = errors.New("smtp connection refused")

	err := env.uc.LoginSendOTP(context.Background(), LoginSendOTPInput{Email: "ada@example.com"})

	wantBusinessError(t, err, "Server error", http.StatusInternalServerError)

	// The code is stored before dispatch; a failed send leaves it in place.
	if len(env.repo.setOTPs) != 1 || env.repo.setOTPs[0].AccountID != 42 {
		t.Fatalf("expected the otp to be persisted, got %v", env.repo.setOTPs)
	}
}

func TestLoginVerifyOTP_Success(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, activeAccount(env, t, "123456"))

	out, err := env.uc.LoginVerifyOTP(context.Background(), LoginVerifyOTPInput{
		Email: "ada@example.com",
		OTP:   "123456",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Token == "" {
		t.Fatal("expected a session token")
	}

	if len(env.repo.clearedIDs) != 1 || env.repo.clearedIDs[0] != 42 {
		t.Fatalf("expected otp cleared for account 42, got %v", env.repo.clearedIDs)
	}

	// The consumed code cannot be replayed.
	_, err = env.uc.LoginVerifyOTP(context.Background(), LoginVerifyOTPInput{
		Email: "ada@example.com",
		OTP:   "123456",
	})
	wantBusinessError(t, err, "Invalid or expired OTP", http.StatusBadRequest)
}

func TestLoginVerifyOTP_TrimsPresentedCode(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, activeAccount(env, t, "123456"))

	if _, err := env.uc.LoginVerifyOTP(context.Background(), LoginVerifyOTPInput{
		Email: "ada@example.com",
		OTP:   "\t123456\n",
	}); err != nil {
		t.Fatalf("whitespace-padded code must verify, got %v", err)
	}
}

func TestLoginVerifyOTP_WrongCode(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, activeAccount(env, t, "123456"))

	_, err := env.uc.LoginVerifyOTP(context.Background(), LoginVerifyOTPInput{
		Email: "ada@example.com",
		OTP:   "654321",
	})
	wantBusinessError(t, err, "Invalid or expired OTP", http.StatusBadRequest)
}

func TestLoginVerifyOTP_Expired(t *testing.T) {
	env := newTestEnv(t)
	acc := activeAccount(env, t, "123456")
	past := testNow.Add(-time.Second)
	acc.OTPExpiresAt = &past
	env.seedAccount(t, acc)

	_, err := env.uc.LoginVerifyOTP(context.Background(), LoginVerifyOTPInput{
		Email: "ada@example.com",
		OTP:   "123456",
	})
	wantBusinessError(t, err, "Invalid or expired OTP", http.StatusBadRequest)
}

func TestLoginVerifyOTP_Unverified(t *testing.T) {
	env := newTestEnv(t)
	acc := activeAccount(env, t, "123456")
	acc.Status = entity.AccountStatusUnverified
	env.seedAccount(t, acc)

	_, err := env.uc.LoginVerifyOTP(context.Background(), LoginVerifyOTPInput{
		Email: "ada@example.com",
		OTP:   "123456",
	})
	wantBusinessError(t, err, "Please verify your email first", http.StatusForbidden)
}
