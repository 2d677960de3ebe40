package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/notewallet/notewallet/internal/account/entity"
	"github.com/notewallet/notewallet/internal/pkg/config"
	"github.com/notewallet/notewallet/internal/pkg/goerror"
	"github.com/notewallet/notewallet/internal/pkg/hash"
	"github.com/notewallet/notewallet/internal/pkg/instrument"
	"github.com/notewallet/notewallet/internal/pkg/jwt"
	"github.com/notewallet/notewallet/internal/pkg/mail"
	"github.com/notewallet/notewallet/internal/pkg/validator"
)

var testNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

type fakeOTP struct {
	code string
	err  error
}

func (f fakeOTP) Generate() (string, error) { return f.code, f.err }

type fakeLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (f *fakeLimiter) Allow(_ context.Context, key string) (bool, error) {
	f.keys = append(f.keys, key)
	return f.allow, f.err
}

type fakeMailer struct {
	sent []mail.Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeMailer) Close() error { return nil }

type fakeJWT struct {
	token string
	err   error
}

func (f fakeJWT) Generate(int64, string) (string, error) { return f.token, f.err }

func (f fakeJWT) Verify(string) (jwt.Claims, error) { return jwt.Claims{}, nil }

type seqID struct{ next int64 }

func (s *seqID) Generate() int64 {
	s.next++
	return s.next
}

type fakeRepo struct {
	accounts map[string]*entity.Account // keyed by email

	created []entity.NewAccount
	updated []entity.UpdatePendingAccount
	setOTPs []entity.PendingOTP

	verifiedIDs []int64
	clearedIDs  []int64

	failWith error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{accounts: make(map[string]*entity.Account)}
}

func (f *fakeRepo) GetAccountByEmail(_ context.Context, email string) (*entity.Account, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	acc, ok := f.accounts[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	cp := *acc
	return &cp, nil
}

func (f *fakeRepo) GetAccountByID(_ context.Context, id int64) (*entity.Account, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, acc := range f.accounts {
		if acc.ID == id {
			cp := *acc
			return &cp, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeRepo) CreateAccount(_ context.Context, in entity.NewAccount) error {
	f.created = append(f.created, in)
	f.accounts[in.Email] = &entity.Account{
		ID:           in.ID,
		Name:         in.Name,
		DOB:          in.DOB,
		Email:        in.Email,
		Status:       in.Status,
		OTPHash:      &in.OTPHash,
		OTPExpiresAt: &in.ExpiresAt,
	}
	return nil
}

func (f *fakeRepo) UpdatePendingAccount(_ context.Context, in entity.UpdatePendingAccount) error {
	f.updated = append(f.updated, in)
	for _, acc := range f.accounts {
		if acc.ID == in.ID {
			acc.Name = in.Name
			acc.DOB = in.DOB
			acc.OTPHash = &in.OTPHash
			acc.OTPExpiresAt = &in.ExpiresAt
		}
	}
	return nil
}

func (f *fakeRepo) SetOTP(_ context.Context, in entity.PendingOTP) error {
	f.setOTPs = append(f.setOTPs, in)
	for _, acc := range f.accounts {
		if acc.ID == in.AccountID {
			acc.OTPHash = &in.OTPHash
			acc.OTPExpiresAt = &in.ExpiresAt
		}
	}
	return nil
}

func (f *fakeRepo) VerifyAccount(_ context.Context, id int64) error {
	f.verifiedIDs = append(f.verifiedIDs, id)
	for _, acc := range f.accounts {
		if acc.ID == id {
			acc.Status = entity.AccountStatusActive
			acc.OTPHash = nil
			acc.OTPExpiresAt = nil
		}
	}
	return nil
}

func (f *fakeRepo) ClearOTP(_ context.Context, id int64) error {
	f.clearedIDs = append(f.clearedIDs, id)
	for _, acc := range f.accounts {
		if acc.ID == id {
			acc.OTPHash = nil
			acc.OTPExpiresAt = nil
		}
	}
	return nil
}

type testEnv struct {
	uc      *Usecase
	repo    *fakeRepo
	mailer  *fakeMailer
	limiter *fakeLimiter
	hmac    hash.Hash
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(`
modules:
  account:
    otp_ttl_minutes: 10
`))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	env := &testEnv{
		repo:    newFakeRepo(),
		mailer:  &fakeMailer{},
		limiter: &fakeLimiter{allow: true},
		hmac:    hash.NewHMACSHA256("test-secret"),
	}

	env.uc = New(Dependency{
		RepoDB:     env.repo,
		Validator:  v10,
		Config:     cfg,
		Mailer:     env.mailer,
		OTP:        fakeOTP{code: "123456"},
		HMAC:       env.hmac,
		Limiter:    env.limiter,
		UID:        &seqID{},
		Clock:      fixedClock{now: testNow},
		JWT:        fakeJWT{token: "signed-token"},
		Instrument: instrument.NewNoop(),
	})

	return env
}

// seedAccount stores an account directly in the fake repo.
func (e *testEnv) seedAccount(t *testing.T, acc entity.Account) {
	t.Helper()
	cp := acc
	e.repo.accounts[acc.Email] = &cp
}

// otpHash returns the stored form of a plaintext code.
func (e *testEnv) otpHash(t *testing.T, code string) *string {
	t.Helper()
	h, err := e.hmac.Hash(code)
	if err != nil {
		t.Fatalf("failed to hash otp: %v", err)
	}
	s := string(h)
	return &s
}

func wantBusinessError(t *testing.T, err error, msg string, status int) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected goerror.Error, got %v", err)
	}
	if gerr.Msg() != msg {
		t.Fatalf("expected message %q, got %q", msg, gerr.Msg())
	}
	if gerr.StatusCode() != status {
		t.Fatalf("expected status %d, got %d", status, gerr.StatusCode())
	}
}
