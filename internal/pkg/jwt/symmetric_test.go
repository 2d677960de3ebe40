package jwt

import (
	"errors"
	"testing"
	"time"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")

type stubClock struct{ now time.Time }

func (s stubClock) Now() time.Time { return s.now }

type stubUUID struct{}

func (stubUUID) Generate() string { return "00000000-0000-0000-0000-000000000001" }

func newTestJWT(t *testing.T, now time.Time, ttl time.Duration) *Symmetric {
	t.Helper()

	s, err := NewHS512(Config{
		Secret:    testSecret,
		Issuer:    "notewallet",
		Audiences: []string{"notewallet-web"},
		TTL:       ttl,
		Clock:     stubClock{now: now},
		UUID:      stubUUID{},
	})
	if err != nil {
		t.Fatalf("failed to build jwt: %v", err)
	}
	return s
}

func TestNewHS512_ShortSecret(t *testing.T) {
	_, err := NewHS512(Config{Secret: []byte("too-short")})
	if !errors.Is(err, ErrSigningKeyTooShort) {
		t.Fatalf("expected ErrSigningKeyTooShort, got %v", err)
	}
}

func TestSymmetric_GenerateAndVerify(t *testing.T) {
	s := newTestJWT(t, time.Now(), time.Hour)

	token, err := s.Generate(42, "ada@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	clm, err := s.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	if clm.AccountID != 42 {
		t.Fatalf("expected account id 42, got %d", clm.AccountID)
	}
	if clm.AccountEmail != "ada@example.com" {
		t.Fatalf("unexpected email %q", clm.AccountEmail)
	}
	if clm.Subject != "42" {
		t.Fatalf("expected subject %q, got %q", "42", clm.Subject)
	}
	if clm.Issuer != "notewallet" {
		t.Fatalf("unexpected issuer %q", clm.Issuer)
	}
}

func TestSymmetric_VerifyExpired(t *testing.T) {
	s := newTestJWT(t, time.Now().Add(-2*time.Hour), time.Hour)

	token, err := s.Generate(42, "ada@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := s.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestSymmetric_VerifyWrongKey(t *testing.T) {
	issuerSide := newTestJWT(t, time.Now(), time.Hour)

	other := make([]byte, len(testSecret))
	copy(other, testSecret)
	other[0] ^= 0xff

	verifier, err := NewHS512(Config{
		Secret:    other,
		Issuer:    "notewallet",
		Audiences: []string{"notewallet-web"},
		TTL:       time.Hour,
		Clock:     stubClock{now: time.Now()},
		UUID:      stubUUID{},
	})
	if err != nil {
		t.Fatalf("failed to build jwt: %v", err)
	}

	token, err := issuerSide.Generate(42, "ada@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("expected verification failure with a different key")
	}
}

func TestSymmetric_VerifyGarbage(t *testing.T) {
	s := newTestJWT(t, time.Now(), time.Hour)

	if _, err := s.Verify("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestAuthContextRoundTrip(t *testing.T) {
	ctx := SetAuth(t.Context(), Claims{AccountID: 7, AccountEmail: "ada@example.com"})

	clm := GetAuth(ctx)
	if clm == nil {
		t.Fatal("expected claims in context")
	}
	if clm.AccountID != 7 || clm.AccountEmail != "ada@example.com" {
		t.Fatalf("unexpected claims %+v", clm)
	}

	if GetAuth(t.Context()) != nil {
		t.Fatal("expected nil claims for a bare context")
	}
}
