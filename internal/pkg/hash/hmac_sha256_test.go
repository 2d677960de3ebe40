package hash

import (
	"encoding/hex"
	"testing"
)

func TestHMACSHA256_RoundTrip(t *testing.T) {
	h := NewHMACSHA256("test-secret")

	hashed, err := h.Hash("123456")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if !h.Verify(string(hashed), "123456") {
		t.Fatal("expected the original value to verify")
	}
	if h.Verify(string(hashed), "654321") {
		t.Fatal("a different value must not verify")
	}
}

func TestHMACSHA256_Deterministic(t *testing.T) {
	h := NewHMACSHA256("test-secret")

	a, _ := h.Hash("123456")
	b, _ := h.Hash("123456")
	if string(a) != string(b) {
		t.Fatal("same input and secret must hash identically")
	}

	if _, err := hex.DecodeString(string(a)); err != nil {
		t.Fatalf("hash is not hex-encoded: %v", err)
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars for sha256, got %d", len(a))
	}
}

func TestHMACSHA256_SecretMatters(t *testing.T) {
	a, _ := NewHMACSHA256("secret-a").Hash("123456")
	b, _ := NewHMACSHA256("secret-b").Hash("123456")
	if string(a) == string(b) {
		t.Fatal("different secrets must produce different hashes")
	}

	if NewHMACSHA256("secret-b").Verify(string(a), "123456") {
		t.Fatal("a hash from another secret must not verify")
	}
}
