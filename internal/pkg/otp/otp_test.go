package otp

import (
	"strconv"
	"testing"
)

func TestNumericGenerate(t *testing.T) {
	gen := NewNumeric(6)

	for range 50 {
		code, err := gen.Generate()
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6 digits, got %q", code)
		}
		if _, err := strconv.Atoi(code); err != nil {
			t.Fatalf("code %q is not numeric", code)
		}
	}
}

func TestNumericDigitCounts(t *testing.T) {
	for _, digits := range []int{4, 8} {
		code, err := NewNumeric(digits).Generate()
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if len(code) != digits {
			t.Fatalf("expected %d digits, got %q", digits, code)
		}
	}
}

func TestNumericDefaultDigits(t *testing.T) {
	code, err := NewNumeric(0).Generate()
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(code) != DefaultDigits {
		t.Fatalf("expected %d digits, got %q", DefaultDigits, code)
	}
}
