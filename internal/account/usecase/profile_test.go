package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/notewallet/notewallet/internal/account/entity"
	"github.com/notewallet/notewallet/internal/pkg/jwt"
)

func TestProfile_Success(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, entity.Account{
		ID:     42,
		Name:   "Ada Lovelace",
		Email:  "ada@example.com",
		Status: entity.AccountStatusActive,
	})

	ctx := jwt.SetAuth(context.Background(), jwt.Claims{
		AccountID:    42,
		AccountEmail: "ada@example.com",
	})

	out, err := env.uc.Profile(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Name != "Ada Lovelace" || out.Email != "ada@example.com" {
		t.Fatalf("unexpected profile %+v", out)
	}
}

func TestProfile_NoAuth(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.Profile(context.Background())
	wantBusinessError(t, err, "Authentication required", http.StatusUnauthorized)
}

func TestProfile_AccountGone(t *testing.T) {
	env := newTestEnv(t)

	ctx := jwt.SetAuth(context.Background(), jwt.Claims{
		AccountID:    42,
		AccountEmail: "ada@example.com",
	})

	_, err := env.uc.Profile(ctx)
	wantBusinessError(t, err, "User not found", http.StatusNotFound)
}
