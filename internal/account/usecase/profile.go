package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/notewallet/notewallet/internal/pkg/goerror"
)

type ProfileOutput struct {
	Name  string
	Email string
}

// Profile returns the authenticated account's public profile.
func (s *Usecase) Profile(ctx context.Context) (*ProfileOutput, error) {
	ctx, span := s.startSpan(ctx, "Profile")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	acc, err := s.repoDB.GetAccountByID(ctx, clm.AccountID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by id", "account_id", clm.AccountID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProfileOutput{Name: acc.Name, Email: acc.Email}, nil
}
