package usecase

import (
	"context"
	"log/slog"

	"github.com/notewallet/notewallet/internal/note/entity"
	"github.com/notewallet/notewallet/internal/pkg/goerror"
)

// ListNotes returns the authenticated account's notes, newest first.
func (s *Usecase) ListNotes(ctx context.Context) ([]entity.Note, error) {
	ctx, span := s.startSpan(ctx, "ListNotes")
	defer span.End()

	email, err := s.ownerEmail(ctx)
	if err != nil {
		return nil, err
	}

	notes, err := s.repoDB.ListNotesByEmail(ctx, email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list notes by email", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	return notes, nil
}
