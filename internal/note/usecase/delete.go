package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/notewallet/notewallet/internal/pkg/goerror"
)

type DeleteNoteInput struct {
	ID int64 `validate:"required"`
}

// DeleteNote removes a note after checking the caller owns it. Deletion is
// permanent.
func (s *Usecase) DeleteNote(ctx context.Context, in DeleteNoteInput) error {
	ctx, span := s.startSpan(ctx, "DeleteNote")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	note, err := s.repoDB.GetNoteByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Note not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get note by id", "note_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	email, err := s.ownerEmail(ctx)
	if err != nil {
		return err
	}

	if note.UserEmail != email {
		slog.WarnContext(ctx, "note delete denied for non-owner", "note_id", in.ID)
		return goerror.NewBusiness("Unauthorized", goerror.CodeForbidden)
	}

	if err := s.repoDB.DeleteNote(ctx, in.ID); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete note", "note_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
