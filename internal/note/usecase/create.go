package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/notewallet/notewallet/internal/note/entity"
	"github.com/notewallet/notewallet/internal/pkg/goerror"
)

type CreateNoteInput struct {
	Content string `validate:"required"`
}

// CreateNote stores a new note owned by the authenticated account.
func (s *Usecase) CreateNote(ctx context.Context, in CreateNoteInput) (*entity.Note, error) {
	ctx, span := s.startSpan(ctx, "CreateNote")
	defer span.End()

	in.Content = strings.TrimSpace(in.Content)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	email, err := s.ownerEmail(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	note := entity.Note{
		ID:        s.uid.Generate(),
		UserEmail: email,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repoDB.CreateNote(ctx, note); err != nil {
		slog.ErrorContext(ctx, "failed to repo create note", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &note, nil
}
