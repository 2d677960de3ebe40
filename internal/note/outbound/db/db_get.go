package db

import (
	"context"

	"github.com/notewallet/notewallet/internal/note/entity"
)

func (s *DB) GetAccountEmailByID(ctx context.Context, id int64) (_ string, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountEmailByID")
	defer func() { s.endSpan(span, err) }()

	var email string
	err = s.conn.QueryRow(ctx,
		`SELECT email FROM accounts WHERE id = $1`, id).Scan(&email)
	if err != nil {
		return "", s.mapError(err)
	}

	return email, nil
}

func (s *DB) ListNotesByEmail(ctx context.Context, email string) (_ []entity.Note, err error) {
	ctx, span := s.startSpan(ctx, "ListNotesByEmail")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, `
		SELECT id, user_email, content, created_at, updated_at
		FROM notes
		WHERE user_email = $1
		ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var notes []entity.Note
	for rows.Next() {
		var n entity.Note
		if err = rows.Scan(&n.ID, &n.UserEmail, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, s.mapError(err)
		}
		notes = append(notes, n)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return notes, nil
}

func (s *DB) GetNoteByID(ctx context.Context, id int64) (_ *entity.Note, err error) {
	ctx, span := s.startSpan(ctx, "GetNoteByID")
	defer func() { s.endSpan(span, err) }()

	var n entity.Note
	err = s.conn.QueryRow(ctx, `
		SELECT id, user_email, content, created_at, updated_at
		FROM notes
		WHERE id = $1`, id).
		Scan(&n.ID, &n.UserEmail, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &n, nil
}
