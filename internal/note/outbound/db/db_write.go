package db

import (
	"context"

	"github.com/notewallet/notewallet/internal/note/entity"
	"github.com/notewallet/notewallet/internal/pkg/goerror"
)

func (s *DB) CreateNote(ctx context.Context, in entity.Note) (err error) {
	ctx, span := s.startSpan(ctx, "CreateNote")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO notes (id, user_email, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		in.ID, in.UserEmail, in.Content, in.CreatedAt, in.UpdatedAt,
	)
	err = s.mapError(err)
	return err
}

func (s *DB) DeleteNote(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteNote")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		err = s.mapError(err)
		return err
	}
	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}
	return nil
}
