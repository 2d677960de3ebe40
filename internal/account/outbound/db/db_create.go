package db

import (
	"context"

	"github.com/notewallet/notewallet/internal/account/entity"
)

func (s *DB) CreateAccount(ctx context.Context, in entity.NewAccount) (err error) {
	ctx, span := s.startSpan(ctx, "CreateAccount")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO accounts (id, name, dob, email, status, otp_hash, otp_expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`,
		in.ID, in.Name, in.DOB, in.Email, in.Status, in.OTPHash, in.ExpiresAt,
	)
	err = s.mapError(err)
	return err
}
