package db

import (
	"context"

	"github.com/notewallet/notewallet/internal/account/entity"
)

const getAccountColumns = `id, name, dob, email, status, otp_hash, otp_expires_at, created_at, updated_at`

func (s *DB) GetAccountByEmail(ctx context.Context, email string) (_ *entity.Account, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountByEmail")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx,
		`SELECT `+getAccountColumns+` FROM accounts WHERE email = $1`, email)

	return s.scanAccount(row)
}

func (s *DB) GetAccountByID(ctx context.Context, id int64) (_ *entity.Account, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountByID")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx,
		`SELECT `+getAccountColumns+` FROM accounts WHERE id = $1`, id)

	return s.scanAccount(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *DB) scanAccount(row rowScanner) (*entity.Account, error) {
	var acc entity.Account
	err := row.Scan(
		&acc.ID,
		&acc.Name,
		&acc.DOB,
		&acc.Email,
		&acc.Status,
		&acc.OTPHash,
		&acc.OTPExpiresAt,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &acc, nil
}
