package db

import (
	"context"

	"github.com/notewallet/notewallet/internal/account/entity"
	"github.com/notewallet/notewallet/internal/pkg/goerror"
)

func (s *DB) UpdatePendingAccount(ctx context.Context, in entity.UpdatePendingAccount) (err error) {
	ctx, span := s.startSpan(ctx, "UpdatePendingAccount")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		UPDATE accounts
		SET name = $2, dob = $3, otp_hash = $4, otp_expires_at = $5, updated_at = now()
		WHERE id = $1 AND status = $6`,
		in.ID, in.Name, in.DOB, in.OTPHash, in.ExpiresAt, entity.AccountStatusUnverified,
	)
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

func (s *DB) SetOTP(ctx context.Context, in entity.PendingOTP) (err error) {
	ctx, span := s.startSpan(ctx, "SetOTP")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		UPDATE accounts
		SET otp_hash = $2, otp_expires_at = $3, updated_at = now()
		WHERE id = $1`,
		in.AccountID, in.OTPHash, in.ExpiresAt,
	)
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

func (s *DB) VerifyAccount(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "VerifyAccount")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		UPDATE accounts
		SET status = $2, otp_hash = NULL, otp_expires_at = NULL, updated_at = now()
		WHERE id = $1 AND status = $3`,
		id, entity.AccountStatusActive, entity.AccountStatusUnverified,
	)
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

func (s *DB) ClearOTP(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "ClearOTP")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		UPDATE accounts
		SET otp_hash = NULL, otp_expires_at = NULL, updated_at = now()
		WHERE id = $1`,
		id,
	)
	err = s.mapError(err)
	return err
}
