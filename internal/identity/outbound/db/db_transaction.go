package db

import (
	"context"
	"errors"
	"log/slog"

	"github.com/etradehq/identity/internal/identity/entity"
	"github.com/jackc/pgx/v5"
)

func (s *DB) transaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// NewRegistration persists the user, credential and empty passcode rows
// atomically.
func (s *DB) NewRegistration(ctx context.Context, user entity.NewUser, hash string) (err error) {
	ctx, span := s.startSpan(ctx, "NewRegistration")
	defer func() { s.endSpan(span, err) }()

	err = s.transaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO identity_users (id, email, phone_number, first_name, last_name, status)
			VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6)`,
			user.ID, user.Email, user.PhoneNumber, user.FirstName, user.LastName, user.Status,
		); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO identity_user_credentials (user_id, password)
			VALUES ($1, $2)`, user.ID, hash,
		); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO identity_otps (user_id, code, sent_at, verified)
			VALUES ($1, '', NULL, FALSE)`, user.ID)

		return err
	})
	if err != nil {
		err = s.mapError(err)
		return err
	}

	return nil
}

// ActivateUser flips the passcode to verified and promotes the account in
// one transaction. It reports false when the guarded update matches no row,
// which means the code changed or the flag was already set.
func (s *DB) ActivateUser(ctx context.Context, userID int64, code string) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "ActivateUser")
	defer func() { s.endSpan(span, err) }()

	var flipped bool
	err = s.transaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE identity_otps
			SET verified = TRUE, updated_at = NOW()
			WHERE user_id = $1 AND code = $2 AND NOT verified`, userID, code)
		if err != nil {
			return err
		}

		if tag.RowsAffected() != 1 {
			return nil
		}
		flipped = true

		_, err = tx.Exec(ctx, `
			UPDATE identity_users
			SET status = $2, updated_at = NOW()
			WHERE id = $1 AND status = $3`,
			userID, entity.UserStatusActive, entity.UserStatusUnverified)

		return err
	})
	if err != nil {
		err = s.mapError(err)
		return false, err
	}

	return flipped, nil
}
