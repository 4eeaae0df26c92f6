package db

import (
	"context"
	"time"
)

// EnsureOTP guarantees a passcode row exists for the user. A concurrent
// insert is not an error.
func (s *DB) EnsureOTP(ctx context.Context, userID int64) (err error) {
	ctx, span := s.startSpan(ctx, "EnsureOTP")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO identity_otps (user_id, code, sent_at, verified)
		VALUES ($1, '', NULL, FALSE)
		ON CONFLICT (user_id) DO NOTHING`, userID)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	return nil
}

// SaveOTPDispatch records the code and its delivery time in one statement,
// so a row never carries a code without a sent_at.
func (s *DB) SaveOTPDispatch(ctx context.Context, userID int64, code string, sentAt time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "SaveOTPDispatch")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		UPDATE identity_otps
		SET code = $2, sent_at = $3, updated_at = NOW()
		WHERE user_id = $1`, userID, code, sentAt)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	return nil
}

func (s *DB) UpdateUserCredential(ctx context.Context, userID int64, hash string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserCredential")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		UPDATE identity_user_credentials
		SET password = $2, updated_at = NOW()
		WHERE user_id = $1`, userID, hash)
	if err != nil {
		err = s.mapError(err)
		return err
	}

	return nil
}
