package db

import (
	"context"

	"github.com/etradehq/identity/internal/identity/entity"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, COALESCE(email, ''), COALESCE(phone_number, ''),
	first_name, last_name, status, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(
		&u.ID, &u.Email, &u.PhoneNumber,
		&u.FirstName, &u.LastName, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *DB) GetUserByEmail(ctx context.Context, email string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM identity_users
		WHERE email = $1`, email)

	user, err := scanUser(row)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}
	return user, nil
}

func (s *DB) GetUserByPhone(ctx context.Context, phone string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByPhone")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM identity_users
		WHERE phone_number = $1`, phone)

	user, err := scanUser(row)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}
	return user, nil
}

func (s *DB) GetUserLoginInfo(ctx context.Context, id entity.Identifier) (_ *entity.UserLoginInfo, err error) {
	ctx, span := s.startSpan(ctx, "GetUserLoginInfo")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, `
		SELECT u.id, COALESCE(u.email, ''), COALESCE(u.phone_number, ''), u.status,
			c.password, COALESCE(o.verified, FALSE)
		FROM identity_users u
		JOIN identity_user_credentials c ON c.user_id = u.id
		LEFT JOIN identity_otps o ON o.user_id = u.id
		WHERE (u.email = $1 AND $1 <> '') OR (u.phone_number = $2 AND $2 <> '')`,
		id.Email, id.PhoneNumber)

	var info entity.UserLoginInfo
	if err = row.Scan(
		&info.ID, &info.Email, &info.PhoneNumber, &info.Status,
		&info.Password, &info.OTPVerified,
	); err != nil {
		err = s.mapError(err)
		return nil, err
	}

	return &info, nil
}

const userOTPQuery = `
	SELECT u.id, COALESCE(u.email, ''), COALESCE(u.phone_number, ''),
		u.first_name, u.last_name, u.status, u.created_at, u.updated_at,
		o.user_id, o.code, o.sent_at, o.verified, o.created_at, o.updated_at
	FROM identity_users u
	LEFT JOIN identity_otps o ON o.user_id = u.id`

func scanUserOTP(row interface{ Scan(dest ...any) error }) (*entity.UserOTP, error) {
	var (
		uo           entity.UserOTP
		otpUserID    pgtype.Int8
		otpCode      pgtype.Text
		otpSentAt    pgtype.Timestamptz
		otpVerified  pgtype.Bool
		otpCreatedAt pgtype.Timestamptz
		otpUpdatedAt pgtype.Timestamptz
	)

	if err := row.Scan(
		&uo.User.ID, &uo.User.Email, &uo.User.PhoneNumber,
		&uo.User.FirstName, &uo.User.LastName, &uo.User.Status,
		&uo.User.CreatedAt, &uo.User.UpdatedAt,
		&otpUserID, &otpCode, &otpSentAt, &otpVerified, &otpCreatedAt, &otpUpdatedAt,
	); err != nil {
		return nil, err
	}

	if otpUserID.Valid {
		rec := &entity.OTP{
			UserID:    otpUserID.Int64,
			Code:      otpCode.String,
			Verified:  otpVerified.Bool,
			CreatedAt: otpCreatedAt.Time,
			UpdatedAt: otpUpdatedAt.Time,
		}
		if otpSentAt.Valid {
			sentAt := otpSentAt.Time
			rec.SentAt = &sentAt
		}
		uo.OTP = rec
	}

	return &uo, nil
}

func (s *DB) GetUserOTP(ctx context.Context, id entity.Identifier) (_ *entity.UserOTP, err error) {
	ctx, span := s.startSpan(ctx, "GetUserOTP")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, userOTPQuery+`
		WHERE (u.email = $1 AND $1 <> '') OR (u.phone_number = $2 AND $2 <> '')`,
		id.Email, id.PhoneNumber)

	uo, err := scanUserOTP(row)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}
	return uo, nil
}

func (s *DB) GetUserOTPByID(ctx context.Context, userID int64) (_ *entity.UserOTP, err error) {
	ctx, span := s.startSpan(ctx, "GetUserOTPByID")
	defer func() { s.endSpan(span, err) }()

	row := s.conn.QueryRow(ctx, userOTPQuery+`
		WHERE u.id = $1`, userID)

	uo, err := scanUserOTP(row)
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}
	return uo, nil
}
