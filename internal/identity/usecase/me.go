package usecase

import (
	"context"
	"log/slog"

	"github.com/etradehq/identity/internal/pkg/goerror"
	"github.com/etradehq/identity/internal/pkg/jwt"
)

type MeOutput struct {
	ID          int64
	Email       string
	PhoneNumber string
	FirstName   string
	LastName    string
	Status      string
	Verified    bool
}

// Me returns the authenticated principal's detail.
func (s *Usecase) Me(ctx context.Context) (*MeOutput, error) {
	ctx, span := s.startSpan(ctx, "Me")
	defer span.End()

	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	uo, err := s.repoDB.GetUserOTPByID(ctx, clm.UserID)
	if isNotFound(err) {
		slog.WarnContext(ctx, "authenticated user no longer exists", "user_id", clm.UserID)
		return nil, goerror.NewBusiness("Account not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &MeOutput{
		ID:          uo.User.ID,
		Email:       uo.User.Email,
		PhoneNumber: uo.User.PhoneNumber,
		FirstName:   uo.User.FirstName,
		LastName:    uo.User.LastName,
		Status:      uo.User.Status.String(),
		Verified:    uo.OTP != nil && uo.OTP.Verified,
	}, nil
}
