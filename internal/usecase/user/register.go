package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nowshad-islam-dev/skipq-api/internal/audit"
	"github.com/nowshad-islam-dev/skipq-api/internal/auth"
	domain "github.com/nowshad-islam-dev/skipq-api/internal/domain/user"
	"github.com/nowshad-islam-dev/skipq-api/internal/dto"
	"github.com/nowshad-islam-dev/skipq-api/internal/httperr"
	"github.com/nowshad-islam-dev/skipq-api/internal/models"
	"github.com/nowshad-islam-dev/skipq-api/internal/validators"
)

type RegisterUser struct {
	repo      domain.Repository
	hasher    auth.PasswordHasher
	validator *validators.Validator
	audit     audit.Sink
	logger    *slog.Logger
}

func NewRegisterUser(
	repo domain.Repository,
	hasher auth.PasswordHasher,
	validator *validators.Validator,
	audit audit.Sink,
	logger *slog.Logger,
) *RegisterUser {
	return &RegisterUser{
		repo:      repo,
		hasher:    hasher,
		validator: validator,
		audit:     audit,
		logger:    logger.With("usecase", "register_user"),
	}
}

func (uc *RegisterUser) Execute(ctx context.Context, in validators.NewUser) (*dto.PublicUser, error) {
	in.Normalize()
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}

	taken, err := uc.repo.ExistsConflicting(ctx, in.Email, in.Phone, in.Username)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if taken {
		return nil, domain.ErrAlreadyExists
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Email:          in.Email,
		Phone:          in.Phone,
		Username:       in.Username,
		HashedPassword: hash,
	}

	// Two concurrent registrations can both pass the pre-check.
	if err := uc.repo.Create(ctx, u); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	view, err := dto.ToPublicUser(*u)
	if err != nil {
		return nil, fmt.Errorf("user view: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(u.ID),
		Action:   audit.ActionUserRegistered,
		Entity:   "user",
		EntityID: audit.Ptr(u.ID),
	})
	uc.logger.Info("user registered", "user_id", u.ID)

	return &view, nil
}
