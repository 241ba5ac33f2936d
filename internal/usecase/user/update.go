package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nowshad-islam-dev/skipq-api/internal/audit"
	"github.com/nowshad-islam-dev/skipq-api/internal/auth"
	"github.com/nowshad-islam-dev/skipq-api/internal/domain/media"
	domain "github.com/nowshad-islam-dev/skipq-api/internal/domain/user"
	"github.com/nowshad-islam-dev/skipq-api/internal/httperr"
	"github.com/nowshad-islam-dev/skipq-api/internal/validators"
)

type UpdateUserInput struct {
	ID     uint
	Fields validators.UpdateUser

	// ProfilePicture holds the uploaded file, nil when none was sent.
	ProfilePicture []byte
}

type UpdateUser struct {
	repo      domain.Repository
	hasher    auth.PasswordHasher
	tokens    auth.TokenService
	uploader  media.Uploader
	validator *validators.Validator
	audit     audit.Sink
	logger    *slog.Logger
}

func NewUpdateUser(
	repo domain.Repository,
	hasher auth.PasswordHasher,
	tokens auth.TokenService,
	uploader media.Uploader,
	validator *validators.Validator,
	audit audit.Sink,
	logger *slog.Logger,
) *UpdateUser {
	return &UpdateUser{
		repo:      repo,
		hasher:    hasher,
		tokens:    tokens,
		uploader:  uploader,
		validator: validator,
		audit:     audit,
		logger:    logger.With("usecase", "update_user"),
	}
}

func (uc *UpdateUser) Execute(ctx context.Context, in UpdateUserInput) (*Session, error) {
	fields := in.Fields
	fields.Normalize()
	if err := uc.validator.Struct(fields); err != nil {
		return nil, err
	}

	if !fields.HasChanges() && len(in.ProfilePicture) == 0 {
		return nil, domain.ErrNothingToUpdate
	}

	u, err := uc.repo.FindByID(ctx, in.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !uc.hasher.Verify(u.HashedPassword, fields.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	var changed []string

	if len(in.ProfilePicture) > 0 {
		url, err := uc.uploader.Upload(ctx, in.ProfilePicture, media.FolderProfilePictures)
		if err != nil {
			uc.logger.Error("profile picture upload failed", "user_id", u.ID, "error", err)
			return nil, domain.ErrUploadFailed
		}
		u.ProfilePicture = &url
		changed = append(changed, "profilePicture")
	}

	if fields.NewPassword != "" {
		hash, err := uc.hasher.Hash(fields.NewPassword)
		if err != nil {
			return nil, err
		}
		u.HashedPassword = hash
		changed = append(changed, "password")
	}

	if fields.Email != "" {
		u.Email = fields.Email
		changed = append(changed, "email")
	}
	if fields.Phone != "" {
		u.Phone = fields.Phone
		changed = append(changed, "phone")
	}

	if err := uc.repo.Update(ctx, u); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(u.ID),
		Action:   audit.ActionUserUpdated,
		Entity:   "user",
		EntityID: audit.Ptr(u.ID),
		Metadata: map[string][]string{"fields": changed},
	})

	return newSession(ctx, uc.tokens, *u)
}
