package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nowshad-islam-dev/skipq-api/internal/audit"
	domain "github.com/nowshad-islam-dev/skipq-api/internal/domain/user"
)

type DeleteUser struct {
	repo   domain.Repository
	audit  audit.Sink
	logger *slog.Logger
}

func NewDeleteUser(repo domain.Repository, audit audit.Sink, logger *slog.Logger) *DeleteUser {
	return &DeleteUser{
		repo:   repo,
		audit:  audit,
		logger: logger.With("usecase", "delete_user"),
	}
}

// Execute removes targetID on behalf of actorID. Users may only delete
// themselves.
func (uc *DeleteUser) Execute(ctx context.Context, actorID, targetID uint) error {
	if actorID != targetID {
		return domain.ErrForbidden
	}

	err := uc.repo.Delete(ctx, targetID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   audit.Ptr(actorID),
		Action:   audit.ActionUserDeleted,
		Entity:   "user",
		EntityID: audit.Ptr(targetID),
	})
	uc.logger.Info("user deleted", "user_id", targetID)

	return nil
}
