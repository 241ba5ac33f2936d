package user

import (
	"context"

	"github.com/nowshad-islam-dev/skipq-api/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.User, error)

	// FindByID returns ErrNotFound when no user has id.
	FindByID(ctx context.Context, id uint) (*models.User, error)

	// FindByEmailOrPhone matches identifier against either column.
	FindByEmailOrPhone(ctx context.Context, identifier string) (*models.User, error)

	// ExistsConflicting reports whether any user already holds email, phone
	// or username.
	ExistsConflicting(ctx context.Context, email, phone, username string) (bool, error)

	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error

	// Delete returns ErrNotFound when no row was removed.
	Delete(ctx context.Context, id uint) error
}
