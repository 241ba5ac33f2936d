package service

import (
	"context"

	"github.com/nowshad-islam-dev/skipq-api/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Service, error)

	// FindByID returns ErrNotFound when no listing has id.
	FindByID(ctx context.Context, id uint) (*models.Service, error)

	Create(ctx context.Context, s *models.Service) error

	OwnerExists(ctx context.Context, userID uint) (bool, error)
}
