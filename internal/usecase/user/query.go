package user

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/nowshad-islam-dev/skipq-api/internal/domain/user"
	"github.com/nowshad-islam-dev/skipq-api/internal/dto"
)

type ListUsers struct {
	repo domain.Repository
}

func NewListUsers(repo domain.Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

// Execute returns every user that fits the public view.
func (uc *ListUsers) Execute(ctx context.Context) ([]dto.PublicUser, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return dto.PublicUsers(users), nil
}

type GetUser struct {
	repo domain.Repository
}

func NewGetUser(repo domain.Repository) *GetUser {
	return &GetUser{repo: repo}
}

func (uc *GetUser) Execute(ctx context.Context, id uint) (*dto.PublicUser, error) {
	u, err := uc.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	view, err := dto.ToPublicUser(*u)
	if err != nil {
		return nil, fmt.Errorf("user view: %w", err)
	}
	return &view, nil
}
