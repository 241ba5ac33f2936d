package service

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/nowshad-islam-dev/skipq-api/internal/domain/service"
	"github.com/nowshad-islam-dev/skipq-api/internal/dto"
)

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

func (uc *ListServices) Execute(ctx context.Context) ([]dto.PublicService, error) {
	services, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return dto.PublicServices(services), nil
}

type GetService struct {
	repo domain.Repository
}

func NewGetService(repo domain.Repository) *GetService {
	return &GetService{repo: repo}
}

func (uc *GetService) Execute(ctx context.Context, id uint) (*dto.PublicService, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}

	view, err := dto.ToPublicService(*s)
	if err != nil {
		return nil, fmt.Errorf("service view: %w", err)
	}
	return &view, nil
}
