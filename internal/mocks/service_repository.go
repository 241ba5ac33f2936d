package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	domain "github.com/nowshad-islam-dev/skipq-api/internal/domain/service"
	"github.com/nowshad-islam-dev/skipq-api/internal/models"
)

// ServiceRepository keeps listings in memory. Owners are checked against
// Users, mirroring the foreign key.
type ServiceRepository struct {
	mu       sync.Mutex
	services map[uint]models.Service
	nextID   uint
	calls    int

	Users *UserRepository
	Err   error
}

func NewServiceRepository(users *UserRepository, seed ...models.Service) *ServiceRepository {
	r := &ServiceRepository{services: map[uint]models.Service{}, nextID: 1, Users: users}
	for _, s := range seed {
		if s.ID == 0 {
			s.ID = r.nextID
		}
		if s.CreatedAt.IsZero() {
			s.CreatedAt = time.Now()
		}
		r.services[s.ID] = s
		if s.ID >= r.nextID {
			r.nextID = s.ID + 1
		}
	}
	return r
}

func (r *ServiceRepository) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func (r *ServiceRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.services)
}

func (r *ServiceRepository) enter() error {
	r.calls++
	return r.Err
}

func (r *ServiceRepository) List(_ context.Context) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}

	out := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ServiceRepository) FindByID(_ context.Context, id uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}

	s, ok := r.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *ServiceRepository) Create(_ context.Context, s *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return err
	}
	if !r.ownerExists(s.UserID) {
		return &pgconn.PgError{Code: "23503"}
	}

	now := time.Now()
	s.ID = r.nextID
	s.CreatedAt = now
	s.UpdatedAt = now
	r.nextID++
	r.services[s.ID] = *s
	return nil
}

func (r *ServiceRepository) OwnerExists(_ context.Context, userID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return false, err
	}
	return r.ownerExists(userID), nil
}

func (r *ServiceRepository) ownerExists(userID uint) bool {
	if r.Users == nil {
		return true
	}
	_, ok := r.Users.Get(userID)
	return ok
}

var _ domain.Repository = (*ServiceRepository)(nil)
