package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	domain "github.com/nowshad-islam-dev/skipq-api/internal/domain/user"
	"github.com/nowshad-islam-dev/skipq-api/internal/models"
)

// UserRepository keeps users in memory and reports duplicate email, phone or
// username the way postgres does.
type UserRepository struct {
	mu     sync.Mutex
	users  map[uint]models.User
	nextID uint
	calls  int

	// Err, when set, is returned by every method.
	Err error
}

func NewUserRepository(seed ...models.User) *UserRepository {
	r := &UserRepository{users: map[uint]models.User{}, nextID: 1}
	for _, u := range seed {
		if u.ID == 0 {
			u.ID = r.nextID
		}
		if u.CreatedAt.IsZero() {
			u.CreatedAt = time.Now()
		}
		r.users[u.ID] = u
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
	}
	return r
}

// Calls counts every repository call.
func (r *UserRepository) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// Get returns a copy of the stored user.
func (r *UserRepository) Get(id uint) (models.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	return u, ok
}

func (r *UserRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

func (r *UserRepository) enter() error {
	r.calls++
	return r.Err
}

func (r *UserRepository) List(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}

	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *UserRepository) FindByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) FindByEmailOrPhone(_ context.Context, identifier string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}

	for _, u := range r.users {
		if u.Email == identifier || u.Phone == identifier {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *UserRepository) ExistsConflicting(_ context.Context, email, phone, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return false, err
	}

	for _, u := range r.users {
		if u.Email == email || u.Phone == phone || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return err
	}
	if r.conflicts(*u) {
		return &pgconn.PgError{Code: "23505"}
	}

	now := time.Now()
	u.ID = r.nextID
	u.CreatedAt = now
	u.UpdatedAt = now
	r.nextID++
	r.users[u.ID] = *u
	return nil
}

func (r *UserRepository) Update(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return err
	}
	if r.conflicts(*u) {
		return &pgconn.PgError{Code: "23505"}
	}

	u.UpdatedAt = time.Now()
	r.users[u.ID] = *u
	return nil
}

func (r *UserRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return err
	}

	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *UserRepository) conflicts(u models.User) bool {
	for id, other := range r.users {
		if id == u.ID {
			continue
		}
		if other.Email == u.Email || other.Phone == u.Phone || other.Username == u.Username {
			return true
		}
	}
	return false
}

var _ domain.Repository = (*UserRepository)(nil)
