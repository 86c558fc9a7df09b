package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria del puerto UserRepository.
type UserRepo struct {
	mu     sync.RWMutex
	byID   map[int]entity.User
	order  []int
	nextID int
}

// NewUserRepository construye el repositorio vacío.
func NewUserRepository() *UserRepo {
	return &UserRepo{byID: make(map[int]entity.User), nextID: 1}
}

// GetByID devuelve el usuario o (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id int) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetByUsername busca por username con un escaneo lineal.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if u := r.byID[id]; u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

// Create asigna un id nuevo y guarda el usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := *user
	u.ID = r.nextID
	r.nextID++
	r.byID[u.ID] = u
	r.order = append(r.order, u.ID)
	return &u, nil
}
