package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación en memoria del puerto CompanyRepository.
// Borrar una empresa no toca los leads/tareas/insights que la referencian:
// quedan huérfanos (referencias débiles, sin cascada).
type CompanyRepo struct {
	mu     sync.RWMutex
	byID   map[int]entity.Company
	order  []int
	nextID int
}

// NewCompanyRepository construye el repositorio vacío.
func NewCompanyRepository() *CompanyRepo {
	return &CompanyRepo{byID: make(map[int]entity.Company), nextID: 1}
}

// List devuelve todas las empresas en orden de inserción.
func (r *CompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(entity.Company) bool { return true }), nil
}

// GetByID devuelve la empresa o (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id int) (*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// Create asigna id y CreatedAt y guarda la empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *company
	c.ID = r.nextID
	r.nextID++
	c.CreatedAt = time.Now()
	r.byID[c.ID] = c
	r.order = append(r.order, c.ID)
	return &c, nil
}

// Update aplica un merge superficial de los campos no nil del patch.
func (r *CompanyRepo) Update(ctx context.Context, id int, patch entity.CompanyPatch) (*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Industry != nil {
		c.Industry = *patch.Industry
	}
	if patch.Size != nil {
		c.Size = *patch.Size
	}
	if patch.Website != nil {
		c.Website = *patch.Website
	}
	if patch.Address != nil {
		c.Address = *patch.Address
	}
	if patch.City != nil {
		c.City = *patch.City
	}
	if patch.Country != nil {
		c.Country = *patch.Country
	}
	if patch.Market != nil {
		c.Market = *patch.Market
	}
	if patch.EngagementScore != nil {
		c.EngagementScore = *patch.EngagementScore
	}
	if patch.Notes != nil {
		c.Notes = *patch.Notes
	}
	if patch.LogoURL != nil {
		c.LogoURL = *patch.LogoURL
	}
	r.byID[id] = c
	return &c, nil
}

// Delete elimina la empresa e informa si existía.
func (r *CompanyRepo) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	r.order = removeID(r.order, id)
	return true, nil
}

// ListByMarket devuelve las empresas de un mercado dado.
func (r *CompanyRepo) ListByMarket(ctx context.Context, market string) ([]*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(c entity.Company) bool { return c.Market == market }), nil
}

// ListByIndustry devuelve las empresas de una industria dada.
func (r *CompanyRepo) ListByIndustry(ctx context.Context, industry string) ([]*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(c entity.Company) bool { return c.Industry == industry }), nil
}

func (r *CompanyRepo) filter(keep func(entity.Company) bool) []*entity.Company {
	out := make([]*entity.Company, 0, len(r.order))
	for _, id := range r.order {
		if c := r.byID[id]; keep(c) {
			out = append(out, &c)
		}
	}
	return out
}
