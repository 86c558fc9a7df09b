package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementación en memoria del puerto LeadRepository.
type LeadRepo struct {
	mu     sync.RWMutex
	byID   map[int]entity.Lead
	order  []int
	nextID int
}

// NewLeadRepository construye el repositorio vacío.
func NewLeadRepository() *LeadRepo {
	return &LeadRepo{byID: make(map[int]entity.Lead), nextID: 1}
}

// List devuelve todos los leads en orden de inserción.
func (r *LeadRepo) List(ctx context.Context) ([]*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(entity.Lead) bool { return true }), nil
}

// GetByID devuelve el lead o (nil, nil) si no existe.
func (r *LeadRepo) GetByID(ctx context.Context, id int) (*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

// Create asigna id y CreatedAt y guarda el lead.
func (r *LeadRepo) Create(ctx context.Context, lead *entity.Lead) (*entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := *lead
	l.ID = r.nextID
	r.nextID++
	l.CreatedAt = time.Now()
	r.byID[l.ID] = l
	r.order = append(r.order, l.ID)
	return &l, nil
}

// Update aplica un merge superficial de los campos no nil del patch.
// Devuelve (nil, nil) si el id no existe; un patch vacío es un no-op.
func (r *LeadRepo) Update(ctx context.Context, id int, patch entity.LeadPatch) (*entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	if patch.FirstName != nil {
		l.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		l.LastName = *patch.LastName
	}
	if patch.Email != nil {
		l.Email = *patch.Email
	}
	if patch.Phone != nil {
		l.Phone = *patch.Phone
	}
	if patch.CompanyID != nil {
		l.CompanyID = patch.CompanyID
	}
	if patch.Position != nil {
		l.Position = *patch.Position
	}
	if patch.Source != nil {
		l.Source = *patch.Source
	}
	if patch.Status != nil {
		l.Status = *patch.Status
	}
	if patch.AIScore != nil {
		l.AIScore = *patch.AIScore
	}
	if patch.Notes != nil {
		l.Notes = *patch.Notes
	}
	if patch.AssignedTo != nil {
		l.AssignedTo = patch.AssignedTo
	}
	if patch.Market != nil {
		l.Market = *patch.Market
	}
	if patch.LastContactedAt != nil {
		l.LastContactedAt = patch.LastContactedAt
	}
	r.byID[id] = l
	return &l, nil
}

// Delete elimina el lead e informa si existía.
func (r *LeadRepo) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	r.order = removeID(r.order, id)
	return true, nil
}

// ListByCompany devuelve los leads de una empresa.
func (r *LeadRepo) ListByCompany(ctx context.Context, companyID int) ([]*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(l entity.Lead) bool {
		return l.CompanyID != nil && *l.CompanyID == companyID
	}), nil
}

// ListByStatus devuelve los leads con un estado dado.
func (r *LeadRepo) ListByStatus(ctx context.Context, status string) ([]*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(l entity.Lead) bool { return l.Status == status }), nil
}

// ListByMarket devuelve los leads de un mercado dado.
func (r *LeadRepo) ListByMarket(ctx context.Context, market string) ([]*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(l entity.Lead) bool { return l.Market == market }), nil
}

// filter escaneo lineal con predicado; el caller debe tener el lock.
func (r *LeadRepo) filter(keep func(entity.Lead) bool) []*entity.Lead {
	out := make([]*entity.Lead, 0, len(r.order))
	for _, id := range r.order {
		if l := r.byID[id]; keep(l) {
			out = append(out, &l)
		}
	}
	return out
}

// removeID quita un id de un slice conservando el orden.
func removeID(ids []int, id int) []int {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
