package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/domain/repository"
)

var _ repository.AiInsightRepository = (*AiInsightRepo)(nil)

// AiInsightRepo implementación en memoria del puerto AiInsightRepository.
type AiInsightRepo struct {
	mu     sync.RWMutex
	byID   map[int]entity.AiInsight
	order  []int
	nextID int
}

// NewAiInsightRepository construye el repositorio vacío.
func NewAiInsightRepository() *AiInsightRepo {
	return &AiInsightRepo{byID: make(map[int]entity.AiInsight), nextID: 1}
}

// List devuelve todos los insights (descartados incluidos) en orden de inserción.
func (r *AiInsightRepo) List(ctx context.Context) ([]*entity.AiInsight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(entity.AiInsight) bool { return true }), nil
}

// GetByID devuelve el insight o (nil, nil) si no existe.
func (r *AiInsightRepo) GetByID(ctx context.Context, id int) (*entity.AiInsight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	in, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &in, nil
}

// Create asigna id y CreatedAt y guarda el insight.
func (r *AiInsightRepo) Create(ctx context.Context, insight *entity.AiInsight) (*entity.AiInsight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	in := *insight
	in.ID = r.nextID
	r.nextID++
	in.CreatedAt = time.Now()
	r.byID[in.ID] = in
	r.order = append(r.order, in.ID)
	return &in, nil
}

// Update aplica un merge superficial de los campos no nil del patch.
func (r *AiInsightRepo) Update(ctx context.Context, id int, patch entity.AiInsightPatch) (*entity.AiInsight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	in, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	if patch.Type != nil {
		in.Type = *patch.Type
	}
	if patch.Title != nil {
		in.Title = *patch.Title
	}
	if patch.Description != nil {
		in.Description = *patch.Description
	}
	if patch.ActionText != nil {
		in.ActionText = *patch.ActionText
	}
	if patch.ActionURL != nil {
		in.ActionURL = *patch.ActionURL
	}
	if patch.LeadID != nil {
		in.LeadID = patch.LeadID
	}
	if patch.CompanyID != nil {
		in.CompanyID = patch.CompanyID
	}
	if patch.IsRead != nil {
		in.IsRead = *patch.IsRead
	}
	if patch.IsDismissed != nil {
		in.IsDismissed = *patch.IsDismissed
	}
	r.byID[id] = in
	return &in, nil
}

// Delete elimina el insight e informa si existía.
func (r *AiInsightRepo) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	r.order = removeID(r.order, id)
	return true, nil
}

// ListByLead devuelve los insights ligados a un lead.
func (r *AiInsightRepo) ListByLead(ctx context.Context, leadID int) ([]*entity.AiInsight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(in entity.AiInsight) bool {
		return in.LeadID != nil && *in.LeadID == leadID
	}), nil
}

// ListByCompany devuelve los insights ligados a una empresa.
func (r *AiInsightRepo) ListByCompany(ctx context.Context, companyID int) ([]*entity.AiInsight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(in entity.AiInsight) bool {
		return in.CompanyID != nil && *in.CompanyID == companyID
	}), nil
}

func (r *AiInsightRepo) filter(keep func(entity.AiInsight) bool) []*entity.AiInsight {
	out := make([]*entity.AiInsight, 0, len(r.order))
	for _, id := range r.order {
		if in := r.byID[id]; keep(in) {
			out = append(out, &in)
		}
	}
	return out
}
