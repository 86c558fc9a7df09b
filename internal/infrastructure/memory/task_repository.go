package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación en memoria del puerto TaskRepository.
type TaskRepo struct {
	mu     sync.RWMutex
	byID   map[int]entity.Task
	order  []int
	nextID int
}

// NewTaskRepository construye el repositorio vacío.
func NewTaskRepository() *TaskRepo {
	return &TaskRepo{byID: make(map[int]entity.Task), nextID: 1}
}

// List devuelve todas las tareas en orden de inserción.
func (r *TaskRepo) List(ctx context.Context) ([]*entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(entity.Task) bool { return true }), nil
}

// GetByID devuelve la tarea o (nil, nil) si no existe.
func (r *TaskRepo) GetByID(ctx context.Context, id int) (*entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

// Create asigna id y CreatedAt y guarda la tarea.
func (r *TaskRepo) Create(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := *task
	t.ID = r.nextID
	r.nextID++
	t.CreatedAt = time.Now()
	r.byID[t.ID] = t
	r.order = append(r.order, t.ID)
	return &t, nil
}

// Update aplica un merge superficial de los campos no nil del patch.
func (r *TaskRepo) Update(ctx context.Context, id int, patch entity.TaskPatch) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.DueDate != nil {
		t.DueDate = patch.DueDate
	}
	if patch.AssignedTo != nil {
		t.AssignedTo = patch.AssignedTo
	}
	if patch.LeadID != nil {
		t.LeadID = patch.LeadID
	}
	if patch.CompanyID != nil {
		t.CompanyID = patch.CompanyID
	}
	if patch.CompletedAt != nil {
		t.CompletedAt = patch.CompletedAt
	}
	r.byID[id] = t
	return &t, nil
}

// Delete elimina la tarea e informa si existía.
func (r *TaskRepo) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	r.order = removeID(r.order, id)
	return true, nil
}

// ListByLead devuelve las tareas ligadas a un lead.
func (r *TaskRepo) ListByLead(ctx context.Context, leadID int) ([]*entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(t entity.Task) bool {
		return t.LeadID != nil && *t.LeadID == leadID
	}), nil
}

// ListByCompany devuelve las tareas ligadas a una empresa.
func (r *TaskRepo) ListByCompany(ctx context.Context, companyID int) ([]*entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(t entity.Task) bool {
		return t.CompanyID != nil && *t.CompanyID == companyID
	}), nil
}

// ListByAssignee devuelve las tareas asignadas a un usuario.
func (r *TaskRepo) ListByAssignee(ctx context.Context, assignedTo int) ([]*entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(t entity.Task) bool {
		return t.AssignedTo != nil && *t.AssignedTo == assignedTo
	}), nil
}

// ListByDueDate devuelve las tareas que vencen el mismo día calendario que
// date: ambas marcas se truncan a medianoche antes de comparar, así que la
// hora del día es irrelevante en los dos lados.
func (r *TaskRepo) ListByDueDate(ctx context.Context, date time.Time) ([]*entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(t entity.Task) bool {
		return t.DueDate != nil && sameDay(*t.DueDate, date)
	}), nil
}

func (r *TaskRepo) filter(keep func(entity.Task) bool) []*entity.Task {
	out := make([]*entity.Task, 0, len(r.order))
	for _, id := range r.order {
		if t := r.byID[id]; keep(t) {
			out = append(out, &t)
		}
	}
	return out
}

// sameDay compara solo año/mes/día de dos instantes.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
