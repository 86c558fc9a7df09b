package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/crm-pro/internal/application/dto"
	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/domain/repository"
)

// TaskUseCase casos de uso para tareas de seguimiento.
type TaskUseCase struct {
	tasks repository.TaskRepository
	now   func() time.Time
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(tasks repository.TaskRepository) *TaskUseCase {
	return &TaskUseCase{tasks: tasks, now: time.Now}
}

// List devuelve todas las tareas.
func (uc *TaskUseCase) List(ctx context.Context) ([]dto.TaskResponse, error) {
	tasks, err := uc.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return toTaskResponses(tasks), nil
}

// DueToday devuelve las tareas que vencen el día calendario actual,
// ignorando la hora del día.
func (uc *TaskUseCase) DueToday(ctx context.Context) ([]dto.TaskResponse, error) {
	tasks, err := uc.tasks.ListByDueDate(ctx, uc.now())
	if err != nil {
		return nil, err
	}
	return toTaskResponses(tasks), nil
}

// Create crea una tarea con status "pending" por defecto.
func (uc *TaskUseCase) Create(ctx context.Context, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	task := &entity.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		DueDate:     in.DueDate,
		AssignedTo:  in.AssignedTo,
		LeadID:      in.LeadID,
		CompanyID:   in.CompanyID,
	}
	if task.Status == "" {
		task.Status = entity.TaskStatusPending
	}

	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}
	resp := toTaskResponse(created)
	return &resp, nil
}

// Update aplica una actualización parcial; (nil, nil) si el id no existe.
// Al pasar a "completed" se sella CompletedAt con la hora actual, solo si la
// tarea no lo tenía ya fijado de una compleción anterior.
func (uc *TaskUseCase) Update(ctx context.Context, id int, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	patch := in.Patch()

	if patch.Status != nil && *patch.Status == entity.TaskStatusCompleted {
		current, err := uc.tasks.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, nil
		}
		if current.CompletedAt == nil {
			completedAt := uc.now()
			patch.CompletedAt = &completedAt
		}
	}

	updated, err := uc.tasks.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}
	resp := toTaskResponse(updated)
	return &resp, nil
}
