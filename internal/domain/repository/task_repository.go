package repository

import (
	"context"
	"time"

	"github.com/jhoicas/crm-pro/internal/domain/entity"
)

// TaskRepository define el puerto de persistencia para Task.
// ListByDueDate compara solo el día calendario: la hora de `date` y la de
// cada DueDate se truncan a medianoche antes de comparar.
type TaskRepository interface {
	List(ctx context.Context) ([]*entity.Task, error)
	GetByID(ctx context.Context, id int) (*entity.Task, error)
	Create(ctx context.Context, task *entity.Task) (*entity.Task, error)
	Update(ctx context.Context, id int, patch entity.TaskPatch) (*entity.Task, error)
	Delete(ctx context.Context, id int) (bool, error)
	ListByLead(ctx context.Context, leadID int) ([]*entity.Task, error)
	ListByCompany(ctx context.Context, companyID int) ([]*entity.Task, error)
	ListByAssignee(ctx context.Context, assignedTo int) ([]*entity.Task, error)
	ListByDueDate(ctx context.Context, date time.Time) ([]*entity.Task, error)
}
