package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

const taskColumns = `id, title, description, status, due_date, assigned_to,
	lead_id, company_id, created_at, completed_at`

// TaskRepo implementación del puerto TaskRepository sobre PostgreSQL.
type TaskRepo struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{pool: pool}
}

func (r *TaskRepo) List(ctx context.Context) ([]*entity.Task, error) {
	return r.listWhere(ctx, "", nil)
}

// GetByID obtiene una tarea por id; (nil, nil) si no existe.
func (r *TaskRepo) GetByID(ctx context.Context, id int) (*entity.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = $1`, taskColumns)
	task, err := scanTask(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

func (r *TaskRepo) Create(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	query := fmt.Sprintf(`
		INSERT INTO tasks (title, description, status, due_date, assigned_to,
			lead_id, company_id, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s`, taskColumns)
	created, err := scanTask(r.pool.QueryRow(ctx, query,
		task.Title, task.Description, task.Status, task.DueDate, task.AssignedTo,
		task.LeadID, task.CompanyID, task.CompletedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return created, nil
}

// Update aplica un UPDATE parcial; patch vacío es un no-op.
func (r *TaskRepo) Update(ctx context.Context, id int, patch entity.TaskPatch) (*entity.Task, error) {
	b := newUpdateBuilder(id)
	if patch.Title != nil {
		b.set("title", *patch.Title)
	}
	if patch.Description != nil {
		b.set("description", *patch.Description)
	}
	if patch.Status != nil {
		b.set("status", *patch.Status)
	}
	if patch.DueDate != nil {
		b.set("due_date", *patch.DueDate)
	}
	if patch.AssignedTo != nil {
		b.set("assigned_to", *patch.AssignedTo)
	}
	if patch.LeadID != nil {
		b.set("lead_id", *patch.LeadID)
	}
	if patch.CompanyID != nil {
		b.set("company_id", *patch.CompanyID)
	}
	if patch.CompletedAt != nil {
		b.set("completed_at", *patch.CompletedAt)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	task, err := scanTask(r.pool.QueryRow(ctx, b.query("tasks", taskColumns), b.args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *TaskRepo) ListByLead(ctx context.Context, leadID int) ([]*entity.Task, error) {
	return r.listWhere(ctx, "WHERE lead_id = $1", []any{leadID})
}

func (r *TaskRepo) ListByCompany(ctx context.Context, companyID int) ([]*entity.Task, error) {
	return r.listWhere(ctx, "WHERE company_id = $1", []any{companyID})
}

func (r *TaskRepo) ListByAssignee(ctx context.Context, userID int) ([]*entity.Task, error) {
	return r.listWhere(ctx, "WHERE assigned_to = $1", []any{userID})
}

// ListByDueDate compara solo el día calendario, ignorando la hora tanto de
// la fecha de consulta como del vencimiento de cada tarea.
func (r *TaskRepo) ListByDueDate(ctx context.Context, date time.Time) ([]*entity.Task, error) {
	return r.listWhere(ctx, "WHERE due_date IS NOT NULL AND due_date::date = $1::date", []any{date})
}

func (r *TaskRepo) listWhere(ctx context.Context, where string, args []any) ([]*entity.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks %s ORDER BY id`, taskColumns, where)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var list []*entity.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, task)
	}
	return list, rows.Err()
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var t entity.Task
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.DueDate, &t.AssignedTo,
		&t.LeadID, &t.CompanyID, &t.CreatedAt, &t.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
