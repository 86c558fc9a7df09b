package entity

import "time"

// Estados válidos de una Task.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
)

// TaskStatuses lista de estados aceptados (para validación).
var TaskStatuses = []string{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}

// Task representa una tarea de seguimiento, opcionalmente ligada a un
// Lead, una Company y/o un User asignado (referencias débiles).
// CompletedAt lo fija el caso de uso solo en la transición a "completed"
// y únicamente si aún no estaba fijado.
type Task struct {
	ID          int
	Title       string
	Description string
	Status      string // ver TaskStatuses, default "pending"
	DueDate     *time.Time
	AssignedTo  *int
	LeadID      *int
	CompanyID   *int
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// TaskPatch actualización parcial: nil = campo sin tocar.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
	DueDate     *time.Time
	AssignedTo  *int
	LeadID      *int
	CompanyID   *int
	CompletedAt *time.Time
}
