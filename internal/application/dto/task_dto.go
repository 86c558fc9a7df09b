package dto

import (
	"time"

	"github.com/jhoicas/crm-pro/internal/domain/entity"
)

// CreateTaskRequest entrada para crear una tarea.
// Status vacío recibe el valor por defecto "pending" en el caso de uso.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
	AssignedTo  *int       `json:"assignedTo"`
	LeadID      *int       `json:"leadId"`
	CompanyID   *int       `json:"companyId"`
}

// Validate valida el esquema de creación.
func (r CreateTaskRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "Required"})
	}
	if r.Status != "" && !oneOf(r.Status, entity.TaskStatuses) {
		errs = append(errs, FieldError{Field: "status", Message: "Invalid enum value"})
	}
	return errs
}

// UpdateTaskRequest actualización parcial: nil = campo sin tocar.
// CompletedAt no se acepta del cliente: lo fija el caso de uso al
// completar la tarea.
type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
	AssignedTo  *int       `json:"assignedTo"`
	LeadID      *int       `json:"leadId"`
	CompanyID   *int       `json:"companyId"`
}

// Validate valida los enums de los campos presentes.
func (r UpdateTaskRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Status != nil && !oneOf(*r.Status, entity.TaskStatuses) {
		errs = append(errs, FieldError{Field: "status", Message: "Invalid enum value"})
	}
	return errs
}

// Patch convierte la petición en un patch de dominio.
func (r UpdateTaskRequest) Patch() entity.TaskPatch {
	return entity.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		DueDate:     r.DueDate,
		AssignedTo:  r.AssignedTo,
		LeadID:      r.LeadID,
		CompanyID:   r.CompanyID,
	}
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
	AssignedTo  *int       `json:"assignedTo"`
	LeadID      *int       `json:"leadId"`
	CompanyID   *int       `json:"companyId"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
}
