package dto

import (
	"time"

	"github.com/jhoicas/crm-pro/internal/domain/entity"
)

// CreateLeadRequest entrada para crear un lead.
// Status vacío recibe el valor por defecto "new" en el caso de uso.
type CreateLeadRequest struct {
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	CompanyID       *int       `json:"companyId"`
	Position        string     `json:"position"`
	Source          string     `json:"source"`
	Status          string     `json:"status"`
	AIScore         *int       `json:"aiScore"`
	Notes           string     `json:"notes"`
	AssignedTo      *int       `json:"assignedTo"`
	Market          string     `json:"market"`
	LastContactedAt *time.Time `json:"lastContactedAt"`
}

// Validate valida el esquema de creación: obligatorios y enums.
func (r CreateLeadRequest) Validate() []FieldError {
	var errs []FieldError
	if r.FirstName == "" {
		errs = append(errs, FieldError{Field: "firstName", Message: "Required"})
	}
	if r.LastName == "" {
		errs = append(errs, FieldError{Field: "lastName", Message: "Required"})
	}
	if r.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "Required"})
	}
	if r.Status != "" && !oneOf(r.Status, entity.LeadStatuses) {
		errs = append(errs, FieldError{Field: "status", Message: "Invalid enum value"})
	}
	return errs
}

// UpdateLeadRequest actualización parcial: nil = campo sin tocar.
type UpdateLeadRequest struct {
	FirstName       *string    `json:"firstName"`
	LastName        *string    `json:"lastName"`
	Email           *string    `json:"email"`
	Phone           *string    `json:"phone"`
	CompanyID       *int       `json:"companyId"`
	Position        *string    `json:"position"`
	Source          *string    `json:"source"`
	Status          *string    `json:"status"`
	AIScore         *int       `json:"aiScore"`
	Notes           *string    `json:"notes"`
	AssignedTo      *int       `json:"assignedTo"`
	Market          *string    `json:"market"`
	LastContactedAt *time.Time `json:"lastContactedAt"`
}

// Validate valida los enums de los campos presentes.
func (r UpdateLeadRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Status != nil && !oneOf(*r.Status, entity.LeadStatuses) {
		errs = append(errs, FieldError{Field: "status", Message: "Invalid enum value"})
	}
	return errs
}

// Patch convierte la petición en un patch de dominio.
func (r UpdateLeadRequest) Patch() entity.LeadPatch {
	return entity.LeadPatch{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		CompanyID:       r.CompanyID,
		Position:        r.Position,
		Source:          r.Source,
		Status:          r.Status,
		AIScore:         r.AIScore,
		Notes:           r.Notes,
		AssignedTo:      r.AssignedTo,
		Market:          r.Market,
		LastContactedAt: r.LastContactedAt,
	}
}

// LeadResponse salida de un lead.
type LeadResponse struct {
	ID              int        `json:"id"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	CompanyID       *int       `json:"companyId"`
	Position        string     `json:"position"`
	Source          string     `json:"source"`
	Status          string     `json:"status"`
	AIScore         int        `json:"aiScore"`
	Notes           string     `json:"notes"`
	AssignedTo      *int       `json:"assignedTo"`
	Market          string     `json:"market"`
	CreatedAt       time.Time  `json:"createdAt"`
	LastContactedAt *time.Time `json:"lastContactedAt"`
}

// LeadWithCompanyResponse item del listado: lead con su empresa inline
// (la clave company se omite si el lead no tiene companyId resoluble).
type LeadWithCompanyResponse struct {
	LeadResponse
	Company *CompanyResponse `json:"company,omitempty"`
}

// LeadDetailResponse detalle de un lead: empresa y tareas asociadas inline.
type LeadDetailResponse struct {
	LeadResponse
	Company *CompanyResponse `json:"company,omitempty"`
	Tasks   []TaskResponse   `json:"tasks"`
}
