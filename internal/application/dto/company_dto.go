package dto

import (
	"time"

	"github.com/jhoicas/crm-pro/internal/domain/entity"
)

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name            string `json:"name"`
	Industry        string `json:"industry"`
	Size            string `json:"size"`
	Website         string `json:"website"`
	Address         string `json:"address"`
	City            string `json:"city"`
	Country         string `json:"country"`
	Market          string `json:"market"`
	EngagementScore *int   `json:"engagementScore"`
	Notes           string `json:"notes"`
	LogoURL         string `json:"logoUrl"`
}

// Validate valida el esquema de creación.
func (r CreateCompanyRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Required"})
	}
	return errs
}

// UpdateCompanyRequest actualización parcial: nil = campo sin tocar.
type UpdateCompanyRequest struct {
	Name            *string `json:"name"`
	Industry        *string `json:"industry"`
	Size            *string `json:"size"`
	Website         *string `json:"website"`
	Address         *string `json:"address"`
	City            *string `json:"city"`
	Country         *string `json:"country"`
	Market          *string `json:"market"`
	EngagementScore *int    `json:"engagementScore"`
	Notes           *string `json:"notes"`
	LogoURL         *string `json:"logoUrl"`
}

// Patch convierte la petición en un patch de dominio.
func (r UpdateCompanyRequest) Patch() entity.CompanyPatch {
	return entity.CompanyPatch{
		Name:            r.Name,
		Industry:        r.Industry,
		Size:            r.Size,
		Website:         r.Website,
		Address:         r.Address,
		City:            r.City,
		Country:         r.Country,
		Market:          r.Market,
		EngagementScore: r.EngagementScore,
		Notes:           r.Notes,
		LogoURL:         r.LogoURL,
	}
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Industry        string    `json:"industry"`
	Size            string    `json:"size"`
	Website         string    `json:"website"`
	Address         string    `json:"address"`
	City            string    `json:"city"`
	Country         string    `json:"country"`
	Market          string    `json:"market"`
	EngagementScore int       `json:"engagementScore"`
	Notes           string    `json:"notes"`
	LogoURL         string    `json:"logoUrl"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CompanyDetailResponse detalle de una empresa: leads y tareas inline.
type CompanyDetailResponse struct {
	CompanyResponse
	Leads []LeadResponse `json:"leads"`
	Tasks []TaskResponse `json:"tasks"`
}

// ResearchResponse salida de POST /api/companies/:id/research.
type ResearchResponse struct {
	Insights        string   `json:"insights"`
	Recommendations []string `json:"recommendations"`
	InsightID       int      `json:"insightId"`
}
