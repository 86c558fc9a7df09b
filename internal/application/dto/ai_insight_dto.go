package dto

import (
	"time"

	"github.com/jhoicas/crm-pro/internal/domain/entity"
)

// UpdateAiInsightRequest actualización parcial de un insight.
// El frontend la usa sobre todo para marcar isRead / isDismissed.
type UpdateAiInsightRequest struct {
	Type        *string `json:"type"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ActionText  *string `json:"actionText"`
	ActionURL   *string `json:"actionUrl"`
	LeadID      *int    `json:"leadId"`
	CompanyID   *int    `json:"companyId"`
	IsRead      *bool   `json:"isRead"`
	IsDismissed *bool   `json:"isDismissed"`
}

// Patch convierte la petición en un patch de dominio.
func (r UpdateAiInsightRequest) Patch() entity.AiInsightPatch {
	return entity.AiInsightPatch{
		Type:        r.Type,
		Title:       r.Title,
		Description: r.Description,
		ActionText:  r.ActionText,
		ActionURL:   r.ActionURL,
		LeadID:      r.LeadID,
		CompanyID:   r.CompanyID,
		IsRead:      r.IsRead,
		IsDismissed: r.IsDismissed,
	}
}

// AiInsightResponse salida de un insight.
type AiInsightResponse struct {
	ID          int       `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ActionText  string    `json:"actionText"`
	ActionURL   string    `json:"actionUrl"`
	LeadID      *int      `json:"leadId"`
	CompanyID   *int      `json:"companyId"`
	IsRead      bool      `json:"isRead"`
	IsDismissed bool      `json:"isDismissed"`
	CreatedAt   time.Time `json:"createdAt"`
}
