package usecase

import (
	"github.com/jhoicas/crm-pro/internal/application/dto"
	"github.com/jhoicas/crm-pro/internal/domain/entity"
)

// Conversores entidad → DTO compartidos por los casos de uso.

func toLeadResponse(l *entity.Lead) dto.LeadResponse {
	return dto.LeadResponse{
		ID:              l.ID,
		FirstName:       l.FirstName,
		LastName:        l.LastName,
		Email:           l.Email,
		Phone:           l.Phone,
		CompanyID:       l.CompanyID,
		Position:        l.Position,
		Source:          l.Source,
		Status:          l.Status,
		AIScore:         l.AIScore,
		Notes:           l.Notes,
		AssignedTo:      l.AssignedTo,
		Market:          l.Market,
		CreatedAt:       l.CreatedAt,
		LastContactedAt: l.LastContactedAt,
	}
}

func toCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:              c.ID,
		Name:            c.Name,
		Industry:        c.Industry,
		Size:            c.Size,
		Website:         c.Website,
		Address:         c.Address,
		City:            c.City,
		Country:         c.Country,
		Market:          c.Market,
		EngagementScore: c.EngagementScore,
		Notes:           c.Notes,
		LogoURL:         c.LogoURL,
		CreatedAt:       c.CreatedAt,
	}
}

func toTaskResponse(t *entity.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		DueDate:     t.DueDate,
		AssignedTo:  t.AssignedTo,
		LeadID:      t.LeadID,
		CompanyID:   t.CompanyID,
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
	}
}

func toTaskResponses(tasks []*entity.Task) []dto.TaskResponse {
	out := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out
}

func toInsightResponse(i *entity.AiInsight) dto.AiInsightResponse {
	return dto.AiInsightResponse{
		ID:          i.ID,
		Type:        i.Type,
		Title:       i.Title,
		Description: i.Description,
		ActionText:  i.ActionText,
		ActionURL:   i.ActionURL,
		LeadID:      i.LeadID,
		CompanyID:   i.CompanyID,
		IsRead:      i.IsRead,
		IsDismissed: i.IsDismissed,
		CreatedAt:   i.CreatedAt,
	}
}

// fallback devuelve value, o alt si value está vacío.
func fallback(value, alt string) string {
	if value == "" {
		return alt
	}
	return value
}
