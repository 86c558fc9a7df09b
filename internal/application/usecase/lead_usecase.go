package usecase

import (
	"context"

	"github.com/jhoicas/crm-pro/internal/application/ai"
	"github.com/jhoicas/crm-pro/internal/application/dto"
	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/domain/repository"
)

// LeadUseCase casos de uso CRUD para leads más la puntuación IA al crear.
type LeadUseCase struct {
	leads     repository.LeadRepository
	companies repository.CompanyRepository
	tasks     repository.TaskRepository
	enricher  *ai.EnrichmentService
}

// NewLeadUseCase construye el caso de uso.
func NewLeadUseCase(
	leads repository.LeadRepository,
	companies repository.CompanyRepository,
	tasks repository.TaskRepository,
	enricher *ai.EnrichmentService,
) *LeadUseCase {
	return &LeadUseCase{leads: leads, companies: companies, tasks: tasks, enricher: enricher}
}

// List devuelve todos los leads, cada uno con su empresa inline cuando el
// companyId apunta a una empresa existente.
func (uc *LeadUseCase) List(ctx context.Context) ([]dto.LeadWithCompanyResponse, error) {
	leads, err := uc.leads.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.LeadWithCompanyResponse, 0, len(leads))
	for _, lead := range leads {
		item := dto.LeadWithCompanyResponse{LeadResponse: toLeadResponse(lead)}
		if lead.CompanyID != nil {
			company, err := uc.companies.GetByID(ctx, *lead.CompanyID)
			if err != nil {
				return nil, err
			}
			if company != nil {
				resp := toCompanyResponse(company)
				item.Company = &resp
			}
		}
		out = append(out, item)
	}
	return out, nil
}

// GetByID devuelve el detalle de un lead con empresa y tareas asociadas
// inline; (nil, nil) si el id no existe.
func (uc *LeadUseCase) GetByID(ctx context.Context, id int) (*dto.LeadDetailResponse, error) {
	lead, err := uc.leads.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, nil
	}

	detail := &dto.LeadDetailResponse{LeadResponse: toLeadResponse(lead)}

	if lead.CompanyID != nil {
		company, err := uc.companies.GetByID(ctx, *lead.CompanyID)
		if err != nil {
			return nil, err
		}
		if company != nil {
			resp := toCompanyResponse(company)
			detail.Company = &resp
		}
	}

	tasks, err := uc.tasks.ListByLead(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Tasks = toTaskResponses(tasks)
	return detail, nil
}

// Create crea un lead con status "new" por defecto. Si el lead trae nombre,
// apellido y una empresa resoluble, se puntúa con IA y el score se persiste
// antes de responder. La puntuación nunca hace fallar la creación: ante un
// proveedor caído el enricher devuelve el score neutro.
func (uc *LeadUseCase) Create(ctx context.Context, in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	lead := &entity.Lead{
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		Phone:           in.Phone,
		CompanyID:       in.CompanyID,
		Position:        in.Position,
		Source:          in.Source,
		Status:          in.Status,
		Notes:           in.Notes,
		AssignedTo:      in.AssignedTo,
		Market:          in.Market,
		LastContactedAt: in.LastContactedAt,
	}
	if lead.Status == "" {
		lead.Status = entity.LeadStatusNew
	}
	if in.AIScore != nil {
		lead.AIScore = *in.AIScore
	}

	created, err := uc.leads.Create(ctx, lead)
	if err != nil {
		return nil, err
	}

	if created.FirstName != "" && created.LastName != "" && created.CompanyID != nil {
		company, err := uc.companies.GetByID(ctx, *created.CompanyID)
		if err != nil {
			return nil, err
		}
		if company != nil {
			score := uc.enricher.ScoreLead(ctx, dto.LeadScoringInput{
				FirstName: created.FirstName,
				LastName:  created.LastName,
				Company:   company.Name,
				Industry:  fallback(company.Industry, "Unknown"),
				Position:  fallback(created.Position, "Unknown"),
				Market:    fallback(created.Market, fallback(company.Market, "Unknown")),
			})
			updated, err := uc.leads.Update(ctx, created.ID, entity.LeadPatch{AIScore: &score.Score})
			if err != nil {
				return nil, err
			}
			if updated != nil {
				created = updated
			}
		}
	}

	resp := toLeadResponse(created)
	return &resp, nil
}

// Update aplica una actualización parcial; (nil, nil) si el id no existe.
func (uc *LeadUseCase) Update(ctx context.Context, id int, in dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	updated, err := uc.leads.Update(ctx, id, in.Patch())
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}
	resp := toLeadResponse(updated)
	return &resp, nil
}

// Delete elimina un lead e informa si existía.
func (uc *LeadUseCase) Delete(ctx context.Context, id int) (bool, error) {
	return uc.leads.Delete(ctx, id)
}
