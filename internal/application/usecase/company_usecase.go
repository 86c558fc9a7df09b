package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-pro/internal/application/ai"
	"github.com/jhoicas/crm-pro/internal/application/dto"
	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/domain/repository"
)

// CompanyUseCase casos de uso CRUD para empresas más la investigación IA.
type CompanyUseCase struct {
	companies repository.CompanyRepository
	leads     repository.LeadRepository
	tasks     repository.TaskRepository
	insights  repository.AiInsightRepository
	enricher  *ai.EnrichmentService
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(
	companies repository.CompanyRepository,
	leads repository.LeadRepository,
	tasks repository.TaskRepository,
	insights repository.AiInsightRepository,
	enricher *ai.EnrichmentService,
) *CompanyUseCase {
	return &CompanyUseCase{
		companies: companies,
		leads:     leads,
		tasks:     tasks,
		insights:  insights,
		enricher:  enricher,
	}
}

// List devuelve todas las empresas.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	companies, err := uc.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, toCompanyResponse(c))
	}
	return out, nil
}

// GetByID devuelve el detalle de una empresa con sus leads y tareas inline;
// (nil, nil) si el id no existe.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id int) (*dto.CompanyDetailResponse, error) {
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}

	leads, err := uc.leads.ListByCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	tasks, err := uc.tasks.ListByCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.CompanyDetailResponse{
		CompanyResponse: toCompanyResponse(company),
		Leads:           make([]dto.LeadResponse, 0, len(leads)),
		Tasks:           toTaskResponses(tasks),
	}
	for _, l := range leads {
		detail.Leads = append(detail.Leads, toLeadResponse(l))
	}
	return detail, nil
}

// Create crea una empresa.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	company := &entity.Company{
		Name:     in.Name,
		Industry: in.Industry,
		Size:     in.Size,
		Website:  in.Website,
		Address:  in.Address,
		City:     in.City,
		Country:  in.Country,
		Market:   in.Market,
		Notes:    in.Notes,
		LogoURL:  in.LogoURL,
	}
	if in.EngagementScore != nil {
		company.EngagementScore = *in.EngagementScore
	}

	created, err := uc.companies.Create(ctx, company)
	if err != nil {
		return nil, err
	}
	resp := toCompanyResponse(created)
	return &resp, nil
}

// Update aplica una actualización parcial; (nil, nil) si el id no existe.
func (uc *CompanyUseCase) Update(ctx context.Context, id int, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	updated, err := uc.companies.Update(ctx, id, in.Patch())
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}
	resp := toCompanyResponse(updated)
	return &resp, nil
}

// Delete elimina una empresa e informa si existía. Los leads y tareas que
// la referencian conservan su companyId (referencia débil, sin cascada).
func (uc *CompanyUseCase) Delete(ctx context.Context, id int) (bool, error) {
	return uc.companies.Delete(ctx, id)
}

// Research genera el análisis IA de una empresa y lo persiste como insight
// de tipo "research" ligado a ella; (nil, nil) si el id no existe.
func (uc *CompanyUseCase) Research(ctx context.Context, id int) (*dto.ResearchResponse, error) {
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}

	analysis := uc.enricher.CompanyInsights(ctx, dto.CompanyInsightInput{
		Name:            company.Name,
		Industry:        company.Industry,
		Market:          company.Market,
		EngagementScore: company.EngagementScore,
	})

	insight, err := uc.insights.Create(ctx, &entity.AiInsight{
		Type:        entity.InsightTypeResearch,
		Title:       "Company Research: " + company.Name,
		Description: analysis.Insights,
		ActionText:  "View Recommendations",
		ActionURL:   fmt.Sprintf("/companies/%d", id),
		CompanyID:   &id,
	})
	if err != nil {
		return nil, err
	}

	return &dto.ResearchResponse{
		Insights:        analysis.Insights,
		Recommendations: analysis.Recommendations,
		InsightID:       insight.ID,
	}, nil
}
