package usecase

import (
	"context"

	"github.com/jhoicas/crm-pro/internal/application/ai"
	"github.com/jhoicas/crm-pro/internal/application/dto"
	"github.com/jhoicas/crm-pro/internal/domain/repository"
)

// MarketingUseCase sugerencias de marketing derivadas por IA.
type MarketingUseCase struct {
	leads     repository.LeadRepository
	companies repository.CompanyRepository
	enricher  *ai.EnrichmentService
}

// NewMarketingUseCase construye el caso de uso.
func NewMarketingUseCase(
	leads repository.LeadRepository,
	companies repository.CompanyRepository,
	enricher *ai.EnrichmentService,
) *MarketingUseCase {
	return &MarketingUseCase{leads: leads, companies: companies, enricher: enricher}
}

// Suggestions agrega los pares (mercado, industria) de leads y empresas y
// pide al modelo tendencias e ideas de contenido. La industria de un lead
// se toma de su empresa; los huecos se rellenan con "Unknown".
func (uc *MarketingUseCase) Suggestions(ctx context.Context) (*dto.MarketingSuggestionsDTO, error) {
	leads, err := uc.leads.List(ctx)
	if err != nil {
		return nil, err
	}
	companies, err := uc.companies.List(ctx)
	if err != nil {
		return nil, err
	}

	industryByID := make(map[int]string, len(companies))
	for _, c := range companies {
		industryByID[c.ID] = c.Industry
	}

	snapshot := dto.MarketingSnapshot{
		Leads:     make([]dto.MarketSegmentDTO, 0, len(leads)),
		Companies: make([]dto.MarketSegmentDTO, 0, len(companies)),
	}
	for _, lead := range leads {
		industry := ""
		if lead.CompanyID != nil {
			industry = industryByID[*lead.CompanyID]
		}
		snapshot.Leads = append(snapshot.Leads, dto.MarketSegmentDTO{
			Market:   fallback(lead.Market, "Unknown"),
			Industry: fallback(industry, "Unknown"),
		})
	}
	for _, c := range companies {
		snapshot.Companies = append(snapshot.Companies, dto.MarketSegmentDTO{
			Market:   fallback(c.Market, "Unknown"),
			Industry: fallback(c.Industry, "Unknown"),
		})
	}

	suggestions := uc.enricher.MarketingSuggestions(ctx, snapshot)
	return &suggestions, nil
}
