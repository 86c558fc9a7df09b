package ai

import (
	"context"

	"github.com/jhoicas/crm-pro/internal/application/dto"
	"github.com/jhoicas/crm-pro/internal/application/ports"
	"github.com/jhoicas/crm-pro/pkg/logger"
)

// EnrichmentService expone las cuatro operaciones de enriquecimiento IA
// sobre el puerto LLMService. El proveedor externo es no determinista y
// poco fiable, así que aquí cada fallo (llamada caída, JSON ilegible) se
// absorbe en un valor por defecto etiquetado: estos métodos nunca devuelven
// error y la capa HTTP nunca ve una excepción del proveedor.
type EnrichmentService struct {
	llm ports.LLMService
	log *logger.Logger
}

// NewEnrichmentService construye el servicio con el puerto LLM y el logger.
func NewEnrichmentService(llm ports.LLMService, log *logger.Logger) *EnrichmentService {
	return &EnrichmentService{llm: llm, log: log}
}

// ScoreLead puntúa un lead. El score devuelto siempre queda acotado a
// [0,100], venga lo que venga del modelo. En caso de fallo devuelve el
// score neutro 50 con el razonamiento de respaldo fijo.
func (s *EnrichmentService) ScoreLead(ctx context.Context, in dto.LeadScoringInput) dto.LeadScoreDTO {
	res, err := s.llm.ScoreLead(ctx, in)
	if err != nil {
		s.log.Warn().Err(err).Str("lead", in.FirstName+" "+in.LastName).Msg("fallo al puntuar lead con IA, usando score neutro")
		return dto.LeadScoreDTO{
			Score:     50,
			Reasoning: "Error processing AI score, defaulting to neutral score.",
		}
	}
	return dto.LeadScoreDTO{
		Score:     clampScore(res.Score),
		Reasoning: res.Reasoning,
	}
}

// CompanyInsights analiza una empresa. En caso de fallo devuelve el mensaje
// fijo de indisponibilidad con una única recomendación de respaldo.
func (s *EnrichmentService) CompanyInsights(ctx context.Context, in dto.CompanyInsightInput) dto.CompanyInsightDTO {
	res, err := s.llm.CompanyInsights(ctx, in)
	if err != nil {
		s.log.Warn().Err(err).Str("company", in.Name).Msg("fallo al generar insights de empresa con IA")
		return dto.CompanyInsightDTO{
			Insights:        "Could not generate insights at this time.",
			Recommendations: []string{"Try again later when the AI service is available."},
		}
	}
	return *res
}

// MarketingSuggestions deriva tendencias e ideas de contenido. En caso de
// fallo devuelve una tendencia de respaldo etiquetada "Global" y una única
// sugerencia de contenido.
func (s *EnrichmentService) MarketingSuggestions(ctx context.Context, in dto.MarketingSnapshot) dto.MarketingSuggestionsDTO {
	res, err := s.llm.MarketingSuggestions(ctx, in)
	if err != nil {
		s.log.Warn().Err(err).Msg("fallo al generar sugerencias de marketing con IA")
		return dto.MarketingSuggestionsDTO{
			MarketTrends: []dto.MarketTrendDTO{
				{Market: "Global", Trend: "Could not analyze market trends at this time."},
			},
			ContentSuggestions: []string{"Try again later when the AI service is available."},
		}
	}
	return *res
}

// DashboardInsights genera insights para el dashboard. En caso de fallo
// devuelve un único insight de tipo "error" titulado "AI Service Unavailable".
func (s *EnrichmentService) DashboardInsights(ctx context.Context, in dto.DashboardSnapshot) []dto.DashboardInsightDTO {
	res, err := s.llm.DashboardInsights(ctx, in)
	if err != nil {
		s.log.Warn().Err(err).Msg("fallo al generar insights de dashboard con IA")
		return []dto.DashboardInsightDTO{
			{
				Type:        "error",
				Title:       "AI Service Unavailable",
				Description: "The AI insights service is currently unavailable. Please try again later.",
				ActionText:  "Refresh",
			},
		}
	}
	return res
}

// clampScore acota un score a [0,100]: los valores fuera de rango del
// modelo se recortan, no se rechazan.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
