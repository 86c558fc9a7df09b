package ports

import (
	"context"

	"github.com/jhoicas/crm-pro/internal/application/dto"
)

// LLMService define el puerto de salida hacia el proveedor de IA.
// Cualquier adaptador (OpenAI, Anthropic, Gemini, mock) debe implementar
// esta interfaz. Siguiendo el principio de inversión de dependencias (DIP),
// la capa de aplicación solo conoce este contrato, no la implementación.
//
// Los cuatro métodos pueden devolver error (red, respuesta malformada,
// API key ausente): el EnrichmentService es quien absorbe esos fallos y
// los convierte en valores por defecto; los adaptadores no lo hacen.
type LLMService interface {
	// ScoreLead puntúa un lead de 0 a 100 con el razonamiento del modelo.
	ScoreLead(ctx context.Context, in dto.LeadScoringInput) (*dto.LeadScoreDTO, error)

	// CompanyInsights analiza una empresa y devuelve un párrafo de análisis
	// más una lista ordenada de recomendaciones.
	CompanyInsights(ctx context.Context, in dto.CompanyInsightInput) (*dto.CompanyInsightDTO, error)

	// MarketingSuggestions deriva tendencias por mercado e ideas de contenido
	// a partir de los agregados (mercado, industria) de leads y empresas.
	MarketingSuggestions(ctx context.Context, in dto.MarketingSnapshot) (*dto.MarketingSuggestionsDTO, error)

	// DashboardInsights genera 3–4 insights accionables para el dashboard.
	DashboardInsights(ctx context.Context, in dto.DashboardSnapshot) ([]dto.DashboardInsightDTO, error)
}
