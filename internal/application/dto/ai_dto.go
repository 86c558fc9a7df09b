package dto

// Entradas y salidas tipadas de las cuatro operaciones de enriquecimiento IA.
// Las entradas son datos planos (nunca registros vivos) para que el servicio
// de enriquecimiento se pueda probar y sustituir sin tocar persistencia.

// InteractionDTO par tipo+fecha del historial de interacciones de un lead.
type InteractionDTO struct {
	Type string `json:"type"`
	Date string `json:"date"`
}

// LeadScoringInput datos planos para puntuar un lead.
type LeadScoringInput struct {
	FirstName    string
	LastName     string
	Company      string
	Industry     string
	Position     string
	Market       string
	Interactions []InteractionDTO
}

// LeadScoreDTO puntuación IA de un lead: entero acotado a [0,100].
type LeadScoreDTO struct {
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}

// CompanyInsightInput datos planos para analizar una empresa.
type CompanyInsightInput struct {
	Name            string
	Industry        string
	Market          string
	EngagementScore int
}

// CompanyInsightDTO análisis de una empresa con recomendaciones ordenadas.
type CompanyInsightDTO struct {
	Insights        string   `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

// MarketSegmentDTO par (mercado, industria) agregado de leads o empresas.
type MarketSegmentDTO struct {
	Market   string `json:"market"`
	Industry string `json:"industry"`
}

// MarketingSnapshot agregados de leads y empresas para sugerencias de marketing.
type MarketingSnapshot struct {
	Leads     []MarketSegmentDTO
	Companies []MarketSegmentDTO
}

// MarketTrendDTO tendencia detectada en un mercado.
type MarketTrendDTO struct {
	Market string `json:"market"`
	Trend  string `json:"trend"`
}

// MarketingSuggestionsDTO respuesta de GET /api/marketing/suggestions.
type MarketingSuggestionsDTO struct {
	MarketTrends       []MarketTrendDTO `json:"marketTrends"`
	ContentSuggestions []string         `json:"contentSuggestions"`
}

// DashboardSnapshot contadores y tablas de frecuencia para generar insights.
type DashboardSnapshot struct {
	RecentLeads    int
	LeadsByMarket  map[string]int
	LeadsByStatus  map[string]int
	ActiveProjects int
	TasksDueToday  int
}

// DashboardInsightDTO un insight accionable generado para el dashboard.
type DashboardInsightDTO struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ActionText  string `json:"actionText"`
}
