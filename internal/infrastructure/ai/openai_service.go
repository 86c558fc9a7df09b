package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/jhoicas/crm-pro/internal/application/dto"
	"github.com/jhoicas/crm-pro/internal/application/ports"
)

// Verificar en tiempo de compilación que OpenAIService implementa LLMService.
var _ ports.LLMService = (*OpenAIService)(nil)

const (
	scoringSystemPrompt = "You are an AI lead scoring assistant for a CRM system focused on the IT and marketing industry. " +
		"Score leads from 0-100 based on their potential value, with reasoning. " +
		"Return a JSON object with score and reasoning properties."

	companySystemPrompt = "You are an AI business intelligence assistant for a CRM system. " +
		"Analyze company data and provide insights and actionable recommendations. " +
		"Return a JSON object with insights (string) and recommendations (array of strings)."

	marketingSystemPrompt = "You are an AI marketing assistant for a CRM system. " +
		"Analyze lead and company data to identify market trends and suggest content ideas. " +
		"Return a JSON object with marketTrends (array of objects with market and trend properties) " +
		"and contentSuggestions (array of strings)."

	dashboardSystemPrompt = "You are an AI insights generator for a CRM dashboard. " +
		"Create 3-4 actionable insights based on the data provided. " +
		"Return a JSON object with an insights array containing objects with type, title, " +
		"description, and actionText properties."
)

// OpenAIService adaptador que implementa LLMService usando el SDK oficial de
// OpenAI (chat completions con response_format json_object). Devuelve errores
// crudos: el servicio de enriquecimiento decide qué hacer con ellos.
type OpenAIService struct {
	client openai.Client
	model  string
	apiKey string
}

// NewOpenAIService construye el adaptador.
// model suele ser "gpt-4o". Si apiKey está vacío las llamadas devuelven
// error descriptivo en lugar de panic.
func NewOpenAIService(apiKey, model string) *OpenAIService {
	return &OpenAIService{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		apiKey: apiKey,
	}
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// ScoreLead puntúa un lead de 0 a 100. El modelo devuelve score como número
// (a veces con decimales); se redondea y acota aquí igual que aguas arriba.
func (s *OpenAIService) ScoreLead(ctx context.Context, in dto.LeadScoringInput) (*dto.LeadScoreDTO, error) {
	interactions, err := json.Marshal(in.Interactions)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar interacciones: %w", err)
	}
	if in.Interactions == nil {
		interactions = []byte("[]")
	}

	userPrompt := fmt.Sprintf(`Please score this lead:
Name: %s %s
Company: %s
Industry: %s
Position: %s
Market: %s
Interactions: %s`,
		in.FirstName, in.LastName, in.Company, in.Industry, in.Position, in.Market, interactions)

	var payload struct {
		Score     float64 `json:"score"`
		Reasoning string  `json:"reasoning"`
	}
	if err := s.completeJSON(ctx, scoringSystemPrompt, userPrompt, &payload); err != nil {
		return nil, err
	}

	score := int(math.Round(payload.Score))
	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	return &dto.LeadScoreDTO{Score: score, Reasoning: payload.Reasoning}, nil
}

// CompanyInsights analiza una empresa y devuelve análisis más recomendaciones.
func (s *OpenAIService) CompanyInsights(ctx context.Context, in dto.CompanyInsightInput) (*dto.CompanyInsightDTO, error) {
	userPrompt := fmt.Sprintf(`Please analyze this company:
Name: %s
Industry: %s
Market: %s
Engagement Score: %d/100`,
		in.Name, in.Industry, in.Market, in.EngagementScore)

	var payload dto.CompanyInsightDTO
	if err := s.completeJSON(ctx, companySystemPrompt, userPrompt, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// MarketingSuggestions deriva tendencias de mercado e ideas de contenido a
// partir de los agregados (mercado, industria) de leads y empresas.
func (s *OpenAIService) MarketingSuggestions(ctx context.Context, in dto.MarketingSnapshot) (*dto.MarketingSuggestionsDTO, error) {
	leads, err := json.Marshal(in.Leads)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar leads: %w", err)
	}
	companies, err := json.Marshal(in.Companies)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar empresas: %w", err)
	}

	userPrompt := fmt.Sprintf(`Please analyze these leads and companies:
Leads: %s
Companies: %s`, leads, companies)

	var payload dto.MarketingSuggestionsDTO
	if err := s.completeJSON(ctx, marketingSystemPrompt, userPrompt, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// DashboardInsights genera 3–4 insights accionables para el dashboard.
func (s *OpenAIService) DashboardInsights(ctx context.Context, in dto.DashboardSnapshot) ([]dto.DashboardInsightDTO, error) {
	byMarket, err := json.Marshal(in.LeadsByMarket)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar leads por mercado: %w", err)
	}
	byStatus, err := json.Marshal(in.LeadsByStatus)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar leads por estado: %w", err)
	}

	userPrompt := fmt.Sprintf(`Please generate insights based on this data:
Recent Leads: %d
Leads by Market: %s
Leads by Status: %s
Active Projects: %d
Tasks Due Today: %d`,
		in.RecentLeads, byMarket, byStatus, in.ActiveProjects, in.TasksDueToday)

	var payload struct {
		Insights []dto.DashboardInsightDTO `json:"insights"`
	}
	if err := s.completeJSON(ctx, dashboardSystemPrompt, userPrompt, &payload); err != nil {
		return nil, err
	}
	return payload.Insights, nil
}

// ── Infraestructura común de las cuatro llamadas ──────────────────────────────

// completeJSON ejecuta una chat completion forzando salida JSON y deserializa
// el primer objeto de la respuesta en out.
func (s *OpenAIService) completeJSON(ctx context.Context, system, user string, out any) error {
	if s.apiKey == "" {
		return fmt.Errorf("AI: OPENAI_API_KEY no configurado")
	}

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("AI: llamada a OpenAI fallida: %w", err)
	}

	if len(resp.Choices) == 0 {
		return fmt.Errorf("AI: el modelo devolvió respuesta vacía")
	}
	rawText := resp.Choices[0].Message.Content

	// Parseo seguro: extraer solo el bloque JSON aunque el modelo añada texto.
	cleanJSON := extractJSON(rawText)
	if cleanJSON == "" {
		return fmt.Errorf("AI: no se encontró JSON válido en la respuesta del modelo (respuesta: %s)", rawText)
	}
	if err := json.Unmarshal([]byte(cleanJSON), out); err != nil {
		return fmt.Errorf("AI: parsear JSON del modelo: %w (JSON extraído: %s)", err, cleanJSON)
	}
	return nil
}

// jsonBlockRe extrae el primer objeto JSON del texto aunque el modelo lo
// envuelva en markdown. Captura desde el primer '{' hasta el último '}'.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSON extrae el primer objeto JSON bien formado de un texto libre.
// Estrategia en dos pasos:
//  1. Eliminar bloques de código markdown (```json … ``` o ``` … ```).
//  2. Usar regex para capturar el primer bloque { … }.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if close := strings.LastIndex(after, "```"); close != -1 {
			after = after[:close]
		}
		text = strings.TrimSpace(after)
	}

	if strings.HasPrefix(text, "{") {
		return text
	}

	match := jsonBlockRe.FindString(text)
	return strings.TrimSpace(match)
}
