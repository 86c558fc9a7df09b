package ai_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appai "github.com/jhoicas/crm-pro/internal/application/ai"
	"github.com/jhoicas/crm-pro/internal/application/dto"
	"github.com/jhoicas/crm-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mock del puerto LLM
// ──────────────────────────────────────────────────────────────────────────────

// llmStub implementación controlable de ports.LLMService para los tests.
// Si fail es true, todos los métodos devuelven err.
type llmStub struct {
	fail  bool
	err   error
	score int

	companyInsight *dto.CompanyInsightDTO
	marketing      *dto.MarketingSuggestionsDTO
	dashboard      []dto.DashboardInsightDTO
}

func (s *llmStub) ScoreLead(ctx context.Context, in dto.LeadScoringInput) (*dto.LeadScoreDTO, error) {
	if s.fail {
		return nil, s.err
	}
	return &dto.LeadScoreDTO{Score: s.score, Reasoning: "high growth potential"}, nil
}

func (s *llmStub) CompanyInsights(ctx context.Context, in dto.CompanyInsightInput) (*dto.CompanyInsightDTO, error) {
	if s.fail {
		return nil, s.err
	}
	return s.companyInsight, nil
}

func (s *llmStub) MarketingSuggestions(ctx context.Context, in dto.MarketingSnapshot) (*dto.MarketingSuggestionsDTO, error) {
	if s.fail {
		return nil, s.err
	}
	return s.marketing, nil
}

func (s *llmStub) DashboardInsights(ctx context.Context, in dto.DashboardSnapshot) ([]dto.DashboardInsightDTO, error) {
	if s.fail {
		return nil, s.err
	}
	return s.dashboard, nil
}

func newService(stub *llmStub) *appai.EnrichmentService {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return appai.NewEnrichmentService(stub, log)
}

// ──────────────────────────────────────────────────────────────────────────────
// ScoreLead
// ──────────────────────────────────────────────────────────────────────────────

// El fallo del proveedor debe absorberse en el score neutro exacto,
// nunca propagarse.
func TestScoreLead_FalloDelProveedor_DevuelveScoreNeutro(t *testing.T) {
	svc := newService(&llmStub{fail: true, err: errors.New("connection refused")})

	got := svc.ScoreLead(context.Background(), dto.LeadScoringInput{FirstName: "Ana", LastName: "Ruiz"})

	assert.Equal(t, 50, got.Score)
	assert.Equal(t, "Error processing AI score, defaulting to neutral score.", got.Reasoning)
}

// Scores fuera de rango del modelo se recortan a los extremos, no se rechazan.
func TestScoreLead_ScoreFueraDeRango_SeAcota(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want int
	}{
		{"negativo se acota a 0", -15, 0},
		{"mayor que 100 se acota a 100", 140, 100},
		{"dentro de rango se conserva", 87, 87},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newService(&llmStub{score: tc.in})
			got := svc.ScoreLead(context.Background(), dto.LeadScoringInput{})
			assert.Equal(t, tc.want, got.Score)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CompanyInsights / MarketingSuggestions / DashboardInsights
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyInsights_FalloDelProveedor_DevuelveRespaldoFijo(t *testing.T) {
	svc := newService(&llmStub{fail: true, err: errors.New("HTTP 500")})

	got := svc.CompanyInsights(context.Background(), dto.CompanyInsightInput{Name: "Acme"})

	assert.Equal(t, "Could not generate insights at this time.", got.Insights)
	require.Len(t, got.Recommendations, 1)
	assert.Equal(t, "Try again later when the AI service is available.", got.Recommendations[0])
}

func TestMarketingSuggestions_FalloDelProveedor_TendenciaGlobalDeRespaldo(t *testing.T) {
	svc := newService(&llmStub{fail: true, err: errors.New("timeout")})

	got := svc.MarketingSuggestions(context.Background(), dto.MarketingSnapshot{})

	require.Len(t, got.MarketTrends, 1)
	assert.Equal(t, "Global", got.MarketTrends[0].Market)
	require.Len(t, got.ContentSuggestions, 1)
}

func TestDashboardInsights_FalloDelProveedor_InsightDeError(t *testing.T) {
	svc := newService(&llmStub{fail: true, err: errors.New("respuesta ilegible")})

	got := svc.DashboardInsights(context.Background(), dto.DashboardSnapshot{})

	require.Len(t, got, 1)
	assert.Equal(t, "error", got[0].Type)
	assert.Equal(t, "AI Service Unavailable", got[0].Title)
	assert.Equal(t, "Refresh", got[0].ActionText)
}

// En el camino feliz los insights del modelo pasan tal cual.
func TestDashboardInsights_Exito_PasaLosInsightsDelModelo(t *testing.T) {
	stub := &llmStub{dashboard: []dto.DashboardInsightDTO{
		{Type: "lead", Title: "Hot leads in Germany", Description: "5 qualified leads this week", ActionText: "Review leads"},
		{Type: "trend", Title: "IT sector growing", Description: "Lead volume up 30%", ActionText: "See details"},
	}}
	svc := newService(stub)

	got := svc.DashboardInsights(context.Background(), dto.DashboardSnapshot{RecentLeads: 5})

	require.Len(t, got, 2)
	assert.Equal(t, "Hot leads in Germany", got[0].Title)
}
