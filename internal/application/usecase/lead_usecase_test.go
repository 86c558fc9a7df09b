package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appai "github.com/jhoicas/crm-pro/internal/application/ai"
	"github.com/jhoicas/crm-pro/internal/application/dto"
	"github.com/jhoicas/crm-pro/internal/application/usecase"
	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/infrastructure/memory"
	"github.com/jhoicas/crm-pro/pkg/logger"
)

// llmCaptura registra la entrada de puntuación y responde un score fijo.
type llmCaptura struct {
	gotScoring *dto.LeadScoringInput
	score      int
	fail       bool
}

func (s *llmCaptura) ScoreLead(_ context.Context, in dto.LeadScoringInput) (*dto.LeadScoreDTO, error) {
	s.gotScoring = &in
	if s.fail {
		return nil, errors.New("proveedor caído")
	}
	return &dto.LeadScoreDTO{Score: s.score, Reasoning: "buen encaje"}, nil
}

func (s *llmCaptura) CompanyInsights(context.Context, dto.CompanyInsightInput) (*dto.CompanyInsightDTO, error) {
	return nil, errors.New("no usado")
}

func (s *llmCaptura) MarketingSuggestions(context.Context, dto.MarketingSnapshot) (*dto.MarketingSuggestionsDTO, error) {
	return nil, errors.New("no usado")
}

func (s *llmCaptura) DashboardInsights(context.Context, dto.DashboardSnapshot) ([]dto.DashboardInsightDTO, error) {
	return nil, errors.New("no usado")
}

func buildLeadUC(llm *llmCaptura) (*usecase.LeadUseCase, *memory.Store) {
	store := memory.NewStore()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	enricher := appai.NewEnrichmentService(llm, log)
	return usecase.NewLeadUseCase(store.Leads, store.Companies, store.Tasks, enricher), store
}

// Los huecos del input de puntuación se rellenan en cascada: market del
// lead, si no el de la empresa, si no "Unknown"; industry y position caen
// directamente a "Unknown".
func TestLeadCreate_CascadaDeFallbacksEnElInput(t *testing.T) {
	llm := &llmCaptura{score: 87}
	uc, store := buildLeadUC(llm)
	ctx := context.Background()

	company, err := store.Companies.Create(ctx, &entity.Company{Name: "Acme", Market: "Germany"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateLeadRequest{
		FirstName: "Ana",
		LastName:  "Ruiz",
		Email:     "a@x.io",
		CompanyID: &company.ID,
	})
	require.NoError(t, err)

	require.NotNil(t, llm.gotScoring)
	assert.Equal(t, "Acme", llm.gotScoring.Company)
	assert.Equal(t, "Germany", llm.gotScoring.Market, "sin market propio hereda el de la empresa")
	assert.Equal(t, "Unknown", llm.gotScoring.Industry)
	assert.Equal(t, "Unknown", llm.gotScoring.Position)
}

func TestLeadCreate_SinEmpresa_NoPuntua(t *testing.T) {
	llm := &llmCaptura{score: 87}
	uc, _ := buildLeadUC(llm)

	created, err := uc.Create(context.Background(), dto.CreateLeadRequest{
		FirstName: "Ana", LastName: "Ruiz", Email: "a@x.io",
	})
	require.NoError(t, err)

	assert.Nil(t, llm.gotScoring, "sin companyId no debe llamarse al modelo")
	assert.Equal(t, 0, created.AIScore)
}

func TestLeadCreate_ScoreDelModeloQuedaPersistido(t *testing.T) {
	llm := &llmCaptura{score: 87}
	uc, store := buildLeadUC(llm)
	ctx := context.Background()

	company, err := store.Companies.Create(ctx, &entity.Company{Name: "Acme"})
	require.NoError(t, err)

	created, err := uc.Create(ctx, dto.CreateLeadRequest{
		FirstName: "Ana", LastName: "Ruiz", Email: "a@x.io", CompanyID: &company.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 87, created.AIScore)

	stored, err := store.Leads.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 87, stored.AIScore)
}

// Un proveedor caído nunca hace fallar la creación: el lead nace con el
// score neutro 50 persistido.
func TestLeadCreate_ProveedorCaido_ScoreNeutro(t *testing.T) {
	llm := &llmCaptura{fail: true}
	uc, store := buildLeadUC(llm)
	ctx := context.Background()

	company, err := store.Companies.Create(ctx, &entity.Company{Name: "Acme"})
	require.NoError(t, err)

	created, err := uc.Create(ctx, dto.CreateLeadRequest{
		FirstName: "Ana", LastName: "Ruiz", Email: "a@x.io", CompanyID: &company.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 50, created.AIScore)
}
