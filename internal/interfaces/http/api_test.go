package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appai "github.com/jhoicas/crm-pro/internal/application/ai"
	"github.com/jhoicas/crm-pro/internal/application/auth"
	"github.com/jhoicas/crm-pro/internal/application/dto"
	"github.com/jhoicas/crm-pro/internal/application/usecase"
	"github.com/jhoicas/crm-pro/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/crm-pro/internal/interfaces/http"
	"github.com/jhoicas/crm-pro/pkg/logger"
	"github.com/jhoicas/crm-pro/pkg/session"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// llmDown simula un proveedor de IA caído: todas las llamadas fallan, así que
// el enriquecimiento produce los valores de respaldo deterministas.
type llmDown struct{}

func (llmDown) ScoreLead(context.Context, dto.LeadScoringInput) (*dto.LeadScoreDTO, error) {
	return nil, errors.New("proveedor caído")
}
func (llmDown) CompanyInsights(context.Context, dto.CompanyInsightInput) (*dto.CompanyInsightDTO, error) {
	return nil, errors.New("proveedor caído")
}
func (llmDown) MarketingSuggestions(context.Context, dto.MarketingSnapshot) (*dto.MarketingSuggestionsDTO, error) {
	return nil, errors.New("proveedor caído")
}
func (llmDown) DashboardInsights(context.Context, dto.DashboardSnapshot) ([]dto.DashboardInsightDTO, error) {
	return nil, errors.New("proveedor caído")
}

type testEnv struct {
	app   *fiber.App
	store *memory.Store
}

// buildTestApp arma la aplicación completa sobre el backend en memoria con
// el proveedor de IA caído (respaldos deterministas) y sesiones reales.
func buildTestApp(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewStore()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	enricher := appai.NewEnrichmentService(llmDown{}, log)

	sessions := session.NewStore(time.Hour, time.Hour)
	t.Cleanup(sessions.Stop)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(store.Users),
		LeadUC:      usecase.NewLeadUseCase(store.Leads, store.Companies, store.Tasks, enricher),
		CompanyUC:   usecase.NewCompanyUseCase(store.Companies, store.Leads, store.Tasks, store.Insights, enricher),
		TaskUC:      usecase.NewTaskUseCase(store.Tasks),
		InsightUC:   usecase.NewInsightUseCase(store.Insights, store.Leads, store.Tasks, enricher),
		DashboardUC: usecase.NewDashboardUseCase(store.Leads, store.Companies, store.Tasks),
		MarketingUC: usecase.NewMarketingUseCase(store.Leads, store.Companies, enricher),
		Sessions:    sessions,
		SessionTTL:  time.Hour,
	})
	return &testEnv{app: app, store: store}
}

// login registra un usuario y devuelve la cookie de sesión lista para enviar.
func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/auth/register", "",
		map[string]any{"username": "ana", "password": "secreto123"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == apphttp.SessionCookie {
			return c.Name + "=" + c.Value
		}
	}
	t.Fatal("el registro debe dejar la cookie de sesión")
	return ""
}

// do lanza una petición JSON; cookie vacía = petición anónima.
func (e *testEnv) do(t *testing.T, method, path, cookie string, body any) *http.Response {
	t.Helper()
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación
// ──────────────────────────────────────────────────────────────────────────────

// Sin sesión, toda ruta protegida responde 401 con el cuerpo exacto y sin
// tocar el almacenamiento.
func TestRutasProtegidas_SinSesion_401(t *testing.T) {
	env := buildTestApp(t)

	resp := env.do(t, http.MethodPost, "/api/leads", "",
		map[string]any{"firstName": "Ana", "lastName": "Ruiz", "email": "a@x.io"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Not authenticated"}`, string(raw))

	leads, err := env.store.Leads.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, leads, "una petición rechazada no debe crear nada")
}

func TestAuth_RegistroLoginYMe(t *testing.T) {
	env := buildTestApp(t)
	cookie := env.login(t)

	// /me devuelve el usuario sin exponer jamás la password.
	resp := env.do(t, http.MethodGet, "/api/auth/me", cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me map[string]any
	decode(t, resp, &me)
	assert.Equal(t, "ana", me["username"])
	assert.NotContains(t, me, "password")

	// Username repetido → 400.
	resp = env.do(t, http.MethodPost, "/api/auth/register", "",
		map[string]any{"username": "ana", "password": "otra"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Credenciales malas → 401; buenas → 200.
	resp = env.do(t, http.MethodPost, "/api/auth/login", "",
		map[string]any{"username": "ana", "password": "equivocada"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/auth/login", "",
		map[string]any{"username": "ana", "password": "secreto123"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuth_LogoutInvalidaLaSesion(t *testing.T) {
	env := buildTestApp(t)
	cookie := env.login(t)

	resp := env.do(t, http.MethodPost, "/api/auth/logout", cookie, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/auth/me", cookie, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Leads
// ──────────────────────────────────────────────────────────────────────────────

// Crear un lead con empresa resoluble dispara la puntuación IA; con el
// proveedor caído el score neutro 50 queda persistido antes del 201.
func TestLeads_CrearConEmpresa_PersisteElScore(t *testing.T) {
	env := buildTestApp(t)
	cookie := env.login(t)

	var company dto.CompanyResponse
	resp := env.do(t, http.MethodPost, "/api/companies", cookie,
		map[string]any{"name": "Acme", "industry": "IT", "market": "Germany"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &company)

	var lead dto.LeadResponse
	resp = env.do(t, http.MethodPost, "/api/leads", cookie,
		map[string]any{"firstName": "Ana", "lastName": "Ruiz", "email": "a@x.io", "companyId": company.ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &lead)

	assert.Equal(t, 50, lead.AIScore)
	assert.Equal(t, "new", lead.Status)

	stored, err := env.store.Leads.GetByID(context.Background(), lead.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 50, stored.AIScore, "el score debe quedar persistido, no solo en la respuesta")
}

func TestLeads_ListadoInlineaLaEmpresa(t *testing.T) {
	env := buildTestApp(t)
	cookie := env.login(t)

	var company dto.CompanyResponse
	resp := env.do(t, http.MethodPost, "/api/companies", cookie, map[string]any{"name": "Acme"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &company)

	resp = env.do(t, http.MethodPost, "/api/leads", cookie,
		map[string]any{"firstName": "Ana", "lastName": "Ruiz", "email": "a@x.io", "companyId": company.ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = env.do(t, http.MethodPost, "/api/leads", cookie,
		map[string]any{"firstName": "Bob", "lastName": "Lee", "email": "b@x.io"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/leads", cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]any
	decode(t, resp, &list)
	require.Len(t, list, 2)
	require.Contains(t, list[0], "company")
	assert.Equal(t, "Acme", list[0]["company"].(map[string]any)["name"])
	assert.NotContains(t, list[1], "company", "sin companyId la clave company se omite")
}

// PUT con cuerpo {} es un no-op: 200 y el lead idéntico al de antes.
func TestLeads_PutVacio_EsNoOp(t *testing.T) {
	env := buildTestApp(t)
	cookie := env.login(t)

	var created dto.LeadResponse
	resp := env.do(t, http.MethodPost, "/api/leads", cookie,
		map[string]any{"firstName": "Ana", "lastName": "Ruiz", "email": "a@x.io", "notes": "vip"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &created)

	var updated dto.LeadResponse
	resp = env.do(t, http.MethodPut, fmt.Sprintf("/api/leads/%d", created.ID), cookie, map[string]any{})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &updated)

	assert.Equal(t, created, updated)
}

func TestLeads_IDInvalidoYDesconocido(t *testing.T) {
	env := buildTestApp(t)
	cookie := env.login(t)

	resp := env.do(t, http.MethodGet, "/api/leads/abc", cookie, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]any
	decode(t, resp, &body)
	assert.Equal(t, "Invalid ID format", body["message"])

	resp = env.do(t, http.MethodGet, "/api/leads/999", cookie, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	decode(t, resp, &body)
	assert.Equal(t, "Lead not found", body["message"])
}

func TestLeads_ValidacionDeCampos(t *testing.T) {
	env := buildTestApp(t)
	cookie := env.login(t)

	// Falta firstName.
	resp := env.do(t, http.MethodPost, "/api/leads", cookie,
		map[string]any{"lastName": "Ruiz", "email": "a@x.io"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Message string           `json:"message"`
		Errors  []dto.FieldError `json:"errors"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "Validation error", body.Message)
	require.NotEmpty(t, body.Errors)
	assert.Equal(t, "firstName", body.Errors[0].Field)

	// Enum de status inválido.
	resp = env.do(t, http.MethodPost, "/api/leads", cookie,
		map[string]any{"firstName": "Ana", "lastName": "Ruiz", "email": "a@x.io", "status": "frozen"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLeads_BorrarDosVeces(t *testing.T) {
	env := buildTestApp(t)
	cookie := env.login(t)

	var created dto.LeadResponse
	resp := env.do(t, http.MethodPost, "/api/leads", cookie,
		map[string]any{"firstName": "Ana", "lastName": "Ruiz", "email": "a@x.io"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &created)

	resp = env.do(t, http.MethodDelete, fmt.Sprintf("/api/leads/%d", created.ID), cookie, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, fmt.Sprintf("/api/leads/%d", created.ID), cookie, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Companies
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanies_DetalleInlineaLeadsYTareas(t *testing.T) {
	env := buildTestApp(t)
	cookie := env.login(t)

	var company dto.CompanyResponse
	resp := env.do(t, http.MethodPost, "/api/companies", cookie, map[string]any{"name": "Acme"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &company)

	resp = env.do(t, http.MethodPost, "/api/leads", cookie,
		map[string]any{"firstName": "Ana", "lastName": "Ruiz", "email": "a@x.io", "companyId": company.ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = env.do(t, http.MethodPost, "/api/tasks", cookie,
		map[string]any{"title": "llamar", "companyId": company.ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var detail dto.CompanyDetailResponse
	resp = env.do(t, http.MethodGet, fmt.Sprintf("/api/companies/%d", company.ID), cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &detail)

	assert.Len(t, detail.Leads, 1)
	assert.Len(t, detail.Tasks, 1)
}

// La investigación con el proveedor caído responde los textos de respaldo y
// aun así persiste el insight de research ligado a la empresa.
func TestCompanies_Research_PersisteElInsight(t *testing.T) {
	env := buildTestApp(t)
	cookie := env.login(t)

	var company dto.CompanyResponse
	resp := env.do(t, http.MethodPost, "/api/companies", cookie, map[string]any{"name": "Acme"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &company)

	var research dto.ResearchResponse
	resp = env.do(t, http.MethodPost, fmt.Sprintf("/api/companies/%d/research", company.ID), cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &research)

	assert.Equal(t, "Could not generate insights at this time.", research.Insights)
	assert.Greater(t, research.InsightID, 0)

	stored, err := env.store.Insights.GetByID(context.Background(), research.InsightID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "research", stored.Type)
	assert.Equal(t, "Company Research: Acme", stored.Title)
	require.NotNil(t, stored.CompanyID)
	assert.Equal(t, company.ID, *stored.CompanyID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tasks
// ──────────────────────────────────────────────────────────────────────────────

// Completar una tarea sella completedAt; completarla de nuevo no lo mueve.
func TestTasks_CompletarSellaCompletedAtUnaVez(t *testing.T) {
	env := buildTestApp(t)
	cookie := env.login(t)

	var task dto.TaskResponse
	resp := env.do(t, http.MethodPost, "/api/tasks", cookie, map[string]any{"title": "demo"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &task)
	assert.Equal(t, "pending", task.Status)
	assert.Nil(t, task.CompletedAt)

	var done dto.TaskResponse
	resp = env.do(t, http.MethodPut, fmt.Sprintf("/api/tasks/%d", task.ID), cookie,
		map[string]any{"status": "completed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &done)
	require.NotNil(t, done.CompletedAt)

	var again dto.TaskResponse
	resp = env.do(t, http.MethodPut, fmt.Sprintf("/api/tasks/%d", task.ID), cookie,
		map[string]any{"status": "completed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &again)
	require.NotNil(t, again.CompletedAt)
	assert.True(t, done.CompletedAt.Equal(*again.CompletedAt), "el sello original no debe moverse")
}

func TestTasks_DueToday(t *testing.T) {
	env := buildTestApp(t)
	cookie := env.login(t)

	now := time.Now()
	resp := env.do(t, http.MethodPost, "/api/tasks", cookie,
		map[string]any{"title": "hoy", "dueDate": now.Format(time.RFC3339)})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = env.do(t, http.MethodPost, "/api/tasks", cookie,
		map[string]any{"title": "mañana", "dueDate": now.AddDate(0, 0, 1).Format(time.RFC3339)})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var due []dto.TaskResponse
	resp = env.do(t, http.MethodGet, "/api/tasks/due-today", cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &due)

	require.Len(t, due, 1)
	assert.Equal(t, "hoy", due[0].Title)
}

// ──────────────────────────────────────────────────────────────────────────────
// AI Insights y dashboard
// ──────────────────────────────────────────────────────────────────────────────

// Generar con el proveedor caído persiste el insight de error de respaldo;
// descartarlo lo saca del listado activo sin borrarlo.
func TestInsights_GenerarYDescartar(t *testing.T) {
	env := buildTestApp(t)
	cookie := env.login(t)

	var generated []dto.AiInsightResponse
	resp := env.do(t, http.MethodPost, "/api/ai-insights/generate", cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &generated)

	require.Len(t, generated, 1)
	assert.Equal(t, "error", generated[0].Type)
	assert.Equal(t, "AI Service Unavailable", generated[0].Title)

	// Descartar.
	resp = env.do(t, http.MethodPut, fmt.Sprintf("/api/ai-insights/%d", generated[0].ID), cookie,
		map[string]any{"isDismissed": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var active []dto.AiInsightResponse
	resp = env.do(t, http.MethodGet, "/api/ai-insights", cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &active)
	assert.Empty(t, active)

	// Sigue persistido, solo que descartado.
	stored, err := env.store.Insights.GetByID(context.Background(), generated[0].ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.IsDismissed)
}

func TestDashboard_Stats(t *testing.T) {
	env := buildTestApp(t)
	cookie := env.login(t)

	resp := env.do(t, http.MethodPost, "/api/companies", cookie, map[string]any{"name": "Acme"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = env.do(t, http.MethodPost, "/api/leads", cookie,
		map[string]any{"firstName": "Ana", "lastName": "Ruiz", "email": "a@x.io"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = env.do(t, http.MethodPost, "/api/tasks", cookie,
		map[string]any{"title": "activa", "status": "in-progress"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = env.do(t, http.MethodPost, "/api/tasks", cookie,
		map[string]any{"title": "hoy", "dueDate": time.Now().Format(time.RFC3339)})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var stats dto.DashboardStatsResponse
	resp = env.do(t, http.MethodGet, "/api/dashboard/stats", cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &stats)

	assert.Equal(t, 1, stats.NewLeads)
	assert.Equal(t, 1, stats.NewCompanies)
	assert.Equal(t, 1, stats.ActiveProjects)
	assert.Equal(t, 1, stats.TasksDueToday)
}

// ──────────────────────────────────────────────────────────────────────────────
// Marketing
// ──────────────────────────────────────────────────────────────────────────────

func TestMarketing_SugerenciasDeRespaldo(t *testing.T) {
	env := buildTestApp(t)
	cookie := env.login(t)

	var out dto.MarketingSuggestionsDTO
	resp := env.do(t, http.MethodGet, "/api/marketing/suggestions", cookie, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &out)

	require.Len(t, out.MarketTrends, 1)
	assert.Equal(t, "Global", out.MarketTrends[0].Market)
}
