package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-pro/internal/application/auth"
	"github.com/jhoicas/crm-pro/internal/application/usecase"
	"github.com/jhoicas/crm-pro/pkg/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	LeadUC      *usecase.LeadUseCase
	CompanyUC   *usecase.CompanyUseCase
	TaskUC      *usecase.TaskUseCase
	InsightUC   *usecase.InsightUseCase
	DashboardUC *usecase.DashboardUseCase
	MarketingUC *usecase.MarketingUseCase
	Sessions    *session.Store
	SessionTTL  time.Duration
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público salvo /me)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions, deps.SessionTTL)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", SessionMiddleware(deps.Sessions), authHandler.Me)

	// Rutas protegidas (requieren cookie de sesión)
	protected := api.Group("/", SessionMiddleware(deps.Sessions))

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", dashboardHandler.Stats)

	// Leads
	leads := protected.Group("/leads")
	leadHandler := NewLeadHandler(deps.LeadUC)
	leads.Get("/", leadHandler.List)
	leads.Post("/", leadHandler.Create)
	leads.Get("/:id", leadHandler.GetByID)
	leads.Put("/:id", leadHandler.Update)
	leads.Delete("/:id", leadHandler.Delete)

	// Companies
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)
	companies.Post("/:id/research", companyHandler.Research)

	// Tasks (la ruta fija va antes que :id)
	tasks := protected.Group("/tasks")
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks.Get("/", taskHandler.List)
	tasks.Get("/due-today", taskHandler.DueToday)
	tasks.Post("/", taskHandler.Create)
	tasks.Put("/:id", taskHandler.Update)

	// AI Insights
	insights := protected.Group("/ai-insights")
	insightHandler := NewInsightHandler(deps.InsightUC)
	insights.Get("/", insightHandler.List)
	insights.Post("/generate", insightHandler.Generate)
	insights.Put("/:id", insightHandler.Update)

	// Marketing
	marketingHandler := NewMarketingHandler(deps.MarketingUC)
	protected.Get("/marketing/suggestions", marketingHandler.Suggestions)
}
