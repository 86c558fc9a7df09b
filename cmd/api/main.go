package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appai "github.com/jhoicas/crm-pro/internal/application/ai"
	"github.com/jhoicas/crm-pro/internal/application/auth"
	"github.com/jhoicas/crm-pro/internal/application/usecase"
	"github.com/jhoicas/crm-pro/internal/domain/repository"
	infraai "github.com/jhoicas/crm-pro/internal/infrastructure/ai"
	"github.com/jhoicas/crm-pro/internal/infrastructure/memory"
	"github.com/jhoicas/crm-pro/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/crm-pro/internal/interfaces/http"
	"github.com/jhoicas/crm-pro/pkg/config"
	"github.com/jhoicas/crm-pro/pkg/logger"
	"github.com/jhoicas/crm-pro/pkg/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	repos, cleanup, err := buildRepositories(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer cleanup()

	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	sessions := session.NewStore(sessionTTL, time.Duration(cfg.Session.CheckPeriodMinutes)*time.Minute)
	defer sessions.Stop()

	llm := infraai.NewOpenAIService(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	enricher := appai.NewEnrichmentService(llm, log)

	authUC := auth.NewAuthUseCase(repos.Users)
	leadUC := usecase.NewLeadUseCase(repos.Leads, repos.Companies, repos.Tasks, enricher)
	companyUC := usecase.NewCompanyUseCase(repos.Companies, repos.Leads, repos.Tasks, repos.Insights, enricher)
	taskUC := usecase.NewTaskUseCase(repos.Tasks)
	insightUC := usecase.NewInsightUseCase(repos.Insights, repos.Leads, repos.Tasks, enricher)
	dashboardUC := usecase.NewDashboardUseCase(repos.Leads, repos.Companies, repos.Tasks)
	marketingUC := usecase.NewMarketingUseCase(repos.Leads, repos.Companies, enricher)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		LeadUC:      leadUC,
		CompanyUC:   companyUC,
		TaskUC:      taskUC,
		InsightUC:   insightUC,
		DashboardUC: dashboardUC,
		MarketingUC: marketingUC,
		Sessions:    sessions,
		SessionTTL:  sessionTTL,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// repositories puertos de persistencia ya resueltos contra un backend.
type repositories struct {
	Users     repository.UserRepository
	Leads     repository.LeadRepository
	Companies repository.CompanyRepository
	Tasks     repository.TaskRepository
	Insights  repository.AiInsightRepository
}

// buildRepositories selecciona el backend según STORAGE_DRIVER: "postgres"
// abre el pool y aplica migraciones; cualquier otro valor usa el backend en
// memoria (datos volátiles, útil para demos y desarrollo).
func buildRepositories(cfg *config.Config, log *logger.Logger) (repositories, func(), error) {
	if cfg.Storage.Driver == "postgres" {
		if err := postgres.Migrate(cfg.DB); err != nil {
			return repositories{}, nil, err
		}
		pool, err := postgres.NewPool(context.Background(), cfg.DB)
		if err != nil {
			return repositories{}, nil, err
		}
		log.Info().Msg("backend PostgreSQL listo")
		return repositories{
			Users:     postgres.NewUserRepository(pool),
			Leads:     postgres.NewLeadRepository(pool),
			Companies: postgres.NewCompanyRepository(pool),
			Tasks:     postgres.NewTaskRepository(pool),
			Insights:  postgres.NewAiInsightRepository(pool),
		}, pool.Close, nil
	}

	store := memory.NewStore()
	log.Info().Msg("backend en memoria listo")
	return repositories{
		Users:     store.Users,
		Leads:     store.Leads,
		Companies: store.Companies,
		Tasks:     store.Tasks,
		Insights:  store.Insights,
	}, func() {}, nil
}
