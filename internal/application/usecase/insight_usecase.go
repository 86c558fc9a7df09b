package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/crm-pro/internal/application/ai"
	"github.com/jhoicas/crm-pro/internal/application/dto"
	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/domain/repository"
)

// InsightUseCase casos de uso para insights generados por IA.
type InsightUseCase struct {
	insights repository.AiInsightRepository
	leads    repository.LeadRepository
	tasks    repository.TaskRepository
	enricher *ai.EnrichmentService
	now      func() time.Time
}

// NewInsightUseCase construye el caso de uso.
func NewInsightUseCase(
	insights repository.AiInsightRepository,
	leads repository.LeadRepository,
	tasks repository.TaskRepository,
	enricher *ai.EnrichmentService,
) *InsightUseCase {
	return &InsightUseCase{
		insights: insights,
		leads:    leads,
		tasks:    tasks,
		enricher: enricher,
		now:      time.Now,
	}
}

// Active devuelve los insights no descartados. Los descartados siguen
// persistidos pero no salen en este listado.
func (uc *InsightUseCase) Active(ctx context.Context) ([]dto.AiInsightResponse, error) {
	insights, err := uc.insights.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AiInsightResponse, 0, len(insights))
	for _, i := range insights {
		if i.IsDismissed {
			continue
		}
		out = append(out, toInsightResponse(i))
	}
	return out, nil
}

// Generate agrega la actividad reciente del CRM, pide al modelo 3–4 insights
// accionables y los persiste, devolviendo los registros guardados. Un
// proveedor caído produce el insight de error de respaldo, también persistido.
func (uc *InsightUseCase) Generate(ctx context.Context) ([]dto.AiInsightResponse, error) {
	snapshot, err := uc.buildSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	generated := uc.enricher.DashboardInsights(ctx, snapshot)

	saved := make([]dto.AiInsightResponse, 0, len(generated))
	for _, g := range generated {
		insight, err := uc.insights.Create(ctx, &entity.AiInsight{
			Type:        g.Type,
			Title:       g.Title,
			Description: g.Description,
			ActionText:  g.ActionText,
		})
		if err != nil {
			return nil, err
		}
		saved = append(saved, toInsightResponse(insight))
	}
	return saved, nil
}

// Update aplica una actualización parcial (normalmente isRead/isDismissed);
// (nil, nil) si el id no existe.
func (uc *InsightUseCase) Update(ctx context.Context, id int, in dto.UpdateAiInsightRequest) (*dto.AiInsightResponse, error) {
	updated, err := uc.insights.Update(ctx, id, in.Patch())
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}
	resp := toInsightResponse(updated)
	return &resp, nil
}

// buildSnapshot calcula los agregados que alimentan la generación: leads de
// los últimos 7 días, distribución por mercado y estado, tareas in-progress
// y tareas que vencen hoy.
func (uc *InsightUseCase) buildSnapshot(ctx context.Context) (dto.DashboardSnapshot, error) {
	leads, err := uc.leads.List(ctx)
	if err != nil {
		return dto.DashboardSnapshot{}, err
	}
	tasks, err := uc.tasks.List(ctx)
	if err != nil {
		return dto.DashboardSnapshot{}, err
	}
	dueToday, err := uc.tasks.ListByDueDate(ctx, uc.now())
	if err != nil {
		return dto.DashboardSnapshot{}, err
	}

	oneWeekAgo := uc.now().AddDate(0, 0, -7)
	snapshot := dto.DashboardSnapshot{
		LeadsByMarket: make(map[string]int),
		LeadsByStatus: make(map[string]int),
		TasksDueToday: len(dueToday),
	}
	for _, lead := range leads {
		if !lead.CreatedAt.Before(oneWeekAgo) {
			snapshot.RecentLeads++
		}
		if lead.Market != "" {
			snapshot.LeadsByMarket[lead.Market]++
		}
		if lead.Status != "" {
			snapshot.LeadsByStatus[lead.Status]++
		}
	}
	for _, task := range tasks {
		if task.Status == entity.TaskStatusInProgress {
			snapshot.ActiveProjects++
		}
	}
	return snapshot, nil
}
