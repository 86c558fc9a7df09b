package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/crm-pro/internal/application/dto"
	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/domain/repository"
)

// DashboardUseCase contadores agregados para la cabecera del dashboard.
type DashboardUseCase struct {
	leads     repository.LeadRepository
	companies repository.CompanyRepository
	tasks     repository.TaskRepository
	now       func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	leads repository.LeadRepository,
	companies repository.CompanyRepository,
	tasks repository.TaskRepository,
) *DashboardUseCase {
	return &DashboardUseCase{leads: leads, companies: companies, tasks: tasks, now: time.Now}
}

// Stats calcula los contadores con ventanas fijas: "new" = creado en los
// últimos 7 días, "active" = tareas in-progress, "due today" = vence el día
// calendario actual.
func (uc *DashboardUseCase) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	leads, err := uc.leads.List(ctx)
	if err != nil {
		return nil, err
	}
	companies, err := uc.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := uc.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	dueToday, err := uc.tasks.ListByDueDate(ctx, uc.now())
	if err != nil {
		return nil, err
	}

	oneWeekAgo := uc.now().AddDate(0, 0, -7)
	stats := &dto.DashboardStatsResponse{TasksDueToday: len(dueToday)}
	for _, lead := range leads {
		if !lead.CreatedAt.Before(oneWeekAgo) {
			stats.NewLeads++
		}
	}
	for _, company := range companies {
		if !company.CreatedAt.Before(oneWeekAgo) {
			stats.NewCompanies++
		}
	}
	for _, task := range tasks {
		if task.Status == entity.TaskStatusInProgress {
			stats.ActiveProjects++
		}
	}
	return stats, nil
}
