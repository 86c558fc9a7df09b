package repository

import (
	"context"

	"github.com/jhoicas/crm-pro/internal/domain/entity"
)

// AiInsightRepository define el puerto de persistencia para AiInsight.
// List devuelve todos los insights, descartados incluidos; el filtrado de
// activos (IsDismissed == false) es responsabilidad del caso de uso.
type AiInsightRepository interface {
	List(ctx context.Context) ([]*entity.AiInsight, error)
	GetByID(ctx context.Context, id int) (*entity.AiInsight, error)
	Create(ctx context.Context, insight *entity.AiInsight) (*entity.AiInsight, error)
	Update(ctx context.Context, id int, patch entity.AiInsightPatch) (*entity.AiInsight, error)
	Delete(ctx context.Context, id int) (bool, error)
	ListByLead(ctx context.Context, leadID int) ([]*entity.AiInsight, error)
	ListByCompany(ctx context.Context, companyID int) ([]*entity.AiInsight, error)
}
