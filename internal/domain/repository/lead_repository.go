package repository

import (
	"context"

	"github.com/jhoicas/crm-pro/internal/domain/entity"
)

// LeadRepository define el puerto de persistencia para Lead.
// Create asigna ID y CreatedAt; Update aplica un merge superficial de los
// campos no nil del patch y devuelve (nil, nil) si el id no existe.
// Delete informa si realmente se eliminó un registro.
type LeadRepository interface {
	List(ctx context.Context) ([]*entity.Lead, error)
	GetByID(ctx context.Context, id int) (*entity.Lead, error)
	Create(ctx context.Context, lead *entity.Lead) (*entity.Lead, error)
	Update(ctx context.Context, id int, patch entity.LeadPatch) (*entity.Lead, error)
	Delete(ctx context.Context, id int) (bool, error)
	ListByCompany(ctx context.Context, companyID int) ([]*entity.Lead, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.Lead, error)
	ListByMarket(ctx context.Context, market string) ([]*entity.Lead, error)
}
