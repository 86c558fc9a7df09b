package repository

import (
	"context"

	"github.com/jhoicas/crm-pro/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company.
// Mismo contrato uniforme que el resto de entidades: GetByID/Update devuelven
// (nil, nil) para ids inexistentes y Delete informa si hubo borrado real.
type CompanyRepository interface {
	List(ctx context.Context) ([]*entity.Company, error)
	GetByID(ctx context.Context, id int) (*entity.Company, error)
	Create(ctx context.Context, company *entity.Company) (*entity.Company, error)
	Update(ctx context.Context, id int, patch entity.CompanyPatch) (*entity.Company, error)
	Delete(ctx context.Context, id int) (bool, error)
	ListByMarket(ctx context.Context, market string) ([]*entity.Company, error)
	ListByIndustry(ctx context.Context, industry string) ([]*entity.Company, error)
}
