package repository

import (
	"context"

	"github.com/jhoicas/crm-pro/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// La implementación vive en infrastructure. GetByID/GetByUsername devuelven
// (nil, nil) si el registro no existe; nunca un error por id ausente.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
}
