package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/crm-pro/internal/domain"
	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, password, first_name, last_name, email, role, profile_image_url`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// GetByID obtiene un usuario por id; (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id int) (*entity.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// GetByUsername obtiene un usuario por su username único; (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE username = $1`, userColumns)
	user, err := scanUser(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return user, nil
}

// Create persiste un usuario nuevo. Un username duplicado se reporta como
// domain.ErrUsernameTaken apoyándose en el constraint único de la tabla.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (username, password, first_name, last_name, email, role, profile_image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s`, userColumns)
	created, err := scanUser(r.pool.QueryRow(ctx, query,
		user.Username, user.Password, user.FirstName, user.LastName,
		user.Email, user.Role, user.ProfileImageURL,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Password, &u.FirstName, &u.LastName,
		&u.Email, &u.Role, &u.ProfileImageURL,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
