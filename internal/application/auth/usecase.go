package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/crm-pro/internal/application/dto"
	"github.com/jhoicas/crm-pro/internal/domain"
	"github.com/jhoicas/crm-pro/internal/domain/entity"
	"github.com/jhoicas/crm-pro/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación: registro, login y lookup del
// usuario de sesión. La sesión en sí (cookie, store) vive en la capa HTTP.
type AuthUseCase struct {
	users repository.UserRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{users: users}
}

// Register crea un usuario: hashea la password con bcrypt y persiste.
// Devuelve ErrUsernameTaken si el username ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	user := &entity.User{
		Username:        in.Username,
		Password:        string(hash),
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		Role:            role,
		ProfileImageURL: in.ProfileImageURL,
	}

	created, err := uc.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return toUserResponse(created), nil
}

// Login verifica username/password contra el hash bcrypt. Un usuario
// inexistente y una password errónea devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredential
	}
	return toUserResponse(user), nil
}

// GetUser devuelve el usuario de una sesión activa; (nil, nil) si no existe.
func (uc *AuthUseCase) GetUser(ctx context.Context, id int) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:              u.ID,
		Username:        u.Username,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Email:           u.Email,
		Role:            u.Role,
		ProfileImageURL: u.ProfileImageURL,
	}
}
