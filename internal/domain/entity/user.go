package entity

// Rol por defecto para usuarios nuevos.
const RoleUser = "user"

// User representa un usuario del sistema (personal de ventas).
// Password guarda el hash bcrypt, nunca la contraseña en claro.
type User struct {
	ID              int
	Username        string // único
	Password        string
	FirstName       string
	LastName        string
	Email           string
	Role            string // default "user"
	ProfileImageURL string
}
