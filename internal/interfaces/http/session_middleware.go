package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-pro/internal/application/dto"
	"github.com/jhoicas/crm-pro/pkg/session"
)

// SessionCookie nombre de la cookie de sesión.
const SessionCookie = "crm_session"

// LocalUserID key de c.Locals donde el middleware deja el id del usuario.
const LocalUserID = "user_id"

// SessionMiddleware resuelve la cookie de sesión contra el store y deja el
// id del usuario en c.Locals. Sin sesión válida responde 401 sin tocar
// almacenamiento de dominio.
func SessionMiddleware(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(SessionCookie)
		if sid == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Not authenticated"})
		}
		userID, ok := store.Get(sid)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Not authenticated"})
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// GetUserID devuelve el id del usuario autenticado (después del middleware).
func GetUserID(c *fiber.Ctx) int {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int)
	return id
}
