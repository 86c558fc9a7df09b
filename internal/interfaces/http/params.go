package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseID extrae el parámetro :id como entero. Un valor no numérico produce
// 400 con el mensaje fijo "Invalid ID format" y ok == false.
func parseID(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}
