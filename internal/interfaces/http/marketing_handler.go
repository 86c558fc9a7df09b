package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-pro/internal/application/dto"
	"github.com/jhoicas/crm-pro/internal/application/usecase"
)

// MarketingHandler sugerencias de marketing derivadas por IA (protegido).
type MarketingHandler struct {
	uc *usecase.MarketingUseCase
}

// NewMarketingHandler construye el handler.
func NewMarketingHandler(uc *usecase.MarketingUseCase) *MarketingHandler {
	return &MarketingHandler{uc: uc}
}

// Suggestions godoc
// @Summary      Tendencias de mercado e ideas de contenido
// @Tags         marketing
// @Produce      json
// @Success      200  {object}  dto.MarketingSuggestionsDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/marketing/suggestions [get]
func (h *MarketingHandler) Suggestions(c *fiber.Ctx) error {
	out, err := h.uc.Suggestions(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to generate marketing suggestions"})
	}
	return c.JSON(out)
}
