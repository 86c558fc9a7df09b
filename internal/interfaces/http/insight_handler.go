package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/crm-pro/internal/application/dto"
	"github.com/jhoicas/crm-pro/internal/application/usecase"
)

// InsightHandler maneja las peticiones HTTP para AiInsight (protegido).
type InsightHandler struct {
	uc *usecase.InsightUseCase
}

// NewInsightHandler construye el handler.
func NewInsightHandler(uc *usecase.InsightUseCase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

// List godoc
// @Summary      Listar insights activos (excluye los descartados)
// @Tags         ai-insights
// @Produce      json
// @Success      200  {array}   dto.AiInsightResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/ai-insights [get]
func (h *InsightHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Active(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to fetch AI insights"})
	}
	return c.JSON(out)
}

// Generate godoc
// @Summary      Generar insights con IA a partir de la actividad reciente
// @Tags         ai-insights
// @Produce      json
// @Success      200  {array}   dto.AiInsightResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/ai-insights/generate [post]
func (h *InsightHandler) Generate(c *fiber.Ctx) error {
	out, err := h.uc.Generate(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to generate AI insights"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualización parcial de un insight (marcar leído/descartado)
// @Tags         ai-insights
// @Accept       json
// @Produce      json
// @Param        id    path  int                         true  "ID del insight"
// @Param        body  body  dto.UpdateAiInsightRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.AiInsightResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ai-insights/{id} [put]
func (h *InsightHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid ID format"})
	}
	var in dto.UpdateAiInsightRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Validation error"})
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Failed to update AI insight"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "AI Insight not found"})
	}
	return c.JSON(out)
}
