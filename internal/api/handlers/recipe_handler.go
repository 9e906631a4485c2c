package handlers

import (
	"ssakpotato/internal/dto"
	"ssakpotato/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type RecipeHandler struct {
	generator service.RecipeGenerator
	logger    *zap.Logger
}

func NewRecipeHandler(generator service.RecipeGenerator, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		generator: generator,
		logger:    logger,
	}
}

// Generate produces a recipe from expiring ingredients. The response is
// always the full envelope: when generation fails the envelope carries
// fallback suggestions instead of a bare error.
func (h *RecipeHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp := h.generator.GenerateRecipe(c.Context(), &req)
	if !resp.Success {
		h.logger.Warn("Recipe generation fell back",
			zap.String("code", resp.Error.Code),
			zap.String("details", resp.Error.Details),
		)
	}

	return c.JSON(resp)
}
