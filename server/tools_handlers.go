package server

import (
	"github.com/gofiber/fiber/v3"

	"go-sniper/models"
	"go-sniper/tools"
)

// ListToolsHandler handles GET /api/tools.
func (h *Handler) ListToolsHandler(ctx fiber.Ctx) error {
	return ctx.JSON(ok(tools.All()))
}

// ToolCategoriesHandler handles GET /api/tools/categories.
func (h *Handler) ToolCategoriesHandler(ctx fiber.Ctx) error {
	return ctx.JSON(ok(tools.Categories()))
}

// ToolsByCategoryHandler handles GET /api/tools/category/:category.
func (h *Handler) ToolsByCategoryHandler(ctx fiber.Ctx) error {
	return ctx.JSON(ok(tools.ByCategory(ctx.Params("category"))))
}

// GetToolHandler handles GET /api/tools/:id.
func (h *Handler) GetToolHandler(ctx fiber.Ctx) error {
	tool, found := tools.ByID(ctx.Params("id"))
	if !found {
		return fail(ctx, models.ErrNotFound)
	}
	return ctx.JSON(ok(tool))
}
