package server

import (
	"github.com/gofiber/fiber/v3"

	"go-sniper/models"
	"go-sniper/scans"
)

// ListScansHandler handles GET /api/scans.
func (h *Handler) ListScansHandler(ctx fiber.Ctx) error {
	list, err := h.scans.List(currentUser(ctx).ID)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(okCount(list, len(list)))
}

// GetScanHandler handles GET /api/scans/:id.
func (h *Handler) GetScanHandler(ctx fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	scan, err := h.scans.Get(currentUser(ctx).ID, id)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(ok(scan))
}

// CreateScanHandler handles POST /api/scans.
func (h *Handler) CreateScanHandler(ctx fiber.Ctx) error {
	var data scanCreateRequest
	if err := ctx.Bind().Body(&data); err != nil {
		return fail(ctx, models.ErrValidation)
	}

	scan, err := h.scans.Create(currentUser(ctx).ID, data.Name, data.Description,
		data.Target, data.ScanType, data.Configuration)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(ok(scan))
}

// UpdateScanHandler handles PUT /api/scans/:id.
func (h *Handler) UpdateScanHandler(ctx fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var data scanUpdateRequest
	if err := ctx.Bind().Body(&data); err != nil {
		return fail(ctx, models.ErrValidation)
	}

	scan, err := h.scans.Apply(currentUser(ctx).ID, id, scans.Update{
		Name:        data.Name,
		Description: data.Description,
		Status:      data.Status,
		Results:     data.Results,
	})
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(ok(scan))
}

// DeleteScanHandler handles DELETE /api/scans/:id.
func (h *Handler) DeleteScanHandler(ctx fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	if err := h.scans.Delete(currentUser(ctx).ID, id); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(okMessage("Scan deleted successfully"))
}
