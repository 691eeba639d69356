package server

import (
	"github.com/gofiber/fiber/v3"

	"go-sniper/models"
	"go-sniper/vault"
)

// ListApiKeysHandler handles GET /api/api-keys.
func (h *Handler) ListApiKeysHandler(ctx fiber.Ctx) error {
	keys, err := h.vault.List(currentUser(ctx).ID)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(ok(keys))
}

// GetApiKeyHandler handles GET /api/api-keys/:id.
func (h *Handler) GetApiKeyHandler(ctx fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	key, err := h.vault.Get(currentUser(ctx).ID, id)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(ok(key))
}

// CreateApiKeyHandler handles POST /api/api-keys. A resubmission for an
// already-stored service updates the key in place.
func (h *Handler) CreateApiKeyHandler(ctx fiber.Ctx) error {
	var data apiKeyCreateRequest
	if err := ctx.Bind().Body(&data); err != nil {
		return fail(ctx, models.ErrValidation)
	}

	key, err := h.vault.Upsert(currentUser(ctx).ID, data.Service, data.KeyName, data.Key)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(ok(key))
}

// UpdateApiKeyHandler handles PUT /api/api-keys/:id.
func (h *Handler) UpdateApiKeyHandler(ctx fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var data apiKeyUpdateRequest
	if err := ctx.Bind().Body(&data); err != nil {
		return fail(ctx, models.ErrValidation)
	}

	key, err := h.vault.Update(currentUser(ctx).ID, id, vault.KeyUpdate{
		KeyName:  data.KeyName,
		Key:      data.Key,
		IsActive: data.IsActive,
	})
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(ok(key))
}

// DeleteApiKeyHandler handles DELETE /api/api-keys/:id.
func (h *Handler) DeleteApiKeyHandler(ctx fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	if err := h.vault.Delete(currentUser(ctx).ID, id); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(okMessage("API key deleted successfully"))
}

// DecryptApiKeyHandler handles GET /api/api-keys/:id/decrypt, the single
// path by which a stored key leaves the vault in cleartext.
func (h *Handler) DecryptApiKeyHandler(ctx fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	revealed, err := h.vault.Reveal(currentUser(ctx).ID, id)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(ok(revealed))
}
