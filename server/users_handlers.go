package server

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"go-sniper/models"
)

// ListUsersHandler handles GET /api/users (administrators only).
func (h *Handler) ListUsersHandler(ctx fiber.Ctx) error {
	users, err := h.db.ListUsers()
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(okCount(users, len(users)))
}

// ProfileHandler handles GET /api/users/profile.
func (h *Handler) ProfileHandler(ctx fiber.Ctx) error {
	return ctx.JSON(ok(currentUser(ctx)))
}

// UpdateProfileHandler handles PUT /api/users/profile. Handle and email
// changes re-check uniqueness; the storage constraints catch the race.
func (h *Handler) UpdateProfileHandler(ctx fiber.Ctx) error {
	var data profileUpdateRequest
	if err := ctx.Bind().Body(&data); err != nil {
		return fail(ctx, models.ErrValidation)
	}

	user := currentUser(ctx)

	if data.Username != nil && *data.Username != user.Username {
		if _, err := h.db.UserByUsername(*data.Username); err == nil {
			return fail(ctx, models.ErrConflict)
		} else if !errors.Is(err, models.ErrNotFound) {
			return fail(ctx, err)
		}
		user.Username = *data.Username
	}

	if data.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*data.Email))
		if email != user.Email {
			if _, err := h.db.UserByEmail(email); err == nil {
				return fail(ctx, models.ErrConflict)
			} else if !errors.Is(err, models.ErrNotFound) {
				return fail(ctx, err)
			}
			user.Email = email
		}
	}

	if data.FullName != nil {
		user.FullName = *data.FullName
	}
	if data.Bio != nil {
		user.Bio = *data.Bio
	}
	if data.Company != nil {
		user.Company = *data.Company
	}
	if data.Location != nil {
		user.Location = *data.Location
	}
	if data.Website != nil {
		user.Website = *data.Website
	}
	if data.Phone != nil {
		user.Phone = *data.Phone
	}
	if data.Avatar != nil {
		user.Avatar = *data.Avatar
	}

	if p := data.Preferences; p != nil {
		if p.Notifications != nil {
			user.Preferences.Notifications = *p.Notifications
		}
		if p.Newsletter != nil {
			user.Preferences.Newsletter = *p.Newsletter
		}
		if p.TwoFactorEnabled != nil {
			user.Preferences.TwoFactorEnabled = *p.TwoFactorEnabled
		}
	}

	if err := h.db.SaveUser(user); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(ok(user))
}

// DeleteProfileHandler handles DELETE /api/users/profile. The account and
// everything it owns go together in one transaction.
func (h *Handler) DeleteProfileHandler(ctx fiber.Ctx) error {
	user := currentUser(ctx)

	if err := h.db.DeleteUserCascade(user.ID); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(okMessage("Account deleted successfully"))
}
