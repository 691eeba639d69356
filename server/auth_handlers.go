package server

import (
	"github.com/gofiber/fiber/v3"

	"go-sniper/models"
)

// RegisterHandler handles POST /api/auth/register.
func (h *Handler) RegisterHandler(ctx fiber.Ctx) error {
	var data registerRequest
	if err := ctx.Bind().Body(&data); err != nil {
		return fail(ctx, models.ErrValidation)
	}

	user, token, err := h.auth.Register(data.Username, data.Email, data.Password)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(ok(user.AuthView(token)))
}

// LoginHandler handles POST /api/auth/login.
func (h *Handler) LoginHandler(ctx fiber.Ctx) error {
	var data loginRequest
	if err := ctx.Bind().Body(&data); err != nil {
		return fail(ctx, models.ErrValidation)
	}

	user, token, err := h.auth.Login(data.Email, data.Password)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(ok(user.AuthView(token)))
}

// MeHandler handles GET /api/auth/me.
func (h *Handler) MeHandler(ctx fiber.Ctx) error {
	user := currentUser(ctx)
	return ctx.JSON(ok(fiber.Map{
		"id":        user.ID,
		"username":  user.Username,
		"email":     user.Email,
		"role":      user.Role,
		"lastLogin": user.LastLogin,
	}))
}

// LogoutHandler handles POST /api/auth/logout. Logout is stateless: no
// server-side revocation exists, the client simply drops its token.
func (h *Handler) LogoutHandler(ctx fiber.Ctx) error {
	return ctx.JSON(okMessage("Logged out successfully"))
}
