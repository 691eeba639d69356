package server

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"go-sniper/auth"
	"go-sniper/config"
	"go-sniper/database"
	"go-sniper/models"
	"go-sniper/scans"
	"go-sniper/vault"
)

// Handler defines an HTTP handler holding the backend services.
type Handler struct {
	cfg   config.Config
	db    *database.DB
	auth  *auth.Service
	vault *vault.Service
	scans *scans.Registry
}

// fail converts a service error into the envelope with the right status.
// Unexpected errors are logged and returned as a generic message.
func fail(ctx fiber.Ctx, err error) error {
	var status int

	switch {
	case errors.Is(err, models.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrUnauthenticated):
		status = fiber.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		status = fiber.StatusConflict
	case errors.Is(err, models.ErrDecryption):
		status = fiber.StatusInternalServerError
	default:
		logrus.Errorf("unexpected error on %s %s: %v", ctx.Method(), ctx.Path(), err)
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(response{Error: "Server error"})
	}

	return ctx.Status(status).JSON(response{Error: err.Error()})
}

// requireAuth resolves the bearer token into the calling user and stores
// it in the request locals.
func (h *Handler) requireAuth(ctx fiber.Ctx) error {
	user, err := h.auth.Authenticate(ctx.Get(fiber.HeaderAuthorization))
	if err != nil {
		return fail(ctx, err)
	}

	ctx.Locals("user", user)
	return ctx.Next()
}

// requireAdmin gates a route to administrator accounts. Must run after
// requireAuth.
func (h *Handler) requireAdmin(ctx fiber.Ctx) error {
	if err := h.auth.RequireRole(currentUser(ctx), models.RoleAdmin); err != nil {
		return fail(ctx, err)
	}
	return ctx.Next()
}

func currentUser(ctx fiber.Ctx) *models.User {
	user, _ := ctx.Locals("user").(*models.User)
	return user
}

// paramID parses the :id route parameter. Garbage ids map to not-found so
// they are indistinguishable from missing rows.
func paramID(ctx fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return 0, models.ErrNotFound
	}
	return uint(id), nil
}
