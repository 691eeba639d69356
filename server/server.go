package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/sirupsen/logrus"

	"go-sniper/auth"
	"go-sniper/config"
	"go-sniper/database"
	"go-sniper/scans"
	"go-sniper/vault"
)

// Start wires the services together and serves the API until the process
// exits.
func Start(cfg config.Config) {
	// Set log level
	logrus.SetLevel(logrus.InfoLevel)

	// Initiate database
	db, err := database.New(cfg)
	if err != nil {
		logrus.Fatalf("couldn't create database: %v", err)
	}

	vaultSvc, err := vault.NewService(db, cfg)
	if err != nil {
		logrus.Fatalf("couldn't create vault: %v", err)
	}

	h := &Handler{
		cfg:   cfg,
		db:    db,
		auth:  auth.NewService(db, cfg),
		vault: vaultSvc,
		scans: scans.NewRegistry(db),
	}

	app := newApp(h, cfg)

	logrus.Infof("sniper backend listening on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}

// newApp builds the fiber application and its routes.
func newApp(h *Handler, cfg config.Config) *fiber.App {
	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Origin", "Accept", "Authorization"},
		AllowOrigins: []string{cfg.CORSOrigin},
	}))

	app.Get("/health", func(ctx fiber.Ctx) error {
		return ctx.JSON(okMessage("Sniper API is running"))
	})

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", h.RegisterHandler)
	authGroup.Post("/login", h.LoginHandler)
	authGroup.Get("/me", h.MeHandler, h.requireAuth)
	authGroup.Post("/logout", h.LogoutHandler, h.requireAuth)

	users := api.Group("/users", h.requireAuth)
	users.Get("/", h.ListUsersHandler, h.requireAdmin)
	users.Get("/profile", h.ProfileHandler)
	users.Put("/profile", h.UpdateProfileHandler)
	users.Delete("/profile", h.DeleteProfileHandler)

	keys := api.Group("/api-keys", h.requireAuth)
	keys.Get("/", h.ListApiKeysHandler)
	keys.Post("/", h.CreateApiKeyHandler)
	keys.Get("/:id", h.GetApiKeyHandler)
	keys.Put("/:id", h.UpdateApiKeyHandler)
	keys.Delete("/:id", h.DeleteApiKeyHandler)
	keys.Get("/:id/decrypt", h.DecryptApiKeyHandler)

	scanRoutes := api.Group("/scans", h.requireAuth)
	scanRoutes.Get("/", h.ListScansHandler)
	scanRoutes.Post("/", h.CreateScanHandler)
	scanRoutes.Get("/:id", h.GetScanHandler)
	scanRoutes.Put("/:id", h.UpdateScanHandler)
	scanRoutes.Delete("/:id", h.DeleteScanHandler)

	toolRoutes := api.Group("/tools", h.requireAuth)
	toolRoutes.Get("/", h.ListToolsHandler)
	toolRoutes.Get("/categories", h.ToolCategoriesHandler)
	toolRoutes.Get("/category/:category", h.ToolsByCategoryHandler)
	toolRoutes.Get("/:id", h.GetToolHandler)

	return app
}
