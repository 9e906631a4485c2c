package api

import (
	"ssakpotato/internal/api/handlers"
	"ssakpotato/pkg/auth"
	"ssakpotato/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return app
}

// SetupRouter wires the refrigerator server: public auth routes plus the
// JWT-protected item, receipt and dashboard routes.
func SetupRouter(
	authHandler *handlers.AuthHandler,
	itemHandler *handlers.ItemHandler,
	receiptHandler *handlers.ReceiptHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := newApp()

	authRoutes := app.Group("/api/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/refresh", authHandler.RefreshToken)

	protected := app.Group("/api", middleware.AuthMiddleware(jwtManager, appLogger))

	items := protected.Group("/refrigerator/items")
	items.Post("", itemHandler.Create)
	items.Get("", itemHandler.List)
	// Static segments must be registered before the :id wildcard.
	items.Get("/expiring", itemHandler.ListExpiring)
	items.Get("/count", itemHandler.Count)
	items.Get("/category/:category", itemHandler.ListByCategory)
	items.Get("/:id", itemHandler.Get)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	protected.Get("/refrigerator/dashboard", itemHandler.Dashboard)

	// The receipt endpoint predates the /api prefix and clients call it at
	// the root, so it carries its auth middleware directly.
	app.Post("/receipt/upload", middleware.AuthMiddleware(jwtManager, appLogger), receiptHandler.Upload)

	return app
}

// SetupAIRouter wires the recipe generation service. Its single endpoint is
// unauthenticated: the service sits behind the refrigerator server, not on
// the public edge.
func SetupAIRouter(recipeHandler *handlers.RecipeHandler) *fiber.App {
	app := newApp()

	app.Post("/api/generate-recipe", recipeHandler.Generate)

	return app
}
