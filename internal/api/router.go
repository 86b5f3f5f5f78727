package api

import (
	"claimvista/docs"
	"claimvista/internal/api/handlers"
	"claimvista/pkg/auth"
	"claimvista/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	claimHandler *handlers.ClaimHandler,
	refHandler *handlers.ReferenceHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
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

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger - importing docs registers the documentation via init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes (public)
	user := app.Group("/user")
	authRoutes := user.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/refresh", authHandler.RefreshToken)
	authRoutes.Post("/logout", authHandler.Logout)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	protected.Get("/me", authHandler.Me)

	claims := protected.Group("/claims")
	claims.Get("", claimHandler.ListClaims)
	claims.Post("", claimHandler.SubmitClaim)
	claims.Get("/:id", claimHandler.GetClaim)
	claims.Post("/:id/decision", claimHandler.DecideClaim)

	protected.Get("/hospitals", refHandler.ListHospitals)
	protected.Get("/agents", refHandler.ListAgents)

	protected.Get("/dashboard/stats", claimHandler.DashboardStats)

	return app
}
