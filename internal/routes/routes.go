// Package routes defines the API routing configuration.
// It builds the fiber app with its middleware stack and wires every
// endpoint to its handler.
package routes

import (
	"time"

	"github.com/JwadKadry/stake-invest/internal/config"
	"github.com/JwadKadry/stake-invest/internal/handlers"
	"github.com/JwadKadry/stake-invest/internal/metrics"
	"github.com/JwadKadry/stake-invest/internal/middleware"
	"github.com/JwadKadry/stake-invest/internal/services/auth"
	"github.com/JwadKadry/stake-invest/internal/services/investment"
	"github.com/JwadKadry/stake-invest/internal/services/property"
	"github.com/JwadKadry/stake-invest/internal/services/user"
	"github.com/JwadKadry/stake-invest/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
)

// Dependencies are the constructed services the routes serve.
type Dependencies struct {
	Config  config.Config
	Logger  zerolog.Logger
	Metrics *metrics.Metrics

	AuthService       auth.Service
	UserService       user.Service
	PropertyService   property.Service
	InvestmentService investment.Service

	HealthChecks map[string]handlers.HealthCheck
}

// NewApp creates the fiber app with the shared middleware stack and all routes.
func NewApp(deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "stake-invest",
		ErrorHandler: middleware.ErrorHandler(deps.Logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: !deps.Config.IsProduction()}))
	app.Use(requestid.New(requestid.Config{ContextKey: middleware.RequestIDKey}))
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
	}
	app.Use(middleware.RequestLogger(deps.Logger))
	app.Use(middleware.RequestContext(deps.Logger, deps.Config.RequestTimeout))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: deps.Config.CORSOrigins != "*",
	}))

	SetupRoutes(app, deps)
	return app
}

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler(deps.HealthChecks)
	authHandler := handlers.NewAuthHandler(deps.AuthService)
	userHandler := handlers.NewUserHandler(deps.UserService)
	propertyHandler := handlers.NewPropertyHandler(deps.PropertyService)
	investmentHandler := handlers.NewInvestmentHandler(deps.InvestmentService)

	authMiddleware := middleware.NewAuthMiddleware(deps.AuthService)

	app.Get("/health", healthHandler.Health)
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}

	api := app.Group("/api")

	// Public routes
	authRoutes := api.Group("/auth", authLimiter(deps.Config))
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/refresh", authHandler.Refresh)

	properties := api.Group("/properties")
	properties.Get("/", propertyHandler.List)
	properties.Get("/:id", propertyHandler.Get)

	// Protected routes
	users := api.Group("/users", authMiddleware.Handler)
	users.Get("/me", userHandler.GetMe)
	users.Put("/me", userHandler.UpdateMe)

	investments := api.Group("/investments", authMiddleware.Handler)
	investments.Post("/", investmentHandler.Create)
	investments.Get("/", investmentHandler.List)
	investments.Get("/:id", investmentHandler.Get)
}

func authLimiter(cfg config.Config) fiber.Handler {
	limit := cfg.AuthRateLimit
	if limit <= 0 {
		limit = 10
	}
	window := cfg.AuthRateWindow
	if window <= 0 {
		window = time.Minute
	}

	return limiter.New(limiter.Config{
		Max:        limit,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return utils.Fail(c, fiber.StatusTooManyRequests, "Too many requests. Please try again later.")
		},
	})
}
