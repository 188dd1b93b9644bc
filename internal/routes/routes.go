package routes

import (
	"time"

	"github.com/akaya/fightpicks/internal/config"
	"github.com/akaya/fightpicks/internal/handlers"
	"github.com/akaya/fightpicks/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	eventHandler *handlers.EventHandler,
	picksHandler *handlers.PicksHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	resultsHandler *handlers.ResultsHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Fight cards are public
	api.Get("/events", eventHandler.List)
	api.Get("/events/:id", eventHandler.Get)
	api.Get("/leaderboard", leaderboardHandler.Standings)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected routes (JWT required) - apply middleware per route so the
	// public routes above stay public
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)
	api.Put("/auth/profile", middleware.JWTProtected(cfg), authHandler.UpdateProfile)

	picksGroup := api.Group("/picks", middleware.JWTProtected(cfg))
	picksGroup.Get("/", picksHandler.Session)
	picksGroup.Put("/event", picksHandler.SelectEvent)
	picksGroup.Put("/fight", picksHandler.SelectFighter)
	picksGroup.Post("/submit", picksHandler.Submit)

	api.Get("/bets", middleware.JWTProtected(cfg), picksHandler.Bets)

	// Result entry + settlement (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Post("/results/:eventID", resultsHandler.Record)
}
