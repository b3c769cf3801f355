package routes

import (
	"FoodShare-Backend/internal/api/handlers"
	"FoodShare-Backend/internal/middleware"
	"FoodShare-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	ListingHandler  handlers.ListingHandler
	AnalysisHandler handlers.AnalysisHandler
	MetricsHandler  handlers.MetricsHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodListings()
	c.FoodAnalysis()
	c.ImpactMetrics()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) FoodListings() {
	listings := c.App.Group("/api/v1/food-listings", c.Middleware.AuthMiddleware(c.JWTService))

	listings.Post("", c.ListingHandler.CreateListing)
	listings.Get("", c.ListingHandler.GetListings)
	listings.Get("/:id", c.ListingHandler.GetListingByID)
	listings.Put("/:id", c.ListingHandler.UpdateListingStatus)
	listings.Delete("/:id", c.ListingHandler.DeleteListing)
}

func (c *Config) FoodAnalysis() {
	analysis := c.App.Group("/api/v1/food-analysis", c.Middleware.AuthMiddleware(c.JWTService))
	analysis.Post("", c.AnalysisHandler.AnalyzeFood)
}

func (c *Config) ImpactMetrics() {
	// public dashboard endpoint
	c.App.Get("/api/v1/impact-metrics", c.MetricsHandler.GetImpactMetrics)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
