package config

import (
	"FoodShare-Backend/internal/api/handlers"
	"FoodShare-Backend/internal/api/routes"
	"FoodShare-Backend/internal/middleware"
	"FoodShare-Backend/internal/utils"
	"FoodShare-Backend/internal/utils/storage"
	"FoodShare-Backend/pkg/activity"
	"FoodShare-Backend/pkg/analysis"
	"FoodShare-Backend/pkg/jwt"
	"FoodShare-Backend/pkg/listing"
	"FoodShare-Backend/pkg/metrics"
	"FoodShare-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	listingRepository := listing.NewListingRepository(db)
	analysisRepository := analysis.NewAnalysisRepository(db)
	metricsRepository := metrics.NewMetricsRepository(db)
	activityRepository := activity.NewActivityRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	classifier := analysis.NewHuggingFaceClassifier()
	userService := user.NewUserService(userRepository, jwtService)
	metricsService := metrics.NewMetricsService(metricsRepository, activityRepository)
	listingService := listing.NewListingService(listingRepository, activityRepository, metricsService)
	analysisService := analysis.NewAnalysisService(analysisRepository, activityRepository, classifier, s3)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	listingHandler := handlers.NewListingHandler(listingService, validator)
	analysisHandler := handlers.NewAnalysisHandler(analysisService, validator)
	metricsHandler := handlers.NewMetricsHandler(metricsService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		ListingHandler:  listingHandler,
		AnalysisHandler: analysisHandler,
		MetricsHandler:  metricsHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
