package config

import (
	"DineWise-Backend/internal/api/handlers"
	"DineWise-Backend/internal/api/routes"
	"DineWise-Backend/internal/middleware"
	"DineWise-Backend/internal/utils"
	"DineWise-Backend/internal/utils/storage"
	"DineWise-Backend/pkg/chat"
	"DineWise-Backend/pkg/jwt"
	"DineWise-Backend/pkg/menupref"
	"DineWise-Backend/pkg/ordering"
	"DineWise-Backend/pkg/restaurant"
	"DineWise-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/tmc/langchaingo/llms/openai"
	"gorm.io/gorm"
)

const (
	defaultChatModel = "gpt-4o"
	defaultDescModel = "gpt-3.5-turbo"
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
		TimeZone:   "Asia/Kolkata",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	llm, err := openai.New(openai.WithToken(utils.GetConfig("OPENAI_API_KEY")))
	if err != nil {
		log.Fatalf("error creating OpenAI client: %v", err)
		return nil, err
	}
	chatModel := utils.GetConfig("OPENAI_CHAT_MODEL")
	if chatModel == "" {
		chatModel = defaultChatModel
	}
	descModel := utils.GetConfig("OPENAI_DESC_MODEL")
	if descModel == "" {
		descModel = defaultDescModel
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	restaurantRepository := restaurant.NewRestaurantRepository(db)
	orderingRepository := ordering.NewOrderingRepository(db)
	chatRepository := chat.NewChatRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	orderingService := ordering.NewOrderingService(orderingRepository, restaurantRepository)
	restaurantService := restaurant.NewRestaurantService(restaurantRepository, jwtService, s3)
	menuPrefService := menupref.NewMenuPrefService(restaurantRepository, userRepository)
	chatService := chat.NewChatService(
		chatRepository,
		userRepository,
		restaurantRepository,
		orderingService,
		llm,
		chatModel,
		descModel,
	)
	userService := user.NewUserService(userRepository, jwtService, s3, chatService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantService, orderingService, validator)
	orderingHandler := handlers.NewOrderingHandler(orderingService, validator)
	chatHandler := handlers.NewChatHandler(chatService, menuPrefService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		RestaurantHandler: restaurantHandler,
		OrderingHandler:   orderingHandler,
		ChatHandler:       chatHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
