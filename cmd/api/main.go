package main

import (
	"context"
	"log"
	"time"

	"chat-schedule-api/config"
	"chat-schedule-api/handlers"
	"chat-schedule-api/middleware"
	"chat-schedule-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("Start service")
	// Загружаем .env файл (игнорируем ошибку для продакшн)
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg := config.Load()

	log.Println("init services")
	// Инициализируем сервисы
	scheduleCache := services.NewCacheService(cfg.ScheduleCacheTTL, 2*cfg.ScheduleCacheTTL)
	listCache := services.NewCacheService(cfg.ListCacheTTL, 2*cfg.ListCacheTTL)

	gateway, err := services.NewGatewayService(cfg, scheduleCache, listCache)
	if err != nil {
		log.Fatalf("Failed to initialize gateway: %v", err)
	}

	repository := services.NewScheduleRepository()
	parser := services.NewCommandParser()
	dispatcher := services.NewDispatcher(gateway, repository)

	// Сессию с сайтом колледжа поднимаем в фоне: если сайт лежит,
	// бот работает на локальных данных
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
		defer cancel()
		if err := gateway.Init(ctx); err != nil {
			log.Printf("Remote API unavailable, using local data: %v", err)
		}
	}()

	log.Println("init handlers")
	// Инициализируем handlers
	chatHandler := handlers.NewChatHandler(parser, dispatcher, gateway)
	scheduleHandler := handlers.NewScheduleHandler(gateway, dispatcher)
	sessionHandler := handlers.NewSessionHandler(gateway)

	// Настраиваем Gin
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Println("init router")
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gin.Recovery())

	// API routes
	api := router.Group("/api/v1")
	{
		// Health check: api — жив ли сайт колледжа, dataset — версия
		// локальных данных, на которых работает запасной режим
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"api":     gateway.Ready(),
				"dataset": repository.Metadata(),
				"time":    time.Now(),
			})
		})

		// Chat
		api.POST("/chat/message", chatHandler.SendMessage)
		api.GET("/chat/suggest", chatHandler.Suggest)
		api.GET("/chat/examples", chatHandler.Examples)

		// Reference lists
		api.GET("/groups", scheduleHandler.GetGroups)
		api.GET("/teachers", scheduleHandler.GetTeachers)
		api.GET("/cabs", scheduleHandler.GetCabs)

		// Schedule
		api.GET("/schedule/week", scheduleHandler.GetWeekSchedule)
		api.GET("/schedule/day", scheduleHandler.GetDaySchedule)
		api.GET("/schedule/range", scheduleHandler.GetDateRangeSchedule)

		// Auth
		api.POST("/auth/login", sessionHandler.Login)
		api.POST("/auth/logout", sessionHandler.Logout)
		api.GET("/auth/user", sessionHandler.GetUser)

		// Cache management
		api.POST("/cache/invalidate", scheduleHandler.InvalidateCache)
	}

	// Запускаем сервер
	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
