package main

import (
	"context"
	"log"
	"time"

	_ "github.com/ekaspersen/isabellramsvik/docs"
	"github.com/ekaspersen/isabellramsvik/internal/cache"
	"github.com/ekaspersen/isabellramsvik/internal/handler"
	"github.com/ekaspersen/isabellramsvik/internal/service"
	"github.com/ekaspersen/isabellramsvik/internal/storage/postgres"
	"github.com/ekaspersen/isabellramsvik/internal/storage/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Isabell Ramsvik API
// @version 1.0
// @description API для портфолио и галереи
// @BasePath /
func main() {

	// Загрузка переменных окружения (local)
	if err := godotenv.Load(".env.local"); err != nil {
		log.Println("Error loading .env.local file")
	}

	// БД
	db := postgres.InitDB()

	// Хранилище объектов
	objects, err := s3.NewS3Storage(s3.ConfigFromEnv())
	if err != nil {
		log.Fatalf("failed to init S3 storage: %v", err)
	}

	// Кэш ответов
	responseCache := cache.New()

	// Сервисы
	userService := service.NewUserService(db)
	catalogService := service.NewCatalogService(db, objects, responseCache)
	inboxService := service.NewInboxService(db, responseCache)

	// Администратор при первом запуске
	if err := userService.EnsureAdmin(context.Background()); err != nil {
		log.Printf("failed to seed admin user: %v", err)
	}

	// Обработчик
	h := handler.NewHandler(userService, catalogService, inboxService)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		// Логируем в консоль
		if err, ok := recovered.(string); ok {
			log.Printf("panic recovered: %s\n", err)
		} else if err, ok := recovered.(error); ok {
			log.Printf("panic recovered: %v\n", err)
		} else {
			log.Printf("panic recovered: unknown error: %v\n", recovered)
		}
		// Отправляем 500 клиенту
		c.AbortWithStatusJSON(500, gin.H{"error": "internal server error"})
	}))

	// Настройка CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://isabellramsvik.no", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Авторизация
	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
	}

	// Профиль
	profile := r.Group("/profile")
	{
		profile.Use(h.AuthMiddleware())
		profile.GET("/", h.GetProfile)
	}

	// Проекты: чтение публичное, изменение за авторизацией
	projects := r.Group("/projects")
	{
		projects.GET("", h.ListProjects)
		projects.GET("/:id", h.GetProject)

		adminProjects := projects.Group("")
		adminProjects.Use(h.AuthMiddleware())
		adminProjects.POST("", h.CreateProject)
		adminProjects.PUT("/:id", h.UpdateProject)
		adminProjects.DELETE("/:id", h.DeleteProject)
	}

	// Изображения
	images := r.Group("/images")
	{
		images.GET("", h.ListImages)
		images.GET("/:id", h.GetImage)

		adminImages := images.Group("")
		adminImages.Use(h.AuthMiddleware())
		adminImages.POST("", h.CreateImage)
		adminImages.PUT("/:id", h.UpdateImage)
		adminImages.DELETE("/:id", h.DeleteImage)
	}

	// Сообщения: отправка публичная, чтение и флаги за авторизацией
	messages := r.Group("/messages")
	{
		messages.POST("", h.CreateMessage)

		adminMessages := messages.Group("")
		adminMessages.Use(h.AuthMiddleware())
		adminMessages.GET("", h.ListMessages)
		adminMessages.PUT("", h.UpdateMessage)
	}

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Fatal(r.Run(":8080"))
}
