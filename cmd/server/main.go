package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/zekeriya15/BookShelf-API/internal/cache"
	"github.com/zekeriya15/BookShelf-API/internal/config"
	"github.com/zekeriya15/BookShelf-API/internal/handlers"
	"github.com/zekeriya15/BookShelf-API/internal/repository"
	"github.com/zekeriya15/BookShelf-API/internal/service"
	"github.com/zekeriya15/BookShelf-API/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName: "BookShelf API",
		// Support cover uploads plus form overhead.
		BodyLimit: cfg.BodyLimit,
	})

	// Middleware
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	// Initialize database connection
	db, err := repository.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis cache (optional; the service runs without it)
	var redisCache *cache.RedisCache
	if cfg.RedisAddr != "" {
		redisCache = cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := redisCache.Ping(); err != nil {
			log.Printf("WARNING: Redis connection failed: %v. Running without cache.", err)
			redisCache = nil
		} else {
			defer redisCache.Close()
			log.Println("Redis cache connected successfully")
		}
	}
	readingCache := cache.NewReadingCache(redisCache)

	// Initialize image storage
	var images storage.ImageStore
	switch cfg.StorageBackend {
	case "s3":
		s3cfg, err := storage.LoadS3ConfigFromEnv()
		if err != nil {
			log.Fatal("S3 storage not configured:", err)
		}
		s3Store, err := storage.NewS3Store(s3cfg)
		if err != nil {
			log.Fatal("Failed to initialize S3 storage:", err)
		}
		images = s3Store
		log.Printf("S3 storage initialized successfully (bucket=%s)", s3cfg.Bucket)
	default:
		diskStore, err := storage.NewDiskStore(cfg.UploadsDir)
		if err != nil {
			log.Fatal("Failed to initialize uploads dir:", err)
		}
		images = diskStore
	}

	// Initialize repositories and services
	readingRepo := repository.NewReadingRepository(db)
	readingService := service.NewReadingService(readingRepo, images, readingCache)

	// Initialize handlers
	readingHandler := handlers.NewReadingHandler(readingService, cfg.PublicBaseURL)
	mediaHandler := handlers.NewMediaHandler(images)

	// Routes
	handlers.RegisterRoutes(app, readingHandler, mediaHandler)

	log.Printf("Server starting on port %s...", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
