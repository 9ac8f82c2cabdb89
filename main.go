package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"product-auth-system/handlers"
	"product-auth-system/middleware"
	"product-auth-system/models"
	"product-auth-system/services"
	"product-auth-system/utils"
	"product-auth-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 50 * 1024 * 1024, // 50MB — product photos only
	})

	// 🔐❗ GLOBAL: Only Gateway requests allowed — no exceptions
	app.Use(middleware.GatewayAuthMiddleware())

	// Load allowed origins from environment variable
	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID, User-Agent, Cache-Control, X-User-ID, X-Service-Token",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization, X-Request-ID",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	if err := utils.InitR2(); err != nil {
		log.Fatal("failed to initialize R2 client:", err)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Product{},
		&models.Scan{},
		&models.UserStats{},
		&models.UserAchievement{},
		&models.AccountUser{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	// Static catalogs are validated once at boot — a malformed entry is a
	// deploy error, not something to discover at award time.
	industryCatalog := models.DefaultIndustries()
	if err := models.ValidateIndustries(industryCatalog); err != nil {
		log.Fatal("invalid industry catalog:", err)
	}
	if err := models.ValidateAchievements(models.AchievementCatalog); err != nil {
		log.Fatal("invalid achievement catalog:", err)
	}

	industryService := services.NewIndustryService(industryCatalog)
	gamificationService := services.NewGamificationService(db)

	// --- Vision service (external image classification) ---
	var visionClient *services.VisionClient
	visionURL := os.Getenv("VISION_SERVICE_URL")
	if visionURL == "" {
		log.Println("⚠️  VISION_SERVICE_URL not set — image classification disabled")
	} else {
		visionClient = services.NewVisionClient(visionURL, os.Getenv("VISION_SERVICE_TOKEN"))
	}

	productService := services.NewProductService(db, industryService, gamificationService, visionClient)

	// --- Profile sync worker config ---
	syncServiceURL := os.Getenv("SYNC_SERVICE_URL")
	if syncServiceURL == "" {
		log.Fatal("SYNC_SERVICE_URL environment variable not set")
	}
	serviceToken := os.Getenv("PRODUCT_SERVICE_TOKEN")
	if serviceToken == "" {
		log.Fatal("PRODUCT_SERVICE_TOKEN environment variable not set")
	}

	syncWorker := workers.NewUserSyncWorker(db, syncServiceURL, "/api/v1/public/profiles", serviceToken)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Println("Starting User Sync Worker...")
		syncWorker.Start(ctx)
	}()

	gamificationService.StartStreakScheduler()

	// ✅ Setup routes — enforced Gateway auth everywhere
	handlers.SetupIndustryRoutes(app, industryService)
	handlers.SetupProductRoutes(app, productService)
	handlers.SetupGamificationRoutes(app, gamificationService)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	go func() {
		if err := app.Listen(":5300"); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Println("✅ Server running on http://localhost:5300")
	log.Println("✅ User Sync Worker running")
	log.Println("✅ Streak sweep scheduler running (hourly)")
	log.Println("✅ GatewayAuthMiddleware enforced globally — all requests must come from Gateway")
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
}
