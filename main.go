package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"golang.org/x/crypto/bcrypt"

	"pilates-studio/app/config"
	"pilates-studio/app/database"
	"pilates-studio/app/routes/admin"
	"pilates-studio/app/routes/auth"
	"pilates-studio/app/routes/images"
	"pilates-studio/app/routes/sessions"
	"pilates-studio/app/schedule"
	"pilates-studio/app/services"
	"pilates-studio/app/studio"
)

// customErrorHandler turns unhandled errors into JSON responses.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		log.Fatal("Failed to hash seed password:", err)
	}
	return string(hash)
}

func loadOrSeedState(store *database.Store, cfg *config.Config) *studio.State {
	users, bookings, nextID, found, err := store.Load()
	if err != nil {
		log.Fatal("Failed to load studio state:", err)
	}
	if found {
		log.Printf("Loaded studio state: %d accounts, %d reservations", len(users), len(bookings))
		return &studio.State{Users: users, Bookings: bookings, NextUserID: nextID}
	}

	log.Println("No stored state found, seeding initial accounts")
	state := studio.SeedState(
		cfg.AdminUsername, mustHash(cfg.AdminPassword),
		cfg.StaffUsername, mustHash(cfg.StaffPassword),
	)
	if err := store.Save(state.Users, state.Bookings, state.NextUserID); err != nil {
		log.Printf("Failed to persist seeded state: %v", err)
	}
	return state
}

func main() {
	cfg := config.Load()

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	store := database.NewStore(config.GetDB())
	state := loadOrSeedState(store, cfg)

	// Generate the weekly schedule once; it is fixed for the process lifetime.
	classes, err := schedule.Generate(time.Now(), schedule.WeeklyPlan)
	if err != nil {
		log.Fatal("Failed to generate schedule:", err)
	}
	log.Printf("Generated %d sessions for the coming week", len(classes))

	svc := studio.New(state, classes, store)

	// Start background scheduler
	services.StartScheduler(svc)

	// External advisor collaborators
	var tips services.TipService
	var editor services.ImageEditor
	if cfg.GeminiAPIKey != "" {
		advisor := services.NewGeminiAdvisor(cfg.GeminiAPIKey)
		tips = advisor
		editor = advisor
	} else {
		log.Println("GEMINI_API_KEY not set, advisor endpoints run in degraded mode")
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	auth.SetupAuthRoutes(app, svc)
	sessions.SetupSessionsRoutes(app, svc, tips)
	admin.SetupAdminRoutes(app, svc)
	images.SetupImagesRoutes(app, editor)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	log.Println("Server starting on :" + cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
