package sessions

import (
	"github.com/gofiber/fiber/v2"

	"pilates-studio/app/models"
	"pilates-studio/app/routes/auth"
	"pilates-studio/app/services"
	"pilates-studio/app/studio"
)

var (
	svc  *studio.Service
	tips services.TipService
)

func SetupSessionsRoutes(app *fiber.App, s *studio.Service, t services.TipService) {
	svc = s
	tips = t

	api := app.Group("/api/sessions")
	api.Use(auth.AuthMiddleware)

	api.Get("/", ListSessionsAPI)      // Schedule with per-viewer booking state
	api.Get("/:id/tip", FocusTipAPI)   // Advisory tip for a session title
	api.Post("/:id/book", BookAPI)     // Book self, or another account (admin)
	api.Post("/:id/cancel", CancelAPI) // Release a reservation

	// Roster views are for staff and administrators
	api.Get("/:id", auth.RoleMiddleware(models.RoleStaff, models.RoleAdministrator), GetSessionAPI)
	api.Get("/:id/candidates", auth.RoleMiddleware(models.RoleAdministrator), GetCandidatesAPI)
}
