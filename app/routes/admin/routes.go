package admin

import (
	"github.com/gofiber/fiber/v2"

	"pilates-studio/app/models"
	"pilates-studio/app/routes/auth"
	"pilates-studio/app/studio"
)

var svc *studio.Service

func SetupAdminRoutes(app *fiber.App, s *studio.Service) {
	svc = s

	api := app.Group("/api/users")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleAdministrator))

	api.Get("/", GetUsersAPI)            // Directory table
	api.Post("/staff", CreateStaffAPI)   // Add a staff account
	api.Patch("/:id/role", SetRoleAPI)   // Reassign a role
	api.Delete("/:id", DeleteUserAPI)    // Remove account and its reservations
	api.Get("/:id/bookings", GetUserBookingsAPI)
}
