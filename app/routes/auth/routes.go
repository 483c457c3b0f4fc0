package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"pilates-studio/app/models"
	"pilates-studio/app/studio"
)

var svc *studio.Service

func SetupAuthRoutes(app *fiber.App, s *studio.Service) {
	svc = s

	auth := app.Group("/auth")

	// Public routes
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Get("/me", MeAPI)
}

// AuthMiddleware validates the JWT cookie and resolves the account through
// the directory, so role changes and removals take effect immediately.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string

	// First try cookie
	tokenString = c.Cookies("jwt_token")

	// If no cookie, try Authorization header
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	user, ok := svc.Lookup(claims.UserID)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Account no longer exists"})
	}

	c.Locals("user_id", user.ID)
	c.Locals("user_role", user.Role)
	c.Locals("user", user)

	return c.Next()
}

// RoleMiddleware checks if the current account has one of the given roles.
func RoleMiddleware(allowedRoles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := c.Locals("user_role").(models.Role)

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}
}
