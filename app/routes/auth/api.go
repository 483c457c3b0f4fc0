package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"pilates-studio/app/models"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Role     models.Role `json:"role"`
		Name     string      `json:"name"`
		Surname  string      `json:"surname"`
		Alias    string      `json:"alias"`
		Username string      `json:"username"`
		Password string      `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if !req.Role.Valid() {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown role"})
	}

	var user *models.User
	if req.Role == models.RoleMember {
		// Member login is self-registration: every login creates a new
		// account, aliases are never reused for lookup.
		if req.Name == "" || req.Surname == "" || req.Alias == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Name, surname and alias are required"})
		}
		user = svc.Register(req.Name, req.Surname, req.Alias)
	} else {
		var err error
		user, err = svc.Authenticate(req.Role, req.Username, req.Password)
		if err != nil {
			if errors.Is(err, models.ErrInvalidCredentials) {
				return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Login failed"})
		}
	}

	token, err := GenerateJWT(user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	// Set JWT as HTTP-only cookie
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user.Public(),
		"token":   token,
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	// Clear JWT cookie
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{"message": "Logged out"})
}

func MeAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.JSON(fiber.Map{
		"user":                user.Public(),
		"active_reservations": svc.ActiveReservationCount(user.ID),
	})
}
