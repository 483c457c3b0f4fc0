package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pilates-studio/app/models"
)

func GetUsersAPI(c *fiber.Ctx) error {
	users := svc.Users()
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return c.JSON(fiber.Map{"users": out})
}

func CreateStaffAPI(c *fiber.Ctx) error {
	type CreateStaffRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var req CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Username and password are required"})
	}

	user, err := svc.CreateStaff(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateUsername) {
			return c.Status(409).JSON(fiber.Map{"error": "Username already exists"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create staff account"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Staff account created",
		"user":    user.Public(),
	})
}

func SetRoleAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	type SetRoleRequest struct {
		Role models.Role `json:"role"`
	}

	var req SetRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := svc.SetRole(id, req.Role); err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		case errors.Is(err, models.ErrForbiddenForRole):
			return c.Status(403).JSON(fiber.Map{"error": "Administrator accounts cannot be reassigned"})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update role"})
		}
	}

	return c.JSON(fiber.Map{"message": "Role updated"})
}

func DeleteUserAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	if err := svc.Remove(id); err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		case errors.Is(err, models.ErrForbiddenForRole):
			return c.Status(403).JSON(fiber.Map{"error": "Administrator accounts cannot be removed"})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to remove user"})
		}
	}

	return c.JSON(fiber.Map{"message": "User removed"})
}

func GetUserBookingsAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	if _, ok := svc.Lookup(id); !ok {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{
		"bookings": svc.BookingsOf(id),
		"count":    svc.ActiveReservationCount(id),
	})
}
