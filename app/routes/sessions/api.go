package sessions

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"pilates-studio/app/models"
)

// statusForError maps a domain refusal to an HTTP status.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return 404
	case errors.Is(err, models.ErrForbiddenForRole):
		return 403
	default:
		// Capacity, duplicate, quota, window and past-session refusals are
		// all conflicts with current booking state.
		return 409
	}
}

func ListSessionsAPI(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.JSON(fiber.Map{"sessions": svc.SessionsFor(user)})
}

func GetSessionAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid session ID"})
	}

	detail, err := svc.Detail(id)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": "Session not found"})
	}
	return c.JSON(detail)
}

func GetCandidatesAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid session ID"})
	}

	candidates, err := svc.Candidates(id)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": "Session not found"})
	}
	return c.JSON(fiber.Map{"candidates": candidates})
}

func BookAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid session ID"})
	}

	type BookRequest struct {
		UserID int `json:"user_id"`
	}

	user := c.Locals("user").(*models.User)

	// An empty body books the caller's own spot.
	target := user.ID
	var req BookRequest
	if err := c.BodyParser(&req); err == nil && req.UserID != 0 {
		target = req.UserID
	}

	if err := svc.BookSession(user, id, target); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Reservation created"})
}

func CancelAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid session ID"})
	}

	type CancelRequest struct {
		UserID int `json:"user_id"`
	}

	user := c.Locals("user").(*models.User)

	target := user.ID
	var req CancelRequest
	if err := c.BodyParser(&req); err == nil && req.UserID != 0 {
		target = req.UserID
	}

	if err := svc.CancelSession(user, id, target); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Reservation released"})
}

// FocusTipAPI returns a short advisory tip for the session's class title.
// The advisor is best-effort: failures come back as an empty tip.
func FocusTipAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid session ID"})
	}

	session, ok := svc.Session(id)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Session not found"})
	}

	if tips == nil {
		return c.JSON(fiber.Map{"tip": ""})
	}

	tip, err := tips.FocusTip(session.Title)
	if err != nil {
		log.Printf("Focus tip unavailable for session %d: %v", id, err)
		return c.JSON(fiber.Map{"tip": ""})
	}
	return c.JSON(fiber.Map{"tip": tip})
}
