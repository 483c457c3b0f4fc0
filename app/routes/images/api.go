package images

import (
	"io"
	"log"

	"github.com/gofiber/fiber/v2"
)

// EditImageAPI forwards an uploaded image and an instruction to the image
// editing collaborator and streams the edited image back. No booking state
// is involved.
func EditImageAPI(c *fiber.Ctx) error {
	if editor == nil {
		return c.Status(503).JSON(fiber.Map{"error": "Image editing is not configured"})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Image file is required"})
	}

	instruction := c.FormValue("instruction")
	if instruction == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Instruction is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to read image"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to read image"})
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/png"
	}

	edited, editedType, err := editor.Edit(data, mimeType, instruction)
	if err != nil {
		log.Printf("Image edit failed: %v", err)
		return c.Status(502).JSON(fiber.Map{"error": "Image editing failed"})
	}

	c.Set("Content-Type", editedType)
	return c.Send(edited)
}
