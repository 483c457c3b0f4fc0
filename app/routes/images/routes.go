package images

import (
	"github.com/gofiber/fiber/v2"

	"pilates-studio/app/routes/auth"
	"pilates-studio/app/services"
)

var editor services.ImageEditor

func SetupImagesRoutes(app *fiber.App, e services.ImageEditor) {
	editor = e

	api := app.Group("/api/images")
	api.Use(auth.AuthMiddleware)
	api.Post("/edit", EditImageAPI)
}
