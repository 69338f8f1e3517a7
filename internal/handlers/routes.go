package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/zekeriya15/BookShelf-API/internal/middleware"
)

// RegisterRoutes wires the full HTTP surface onto app.
func RegisterRoutes(app *fiber.App, readings *ReadingHandler, media *MediaHandler) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to BookShelf API",
		})
	})
	app.Get("/uploads/:filename", media.GetUpload)

	// Reading routes; identity is asserted by the Authorization header, an
	// upstream layer is expected to have verified it.
	group := app.Group("/readings", limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))
	group.Get("/", middleware.IdentityOptional(), readings.List)
	group.Post("/", middleware.IdentityRequired(), readings.Create)
	// Registered before the :id routes so "deleted" is not parsed as an id.
	group.Delete("/deleted", middleware.IdentityRequired(), readings.PurgeTrash)
	group.Get("/:id", middleware.IdentityRequired(), readings.Get)
	group.Put("/:id", middleware.IdentityRequired(), readings.Update)
	group.Patch("/:id/image", middleware.IdentityRequired(), readings.RemoveImage)
	group.Patch("/:id/is-deleted", middleware.IdentityRequired(), readings.SetDeleted)
	group.Delete("/:id", middleware.IdentityRequired(), readings.Delete)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "BookShelf API is running",
		})
	})
}
