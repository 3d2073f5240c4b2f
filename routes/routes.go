package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Lehari1/citypulse/controllers"
)

// Register attaches all API endpoints to the app.
func Register(app *fiber.App, reports *controllers.Reports) {
	api := app.Group("/api")

	api.Post("/reports", reports.Create)
	api.Get("/reports", reports.List)
	api.Get("/reports/:id", reports.Get)
	api.Put("/reports/:id", reports.Update)
	api.Patch("/reports/:id/solve", reports.Resolve)
	api.Patch("/reports/:id/upvote", reports.Upvote)
}
