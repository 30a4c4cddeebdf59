package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-builder/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
// session must attach the caller's view; it runs for the screens and the view API only.
func Register(app *fiber.App, session fiber.Handler, pages *handlers.PagesHandler, viewAPI *handlers.ViewHandler, health *handlers.HealthHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	vg := v1.Group("/view", session)
	vg.Get("/", viewAPI.Get)
	vg.Post("/form/open", viewAPI.OpenForm)
	vg.Patch("/form", viewAPI.UpdateField)
	vg.Post("/submit", viewAPI.Submit)
	vg.Post("/back", viewAPI.Back)
	vg.Delete("/error", viewAPI.DismissError)
	vg.Get("/download/:kind", viewAPI.Download)

	// Screens
	app.Get("/", session, pages.Index)
	app.Post("/start", session, pages.Start)
	app.Post("/generate", session, pages.Generate)
	app.Post("/import", session, pages.Import)
	app.Post("/back", session, pages.Back)
	app.Post("/error/dismiss", session, pages.DismissError)
	app.Get("/download/:kind", session, pages.Download)
}
