package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/faktura-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Render *RenderHandler
	Log    *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestLogger(deps.Log))

	api := app.Group("/api")
	api.Post("/render", deps.Render.Render)
}
