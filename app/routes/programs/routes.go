package programs

import (
	"github.com/gofiber/fiber/v2"

	"github.com/heberxp77/AsistenciaWeb/app/models"
	"github.com/heberxp77/AsistenciaWeb/app/routes/auth"
)

func SetupProgramsRoutes(app *fiber.App) {
	api := app.Group("/api/programs")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetProgramsAPI)
	api.Post("/", auth.RequireRoles(models.RoleAdmin), CreateProgramAPI)
	api.Put("/:id", auth.RequireRoles(models.RoleAdmin), UpdateProgramAPI)
	api.Delete("/:id", auth.RequireRoles(models.RoleAdmin), DeleteProgramAPI)
}
