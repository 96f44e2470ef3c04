package campuses

import (
	"github.com/gofiber/fiber/v2"

	"github.com/heberxp77/AsistenciaWeb/app/models"
	"github.com/heberxp77/AsistenciaWeb/app/routes/auth"
)

func SetupCampusesRoutes(app *fiber.App) {
	api := app.Group("/api/campuses")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetCampusesAPI)
	api.Post("/", auth.RequireRoles(models.RoleAdmin), CreateCampusAPI)
	api.Put("/:id", auth.RequireRoles(models.RoleAdmin), UpdateCampusAPI)
	api.Delete("/:id", auth.RequireRoles(models.RoleAdmin), DeleteCampusAPI)
}
