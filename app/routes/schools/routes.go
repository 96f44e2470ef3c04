package schools

import (
	"github.com/gofiber/fiber/v2"

	"github.com/heberxp77/AsistenciaWeb/app/models"
	"github.com/heberxp77/AsistenciaWeb/app/routes/auth"
)

func SetupSchoolsRoutes(app *fiber.App) {
	api := app.Group("/api/schools")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetSchoolsAPI)
	api.Post("/", auth.RequireRoles(models.RoleAdmin), CreateSchoolAPI)
	api.Put("/:id", auth.RequireRoles(models.RoleAdmin), UpdateSchoolAPI)
	api.Delete("/:id", auth.RequireRoles(models.RoleAdmin), DeleteSchoolAPI)
}
