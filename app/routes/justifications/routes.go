package justifications

import (
	"github.com/gofiber/fiber/v2"

	"github.com/heberxp77/AsistenciaWeb/app/models"
	"github.com/heberxp77/AsistenciaWeb/app/routes/auth"
)

func SetupJustificationsRoutes(app *fiber.App) {
	api := app.Group("/api/justifications")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetJustificationsAPI)
	api.Get("/absences", auth.RequireRoles(models.RoleTeacher, models.RoleAdmin), GetAbsencesAPI)
	api.Post("/", auth.RequireRoles(models.RoleTeacher, models.RoleAdmin), CreateJustificationAPI)
	api.Post("/:id/approve", auth.RequireRoles(models.RoleAreaManager, models.RoleAdmin), ApproveJustificationAPI)
}
