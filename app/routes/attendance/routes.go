package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/heberxp77/AsistenciaWeb/app/models"
	"github.com/heberxp77/AsistenciaWeb/app/routes/auth"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RequireRoles(models.RoleTeacher, models.RoleAdmin))

	api.Get("/groups", GetMyGroupsAPI)
	api.Get("/group/:groupId/date/:date", GetRosterAPI)
	api.Post("/", BatchSaveAttendanceAPI)
}
