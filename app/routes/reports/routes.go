package reportsapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/heberxp77/AsistenciaWeb/app/models"
	"github.com/heberxp77/AsistenciaWeb/app/routes/auth"
)

func SetupReportsRoutes(app *fiber.App) {
	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RequireRoles(models.RoleAreaManager, models.RoleAdmin))

	api.Get("/attendance", GetAttendanceReportAPI)
	api.Get("/attendance/export", ExportAttendanceReportAPI)
	api.Get("/groups", GetGroupReportsAPI)
}
