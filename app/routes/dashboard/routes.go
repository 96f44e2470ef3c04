package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/heberxp77/AsistenciaWeb/app/models"
	"github.com/heberxp77/AsistenciaWeb/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/admin", auth.RequireRoles(models.RoleAdmin), GetAdminDashboardAPI)
	api.Get("/manager", auth.RequireRoles(models.RoleAreaManager, models.RoleAdmin), GetManagerDashboardAPI)
	api.Get("/teacher", auth.RequireRoles(models.RoleTeacher, models.RoleAdmin), GetTeacherDashboardAPI)
}
