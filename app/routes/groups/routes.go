package groups

import (
	"github.com/gofiber/fiber/v2"

	"github.com/heberxp77/AsistenciaWeb/app/models"
	"github.com/heberxp77/AsistenciaWeb/app/routes/auth"
)

func SetupGroupsRoutes(app *fiber.App) {
	api := app.Group("/api/groups")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetGroupsAPI)
	api.Get("/:id", GetGroupByIDAPI)
	api.Post("/", auth.RequireRoles(models.RoleAdmin), CreateGroupAPI)
	api.Put("/:id", auth.RequireRoles(models.RoleAdmin), UpdateGroupAPI)
	api.Delete("/:id", auth.RequireRoles(models.RoleAdmin), DeleteGroupAPI)
}
