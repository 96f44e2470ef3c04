package users

import (
	"github.com/gofiber/fiber/v2"

	"github.com/heberxp77/AsistenciaWeb/app/models"
	"github.com/heberxp77/AsistenciaWeb/app/routes/auth"
)

func SetupUsersRoutes(app *fiber.App) {
	api := app.Group("/api/users")
	api.Use(auth.AuthMiddleware)

	// Teacher lists are needed by admin screens and report filters alike;
	// mutation stays admin-only
	api.Get("/", GetUsersAPI)
	api.Post("/", auth.RequireRoles(models.RoleAdmin), CreateUserAPI)
	api.Put("/:id", auth.RequireRoles(models.RoleAdmin), UpdateUserAPI)
	api.Delete("/:id", auth.RequireRoles(models.RoleAdmin), DeleteUserAPI)
}
