package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/heberxp77/AsistenciaWeb/app/models"
	"github.com/heberxp77/AsistenciaWeb/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetStudentsAPI)
	api.Get("/:id", GetStudentByIDAPI)
	api.Post("/", auth.RequireRoles(models.RoleAdmin), CreateStudentAPI)
	api.Put("/:id", auth.RequireRoles(models.RoleAdmin), UpdateStudentAPI)
	api.Delete("/:id", auth.RequireRoles(models.RoleAdmin), DeleteStudentAPI)
}
