package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/heberxp77/AsistenciaWeb/app/models"
	"github.com/heberxp77/AsistenciaWeb/app/routes/auth"
)

func currentUser(c *fiber.Ctx) *models.User {
	return auth.CurrentUser(c)
}

// canAccessGroup reports whether the caller may take attendance for the
// group: admins always, teachers only for groups they teach
func canAccessGroup(user *models.User, group *models.ClassGroup) bool {
	if user == nil {
		return false
	}
	return user.Role == models.RoleAdmin || group.TeacherID == user.ID
}
