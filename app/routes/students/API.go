package students

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/heberxp77/AsistenciaWeb/app/config"
	"github.com/heberxp77/AsistenciaWeb/app/database"
	"github.com/heberxp77/AsistenciaWeb/app/models"
	"github.com/heberxp77/AsistenciaWeb/app/validation"
)

func GetStudentsAPI(c *fiber.Ctx) error {
	groupID := c.Query("group_id")

	// The take-attendance roster only needs one group's active students
	if groupID != "" && c.QueryBool("active_only") {
		students, err := database.GetStudentsByGroup(config.GetDB(), groupID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
		}
		return c.JSON(fiber.Map{
			"students": students,
			"count":    len(students),
		})
	}

	students, err := database.GetAllStudents(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	search := strings.ToLower(c.Query("search"))
	activeOnly := c.QueryBool("active_only")
	if groupID != "" || activeOnly || search != "" {
		filtered := make([]*models.Student, 0, len(students))
		for _, s := range students {
			if groupID != "" && s.ClassGroupID != groupID {
				continue
			}
			if activeOnly && !s.IsActive {
				continue
			}
			if search != "" &&
				!strings.Contains(strings.ToLower(s.FullName()), search) &&
				!strings.Contains(strings.ToLower(s.StudentNumber), search) {
				continue
			}
			filtered = append(filtered, s)
		}
		students = filtered
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	return c.JSON(fiber.Map{"student": student})
}

type studentRequest struct {
	StudentNumber string  `json:"studentId" validate:"required"`
	FirstName     string  `json:"firstName" validate:"required"`
	LastName      string  `json:"lastName" validate:"required"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string `json:"phone,omitempty"`
	ClassGroupID  string  `json:"classGroupId" validate:"required"`
	Active        *bool   `json:"active,omitempty"`
}

func (r studentRequest) toModel(id string) *models.Student {
	student := &models.Student{
		ID:            id,
		StudentNumber: r.StudentNumber,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Phone:         r.Phone,
		ClassGroupID:  r.ClassGroupID,
		IsActive:      true,
	}
	if r.Active != nil {
		student.IsActive = *r.Active
	}
	return student
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student := req.toModel("")
	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Student created successfully",
		"student": student,
	})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student := req.toModel(c.Params("id"))
	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{
		"message": "Student updated successfully",
		"student": student,
	})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	if err := database.DeleteStudent(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}
