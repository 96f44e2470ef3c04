package schools

import (
	"github.com/gofiber/fiber/v2"

	"github.com/heberxp77/AsistenciaWeb/app/config"
	"github.com/heberxp77/AsistenciaWeb/app/database"
	"github.com/heberxp77/AsistenciaWeb/app/models"
	"github.com/heberxp77/AsistenciaWeb/app/validation"
)

func GetSchoolsAPI(c *fiber.Ctx) error {
	schools, err := database.GetAllSchools(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch schools"})
	}

	campusID := c.Query("campus_id")
	activeOnly := c.QueryBool("active_only")
	if campusID != "" || activeOnly {
		filtered := make([]*models.School, 0, len(schools))
		for _, school := range schools {
			if campusID != "" && school.CampusID != campusID {
				continue
			}
			if activeOnly && !school.IsActive {
				continue
			}
			filtered = append(filtered, school)
		}
		schools = filtered
	}

	return c.JSON(fiber.Map{
		"schools": schools,
		"count":   len(schools),
	})
}

func CreateSchoolAPI(c *fiber.Ctx) error {
	type CreateSchoolRequest struct {
		Name     string `json:"name" validate:"required"`
		CampusID string `json:"campusId" validate:"required"`
		Active   *bool  `json:"active,omitempty"`
	}

	var req CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	school := &models.School{
		Name:     req.Name,
		CampusID: req.CampusID,
		IsActive: true,
	}
	if req.Active != nil {
		school.IsActive = *req.Active
	}

	if err := database.CreateSchool(config.GetDB(), school); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create school"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "School created successfully",
		"school":  school,
	})
}

func UpdateSchoolAPI(c *fiber.Ctx) error {
	type UpdateSchoolRequest struct {
		Name     string `json:"name" validate:"required"`
		CampusID string `json:"campusId" validate:"required"`
		Active   bool   `json:"active"`
	}

	var req UpdateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	school := &models.School{
		ID:       c.Params("id"),
		Name:     req.Name,
		CampusID: req.CampusID,
		IsActive: req.Active,
	}

	if err := database.UpdateSchool(config.GetDB(), school); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update school"})
	}

	return c.JSON(fiber.Map{
		"message": "School updated successfully",
		"school":  school,
	})
}

func DeleteSchoolAPI(c *fiber.Ctx) error {
	if err := database.DeleteSchool(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete school"})
	}
	return c.JSON(fiber.Map{"message": "School deleted successfully"})
}
