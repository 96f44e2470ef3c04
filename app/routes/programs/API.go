package programs

import (
	"github.com/gofiber/fiber/v2"

	"github.com/heberxp77/AsistenciaWeb/app/config"
	"github.com/heberxp77/AsistenciaWeb/app/database"
	"github.com/heberxp77/AsistenciaWeb/app/models"
	"github.com/heberxp77/AsistenciaWeb/app/validation"
)

func GetProgramsAPI(c *fiber.Ctx) error {
	programs, err := database.GetAllPrograms(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch programs"})
	}

	schoolID := c.Query("school_id")
	activeOnly := c.QueryBool("active_only")
	if schoolID != "" || activeOnly {
		filtered := make([]*models.Program, 0, len(programs))
		for _, program := range programs {
			if schoolID != "" && program.SchoolID != schoolID {
				continue
			}
			if activeOnly && !program.IsActive {
				continue
			}
			filtered = append(filtered, program)
		}
		programs = filtered
	}

	return c.JSON(fiber.Map{
		"programs": programs,
		"count":    len(programs),
	})
}

func CreateProgramAPI(c *fiber.Ctx) error {
	type CreateProgramRequest struct {
		Name     string `json:"name" validate:"required"`
		Code     string `json:"code" validate:"required"`
		SchoolID string `json:"schoolId" validate:"required"`
		Active   *bool  `json:"active,omitempty"`
	}

	var req CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	program := &models.Program{
		Name:     req.Name,
		Code:     req.Code,
		SchoolID: req.SchoolID,
		IsActive: true,
	}
	if req.Active != nil {
		program.IsActive = *req.Active
	}

	if err := database.CreateProgram(config.GetDB(), program); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create program"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Program created successfully",
		"program": program,
	})
}

func UpdateProgramAPI(c *fiber.Ctx) error {
	type UpdateProgramRequest struct {
		Name     string `json:"name" validate:"required"`
		Code     string `json:"code" validate:"required"`
		SchoolID string `json:"schoolId" validate:"required"`
		Active   bool   `json:"active"`
	}

	var req UpdateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	program := &models.Program{
		ID:       c.Params("id"),
		Name:     req.Name,
		Code:     req.Code,
		SchoolID: req.SchoolID,
		IsActive: req.Active,
	}

	if err := database.UpdateProgram(config.GetDB(), program); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update program"})
	}

	return c.JSON(fiber.Map{
		"message": "Program updated successfully",
		"program": program,
	})
}

func DeleteProgramAPI(c *fiber.Ctx) error {
	if err := database.DeleteProgram(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete program"})
	}
	return c.JSON(fiber.Map{"message": "Program deleted successfully"})
}
