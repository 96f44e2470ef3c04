package campuses

import (
	"github.com/gofiber/fiber/v2"

	"github.com/heberxp77/AsistenciaWeb/app/config"
	"github.com/heberxp77/AsistenciaWeb/app/database"
	"github.com/heberxp77/AsistenciaWeb/app/models"
	"github.com/heberxp77/AsistenciaWeb/app/validation"
)

func GetCampusesAPI(c *fiber.Ctx) error {
	campuses, err := database.GetAllCampuses(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch campuses"})
	}

	if c.QueryBool("active_only") {
		filtered := make([]*models.Campus, 0, len(campuses))
		for _, campus := range campuses {
			if campus.IsActive {
				filtered = append(filtered, campus)
			}
		}
		campuses = filtered
	}

	return c.JSON(fiber.Map{
		"campuses": campuses,
		"count":    len(campuses),
	})
}

func CreateCampusAPI(c *fiber.Ctx) error {
	type CreateCampusRequest struct {
		Name    string  `json:"name" validate:"required"`
		Address *string `json:"address,omitempty"`
		Active  *bool   `json:"active,omitempty"`
	}

	var req CreateCampusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	campus := &models.Campus{
		Name:     req.Name,
		Address:  req.Address,
		IsActive: true,
	}
	if req.Active != nil {
		campus.IsActive = *req.Active
	}

	if err := database.CreateCampus(config.GetDB(), campus); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create campus"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Campus created successfully",
		"campus":  campus,
	})
}

func UpdateCampusAPI(c *fiber.Ctx) error {
	type UpdateCampusRequest struct {
		Name    string  `json:"name" validate:"required"`
		Address *string `json:"address,omitempty"`
		Active  bool    `json:"active"`
	}

	var req UpdateCampusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	campus := &models.Campus{
		ID:       c.Params("id"),
		Name:     req.Name,
		Address:  req.Address,
		IsActive: req.Active,
	}

	if err := database.UpdateCampus(config.GetDB(), campus); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update campus"})
	}

	return c.JSON(fiber.Map{
		"message": "Campus updated successfully",
		"campus":  campus,
	})
}

func DeleteCampusAPI(c *fiber.Ctx) error {
	if err := database.DeleteCampus(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete campus"})
	}
	return c.JSON(fiber.Map{"message": "Campus deleted successfully"})
}
