package groups

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/heberxp77/AsistenciaWeb/app/config"
	"github.com/heberxp77/AsistenciaWeb/app/database"
	"github.com/heberxp77/AsistenciaWeb/app/models"
	"github.com/heberxp77/AsistenciaWeb/app/reports"
	"github.com/heberxp77/AsistenciaWeb/app/validation"
)

// GetGroupsAPI lists class groups with resolved program, school, campus and
// teacher names plus the active-roster size
func GetGroupsAPI(c *fiber.Ctx) error {
	snap, err := database.LoadSnapshot(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class groups"})
	}
	ix := reports.NewIndex(snap)

	activeOnly := c.QueryBool("active_only")
	studentCounts := make(map[string]int)
	for _, s := range snap.Students {
		if s.IsActive {
			studentCounts[s.ClassGroupID]++
		}
	}

	details := make([]*models.ClassGroupWithDetails, 0, len(snap.Groups))
	for _, g := range snap.Groups {
		if activeOnly && !g.IsActive {
			continue
		}
		schoolName := reports.Placeholder
		campusName := reports.Placeholder
		if program, ok := ix.Programs[g.ProgramID]; ok {
			schoolName = ix.SchoolName(program.SchoolID)
			if school, ok := ix.Schools[program.SchoolID]; ok {
				campusName = ix.CampusName(school.CampusID)
			}
		}
		details = append(details, &models.ClassGroupWithDetails{
			ClassGroup:   *g,
			ProgramName:  ix.ProgramName(g.ProgramID),
			SchoolName:   schoolName,
			CampusName:   campusName,
			TeacherName:  ix.TeacherName(g.TeacherID),
			StudentCount: studentCounts[g.ID],
		})
	}

	return c.JSON(fiber.Map{
		"groups": details,
		"count":  len(details),
	})
}

func GetGroupByIDAPI(c *fiber.Ctx) error {
	group, err := database.GetClassGroupByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Class group not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class group"})
	}
	return c.JSON(fiber.Map{"group": group})
}

type groupRequest struct {
	Name      string       `json:"name" validate:"required"`
	ProgramID string       `json:"programId" validate:"required"`
	TeacherID string       `json:"teacherId" validate:"required"`
	Shift     models.Shift `json:"shift" validate:"required,oneof=morning afternoon evening"`
	Semester  string       `json:"semester"`
	Year      int          `json:"year"`
	Active    *bool        `json:"active,omitempty"`
}

func CreateGroupAPI(c *fiber.Ctx) error {
	var req groupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	group := &models.ClassGroup{
		Name:      req.Name,
		ProgramID: req.ProgramID,
		TeacherID: req.TeacherID,
		Shift:     req.Shift,
		Semester:  req.Semester,
		Year:      req.Year,
		IsActive:  true,
	}
	if req.Active != nil {
		group.IsActive = *req.Active
	}

	if err := database.CreateClassGroup(config.GetDB(), group); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create class group"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Class group created successfully",
		"group":   group,
	})
}

func UpdateGroupAPI(c *fiber.Ctx) error {
	var req groupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	group := &models.ClassGroup{
		ID:        c.Params("id"),
		Name:      req.Name,
		ProgramID: req.ProgramID,
		TeacherID: req.TeacherID,
		Shift:     req.Shift,
		Semester:  req.Semester,
		Year:      req.Year,
		IsActive:  true,
	}
	if req.Active != nil {
		group.IsActive = *req.Active
	}

	if err := database.UpdateClassGroup(config.GetDB(), group); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update class group"})
	}

	return c.JSON(fiber.Map{
		"message": "Class group updated successfully",
		"group":   group,
	})
}

func DeleteGroupAPI(c *fiber.Ctx) error {
	if err := database.DeleteClassGroup(config.GetDB(), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete class group"})
	}
	return c.JSON(fiber.Map{"message": "Class group deleted successfully"})
}
