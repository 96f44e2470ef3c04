package justifications

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/heberxp77/AsistenciaWeb/app/config"
	"github.com/heberxp77/AsistenciaWeb/app/database"
	"github.com/heberxp77/AsistenciaWeb/app/models"
	"github.com/heberxp77/AsistenciaWeb/app/reports"
	"github.com/heberxp77/AsistenciaWeb/app/routes/auth"
	"github.com/heberxp77/AsistenciaWeb/app/validation"
)

// GetJustificationsAPI lists justifications with resolved display data.
// Teachers see only their own groups' justifications; admins and area
// managers see everything.
func GetJustificationsAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	teacherID := ""
	if user.Role == models.RoleTeacher {
		teacherID = user.ID
	}

	justifications, err := database.GetJustificationsWithDetails(config.GetDB(), teacherID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch justifications"})
	}

	return c.JSON(fiber.Map{
		"justifications": justifications,
		"count":          len(justifications),
	})
}

// GetAbsencesAPI lists the caller's absent-status records, enriched for the
// justification dialog's record picker
func GetAbsencesAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	records, err := database.GetAbsentRecordsByTeacher(config.GetDB(), user.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch absences"})
	}

	snap, err := database.LoadSnapshot(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch reference data"})
	}
	ix := reports.NewIndex(snap)

	type AbsenceOption struct {
		*models.AttendanceRecord
		StudentName   string `json:"studentName"`
		StudentNumber string `json:"studentNumber"`
		GroupName     string `json:"groupName"`
	}

	options := make([]AbsenceOption, 0, len(records))
	for _, r := range records {
		options = append(options, AbsenceOption{
			AttendanceRecord: r,
			StudentName:      ix.StudentName(r.StudentID),
			StudentNumber:    ix.StudentNumber(r.StudentID),
			GroupName:        ix.GroupName(r.ClassGroupID),
		})
	}

	return c.JSON(fiber.Map{
		"absences": options,
		"count":    len(options),
	})
}

// CreateJustificationAPI records a justification for an absence and forces
// the referenced record to "justified" in the same transaction
func CreateJustificationAPI(c *fiber.Ctx) error {
	type CreateJustificationRequest struct {
		AttendanceRecordID string  `json:"attendanceRecordId" validate:"required"`
		Note               string  `json:"note" validate:"required"`
		DocumentURL        *string `json:"documentUrl,omitempty"`
		DocumentName       *string `json:"documentName,omitempty"`
	}

	var req CreateJustificationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	justification := &models.Justification{
		AttendanceRecordID: req.AttendanceRecordID,
		Note:               req.Note,
		DocumentURL:        req.DocumentURL,
		DocumentName:       req.DocumentName,
	}

	if err := database.CreateJustification(config.GetDB(), justification); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Attendance record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create justification"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":       "Justification created successfully",
		"justification": justification,
	})
}

func ApproveJustificationAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	err := database.ApproveJustification(config.GetDB(), c.Params("id"), user.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Justification not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to approve justification"})
	}

	return c.JSON(fiber.Map{"message": "Justification approved successfully"})
}
