package attendance

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/heberxp77/AsistenciaWeb/app/config"
	"github.com/heberxp77/AsistenciaWeb/app/database"
	"github.com/heberxp77/AsistenciaWeb/app/models"
)

// GetMyGroupsAPI returns the active groups the calling teacher takes
// attendance for
func GetMyGroupsAPI(c *fiber.Ctx) error {
	user := currentUser(c)

	teacherID := user.ID
	if user.Role == models.RoleAdmin && c.Query("teacher_id") != "" {
		teacherID = c.Query("teacher_id")
	}

	groups, err := database.GetClassGroupsByTeacher(config.GetDB(), teacherID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class groups"})
	}

	return c.JSON(fiber.Map{
		"groups": groups,
		"count":  len(groups),
	})
}

// GetRosterAPI returns the group's active roster merged with any attendance
// already recorded for the date. Students without a record default to
// "present", the take-attendance screen's starting state.
func GetRosterAPI(c *fiber.Ctx) error {
	groupID := c.Params("groupId")
	date := c.Params("date")

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	group, err := database.GetClassGroupByID(config.GetDB(), groupID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Class group not found"})
	}
	if !canAccessGroup(currentUser(c), group) {
		return c.Status(403).JSON(fiber.Map{"error": "You do not teach this class group"})
	}

	students, err := database.GetStudentsByGroup(config.GetDB(), groupID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	records, err := database.GetAttendanceByGroupAndDate(config.GetDB(), groupID, date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance records"})
	}

	statusByStudent := make(map[string]models.AttendanceStatus, len(records))
	for _, r := range records {
		statusByStudent[r.StudentID] = r.Status
	}

	type StudentAttendance struct {
		*models.Student
		Status models.AttendanceStatus `json:"status"`
	}

	roster := make([]StudentAttendance, 0, len(students))
	for _, s := range students {
		status, ok := statusByStudent[s.ID]
		if !ok {
			status = models.StatusPresent
		}
		roster = append(roster, StudentAttendance{Student: s, Status: status})
	}

	return c.JSON(fiber.Map{
		"group":    group,
		"date":     date,
		"students": roster,
		"count":    len(roster),
	})
}

// BatchSaveAttendanceAPI persists one take-attendance submission as a
// single all-or-nothing transaction
func BatchSaveAttendanceAPI(c *fiber.Ctx) error {
	type BatchRequest struct {
		GroupID string                     `json:"groupId"`
		Date    string                     `json:"date"`
		Entries []database.AttendanceEntry `json:"entries"`
	}

	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.GroupID == "" || req.Date == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Group ID and date are required"})
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}
	if len(req.Entries) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No attendance entries provided"})
	}
	for _, entry := range req.Entries {
		if entry.StudentID == "" || !models.ValidStatus(entry.Status) {
			return c.Status(400).JSON(fiber.Map{"error": "Each entry needs a student and a valid status"})
		}
	}

	group, err := database.GetClassGroupByID(config.GetDB(), req.GroupID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Class group not found"})
	}
	if !canAccessGroup(currentUser(c), group) {
		return c.Status(403).JSON(fiber.Map{"error": "You do not teach this class group"})
	}

	user := currentUser(c)
	if err := database.BatchSaveAttendance(config.GetDB(), req.GroupID, req.Date, user.ID, req.Entries); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save attendance"})
	}

	return c.JSON(fiber.Map{
		"message": "Attendance saved successfully",
		"saved":   len(req.Entries),
	})
}
