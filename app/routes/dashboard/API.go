package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/heberxp77/AsistenciaWeb/app/config"
	"github.com/heberxp77/AsistenciaWeb/app/database"
	"github.com/heberxp77/AsistenciaWeb/app/models"
	"github.com/heberxp77/AsistenciaWeb/app/reports"
	"github.com/heberxp77/AsistenciaWeb/app/routes/auth"
)

// GetAdminDashboardAPI returns the entity counters on the admin home screen
func GetAdminDashboardAPI(c *fiber.Ctx) error {
	snap, err := database.LoadSnapshot(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard data"})
	}

	stats := models.AdminStats{}
	for _, campus := range snap.Campuses {
		if campus.IsActive {
			stats.TotalCampuses++
		}
	}
	for _, school := range snap.Schools {
		if school.IsActive {
			stats.TotalSchools++
		}
	}
	for _, program := range snap.Programs {
		if program.IsActive {
			stats.TotalPrograms++
		}
	}
	for _, group := range snap.Groups {
		if group.IsActive {
			stats.TotalGroups++
		}
	}
	for _, student := range snap.Students {
		if student.IsActive {
			stats.TotalStudents++
		}
	}
	for _, teacher := range snap.Teachers {
		if teacher.IsActive {
			stats.TotalTeachers++
		}
	}

	return c.JSON(fiber.Map{"stats": stats})
}

// GetManagerDashboardAPI computes the area-manager dashboard: filtered
// status counts with attendance rate, the status distribution, and the
// per-shift breakdown, all from one snapshot
func GetManagerDashboardAPI(c *fiber.Ctx) error {
	var filters reports.Filters
	if v := c.Query("campus_id"); v != "" {
		filters.SetCampus(v)
	}
	if v := c.Query("school_id"); v != "" {
		filters.SetSchool(v)
	}
	if v := c.Query("program_id"); v != "" {
		filters.SetProgram(v)
	}
	if v := c.Query("shift"); v != "" {
		shift := models.Shift(v)
		if !models.ValidShift(shift) {
			return c.Status(400).JSON(fiber.Map{"error": "Unknown shift"})
		}
		filters.Shift = shift
	}

	preset := c.Query("range", "today")
	filters.StartDate, filters.EndDate = reports.PresetRange(preset, time.Now())

	snap, err := database.LoadSnapshot(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard data"})
	}

	ix := reports.NewIndex(snap)
	filtered := ix.FilterRecords(filters)
	counts := reports.CountStatuses(filtered)

	// Student headcount honors the hierarchy scope and, like the records,
	// the shift filter
	groupIDs := filters.GroupIDs(snap)
	if filters.Shift != "" {
		for id := range groupIDs {
			if g, ok := ix.Groups[id]; !ok || g.Shift != filters.Shift {
				delete(groupIDs, id)
			}
		}
	}

	return c.JSON(fiber.Map{
		"range":          preset,
		"totalStudents":  ix.CountActiveStudents(groupIDs),
		"statusCounts":   counts,
		"attendanceRate": counts.Rate(),
		"byShift":        ix.BreakdownByShift(filtered),
	})
}

// GetTeacherDashboardAPI summarizes today's attendance for each group the
// calling teacher teaches
func GetTeacherDashboardAPI(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)

	groups, err := database.GetClassGroupsByTeacher(config.GetDB(), user.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class groups"})
	}

	snap, err := database.LoadSnapshot(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard data"})
	}
	ix := reports.NewIndex(snap)

	today := time.Now().Format("2006-01-02")

	type GroupToday struct {
		*models.ClassGroup
		ProgramName  string `json:"programName"`
		StudentCount int    `json:"studentCount"`
		Taken        bool   `json:"taken"`
		Present      int    `json:"present"`
		Absent       int    `json:"absent"`
		Justified    int    `json:"justified"`
	}

	studentCounts := make(map[string]int)
	for _, s := range snap.Students {
		if s.IsActive {
			studentCounts[s.ClassGroupID]++
		}
	}

	summaries := make([]GroupToday, 0, len(groups))
	for _, g := range groups {
		summary := GroupToday{
			ClassGroup:   g,
			ProgramName:  ix.ProgramName(g.ProgramID),
			StudentCount: studentCounts[g.ID],
		}
		for _, r := range snap.Records {
			if r.ClassGroupID != g.ID || r.Date != today {
				continue
			}
			summary.Taken = true
			switch r.Status {
			case models.StatusPresent:
				summary.Present++
			case models.StatusAbsent:
				summary.Absent++
			case models.StatusJustified:
				summary.Justified++
			}
		}
		summaries = append(summaries, summary)
	}

	return c.JSON(fiber.Map{
		"date":   today,
		"groups": summaries,
		"count":  len(summaries),
	})
}
