package reportsapi

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/heberxp77/AsistenciaWeb/app/config"
	"github.com/heberxp77/AsistenciaWeb/app/database"
	"github.com/heberxp77/AsistenciaWeb/app/models"
	"github.com/heberxp77/AsistenciaWeb/app/reports"
)

// parseFilters builds the engine filter state from query parameters. The
// hierarchy levels go through the Set* transitions top-down so a parent
// selection clears any stale child value.
func parseFilters(c *fiber.Ctx) (reports.Filters, error) {
	var f reports.Filters
	if v := c.Query("campus_id"); v != "" {
		f.SetCampus(v)
	}
	if v := c.Query("school_id"); v != "" {
		f.SetSchool(v)
	}
	if v := c.Query("program_id"); v != "" {
		f.SetProgram(v)
	}
	if v := c.Query("group_id"); v != "" {
		f.SetGroup(v)
	}

	f.TeacherID = c.Query("teacher_id")
	f.StartDate = c.Query("start_date")
	f.EndDate = c.Query("end_date")
	f.Search = c.Query("search")

	if v := c.Query("shift"); v != "" {
		shift := models.Shift(v)
		if !models.ValidShift(shift) {
			return f, fiber.NewError(fiber.StatusBadRequest, "Unknown shift")
		}
		f.Shift = shift
	}
	if v := c.Query("status"); v != "" && v != "any" {
		status := models.AttendanceStatus(v)
		if !models.ValidStatus(status) {
			return f, fiber.NewError(fiber.StatusBadRequest, "Unknown status")
		}
		f.Status = status
	}
	return f, nil
}

// GetAttendanceReportAPI returns the filtered, joined record list capped
// for display, plus status counts and the attendance rate computed over
// the full (uncapped) filtered set
func GetAttendanceReportAPI(c *fiber.Ctx) error {
	filters, err := parseFilters(c)
	if err != nil {
		return err
	}

	snap, err := database.LoadSnapshot(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch report data"})
	}

	ix := reports.NewIndex(snap)
	filtered := ix.FilterRecords(filters)
	counts := reports.CountStatuses(filtered)

	return c.JSON(fiber.Map{
		"records":        reports.Cap(filtered),
		"totalCount":     len(filtered),
		"statusCounts":   counts,
		"attendanceRate": counts.Rate(),
	})
}

// GetGroupReportsAPI returns the ranked per-group table, the per-day trend
// and the program/shift breakdowns for a today/week/month preset
func GetGroupReportsAPI(c *fiber.Ctx) error {
	preset := c.Query("range", "week")
	now := time.Now()
	startDate, endDate := reports.PresetRange(preset, now)

	snap, err := database.LoadSnapshot(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch report data"})
	}

	ix := reports.NewIndex(snap)
	filtered := ix.FilterRecords(reports.Filters{StartDate: startDate, EndDate: endDate})
	counts := reports.CountStatuses(filtered)

	return c.JSON(fiber.Map{
		"range":          preset,
		"startDate":      startDate,
		"endDate":        endDate,
		"groupReports":   ix.GroupReports(filtered),
		"trend":          reports.Trend(filtered, reports.PresetDays(preset), now),
		"byProgram":      ix.BreakdownByProgram(filtered),
		"byShift":        ix.BreakdownByShift(filtered),
		"statusCounts":   counts,
		"attendanceRate": counts.Rate(),
	})
}
