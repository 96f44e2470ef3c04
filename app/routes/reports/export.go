package reportsapi

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/heberxp77/AsistenciaWeb/app/config"
	"github.com/heberxp77/AsistenciaWeb/app/database"
	"github.com/heberxp77/AsistenciaWeb/app/models"
	"github.com/heberxp77/AsistenciaWeb/app/reports"
)

// ExportAttendanceReportAPI downloads the filtered record set as an XLSX
// workbook. The export is not capped at the display limit.
func ExportAttendanceReportAPI(c *fiber.Ctx) error {
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

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Asistencia"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Fecha", "Estudiante", "Matrícula", "Grupo", "Carrera", "Docente", "Estado"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, r := range filtered {
		values := []interface{}{
			r.Date,
			r.StudentName,
			r.StudentNumber,
			r.GroupName,
			r.ProgramName,
			r.TeacherName,
			models.StatusLabels[r.Status],
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	counts := reports.CountStatuses(filtered)
	summaryRow := len(filtered) + 3
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow), counts.Total)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow+1), "Tasa de asistencia")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow+1), fmt.Sprintf("%d%%", counts.Rate()))

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build spreadsheet"})
	}

	filename := fmt.Sprintf("asistencia_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buf.Bytes())
}
