package reports

import (
	"math"
	"sort"
	"time"

	"github.com/heberxp77/AsistenciaWeb/app/models"
)

const dateLayout = "2006-01-02"

// StatusCounts is the per-status summary of a filtered record set
type StatusCounts struct {
	Present   int `json:"present"`
	Absent    int `json:"absent"`
	Justified int `json:"justified"`
	Total     int `json:"total"`
}

func CountStatuses(records []RecordWithDetails) StatusCounts {
	c := StatusCounts{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case models.StatusPresent:
			c.Present++
		case models.StatusAbsent:
			c.Absent++
		case models.StatusJustified:
			c.Justified++
		}
	}
	return c
}

// Rate is the attendance percentage. Justified absences count toward the
// rate identically to presences; that policy is deliberate and must not
// change. An empty set yields 0, never NaN.
func (c StatusCounts) Rate() int {
	return rate(c.Present, c.Justified, c.Total)
}

func rate(present, justified, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(present+justified) / float64(total)))
}

// TrendPoint is one day on the attendance time series
type TrendPoint struct {
	Date       string `json:"date"`
	Asistencia int    `json:"asistencia"`
}

// Trend buckets records per day over the `days` calendar days ending at
// `today` inclusive. Every day in range appears, zero-filled when it has no
// records, so the chart axis stays contiguous.
func Trend(records []RecordWithDetails, days int, today time.Time) []TrendPoint {
	start := truncateDay(today).AddDate(0, 0, -(days - 1))

	type bucket struct{ present, total int }
	buckets := make(map[string]*bucket, days)
	order := make([]string, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format(dateLayout)
		buckets[date] = &bucket{}
		order = append(order, date)
	}

	for _, r := range records {
		b, ok := buckets[r.Date]
		if !ok {
			continue
		}
		b.total++
		if r.Status == models.StatusPresent || r.Status == models.StatusJustified {
			b.present++
		}
	}

	trend := make([]TrendPoint, 0, days)
	for _, date := range order {
		b := buckets[date]
		point := TrendPoint{Date: date}
		if b.total > 0 {
			point.Asistencia = int(math.Round(100 * float64(b.present) / float64(b.total)))
		}
		trend = append(trend, point)
	}
	return trend
}

// Breakdown is attendance aggregated over one dimension value
type Breakdown struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Present   int    `json:"present"`
	Absent    int    `json:"absent"`
	Justified int    `json:"justified"`
	Total     int    `json:"total"`
	Rate      int    `json:"rate"`
}

func sortByRate(items []Breakdown) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Rate > items[j].Rate
	})
}

// BreakdownByProgram aggregates the record set per active program, best
// rate first. Programs without records appear with rate 0.
func (ix *Index) BreakdownByProgram(records []RecordWithDetails) []Breakdown {
	active := 0
	for _, p := range ix.snap.Programs {
		if p.IsActive {
			active++
		}
	}
	byProgram := make(map[string]*Breakdown, active)
	out := make([]Breakdown, 0, active)
	for _, p := range ix.snap.Programs {
		if !p.IsActive {
			continue
		}
		out = append(out, Breakdown{Key: p.ID, Name: p.Name})
		byProgram[p.ID] = &out[len(out)-1]
	}

	for _, r := range records {
		g, ok := ix.Groups[r.ClassGroupID]
		if !ok {
			continue
		}
		b, ok := byProgram[g.ProgramID]
		if !ok {
			continue
		}
		tally(b, r.Status)
	}

	finishRates(out)
	sortByRate(out)
	return out
}

// BreakdownByShift aggregates per shift; all three shifts always appear
func (ix *Index) BreakdownByShift(records []RecordWithDetails) []Breakdown {
	byShift := make(map[models.Shift]*Breakdown)
	out := make([]Breakdown, 0, len(models.AllShifts))
	for _, shift := range models.AllShifts {
		out = append(out, Breakdown{Key: string(shift), Name: models.ShiftLabels[shift]})
		byShift[shift] = &out[len(out)-1]
	}

	for _, r := range records {
		g, ok := ix.Groups[r.ClassGroupID]
		if !ok {
			continue
		}
		if b, ok := byShift[g.Shift]; ok {
			tally(b, r.Status)
		}
	}

	finishRates(out)
	sortByRate(out)
	return out
}

func tally(b *Breakdown, status models.AttendanceStatus) {
	b.Total++
	switch status {
	case models.StatusPresent:
		b.Present++
	case models.StatusAbsent:
		b.Absent++
	case models.StatusJustified:
		b.Justified++
	}
}

func finishRates(items []Breakdown) {
	for i := range items {
		items[i].Rate = rate(items[i].Present, items[i].Justified, items[i].Total)
	}
}

// GroupReport is one row of the ranked per-group report table
type GroupReport struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ProgramName    string `json:"programName"`
	TeacherName    string `json:"teacherName"`
	Shift          string `json:"shift"`
	StudentCount   int    `json:"studentCount"`
	AttendanceRate int    `json:"attendanceRate"`
	PresentCount   int    `json:"presentCount"`
	AbsentCount    int    `json:"absentCount"`
	JustifiedCount int    `json:"justifiedCount"`
}

// GroupReports ranks every active group by attendance rate over the given
// record set, best first; ties keep the groups' input order. Groups with no
// records in range appear with rate 0.
func (ix *Index) GroupReports(records []RecordWithDetails) []GroupReport {
	byGroup := make(map[string][]RecordWithDetails)
	for _, r := range records {
		byGroup[r.ClassGroupID] = append(byGroup[r.ClassGroupID], r)
	}

	activeStudents := make(map[string]int)
	for _, s := range ix.snap.Students {
		if s.IsActive {
			activeStudents[s.ClassGroupID]++
		}
	}

	var out []GroupReport
	for _, g := range ix.snap.Groups {
		if !g.IsActive {
			continue
		}
		counts := CountStatuses(byGroup[g.ID])
		out = append(out, GroupReport{
			ID:             g.ID,
			Name:           g.Name,
			ProgramName:    ix.ProgramName(g.ProgramID),
			TeacherName:    ix.TeacherName(g.TeacherID),
			Shift:          models.ShiftLabels[g.Shift],
			StudentCount:   activeStudents[g.ID],
			AttendanceRate: counts.Rate(),
			PresentCount:   counts.Present,
			AbsentCount:    counts.Absent,
			JustifiedCount: counts.Justified,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AttendanceRate > out[j].AttendanceRate
	})
	return out
}

// Date-range presets

// PresetDays maps a range preset to its day count: today = 1, week = 7,
// month = 30 trailing days, all ending today inclusive
func PresetDays(preset string) int {
	switch preset {
	case "today":
		return 1
	case "week":
		return 7
	case "month":
		return 30
	default:
		return 7
	}
}

// PresetRange returns the inclusive [start, end] date strings of a preset
// ending at today's local calendar date
func PresetRange(preset string, today time.Time) (string, string) {
	days := PresetDays(preset)
	end := truncateDay(today)
	start := end.AddDate(0, 0, -(days - 1))
	return start.Format(dateLayout), end.Format(dateLayout)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
