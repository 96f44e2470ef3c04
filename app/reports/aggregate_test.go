package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heberxp77/AsistenciaWeb/app/models"
)

func TestRate(t *testing.T) {
	tests := []struct {
		name    string
		records []RecordWithDetails
		want    int
	}{
		{name: "empty set is zero", records: nil, want: 0},
		{name: "all present", records: withStatuses(models.StatusPresent, models.StatusPresent), want: 100},
		{name: "all absent", records: withStatuses(models.StatusAbsent, models.StatusAbsent), want: 0},
		{name: "half present", records: withStatuses(models.StatusPresent, models.StatusAbsent), want: 50},
		{name: "justified counts as attended", records: withStatuses(models.StatusPresent, models.StatusJustified), want: 100},
		{name: "rounds to nearest", records: withStatuses(models.StatusPresent, models.StatusPresent, models.StatusAbsent), want: 67},
		{name: "rounds down", records: withStatuses(models.StatusPresent, models.StatusAbsent, models.StatusAbsent), want: 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountStatuses(tt.records).Rate()
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func withStatuses(statuses ...models.AttendanceStatus) []RecordWithDetails {
	out := make([]RecordWithDetails, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, RecordWithDetails{
			AttendanceRecord: models.AttendanceRecord{Status: s},
		})
	}
	return out
}

// A group with one present and one absent sits at 50%; justifying the
// absence lifts it to 100%.
func TestJustificationLiftsRate(t *testing.T) {
	snap := testSnapshot()
	snap.Records = []*models.AttendanceRecord{
		rec("r1", "A", "G1", "2026-03-02", models.StatusPresent),
		rec("r2", "B", "G1", "2026-03-02", models.StatusAbsent),
	}
	ix := NewIndex(snap)

	before := CountStatuses(ix.FilterRecords(Filters{GroupID: "G1"}))
	assert.Equal(t, 50, before.Rate())

	snap.Records[1].Status = models.StatusJustified
	after := CountStatuses(ix.FilterRecords(Filters{GroupID: "G1"}))
	assert.Equal(t, 100, after.Rate())
	assert.Equal(t, 2, after.Total)
}

func TestTrendZeroFill(t *testing.T) {
	today := time.Date(2026, 3, 7, 15, 30, 0, 0, time.UTC)

	trend := Trend(nil, 7, today)
	require.Len(t, trend, 7)
	assert.Equal(t, "2026-03-01", trend[0].Date)
	assert.Equal(t, "2026-03-07", trend[6].Date)
	for _, p := range trend {
		assert.Equal(t, 0, p.Asistencia)
	}
}

func TestTrendBucketsPerDay(t *testing.T) {
	today := time.Date(2026, 3, 7, 8, 0, 0, 0, time.UTC)
	records := append(
		withDates("2026-03-05", models.StatusPresent, models.StatusAbsent),
		withDates("2026-03-06", models.StatusPresent, models.StatusJustified)...)
	// outside the window, must be ignored
	records = append(records, withDates("2026-02-20", models.StatusAbsent)...)

	trend := Trend(records, 7, today)
	require.Len(t, trend, 7)

	byDate := make(map[string]int, len(trend))
	for _, p := range trend {
		byDate[p.Date] = p.Asistencia
	}
	assert.Equal(t, 50, byDate["2026-03-05"])
	assert.Equal(t, 100, byDate["2026-03-06"])
	assert.Equal(t, 0, byDate["2026-03-07"])
	assert.NotContains(t, byDate, "2026-02-20")
}

func withDates(date string, statuses ...models.AttendanceStatus) []RecordWithDetails {
	out := withStatuses(statuses...)
	for i := range out {
		out[i].Date = date
	}
	return out
}

func TestBreakdownByProgram(t *testing.T) {
	snap := testSnapshot()
	snap.Records = []*models.AttendanceRecord{
		rec("r1", "A", "G1", "2026-03-02", models.StatusPresent),
		rec("r2", "B", "G1", "2026-03-02", models.StatusAbsent),
		rec("r3", "C", "G2", "2026-03-02", models.StatusPresent),
	}
	ix := NewIndex(snap)

	got := ix.BreakdownByProgram(ix.FilterRecords(Filters{}))
	require.Len(t, got, 3, "every active program appears")

	// Sorted best rate first: P2 at 100, P1 at 50, P3 with no records at 0
	assert.Equal(t, "P2", got[0].Key)
	assert.Equal(t, 100, got[0].Rate)
	assert.Equal(t, "P1", got[1].Key)
	assert.Equal(t, 50, got[1].Rate)
	assert.Equal(t, "P3", got[2].Key)
	assert.Equal(t, 0, got[2].Rate)
	assert.Equal(t, 0, got[2].Total)
}

func TestBreakdownByShiftAlwaysThreeRows(t *testing.T) {
	snap := testSnapshot()
	snap.Records = []*models.AttendanceRecord{
		rec("r1", "A", "G1", "2026-03-02", models.StatusPresent),
	}
	ix := NewIndex(snap)

	got := ix.BreakdownByShift(ix.FilterRecords(Filters{}))
	require.Len(t, got, len(models.AllShifts))

	assert.Equal(t, string(models.ShiftMorning), got[0].Key)
	assert.Equal(t, 100, got[0].Rate)
	for _, b := range got[1:] {
		assert.Equal(t, 0, b.Total)
		assert.Equal(t, 0, b.Rate)
	}
}

// Equal rates keep the snapshot order of the groups.
func TestGroupReportsStableTies(t *testing.T) {
	snap := testSnapshot()
	snap.Records = []*models.AttendanceRecord{
		rec("r1", "A", "G1", "2026-03-02", models.StatusPresent),
		rec("r2", "C", "G2", "2026-03-02", models.StatusPresent),
	}
	ix := NewIndex(snap)

	got := ix.GroupReports(ix.FilterRecords(Filters{}))
	require.Len(t, got, 3, "inactive groups are excluded")

	assert.Equal(t, "G1", got[0].ID)
	assert.Equal(t, 100, got[0].AttendanceRate)
	assert.Equal(t, "G2", got[1].ID)
	assert.Equal(t, 100, got[1].AttendanceRate)
	assert.Equal(t, "G3", got[2].ID)
	assert.Equal(t, 0, got[2].AttendanceRate)
}

func TestGroupReportsDetails(t *testing.T) {
	snap := testSnapshot()
	snap.Records = []*models.AttendanceRecord{
		rec("r1", "A", "G1", "2026-03-02", models.StatusPresent),
		rec("r2", "B", "G1", "2026-03-02", models.StatusJustified),
	}
	ix := NewIndex(snap)

	got := ix.GroupReports(ix.FilterRecords(Filters{}))
	require.NotEmpty(t, got)

	g1 := got[0]
	assert.Equal(t, "SIS-101", g1.Name)
	assert.Equal(t, "Sistemas", g1.ProgramName)
	assert.Equal(t, "Prof. Torres", g1.TeacherName)
	assert.Equal(t, models.ShiftLabels[models.ShiftMorning], g1.Shift)
	assert.Equal(t, 2, g1.StudentCount, "inactive students do not count")
	assert.Equal(t, 100, g1.AttendanceRate)
	assert.Equal(t, 1, g1.PresentCount)
	assert.Equal(t, 1, g1.JustifiedCount)
}

func TestPresetDays(t *testing.T) {
	assert.Equal(t, 1, PresetDays("today"))
	assert.Equal(t, 7, PresetDays("week"))
	assert.Equal(t, 30, PresetDays("month"))
	assert.Equal(t, 7, PresetDays("anything-else"))
}

func TestPresetRange(t *testing.T) {
	today := time.Date(2026, 3, 7, 23, 59, 0, 0, time.UTC)

	start, end := PresetRange("today", today)
	assert.Equal(t, "2026-03-07", start)
	assert.Equal(t, "2026-03-07", end)

	start, end = PresetRange("week", today)
	assert.Equal(t, "2026-03-01", start)
	assert.Equal(t, "2026-03-07", end)

	start, end = PresetRange("month", today)
	assert.Equal(t, "2026-02-06", start)
	assert.Equal(t, "2026-03-07", end)
}
