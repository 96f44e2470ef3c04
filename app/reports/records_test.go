package reports

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heberxp77/AsistenciaWeb/app/models"
)

func TestFilterRecordsByScope(t *testing.T) {
	snap := testSnapshot()
	snap.Records = []*models.AttendanceRecord{
		rec("r1", "A", "G1", "2026-03-02", models.StatusPresent),
		rec("r2", "B", "G1", "2026-03-02", models.StatusAbsent),
		rec("r3", "C", "G2", "2026-03-02", models.StatusPresent),
	}
	ix := NewIndex(snap)

	got := ix.FilterRecords(Filters{ProgramID: "P1"})
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, "G1", r.ClassGroupID)
	}

	got = ix.FilterRecords(Filters{CampusID: "C2"})
	assert.Empty(t, got)
}

func TestFilterRecordsIndependentFilters(t *testing.T) {
	snap := testSnapshot()
	snap.Records = []*models.AttendanceRecord{
		rec("r1", "A", "G1", "2026-03-01", models.StatusPresent),
		rec("r2", "A", "G1", "2026-03-02", models.StatusAbsent),
		rec("r3", "B", "G1", "2026-03-03", models.StatusJustified),
		rec("r4", "C", "G2", "2026-03-02", models.StatusPresent),
	}
	ix := NewIndex(snap)

	tests := []struct {
		name    string
		filters Filters
		wantIDs []string
	}{
		{name: "status", filters: Filters{Status: models.StatusAbsent}, wantIDs: []string{"r2"}},
		{name: "teacher", filters: Filters{TeacherID: "T2"}, wantIDs: []string{"r4"}},
		{name: "start date inclusive", filters: Filters{StartDate: "2026-03-02"}, wantIDs: []string{"r2", "r3", "r4"}},
		{name: "end date inclusive", filters: Filters{EndDate: "2026-03-02"}, wantIDs: []string{"r1", "r2", "r4"}},
		{name: "closed range", filters: Filters{StartDate: "2026-03-02", EndDate: "2026-03-02"}, wantIDs: []string{"r2", "r4"}},
		{name: "shift", filters: Filters{Shift: models.ShiftAfternoon}, wantIDs: []string{"r4"}},
		{name: "search by student name", filters: Filters{Search: "ana"}, wantIDs: []string{"r1", "r2"}},
		{name: "search by matricula", filters: Filters{Search: "2024-003"}, wantIDs: []string{"r4"}},
		{name: "search by group name", filters: Filters{Search: "ind-201"}, wantIDs: []string{"r4"}},
		{name: "search no match", filters: Filters{Search: "zzz"}, wantIDs: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ix.FilterRecords(tt.filters)
			var ids []string
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			sort.Strings(ids)
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterRecordsSortedByDateDescending(t *testing.T) {
	snap := testSnapshot()
	snap.Records = []*models.AttendanceRecord{
		rec("r1", "A", "G1", "2026-03-01", models.StatusPresent),
		rec("r2", "A", "G1", "2026-03-03", models.StatusPresent),
		rec("r3", "A", "G1", "2026-03-02", models.StatusPresent),
	}
	ix := NewIndex(snap)

	got := ix.FilterRecords(Filters{})
	require.Len(t, got, 3)
	assert.Equal(t, "2026-03-03", got[0].Date)
	assert.Equal(t, "2026-03-02", got[1].Date)
	assert.Equal(t, "2026-03-01", got[2].Date)
}

func TestFilterRecordsEnrichesDanglingReferences(t *testing.T) {
	snap := testSnapshot()
	snap.Records = []*models.AttendanceRecord{
		rec("r1", "ghost-student", "G1", "2026-03-02", models.StatusPresent),
	}
	ix := NewIndex(snap)

	got := ix.FilterRecords(Filters{})
	require.Len(t, got, 1)
	assert.Equal(t, Placeholder, got[0].StudentName)
	assert.Equal(t, "", got[0].StudentNumber)
	assert.Equal(t, "SIS-101", got[0].GroupName)
}

// The display cap trims the table but never the aggregates.
func TestCapIsPresentationOnly(t *testing.T) {
	snap := testSnapshot()
	for i := 0; i < DisplayLimit+40; i++ {
		snap.Records = append(snap.Records,
			rec(fmt.Sprintf("r%d", i), "A", "G1", "2026-03-02", models.StatusPresent))
	}
	ix := NewIndex(snap)

	filtered := ix.FilterRecords(Filters{})
	require.Len(t, filtered, DisplayLimit+40)

	capped := Cap(filtered)
	assert.Len(t, capped, DisplayLimit)

	counts := CountStatuses(filtered)
	assert.Equal(t, DisplayLimit+40, counts.Total)
	assert.Equal(t, DisplayLimit+40, counts.Present)
}

func TestCapShortListUnchanged(t *testing.T) {
	records := []RecordWithDetails{{}, {}, {}}
	assert.Len(t, Cap(records), 3)
}
