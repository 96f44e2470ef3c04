package reports

import (
	"sort"
	"strings"

	"github.com/heberxp77/AsistenciaWeb/app/models"
)

// DisplayLimit caps report tables for rendering. It is a presentation
// limit only: aggregation always runs over the uncapped filtered set.
const DisplayLimit = 100

// RecordWithDetails is an attendance record enriched with resolved display
// fields for the report table
type RecordWithDetails struct {
	models.AttendanceRecord
	StudentName   string `json:"studentName"`
	StudentNumber string `json:"studentNumber"`
	GroupName     string `json:"groupName"`
	ProgramName   string `json:"programName"`
	TeacherName   string `json:"teacherName"`
}

// FilterRecords applies the resolved group scope plus the independent
// record-level filters, joins display data, and sorts by date descending.
// Free-text search is a case-insensitive substring match on the resolved
// fields and runs after the structural filters.
func (ix *Index) FilterRecords(f Filters) []RecordWithDetails {
	groupIDs := f.GroupIDs(ix.snap)

	var result []RecordWithDetails
	for _, r := range ix.snap.Records {
		if !groupIDs[r.ClassGroupID] {
			continue
		}
		if f.TeacherID != "" && r.TeacherID != f.TeacherID {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		if f.StartDate != "" && r.Date < f.StartDate {
			continue
		}
		if f.EndDate != "" && r.Date > f.EndDate {
			continue
		}
		if f.Shift != "" {
			g, ok := ix.Groups[r.ClassGroupID]
			if !ok || g.Shift != f.Shift {
				continue
			}
		}
		result = append(result, ix.enrich(r))
	}

	if f.Search != "" {
		term := strings.ToLower(f.Search)
		matched := result[:0]
		for _, r := range result {
			if strings.Contains(strings.ToLower(r.StudentName), term) ||
				strings.Contains(strings.ToLower(r.StudentNumber), term) ||
				strings.Contains(strings.ToLower(r.GroupName), term) {
				matched = append(matched, r)
			}
		}
		result = matched
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})
	return result
}

func (ix *Index) enrich(r *models.AttendanceRecord) RecordWithDetails {
	return RecordWithDetails{
		AttendanceRecord: *r,
		StudentName:      ix.StudentName(r.StudentID),
		StudentNumber:    ix.StudentNumber(r.StudentID),
		GroupName:        ix.GroupName(r.ClassGroupID),
		ProgramName:      ix.GroupProgramName(r.ClassGroupID),
		TeacherName:      ix.TeacherName(r.TeacherID),
	}
}

// Cap slices a record list down to the display limit
func Cap(records []RecordWithDetails) []RecordWithDetails {
	if len(records) > DisplayLimit {
		return records[:DisplayLimit]
	}
	return records
}
