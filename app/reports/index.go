// Package reports is the in-memory attendance aggregation engine: pure
// functions from (entity collections, filter state) to joined record lists,
// rates, trends and breakdown tables. Nothing in this package performs I/O.
package reports

import "github.com/heberxp77/AsistenciaWeb/app/models"

// Snapshot is one consistent fetch of every collection the engine reads.
// All derived computation for a request runs against a single snapshot.
type Snapshot struct {
	Campuses []*models.Campus
	Schools  []*models.School
	Programs []*models.Program
	Groups   []*models.ClassGroup
	Students []*models.Student
	Teachers []*models.User
	Records  []*models.AttendanceRecord
}

// Placeholder is rendered for dangling or missing references
const Placeholder = "—"

// Index holds id lookups over a snapshot and resolves references to display
// names. Unresolvable identifiers degrade to Placeholder, never an error.
type Index struct {
	snap     *Snapshot
	Campuses map[string]*models.Campus
	Schools  map[string]*models.School
	Programs map[string]*models.Program
	Groups   map[string]*models.ClassGroup
	Students map[string]*models.Student
	Teachers map[string]*models.User
}

// NewIndex builds the lookup maps. Rebuild whenever the snapshot is refreshed.
func NewIndex(snap *Snapshot) *Index {
	ix := &Index{
		snap:     snap,
		Campuses: make(map[string]*models.Campus, len(snap.Campuses)),
		Schools:  make(map[string]*models.School, len(snap.Schools)),
		Programs: make(map[string]*models.Program, len(snap.Programs)),
		Groups:   make(map[string]*models.ClassGroup, len(snap.Groups)),
		Students: make(map[string]*models.Student, len(snap.Students)),
		Teachers: make(map[string]*models.User, len(snap.Teachers)),
	}
	for _, c := range snap.Campuses {
		ix.Campuses[c.ID] = c
	}
	for _, s := range snap.Schools {
		ix.Schools[s.ID] = s
	}
	for _, p := range snap.Programs {
		ix.Programs[p.ID] = p
	}
	for _, g := range snap.Groups {
		ix.Groups[g.ID] = g
	}
	for _, s := range snap.Students {
		ix.Students[s.ID] = s
	}
	for _, t := range snap.Teachers {
		ix.Teachers[t.ID] = t
	}
	return ix
}

func (ix *Index) CampusName(id string) string {
	if c, ok := ix.Campuses[id]; ok {
		return c.Name
	}
	return Placeholder
}

func (ix *Index) SchoolName(id string) string {
	if s, ok := ix.Schools[id]; ok {
		return s.Name
	}
	return Placeholder
}

func (ix *Index) ProgramName(id string) string {
	if p, ok := ix.Programs[id]; ok {
		return p.Name
	}
	return Placeholder
}

func (ix *Index) GroupName(id string) string {
	if g, ok := ix.Groups[id]; ok {
		return g.Name
	}
	return Placeholder
}

func (ix *Index) StudentName(id string) string {
	if s, ok := ix.Students[id]; ok {
		return s.FullName()
	}
	return Placeholder
}

// StudentNumber returns the matrícula, or "" when the student is unknown
func (ix *Index) StudentNumber(id string) string {
	if s, ok := ix.Students[id]; ok {
		return s.StudentNumber
	}
	return ""
}

func (ix *Index) TeacherName(id string) string {
	if t, ok := ix.Teachers[id]; ok {
		return t.DisplayName
	}
	return Placeholder
}

// GroupProgramName resolves group → program → name across the hierarchy
func (ix *Index) GroupProgramName(groupID string) string {
	if g, ok := ix.Groups[groupID]; ok {
		return ix.ProgramName(g.ProgramID)
	}
	return Placeholder
}

// CountActiveStudents counts active students whose group is in scope
func (ix *Index) CountActiveStudents(groupIDs map[string]bool) int {
	count := 0
	for _, s := range ix.snap.Students {
		if s.IsActive && groupIDs[s.ClassGroupID] {
			count++
		}
	}
	return count
}
