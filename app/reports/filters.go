package reports

import "github.com/heberxp77/AsistenciaWeb/app/models"

// Filters is the full filter state of the reporting screens. An empty field
// means "no constraint" at that level. Hierarchy fields must be changed
// through the Set* transitions so a new parent selection clears any child
// selection it may have invalidated.
type Filters struct {
	CampusID  string
	SchoolID  string
	ProgramID string
	GroupID   string

	TeacherID string
	Shift     models.Shift
	Status    models.AttendanceStatus
	StartDate string
	EndDate   string
	Search    string
}

// SetCampus selects a campus and resets every descendant level
func (f *Filters) SetCampus(id string) {
	f.CampusID = id
	f.SchoolID = ""
	f.ProgramID = ""
	f.GroupID = ""
}

// SetSchool selects a school and resets program and group
func (f *Filters) SetSchool(id string) {
	f.SchoolID = id
	f.ProgramID = ""
	f.GroupID = ""
}

// SetProgram selects a program and resets the group
func (f *Filters) SetProgram(id string) {
	f.ProgramID = id
	f.GroupID = ""
}

func (f *Filters) SetGroup(id string) {
	f.GroupID = id
}

// GroupIDs resolves the hierarchy constraints into the set of class-group
// identifiers consistent with every constrained level at once. Each level
// intersects the running scope, so adding a constraint can only narrow the
// result. With nothing constrained the full group set is returned; a value
// matching no entities yields an empty set, not an error.
func (f Filters) GroupIDs(snap *Snapshot) map[string]bool {
	scope := make(map[string]bool, len(snap.Groups))
	for _, g := range snap.Groups {
		scope[g.ID] = true
	}

	if f.CampusID != "" {
		schoolIDs := make(map[string]bool)
		for _, s := range snap.Schools {
			if s.CampusID == f.CampusID {
				schoolIDs[s.ID] = true
			}
		}
		programIDs := make(map[string]bool)
		for _, p := range snap.Programs {
			if schoolIDs[p.SchoolID] {
				programIDs[p.ID] = true
			}
		}
		intersectByProgram(scope, snap, programIDs)
	}

	if f.SchoolID != "" {
		programIDs := make(map[string]bool)
		for _, p := range snap.Programs {
			if p.SchoolID == f.SchoolID {
				programIDs[p.ID] = true
			}
		}
		intersectByProgram(scope, snap, programIDs)
	}

	if f.ProgramID != "" {
		intersectByProgram(scope, snap, map[string]bool{f.ProgramID: true})
	}

	if f.GroupID != "" {
		for id := range scope {
			if id != f.GroupID {
				delete(scope, id)
			}
		}
	}

	return scope
}

func intersectByProgram(scope map[string]bool, snap *Snapshot, programIDs map[string]bool) {
	for _, g := range snap.Groups {
		if scope[g.ID] && !programIDs[g.ProgramID] {
			delete(scope, g.ID)
		}
	}
}
