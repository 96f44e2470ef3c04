package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupIDsUnconstrained(t *testing.T) {
	snap := testSnapshot()
	scope := Filters{}.GroupIDs(snap)

	assert.Len(t, scope, len(snap.Groups))
	for _, g := range snap.Groups {
		assert.True(t, scope[g.ID], "group %s missing from unconstrained scope", g.ID)
	}
}

func TestGroupIDsHierarchy(t *testing.T) {
	snap := testSnapshot()

	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{name: "campus narrows to its subtree", filters: Filters{CampusID: "C1"}, want: []string{"G1", "G2", "G4"}},
		{name: "other campus", filters: Filters{CampusID: "C2"}, want: []string{"G3"}},
		{name: "school", filters: Filters{SchoolID: "S1"}, want: []string{"G1", "G2", "G4"}},
		{name: "program", filters: Filters{ProgramID: "P2"}, want: []string{"G2"}},
		{name: "group", filters: Filters{GroupID: "G3"}, want: []string{"G3"}},
		{name: "campus and program agree", filters: Filters{CampusID: "C1", ProgramID: "P1"}, want: []string{"G1", "G4"}},
		{name: "campus and program conflict", filters: Filters{CampusID: "C2", ProgramID: "P1"}, want: nil},
		{name: "group outside campus scope", filters: Filters{CampusID: "C1", GroupID: "G3"}, want: nil},
		{name: "unknown campus yields empty set", filters: Filters{CampusID: "nope"}, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := tt.filters.GroupIDs(snap)
			assert.Len(t, scope, len(tt.want))
			for _, id := range tt.want {
				assert.True(t, scope[id], "expected %s in scope", id)
			}
		})
	}
}

// Adding a constraint may only ever shrink the resolved scope.
func TestGroupIDsMonotonicNarrowing(t *testing.T) {
	snap := testSnapshot()

	base := Filters{CampusID: "C1"}
	narrowed := Filters{CampusID: "C1", ProgramID: "P1"}

	baseScope := base.GroupIDs(snap)
	narrowScope := narrowed.GroupIDs(snap)

	assert.LessOrEqual(t, len(narrowScope), len(baseScope))
	for id := range narrowScope {
		assert.True(t, baseScope[id], "narrowed scope contains %s absent from the wider scope", id)
	}
}

func TestFilterTransitionsResetDescendants(t *testing.T) {
	f := Filters{}
	f.SetCampus("C1")
	f.SetSchool("S1")
	f.SetProgram("P1")
	f.SetGroup("G1")

	f.SetProgram("P2")
	assert.Equal(t, "P2", f.ProgramID)
	assert.Empty(t, f.GroupID, "changing program must clear the group")

	f.SetGroup("G2")
	f.SetSchool("S2")
	assert.Empty(t, f.ProgramID)
	assert.Empty(t, f.GroupID)

	f.SetCampus("C2")
	assert.Equal(t, "C2", f.CampusID)
	assert.Empty(t, f.SchoolID)
	assert.Empty(t, f.ProgramID)
	assert.Empty(t, f.GroupID)
}
