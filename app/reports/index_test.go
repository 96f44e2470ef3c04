package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heberxp77/AsistenciaWeb/app/models"
)

// testSnapshot builds a small two-campus hierarchy:
//
//	C1 -> S1 -> P1 -> G1 (morning, T1)
//	          \ P2 -> G2 (afternoon, T2)
//	C2 -> S2 -> P3 -> G3 (evening, T1)
//
// G4 is an inactive group under P1 and D is an inactive student in G1.
func testSnapshot() *Snapshot {
	return &Snapshot{
		Campuses: []*models.Campus{
			{ID: "C1", Name: "Recinto Central", IsActive: true},
			{ID: "C2", Name: "Recinto Norte", IsActive: true},
		},
		Schools: []*models.School{
			{ID: "S1", Name: "Escuela de Ingeniería", CampusID: "C1", IsActive: true},
			{ID: "S2", Name: "Escuela de Negocios", CampusID: "C2", IsActive: true},
		},
		Programs: []*models.Program{
			{ID: "P1", Name: "Sistemas", Code: "SIS", SchoolID: "S1", IsActive: true},
			{ID: "P2", Name: "Industrial", Code: "IND", SchoolID: "S1", IsActive: true},
			{ID: "P3", Name: "Contabilidad", Code: "CON", SchoolID: "S2", IsActive: true},
		},
		Groups: []*models.ClassGroup{
			{ID: "G1", Name: "SIS-101", ProgramID: "P1", TeacherID: "T1", Shift: models.ShiftMorning, IsActive: true},
			{ID: "G2", Name: "IND-201", ProgramID: "P2", TeacherID: "T2", Shift: models.ShiftAfternoon, IsActive: true},
			{ID: "G3", Name: "CON-301", ProgramID: "P3", TeacherID: "T1", Shift: models.ShiftEvening, IsActive: true},
			{ID: "G4", Name: "SIS-102", ProgramID: "P1", TeacherID: "T2", Shift: models.ShiftMorning, IsActive: false},
		},
		Students: []*models.Student{
			{ID: "A", StudentNumber: "2024-001", FirstName: "Ana", LastName: "García", ClassGroupID: "G1", IsActive: true},
			{ID: "B", StudentNumber: "2024-002", FirstName: "Bruno", LastName: "López", ClassGroupID: "G1", IsActive: true},
			{ID: "C", StudentNumber: "2024-003", FirstName: "Carla", LastName: "Méndez", ClassGroupID: "G2", IsActive: true},
			{ID: "D", StudentNumber: "2024-004", FirstName: "Diego", LastName: "Ruiz", ClassGroupID: "G1", IsActive: false},
		},
		Teachers: []*models.User{
			{ID: "T1", DisplayName: "Prof. Torres", Role: models.RoleTeacher, IsActive: true},
			{ID: "T2", DisplayName: "Prof. Vega", Role: models.RoleTeacher, IsActive: true},
		},
	}
}

func rec(id, student, group, date string, status models.AttendanceStatus) *models.AttendanceRecord {
	teacher := "T1"
	if group == "G2" {
		teacher = "T2"
	}
	return &models.AttendanceRecord{
		ID:           id,
		StudentID:    student,
		ClassGroupID: group,
		Date:         date,
		Status:       status,
		TeacherID:    teacher,
	}
}

func TestIndexNameResolution(t *testing.T) {
	ix := NewIndex(testSnapshot())

	assert.Equal(t, "Recinto Central", ix.CampusName("C1"))
	assert.Equal(t, "Escuela de Negocios", ix.SchoolName("S2"))
	assert.Equal(t, "Sistemas", ix.ProgramName("P1"))
	assert.Equal(t, "SIS-101", ix.GroupName("G1"))
	assert.Equal(t, "Ana García", ix.StudentName("A"))
	assert.Equal(t, "2024-001", ix.StudentNumber("A"))
	assert.Equal(t, "Prof. Torres", ix.TeacherName("T1"))
	assert.Equal(t, "Sistemas", ix.GroupProgramName("G1"))
}

func TestIndexDanglingReferences(t *testing.T) {
	ix := NewIndex(testSnapshot())

	// Unknown ids degrade to the placeholder, never an error
	assert.Equal(t, Placeholder, ix.CampusName("missing"))
	assert.Equal(t, Placeholder, ix.SchoolName("missing"))
	assert.Equal(t, Placeholder, ix.ProgramName("missing"))
	assert.Equal(t, Placeholder, ix.GroupName("missing"))
	assert.Equal(t, Placeholder, ix.StudentName("missing"))
	assert.Equal(t, Placeholder, ix.TeacherName("missing"))
	assert.Equal(t, Placeholder, ix.GroupProgramName("missing"))
	assert.Equal(t, "", ix.StudentNumber("missing"))
}

func TestCountActiveStudents(t *testing.T) {
	ix := NewIndex(testSnapshot())

	// D is inactive so G1 contributes 2, not 3
	assert.Equal(t, 2, ix.CountActiveStudents(map[string]bool{"G1": true}))
	assert.Equal(t, 3, ix.CountActiveStudents(map[string]bool{"G1": true, "G2": true}))
	assert.Equal(t, 0, ix.CountActiveStudents(map[string]bool{}))
}
