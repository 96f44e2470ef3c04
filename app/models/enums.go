package models

// Role determines which screens and APIs a user may access
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleTeacher     Role = "teacher"
	RoleAreaManager Role = "area_manager"
)

// Shift is the time-of-day block a class group meets in
type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftEvening   Shift = "evening"
)

// AttendanceStatus is the per-student outcome of one attendance day
type AttendanceStatus string

const (
	StatusPresent   AttendanceStatus = "present"
	StatusAbsent    AttendanceStatus = "absent"
	StatusJustified AttendanceStatus = "justified"
)

// AllShifts in display order
var AllShifts = []Shift{ShiftMorning, ShiftAfternoon, ShiftEvening}

// ShiftLabels maps shifts to their Spanish display names
var ShiftLabels = map[Shift]string{
	ShiftMorning:   "Matutino",
	ShiftAfternoon: "Vespertino",
	ShiftEvening:   "Nocturno",
}

// StatusLabels maps attendance statuses to their Spanish display names
var StatusLabels = map[AttendanceStatus]string{
	StatusPresent:   "Presente",
	StatusAbsent:    "Ausente",
	StatusJustified: "Justificado",
}

// RoleLabels maps roles to their Spanish display names
var RoleLabels = map[Role]string{
	RoleAdmin:       "Administrador",
	RoleTeacher:     "Docente",
	RoleAreaManager: "Responsable de Área",
}

// ValidRole reports whether r is one of the known roles
func ValidRole(r Role) bool {
	_, ok := RoleLabels[r]
	return ok
}

// ValidShift reports whether s is one of the known shifts
func ValidShift(s Shift) bool {
	_, ok := ShiftLabels[s]
	return ok
}

// ValidStatus reports whether s is one of the known attendance statuses
func ValidStatus(s AttendanceStatus) bool {
	_, ok := StatusLabels[s]
	return ok
}
