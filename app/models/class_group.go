package models

// ClassGroup is a taught group of students within a program, assigned to one
// teacher and one shift
type ClassGroup struct {
	ID        string `json:"id"`
	Name      string `json:"name" validate:"required"`
	ProgramID string `json:"programId" validate:"required"`
	TeacherID string `json:"teacherId" validate:"required"`
	Shift     Shift  `json:"shift" validate:"required,oneof=morning afternoon evening"`
	Semester  string `json:"semester"`
	Year      int    `json:"year"`
	IsActive  bool   `json:"active"`
}
