package models

import "time"

// AttendanceRecord is one student's status for one calendar day in one group.
// Date is a plain "YYYY-MM-DD" string so range comparisons stay lexicographic.
// At most one record exists per (StudentID, ClassGroupID, Date); the batch
// save path enforces this by upsert-by-lookup.
type AttendanceRecord struct {
	ID           string           `json:"id"`
	StudentID    string           `json:"studentId" validate:"required"`
	ClassGroupID string           `json:"classGroupId" validate:"required"`
	Date         string           `json:"date" validate:"required"`
	Status       AttendanceStatus `json:"status" validate:"required,oneof=present absent justified"`
	TeacherID    string           `json:"teacherId"`
	CreatedAt    time.Time        `json:"createdAt"`
}
