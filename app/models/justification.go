package models

import "time"

// Justification explains one absence. Creating one forces the referenced
// attendance record to status "justified". Justifications are a permanent
// audit trail: editing the record away from "justified" later marks them
// Revoked instead of deleting them.
type Justification struct {
	ID                 string     `json:"id"`
	AttendanceRecordID string     `json:"attendanceRecordId" validate:"required"`
	StudentID          string     `json:"studentId"`
	Note               string     `json:"note" validate:"required"`
	DocumentURL        *string    `json:"documentUrl,omitempty"`
	DocumentName       *string    `json:"documentName,omitempty"`
	ApprovedBy         *string    `json:"approvedBy,omitempty"`
	ApprovedAt         *time.Time `json:"approvedAt,omitempty"`
	Revoked            bool       `json:"revoked"`
	CreatedAt          time.Time  `json:"createdAt"`
}
