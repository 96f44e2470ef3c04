package database

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/heberxp77/AsistenciaWeb/app/models"
)

const recordColumns = `id, student_id, class_group_id, date::text, status, teacher_id, created_at`

func scanRecords(rows *sql.Rows) ([]*models.AttendanceRecord, error) {
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		r := &models.AttendanceRecord{}
		err := rows.Scan(&r.ID, &r.StudentID, &r.ClassGroupID, &r.Date, &r.Status, &r.TeacherID, &r.CreatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetAllAttendanceRecords returns the full record collection for the
// in-memory reporting pipeline
func GetAllAttendanceRecords(db *sql.DB) ([]*models.AttendanceRecord, error) {
	rows, err := db.Query(`SELECT ` + recordColumns + ` FROM attendance_records ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	return scanRecords(rows)
}

func GetAttendanceByGroupAndDate(db *sql.DB, groupID, date string) ([]*models.AttendanceRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM attendance_records
			  WHERE class_group_id = $1 AND date = $2`
	rows, err := db.Query(query, groupID, date)
	if err != nil {
		return nil, err
	}
	return scanRecords(rows)
}

// GetAbsentRecordsByTeacher returns this teacher's absent-status records,
// the candidates for a new justification
func GetAbsentRecordsByTeacher(db *sql.DB, teacherID string) ([]*models.AttendanceRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM attendance_records
			  WHERE teacher_id = $1 AND status = 'absent'
			  ORDER BY date DESC`
	rows, err := db.Query(query, teacherID)
	if err != nil {
		return nil, err
	}
	return scanRecords(rows)
}

// AttendanceEntry is one student's status inside a batch save
type AttendanceEntry struct {
	StudentID string                  `json:"studentId" validate:"required"`
	Status    models.AttendanceStatus `json:"status" validate:"required,oneof=present absent justified"`
}

// BatchSaveAttendance persists one take-attendance submission atomically.
// Each entry is upserted by (student, group, date) lookup so the composite
// uniqueness invariant holds without a storage constraint. Records edited
// away from "justified" get their justifications marked revoked in the same
// transaction.
func BatchSaveAttendance(db *sql.DB, groupID, date, teacherID string, entries []AttendanceEntry) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, entry := range entries {
		var recordID string
		var current models.AttendanceStatus
		err := tx.QueryRow(
			`SELECT id, status FROM attendance_records
			 WHERE student_id = $1 AND class_group_id = $2 AND date = $3`,
			entry.StudentID, groupID, date,
		).Scan(&recordID, &current)

		switch {
		case err == sql.ErrNoRows:
			_, err = tx.Exec(
				`INSERT INTO attendance_records (id, student_id, class_group_id, date, status, teacher_id)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				uuid.NewString(), entry.StudentID, groupID, date, entry.Status, teacherID,
			)
			if err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if current == entry.Status {
				continue
			}
			if _, err = tx.Exec(
				`UPDATE attendance_records SET status = $1 WHERE id = $2`,
				entry.Status, recordID,
			); err != nil {
				return err
			}
			if current == models.StatusJustified {
				// The justification stays as audit trail but no longer
				// reflects the record's status
				if _, err = tx.Exec(
					`UPDATE justifications SET revoked = true WHERE attendance_record_id = $1`,
					recordID,
				); err != nil {
					return err
				}
			}
		}
	}

	return tx.Commit()
}

const justificationColumns = `id, attendance_record_id, student_id, note, document_url, document_name, approved_by, approved_at, revoked, created_at`

// CreateJustification inserts the justification and forces the referenced
// attendance record to "justified" in one transaction
func CreateJustification(db *sql.DB, j *models.Justification) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(
		`SELECT student_id FROM attendance_records WHERE id = $1`,
		j.AttendanceRecordID,
	).Scan(&j.StudentID)
	if err != nil {
		return err
	}

	err = tx.QueryRow(
		`INSERT INTO justifications (attendance_record_id, student_id, note, document_url, document_name)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		j.AttendanceRecordID, j.StudentID, j.Note, j.DocumentURL, j.DocumentName,
	).Scan(&j.ID, &j.CreatedAt)
	if err != nil {
		return err
	}

	if _, err = tx.Exec(
		`UPDATE attendance_records SET status = 'justified' WHERE id = $1`,
		j.AttendanceRecordID,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// GetJustificationsWithDetails lists justifications joined with student,
// group and record display data, newest first. Pass an empty teacherID for
// the unscoped (admin / area manager) view.
func GetJustificationsWithDetails(db *sql.DB, teacherID string) ([]*models.JustificationWithDetails, error) {
	query := `
		SELECT j.id, j.attendance_record_id, j.student_id, j.note, j.document_url, j.document_name,
		       j.approved_by, j.approved_at, j.revoked, j.created_at,
		       COALESCE(s.first_name || ' ' || s.last_name, '—'),
		       COALESCE(s.student_number, ''),
		       COALESCE(g.name, '—'),
		       COALESCE(ar.date::text, ''),
		       COALESCE(ar.status, '')
		FROM justifications j
		LEFT JOIN students s ON s.id = j.student_id
		LEFT JOIN attendance_records ar ON ar.id = j.attendance_record_id
		LEFT JOIN class_groups g ON g.id = ar.class_group_id`
	args := []interface{}{}
	if teacherID != "" {
		query += ` WHERE ar.teacher_id = $1`
		args = append(args, teacherID)
	}
	query += ` ORDER BY j.created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var justifications []*models.JustificationWithDetails
	for rows.Next() {
		j := &models.JustificationWithDetails{}
		err := rows.Scan(
			&j.ID, &j.AttendanceRecordID, &j.StudentID, &j.Note, &j.DocumentURL, &j.DocumentName,
			&j.ApprovedBy, &j.ApprovedAt, &j.Revoked, &j.CreatedAt,
			&j.StudentName, &j.StudentNumber, &j.GroupName, &j.RecordDate, &j.RecordStatus,
		)
		if err != nil {
			return nil, err
		}
		justifications = append(justifications, j)
	}
	return justifications, rows.Err()
}

func ApproveJustification(db *sql.DB, justificationID, approverID string) error {
	result, err := db.Exec(
		`UPDATE justifications SET approved_by = $1, approved_at = now() WHERE id = $2`,
		approverID, justificationID,
	)
	if err != nil {
		return err
	}
	count, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return sql.ErrNoRows
	}
	return nil
}
