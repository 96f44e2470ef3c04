package database

import (
	"database/sql"

	"github.com/heberxp77/AsistenciaWeb/app/models"
)

const studentColumns = `id, student_number, first_name, last_name, email, phone, class_group_id, is_active`

func scanStudents(rows *sql.Rows) ([]*models.Student, error) {
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s := &models.Student{}
		err := rows.Scan(&s.ID, &s.StudentNumber, &s.FirstName, &s.LastName, &s.Email, &s.Phone, &s.ClassGroupID, &s.IsActive)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	rows, err := db.Query(`SELECT ` + studentColumns + ` FROM students ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	return scanStudents(rows)
}

// GetStudentsByGroup returns the active roster of one class group, ordered by
// last name as the take-attendance screen lists them
func GetStudentsByGroup(db *sql.DB, groupID string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students
			  WHERE class_group_id = $1 AND is_active = true
			  ORDER BY last_name, first_name`
	rows, err := db.Query(query, groupID)
	if err != nil {
		return nil, err
	}
	return scanStudents(rows)
}

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	s := &models.Student{}
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	err := db.QueryRow(query, id).Scan(&s.ID, &s.StudentNumber, &s.FirstName, &s.LastName, &s.Email, &s.Phone, &s.ClassGroupID, &s.IsActive)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (student_number, first_name, last_name, email, phone, class_group_id, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`
	return db.QueryRow(query, s.StudentNumber, s.FirstName, s.LastName, s.Email, s.Phone, s.ClassGroupID, s.IsActive).Scan(&s.ID)
}

func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students
			  SET student_number = $1, first_name = $2, last_name = $3, email = $4, phone = $5, class_group_id = $6, is_active = $7
			  WHERE id = $8`
	_, err := db.Exec(query, s.StudentNumber, s.FirstName, s.LastName, s.Email, s.Phone, s.ClassGroupID, s.IsActive, s.ID)
	return err
}

func DeleteStudent(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM students WHERE id = $1`, id)
	return err
}
