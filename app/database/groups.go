package database

import (
	"database/sql"

	"github.com/heberxp77/AsistenciaWeb/app/models"
)

const groupColumns = `id, name, program_id, teacher_id, shift, semester, year, is_active`

func scanGroups(rows *sql.Rows) ([]*models.ClassGroup, error) {
	defer rows.Close()

	var groups []*models.ClassGroup
	for rows.Next() {
		g := &models.ClassGroup{}
		err := rows.Scan(&g.ID, &g.Name, &g.ProgramID, &g.TeacherID, &g.Shift, &g.Semester, &g.Year, &g.IsActive)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func GetAllClassGroups(db *sql.DB) ([]*models.ClassGroup, error) {
	rows, err := db.Query(`SELECT ` + groupColumns + ` FROM class_groups ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return scanGroups(rows)
}

// GetClassGroupsByTeacher returns the active groups taught by one teacher
func GetClassGroupsByTeacher(db *sql.DB, teacherID string) ([]*models.ClassGroup, error) {
	query := `SELECT ` + groupColumns + ` FROM class_groups WHERE teacher_id = $1 AND is_active = true ORDER BY name`
	rows, err := db.Query(query, teacherID)
	if err != nil {
		return nil, err
	}
	return scanGroups(rows)
}

func GetClassGroupByID(db *sql.DB, id string) (*models.ClassGroup, error) {
	g := &models.ClassGroup{}
	query := `SELECT ` + groupColumns + ` FROM class_groups WHERE id = $1`
	err := db.QueryRow(query, id).Scan(&g.ID, &g.Name, &g.ProgramID, &g.TeacherID, &g.Shift, &g.Semester, &g.Year, &g.IsActive)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func CreateClassGroup(db *sql.DB, g *models.ClassGroup) error {
	query := `INSERT INTO class_groups (name, program_id, teacher_id, shift, semester, year, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`
	return db.QueryRow(query, g.Name, g.ProgramID, g.TeacherID, g.Shift, g.Semester, g.Year, g.IsActive).Scan(&g.ID)
}

func UpdateClassGroup(db *sql.DB, g *models.ClassGroup) error {
	query := `UPDATE class_groups
			  SET name = $1, program_id = $2, teacher_id = $3, shift = $4, semester = $5, year = $6, is_active = $7
			  WHERE id = $8`
	_, err := db.Exec(query, g.Name, g.ProgramID, g.TeacherID, g.Shift, g.Semester, g.Year, g.IsActive, g.ID)
	return err
}

func DeleteClassGroup(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM class_groups WHERE id = $1`, id)
	return err
}
