package database

import (
	"database/sql"

	"github.com/heberxp77/AsistenciaWeb/app/models"
)

// Campuses

func GetAllCampuses(db *sql.DB) ([]*models.Campus, error) {
	rows, err := db.Query(`SELECT id, name, address, is_active FROM campuses ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campuses []*models.Campus
	for rows.Next() {
		c := &models.Campus{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.IsActive); err != nil {
			return nil, err
		}
		campuses = append(campuses, c)
	}
	return campuses, rows.Err()
}

func CreateCampus(db *sql.DB, c *models.Campus) error {
	query := `INSERT INTO campuses (name, address, is_active) VALUES ($1, $2, $3) RETURNING id`
	return db.QueryRow(query, c.Name, c.Address, c.IsActive).Scan(&c.ID)
}

func UpdateCampus(db *sql.DB, c *models.Campus) error {
	_, err := db.Exec(`UPDATE campuses SET name = $1, address = $2, is_active = $3 WHERE id = $4`,
		c.Name, c.Address, c.IsActive, c.ID)
	return err
}

// DeleteCampus removes the row outright. Children keep their campus_id and
// are rendered with a placeholder; there is no cascade.
func DeleteCampus(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM campuses WHERE id = $1`, id)
	return err
}

// Schools

func GetAllSchools(db *sql.DB) ([]*models.School, error) {
	rows, err := db.Query(`SELECT id, name, campus_id, is_active FROM schools ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schools []*models.School
	for rows.Next() {
		s := &models.School{}
		if err := rows.Scan(&s.ID, &s.Name, &s.CampusID, &s.IsActive); err != nil {
			return nil, err
		}
		schools = append(schools, s)
	}
	return schools, rows.Err()
}

func CreateSchool(db *sql.DB, s *models.School) error {
	query := `INSERT INTO schools (name, campus_id, is_active) VALUES ($1, $2, $3) RETURNING id`
	return db.QueryRow(query, s.Name, s.CampusID, s.IsActive).Scan(&s.ID)
}

func UpdateSchool(db *sql.DB, s *models.School) error {
	_, err := db.Exec(`UPDATE schools SET name = $1, campus_id = $2, is_active = $3 WHERE id = $4`,
		s.Name, s.CampusID, s.IsActive, s.ID)
	return err
}

func DeleteSchool(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM schools WHERE id = $1`, id)
	return err
}

// Programs

func GetAllPrograms(db *sql.DB) ([]*models.Program, error) {
	rows, err := db.Query(`SELECT id, name, code, school_id, is_active FROM programs ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []*models.Program
	for rows.Next() {
		p := &models.Program{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Code, &p.SchoolID, &p.IsActive); err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

func CreateProgram(db *sql.DB, p *models.Program) error {
	query := `INSERT INTO programs (name, code, school_id, is_active) VALUES ($1, $2, $3, $4) RETURNING id`
	return db.QueryRow(query, p.Name, p.Code, p.SchoolID, p.IsActive).Scan(&p.ID)
}

func UpdateProgram(db *sql.DB, p *models.Program) error {
	_, err := db.Exec(`UPDATE programs SET name = $1, code = $2, school_id = $3, is_active = $4 WHERE id = $5`,
		p.Name, p.Code, p.SchoolID, p.IsActive, p.ID)
	return err
}

func DeleteProgram(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM programs WHERE id = $1`, id)
	return err
}
