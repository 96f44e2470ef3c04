package database

import (
	"database/sql"

	"github.com/heberxp77/AsistenciaWeb/app/models"
)

const userColumns = `id, email, password, display_name, role, photo_url, is_active, created_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.Password, &user.DisplayName,
		&user.Role, &user.PhotoURL, &user.IsActive, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND is_active = true`
	return scanUser(db.QueryRow(query, email))
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(db.QueryRow(query, userID))
}

// GetAllUsers returns every account, optionally restricted to one role
func GetAllUsers(db *sql.DB, role models.Role) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	args := []interface{}{}
	if role != "" {
		query += ` WHERE role = $1`
		args = append(args, role)
	}
	query += ` ORDER BY display_name`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (email, password, display_name, role, photo_url, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at`
	return db.QueryRow(query,
		user.Email, user.Password, user.DisplayName, user.Role, user.PhotoURL, user.IsActive,
	).Scan(&user.ID, &user.CreatedAt)
}

func UpdateUser(db *sql.DB, user *models.User) error {
	query := `UPDATE users
			  SET email = $1, display_name = $2, role = $3, photo_url = $4, is_active = $5
			  WHERE id = $6`
	_, err := db.Exec(query, user.Email, user.DisplayName, user.Role, user.PhotoURL, user.IsActive, user.ID)
	return err
}

func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	_, err := db.Exec(`UPDATE users SET password = $1 WHERE id = $2`, hashedPassword, userID)
	return err
}

func DeleteUser(db *sql.DB, userID string) error {
	_, err := db.Exec(`DELETE FROM users WHERE id = $1`, userID)
	return err
}
