package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates missing tables and applies schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createTables(db); err != nil {
		return err
	}

	// Older deployments predate the revoked flag on justifications
	if err := addRevokedColumn(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createTables(db *sql.DB) error {
	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			display_name VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL,
			photo_url TEXT,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS campuses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			address TEXT,
			is_active BOOLEAN NOT NULL DEFAULT true
		)`,
		`CREATE TABLE IF NOT EXISTS schools (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			campus_id UUID NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true
		)`,
		`CREATE TABLE IF NOT EXISTS programs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			code VARCHAR(50) NOT NULL,
			school_id UUID NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true
		)`,
		`CREATE TABLE IF NOT EXISTS class_groups (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			program_id UUID NOT NULL,
			teacher_id UUID NOT NULL,
			shift VARCHAR(20) NOT NULL,
			semester VARCHAR(50) NOT NULL DEFAULT '',
			year INT NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT true
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_number VARCHAR(50) NOT NULL,
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL,
			email VARCHAR(255),
			phone VARCHAR(50),
			class_group_id UUID NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true
		)`,
		`CREATE TABLE IF NOT EXISTS attendance_records (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL,
			class_group_id UUID NOT NULL,
			date DATE NOT NULL,
			status VARCHAR(20) NOT NULL,
			teacher_id UUID NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_group_date ON attendance_records (class_group_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_student ON attendance_records (student_id)`,
		`CREATE TABLE IF NOT EXISTS justifications (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			attendance_record_id UUID NOT NULL,
			student_id UUID NOT NULL,
			note TEXT NOT NULL,
			document_url TEXT,
			document_name TEXT,
			approved_by UUID,
			approved_at TIMESTAMPTZ,
			revoked BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}
	return nil
}

func addRevokedColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'justifications'
				AND column_name = 'revoked'
			) THEN
				ALTER TABLE justifications ADD COLUMN revoked BOOLEAN NOT NULL DEFAULT false;
				RAISE NOTICE 'Added revoked column to justifications';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for revoked column: %v", err)
		return err
	}
	return nil
}
