package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/heberxp77/AsistenciaWeb/app/config"
	"github.com/heberxp77/AsistenciaWeb/app/database"
	"github.com/heberxp77/AsistenciaWeb/app/models"
	"github.com/heberxp77/AsistenciaWeb/app/routes/auth"
	"github.com/joho/godotenv"
)

// Creates the initial administrator account. Safe to run more than once.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to get database instance")
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	email := env("SEED_ADMIN_EMAIL", "admin@asistencia.local")
	password := env("SEED_ADMIN_PASSWORD", "admin12345")
	displayName := env("SEED_ADMIN_NAME", "Administrador")

	if existing, err := database.GetUserByEmail(db, email); err == nil && existing != nil {
		fmt.Printf("Admin user already exists: %s\n", email)
		return
	} else if err != nil && err != sql.ErrNoRows {
		log.Fatal("Failed to check for existing admin:", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Email:       email,
		Password:    hashed,
		DisplayName: displayName,
		Role:        models.RoleAdmin,
		IsActive:    true,
	}
	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	fmt.Printf("Admin user created: %s (%s)\n", user.DisplayName, user.Email)
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
