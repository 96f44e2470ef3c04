package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	_ "github.com/lib/pq"
)

type Config struct {
	DB        *sql.DB
	JWTSecret string
	Port      string
}

var AppConfig *Config

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the PostgreSQL connection pool from environment settings
func InitDB() {
	host := env("DB_HOST", "localhost")
	port, err := strconv.Atoi(env("DB_PORT", "5432"))
	if err != nil {
		log.Fatal("Invalid DB_PORT:", err)
	}
	user := env("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	dbname := env("DB_NAME", "asistencia")
	sslmode := env("DB_SSLMODE", "disable")

	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s connect_timeout=10",
		host, port, user, dbname, sslmode)
	if password != "" {
		psqlInfo += " password=" + password
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Printf("Database connection failed: %v", err)
		log.Fatal("Cannot establish database connection")
	}

	AppConfig = &Config{
		DB:        db,
		JWTSecret: env("JWT_SECRET", "asistencia-web-secret-key"),
		Port:      env("PORT", "8080"),
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

// Port returns the HTTP listen port
func Port() string {
	if AppConfig != nil {
		return AppConfig.Port
	}
	return env("PORT", "8080")
}

// JWTSecret returns the signing key for session tokens
func JWTSecret() []byte {
	if AppConfig != nil {
		return []byte(AppConfig.JWTSecret)
	}
	return []byte(env("JWT_SECRET", "asistencia-web-secret-key"))
}
