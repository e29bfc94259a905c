package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/student-portal-api/config"
	"github.com/oksasatya/student-portal-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	name := "Demo Student"
	email := "demo@studentportal.dev"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, name, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s name=%q password=%s\n", id, email, name, password)
}
