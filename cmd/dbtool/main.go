package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"travel-itinerary-service/internal/adapters/repositories"
	"travel-itinerary-service/internal/config"
	"travel-itinerary-service/internal/platform/db"
)

// dbtool initializes the shared Postgres catalog schema and seeds it from a
// JSON file. The server itself runs against a local SQLite catalog; this
// tool maintains the central one.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/spots.json")
	if err := initAndSeed(conn, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(conn *sql.DB, seedPath string) error {
	log.Println("Initializing catalog schema...")
	if err := repositories.InitPostgresSchema(conn); err != nil {
		return fmt.Errorf("initAndSeed: %w", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding catalog...")
	if err := repositories.SeedPostgresFromJSON(conn, seedPath); err != nil {
		return fmt.Errorf("initAndSeed: %w", err)
	}
	log.Println("Seeding complete.")

	return nil
}
