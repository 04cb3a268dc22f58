package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"travel-itinerary-service/internal/adapters/cache"
	"travel-itinerary-service/internal/adapters/repositories"
	"travel-itinerary-service/internal/adapters/scorer"
	"travel-itinerary-service/internal/adapters/travel"
	"travel-itinerary-service/internal/api"
	"travel-itinerary-service/internal/config"
	"travel-itinerary-service/internal/ports"
	"travel-itinerary-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis, ORS, relevance scorer) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/spots.json")
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed demo catalog data on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	travelCache := newTravelCache(db)
	travelProvider, stitcher := newTravelOracle(travelCache)
	relevanceScorer := newRelevanceScorer()

	repo := repositories.NewSQLSpotRepository(db)
	router := api.NewRouter(repo, relevanceScorer, travelProvider, stitcher, services.DefaultConfig())

	// Timeouts are tuned for cold-cache itinerary generation (several
	// sequential external calls per day).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// newTravelCache prefers a shared Redis cache when REDIS_ADDR is set and
// falls back to the local SQLite one.
func newTravelCache(db *sql.DB) cache.TravelTimeCache {
	redisAddr := config.Get("REDIS_ADDR", "")
	if redisAddr == "" {
		return cache.NewSQLTravelTimeCache(db)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: config.Get("REDIS_PASSWORD", ""),
	})
	ttl := time.Duration(config.GetInt("TRAVEL_CACHE_TTL_HOURS", 168)) * time.Hour

	log.Printf("Using redis travel-time cache addr=%s ttl=%s", redisAddr, ttl)
	return cache.NewRedisTravelTimeCache(client, ttl)
}

// newTravelOracle wires the ORS-backed travel oracle, or an offline
// straight-line estimator when no API key is configured.
func newTravelOracle(travelCache cache.TravelTimeCache) (ports.TravelTimeProvider, ports.RouteStitcher) {
	orsKey := os.Getenv("ORS_API_KEY")
	if strings.TrimSpace(orsKey) == "" {
		log.Println("ORS_API_KEY not set; using straight-line travel estimates")
		p := travel.NewStraightLineTravelProvider(config.GetFloat("TRAVEL_SPEED_KMH", 40))
		return p, p
	}

	provider, err := travel.NewORSTravelProvider(orsKey, travelCache)
	if err != nil {
		log.Fatal(err)
	}
	return provider, provider
}

// newRelevanceScorer wires the external AI scorer, or the deterministic
// in-process heuristic when no scorer URL is configured.
func newRelevanceScorer() ports.RelevanceScorer {
	scorerURL := config.Get("SCORER_URL", "")
	if scorerURL == "" {
		log.Println("SCORER_URL not set; using heuristic relevance scoring")
		return scorer.NewHeuristicScorer()
	}

	s, err := scorer.NewHTTPRelevanceScorer(scorerURL, config.Get("SCORER_API_KEY", ""))
	if err != nil {
		log.Fatal(err)
	}
	return s
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
