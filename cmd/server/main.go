package main

import (
	"database/sql"
	"fmt"
	"geodesy-service/internal/adapters/cache"
	"geodesy-service/internal/adapters/repositories"
	"geodesy-service/internal/adapters/tides"
	"geodesy-service/internal/api"
	"geodesy-service/internal/config"
	"geodesy-service/internal/ports"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis, NOAA) behind ports and starts
// the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/stations.json")
	port := config.Get("PORT", "8080")
	application := config.Get("NOAA_APPLICATION", "geodesy-service")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed station metadata on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	// The NOAA provider uses a persistent tide cache to avoid repeated
	// upstream calls; Redis takes over when configured.
	var tideCache ports.TideCache = cache.NewSqliteTideCache(db)
	if addr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		tideCache = cache.NewRedisTideCache(client, 6*time.Hour)
		log.Printf("Using redis tide cache addr=%s", addr)
	}

	provider := tides.NewNOAATideProvider(application, tideCache)

	repo := repositories.NewSqliteStationRepository(db)
	router := api.NewRouter(repo, provider)

	// Timeouts are tuned for cold-cache tide fetches (external API latency).
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
