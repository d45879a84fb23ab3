package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"tastetrace-route-service/internal/adapters/cache"
	"tastetrace-route-service/internal/adapters/repositories"
	"tastetrace-route-service/internal/api"
	"tastetrace-route-service/internal/config"
	"tastetrace-route-service/internal/platform/db"
	"tastetrace-route-service/internal/ports"
	"tastetrace-route-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	seedPath := config.Get("SEED_PATH", "data/seeds/restaurants.json")
	port := config.Get("PORT", "8080")

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	// Initialize schema and seed the Bangkok directory on startup for local runs.
	if err := initAndSeed(database, seedPath); err != nil {
		log.Fatal(err)
	}

	restaurants := repositories.NewPostgresRestaurantRepository(database)
	trips := repositories.NewPostgresTripRepository(database)
	history := repositories.NewPostgresQueueHistoryRepository(database)

	predictor := &services.QueuePredictor{
		History: history,
		Cache:   openPredictionCache(config.Get("REDIS_ADDR", "")),
	}

	router := api.NewRouter(restaurants, trips, predictor)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openPredictionCache returns a Redis-backed cache, or nil when Redis is
// not configured or unreachable. Predictions degrade to uncached either way.
func openPredictionCache(addr string) ports.PredictionCache {
	if strings.TrimSpace(addr) == "" {
		log.Println("REDIS_ADDR not set, queue predictions run uncached")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable addr=%s err=%v, queue predictions run uncached", addr, err)
		return nil
	}

	return cache.NewRedisPredictionCache(client)
}

func initAndSeed(database *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(database); err != nil {
		return err
	}

	return repositories.SeedFromJSON(database, seedPath)
}
