// cmd/api/main.go
package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"adproof/internal/assets"
	"adproof/internal/cache"
	"adproof/internal/config"
	"adproof/internal/db"
	"adproof/internal/db/migrations"
	"adproof/internal/preview"
	"adproof/internal/repository"
	"adproof/internal/routes"
	"adproof/internal/services"
	"adproof/internal/storage"
)

// @title adproof API
// @version 1.0
// @description Single-tenant ad creative preview studio.
// @BasePath /api/v1
func main() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)

	// Load configuration
	cfg := config.Load()

	// The database is optional. Without one, presets live in a JSON file
	// under the data directory and everything else is unaffected.
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		if err := db.CreateDatabaseIfNotExists(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to ensure database exists: %v", err)
		}

		database, err := db.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()

		if err := migrations.RunMigrations(database.DB); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		sqlDB = database.DB
	} else {
		log.Println("No database configured, storing presets on disk")
	}

	app := buildApp(sqlDB, cfg)

	// Create router and setup routes
	router := routes.SetupRoutes(sqlDB, cfg, app)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give server 5 seconds to finish current requests
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Let in-flight exports finish writing before the process exits.
	app.Runner.Wait()

	log.Println("Server exiting")
}

func buildApp(sqlDB *sql.DB, cfg *config.Config) *routes.App {
	library := assets.NewLibrary()
	studio := preview.NewStudio(library)
	store := buildStorage(cfg)
	notifier := services.NewNotifier()

	return &routes.App{
		Studio:   studio,
		Library:  library,
		Store:    store,
		Cache:    buildCache(cfg),
		Presets:  buildPresets(sqlDB, cfg),
		Notifier: notifier,
		Runner:   services.NewExportRunner(studio, store, notifier),
		Signer:   services.NewShareSigner(cfg.JWTSecret, cfg.ShareTTL),
	}
}

func buildStorage(cfg *config.Config) storage.ObjectStorage {
	if cfg.StorageBackend == "s3" {
		s3cfg, err := config.NewS3Config()
		if err != nil {
			log.Fatalf("Failed to configure S3: %v", err)
		}
		log.Printf("Using S3 storage in bucket %s", s3cfg.Bucket)
		return storage.NewS3Storage(s3cfg.Client, s3cfg.Bucket, s3cfg.PublicBaseURL)
	}

	log.Printf("Using local storage under %s", cfg.DataDir)
	return storage.NewLocalStorage(cfg.DataDir)
}

func buildCache(cfg *config.Config) cache.RenderCache {
	if cfg.RedisAddr == "" {
		return cache.NewMemoryCache(256)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	c, err := cache.NewRedisCache(client, cfg.CacheTTL)
	if err != nil {
		log.Printf("Redis unavailable, falling back to in-memory cache: %v", err)
		return cache.NewMemoryCache(256)
	}

	log.Printf("Using Redis render cache at %s", cfg.RedisAddr)
	return c
}

func buildPresets(sqlDB *sql.DB, cfg *config.Config) repository.PresetRepository {
	if sqlDB != nil {
		return repository.NewPresetRepository(sqlDB)
	}
	return repository.NewPresetFileRepository(filepath.Join(cfg.DataDir, "presets.json"))
}
