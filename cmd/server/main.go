package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/Hponky/shopping-kart/internal/cart"
	"github.com/Hponky/shopping-kart/internal/catalog"
	"github.com/Hponky/shopping-kart/internal/events"
	h "github.com/Hponky/shopping-kart/internal/http"
	"github.com/Hponky/shopping-kart/internal/service"
)

type Config struct {
	HTTPPort        string
	DBPath          string
	MigrationsPath  string
	RedisAddr       string
	RedisPassword   string
	KafkaBrokers    string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		DBPath:          getEnv("DB_PATH", "./products.db"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "./internal/catalog/migrations"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		KafkaBrokers:    getEnv("KAFKA_BROKERS", ""),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()

	repo, err := catalog.NewRepository(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open catalog database: %v", err)
	}
	defer repo.Close()

	if err := repo.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Redis-backed listing cache is optional; without it the catalog is
	// read straight from SQLite on every listing.
	var productCatalog catalog.ProductCatalog = repo
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Redis connection failed:", err)
		}
		log.Printf("Redis ping succeeded")
		productCatalog = catalog.NewCachedCatalog(repo, catalog.NewRedisCache(redisClient))
	}

	var publisher events.Publisher
	if cfg.KafkaBrokers != "" {
		kafkaPublisher := events.NewKafkaPublisher(strings.Split(cfg.KafkaBrokers, ",")...)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Printf("Publishing optimization events to %s", cfg.KafkaBrokers)
	}

	store := cart.NewMemoryStore()
	optimizerService := service.NewOptimizerService(productCatalog, store, publisher)

	cartHandler := h.NewCartHandler(store)
	productHandler := h.NewProductHandler(productCatalog, cfg.RequestTimeout)
	optimizeHandler := h.NewOptimizeHandler(optimizerService, cfg.RequestTimeout)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(h.RequestIDMiddleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", productHandler.ListProducts)
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/items", cartHandler.AddProduct)
			r.Patch("/items", cartHandler.UpdateQuantity)
			r.Delete("/items", cartHandler.DeleteItem)
			r.Post("/optimize", optimizeHandler.Optimize)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Shopping-kart server starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
