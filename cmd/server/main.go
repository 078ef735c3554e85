package main // Entry point package

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"    // loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/oceanview/resort-api/internal/config"
	"github.com/oceanview/resort-api/internal/database"
	"github.com/oceanview/resort-api/internal/handler"
	"github.com/oceanview/resort-api/internal/middleware"
	"github.com/oceanview/resort-api/internal/queue"
	"github.com/oceanview/resort-api/internal/repository"
	"github.com/oceanview/resort-api/internal/router"
)

func main() {
	// Load .env when present; real deployments set env vars directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	reservations := repository.NewReservationRepo(db)

	// Seed the default admin on an empty users table so a fresh
	// deployment can be logged into.
	adminPass := os.Getenv("DEFAULT_ADMIN_PASS")
	if adminPass == "" {
		adminPass = "admin123"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := users.EnsureDefaultAdmin(ctx, adminPass, cfg.BcryptCost); err != nil {
		log.Printf("seed default admin: %v", err)
	}
	cancel()

	// Redis backs the response cache and the rate limiter.  When it is
	// unreachable both middlewares turn into no-ops and the API still
	// serves every request from MySQL.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	// Background consumer that appends confirmed bookings to the
	// reservations log.  It reconnects on broker failures forever.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users))
	router.RegisterReservations(e, handler.NewReservationHandler(reservations, cfg.RoomCount), cache, limit)
	router.RegisterUsers(e, handler.NewUserHandler(cfg, users), cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
