package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/bayanihan/restaurant-reservation/internal/cache"
	"github.com/bayanihan/restaurant-reservation/internal/config"
	"github.com/bayanihan/restaurant-reservation/internal/database"
	"github.com/bayanihan/restaurant-reservation/internal/handler"
	"github.com/bayanihan/restaurant-reservation/internal/middleware"
	"github.com/bayanihan/restaurant-reservation/internal/notify"
	"github.com/bayanihan/restaurant-reservation/internal/queue"
	"github.com/bayanihan/restaurant-reservation/internal/repository"
	"github.com/bayanihan/restaurant-reservation/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Init(ctx, db); err != nil {
		cancel()
		log.Fatalf("database init: %v", err)
	}
	cancel()

	// Redis is optional: without it the availability cache and rate
	// limiter are disabled and every request hits Postgres directly.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable - availability cache and rate limiting disabled")
	}
	availCache := cache.NewAvailability(rdb, config.LoadCacheConfig())

	tableRepo := repository.NewTableRepo(db)
	reservationRepo := repository.NewReservationRepo(db)

	mailer := notify.NewMailer(cfg.EmailUser, cfg.EmailPassword, cfg.SMTPHost, cfg.SMTPPort)

	availHandler := handler.NewAvailabilityHandler(tableRepo, reservationRepo, availCache)
	resHandler := handler.NewReservationHandler(reservationRepo, tableRepo, availCache, mailer, cfg.AMQPURL)

	e := echo.New()
	e.HideBanner = true
	router.RegisterPublic(e, availHandler, resHandler, middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	if cfg.AdminEnabled() {
		adminHandler := handler.NewAdminHandler(reservationRepo, cfg.JWTSecret, cfg.AdminPasswordHash, cfg.AccessTTLMin)
		router.RegisterAdmin(e, adminHandler, cfg.JWTSecret)
	} else {
		log.Printf("admin endpoints disabled (JWT_SECRET or ADMIN_PASSWORD_HASH not set)")
	}

	// Background consumer mirrors confirmed reservations into
	// logs/reservations.log; only started when a broker is configured.
	if cfg.AMQPURL != "" {
		go func() {
			if err := queue.StartReservationConsumer(cfg.AMQPURL); err != nil {
				log.Printf("reservation-consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
