package main // Entry point package

import (
	"os"

	"github.com/joho/godotenv"    // loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework
	"github.com/rs/zerolog"       // structured logging

	"github.com/iliyamo/event-seating/internal/config"
	"github.com/iliyamo/event-seating/internal/handler"
	"github.com/iliyamo/event-seating/internal/middleware"
	"github.com/iliyamo/event-seating/internal/queue"
	"github.com/iliyamo/event-seating/internal/repository"
	"github.com/iliyamo/event-seating/internal/router"
	"github.com/iliyamo/event-seating/internal/seating"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env wins

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "event-seating").Logger()

	cfg := config.Load()

	// In-memory collections; state lives for the process lifetime only.
	venues := repository.NewVenueRepo()
	events := repository.NewEventRepo()
	guests := repository.NewGuestRepo()
	assignments := repository.NewAssignmentRepo()

	publisher := queue.NewPublisher(cfg.RabbitURL, logger)
	svc := seating.NewService(venues, events, guests, assignments,
		seating.WithPublisher(publisher),
		seating.WithMaxPartySize(cfg.MaxPartySize),
	)

	// Background consumer mirrors assignment traffic into logs/seating.log.
	go queue.StartSeatingConsumer(cfg.RabbitURL, logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLogger(logger))
	if rdb := config.NewRedisClient(); rdb != nil {
		e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	} else {
		logger.Warn().Msg("redis unavailable, rate limiting disabled")
	}

	h := handler.NewSeatingHandler(svc)
	router.RegisterRoutes(e, h)
	router.RegisterSeating(e, h, cfg.JWTSecret)

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")

	if err := e.Start(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
