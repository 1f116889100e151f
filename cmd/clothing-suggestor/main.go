package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	httpapi "github.com/i474232898/clothing-suggestor/internal/api/http"
	"github.com/i474232898/clothing-suggestor/internal/config"
	"github.com/i474232898/clothing-suggestor/internal/logging"
	"github.com/i474232898/clothing-suggestor/internal/notify"
	"github.com/i474232898/clothing-suggestor/internal/scheduler"
	"github.com/i474232898/clothing-suggestor/internal/store"
	"github.com/i474232898/clothing-suggestor/internal/suggestor"
	"github.com/i474232898/clothing-suggestor/internal/wardrobe"
	"github.com/i474232898/clothing-suggestor/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	window, err := cfg.Window()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid averaging window")
	}
	tz, err := cfg.TimeLocation()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid timezone")
	}

	// Coordinates come from config or, failing that, from geocoding the city.
	loc, err := providers.NewResolver(cfg.GeocoderAPIKey).Resolve(cfg.Location())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to resolve location")
	}

	// Shared HTTP client for outbound calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	var sender notify.Sender = notify.NewLogSender(logging.Component("notify"))
	if cfg.Twilio.Complete() {
		sender = notify.NewTwilioSender(httpClient, cfg.Twilio)
	} else {
		log.Warn().Msg("twilio credentials incomplete; messages will only be logged")
	}

	engine := wardrobe.NewEngine(window, wardrobe.WithGapPolicy(cfg.Policy()))
	service := suggestor.NewService(
		providers.NewOpenMeteoProvider(httpClient, cfg.Timezone),
		engine,
		sender,
		store.NewMemoryStore(cfg.ResultMaxAge),
		loc,
		log.Logger,
	)

	// Daily trigger.
	sched := scheduler.New(service, cfg.ScheduleAt, tz, log.Logger)
	if err := sched.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start scheduler")
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "clothing-suggestor",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"service":  "clothing-suggestor",
			"location": loc.Key(),
			"window":   window.String(),
			"nextRun":  sched.NextRun(),
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error().Err(err).Msg("fiber server stopped")
		}
	}()
	log.Info().
		Str("port", cfg.Port).
		Str("location", loc.String()).
		Str("window", window.String()).
		Str("gap_policy", cfg.Policy().String()).
		Str("sender", sender.Name()).
		Msg("clothing-suggestor started")

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
}
