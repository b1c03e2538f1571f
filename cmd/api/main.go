package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/medicare-api/internal/config"
	"github.com/harentsoaR/medicare-api/internal/handlers"
	"github.com/harentsoaR/medicare-api/internal/logger"
	"github.com/harentsoaR/medicare-api/internal/metrics"
	"github.com/harentsoaR/medicare-api/internal/models"
	"github.com/harentsoaR/medicare-api/internal/server"
	"github.com/harentsoaR/medicare-api/internal/services"
	"github.com/harentsoaR/medicare-api/internal/utils"
)

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}

func run() error {
	logger.Setup("info", false)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Setup(cfg.LogLevel, cfg.LogPretty)
	gin.SetMode(cfg.GinMode)

	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is NOT SET, analyses will use the keyword heuristic only")
	}
	if cfg.Booking.Secret == "" {
		log.Warn().Msg("BOOKING_REFERENCE_SECRET is NOT SET, references will not survive a restart")
	}

	// --- Initialize Services ---
	m := metrics.New()

	doctors, err := services.NewDoctorDirectory(models.DefaultRoster())
	if err != nil {
		return err
	}
	references, err := utils.NewReferenceIssuer(cfg.Booking.Secret, cfg.Booking.TTL)
	if err != nil {
		return err
	}
	gemini := services.NewGeminiClient(cfg.Gemini, m)
	notificationSvc := services.NewNotificationService(cfg.Textbelt, m)

	// --- Initialize Handlers with Services ---
	h := handlers.NewHandler(
		doctors,
		services.NewSymptomAnalyzer(gemini, m),
		services.NewAppointmentLog(cfg.AppointmentLog),
		notificationSvc,
		references,
		m,
		cfg.LandingPage,
	)

	router, err := server.NewRouter(cfg, h, m)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Str("port", cfg.Port).Msg("Visit: http://localhost:" + cfg.Port)
	return server.Run(ctx, cfg, router)
}
