package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mestraaurora/aurora-api/internal/config"
	"github.com/mestraaurora/aurora-api/internal/database"
	"github.com/mestraaurora/aurora-api/internal/handler"
	"github.com/mestraaurora/aurora-api/internal/middleware"
	"github.com/mestraaurora/aurora-api/internal/models"
	"github.com/mestraaurora/aurora-api/internal/repository"
	"github.com/mestraaurora/aurora-api/internal/router"
	"github.com/mestraaurora/aurora-api/internal/service"
	"github.com/mestraaurora/aurora-api/pkg/ai"
	"github.com/mestraaurora/aurora-api/pkg/mailer"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	leads := connectLeadStore(cfg, logger)

	var cache *redis.Client
	if cfg.RedisURL != "" {
		cache, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, reading cache disabled")
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	var events service.LeadPublisher
	if cfg.NATSURL != "" {
		conn, err := database.ConnectNATS(cfg.NATSURL, cfg.AppName)
		if err != nil {
			logger.Warn().Err(err).Msg("nats unavailable, lead events disabled")
		} else {
			defer drainNATS(conn, logger)
			events = service.NewNATSLeadPublisher(conn, cfg.NATSSubject)
		}
	}

	submissions, err := service.NewSubmissionValidator(validator.New(validator.WithRequiredStructEnabled()))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to register validation rules")
	}

	var completer ai.Completer
	if cfg.AI.Delegated() {
		openAI, err := ai.NewOpenAICompleter(ai.OpenAIConfig{
			APIKey:     cfg.AI.APIKey,
			BaseURL:    cfg.AI.BaseURL,
			Model:      cfg.AI.Model,
			MaxTokens:  cfg.AI.MaxTokens,
			HTTPClient: &http.Client{Timeout: cfg.AI.Timeout},
			Logger:     logger,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("delegated generation disabled")
		} else {
			completer = openAI
		}
	}
	generator := service.NewReadingGenerator(cfg.AI, completer, cache, logger)

	dispatcher := newDispatcher(cfg, logger)
	modes := logger.Info().
		Str("email_delivery", dispatcher.Mode()).
		Str("reading_engine", generator.Strategy())
	if cfg.Email.Enabled {
		modes = modes.Str("smtp", net.JoinHostPort(cfg.Email.SMTPHost, strconv.Itoa(cfg.Email.SMTPPort)))
	}
	modes.Msg("delivery modes resolved")

	readingService := service.NewReadingService(service.ReadingServiceConfig{
		Leads:        leads,
		Events:       events,
		Generator:    generator,
		Dispatcher:   dispatcher,
		Validator:    submissions,
		Subject:      cfg.Email.ReadingSubject,
		WriteTimeout: cfg.LeadWriteTimeout,
		Logger:       logger,
	})
	contactService := service.NewContactService(submissions, dispatcher, cfg.Email.ContactTo, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
		ErrorHandler: handler.ErrorHandler(logger),
	})

	middleware.Register(app, middleware.Config{Logger: &logger, AccessLog: cfg.AppEnv == "development"})
	router.Register(app, cfg, router.Dependencies{
		ReadingHandler: handler.NewReadingHandler(readingService, logger),
		ContactHandler: handler.NewContactHandler(contactService, logger),
		Modes: handler.HealthModes{
			EmailDelivery: dispatcher.Mode(),
			ReadingEngine: generator.Strategy(),
		},
	})

	go func() {
		logger.Info().Str("address", cfg.HTTPAddress()).Str("environment", cfg.AppEnv).Msg("server starting")
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	waitForShutdown(app, readingService, logger)
}

// connectLeadStore returns a working repository or one that reports every write as failed.
func connectLeadStore(cfg config.Config, logger zerolog.Logger) repository.LeadRepository {
	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		logger.Error().Err(err).Msg("lead store unavailable, readings will not be persisted")
		return repository.NewUnavailableLeadRepository(err)
	}

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(&models.Lead{}); err != nil {
			logger.Error().Err(err).Msg("failed to migrate lead store")
			return repository.NewUnavailableLeadRepository(err)
		}
	}

	return repository.NewLeadRepository(db)
}

func newDispatcher(cfg config.Config, logger zerolog.Logger) service.Dispatcher {
	if !cfg.Email.Enabled {
		return service.NewSimulatedDispatcher(nil, logger)
	}

	sender := mailer.NewSMTPSender(mailer.Config{
		Host:     cfg.Email.SMTPHost,
		Port:     cfg.Email.SMTPPort,
		Username: cfg.Email.SMTPUser,
		Password: cfg.Email.SMTPPassword,
		SSL:      cfg.Email.SMTPSSL,
	})
	return service.NewSMTPDispatcher(sender, cfg.Email.From, logger)
}

func drainNATS(conn *nats.Conn, logger zerolog.Logger) {
	if err := conn.Drain(); err != nil && !errors.Is(err, nats.ErrConnectionClosed) {
		logger.Warn().Err(err).Msg("nats drain failed")
	}
}

func waitForShutdown(app *fiber.App, readings service.ReadingService, logger zerolog.Logger) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	if err := readings.Wait(ctx); err != nil {
		logger.Warn().Err(err).Msg("pending lead writes abandoned")
	}

	logger.Info().Msg("server stopped")
}
