package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	_ "github.com/artem13815/resume-builder/docs"

	// internal imports
	apihttp "github.com/artem13815/resume-builder/api/http"
	"github.com/artem13815/resume-builder/api/http/handlers"
	"github.com/artem13815/resume-builder/api/http/middleware"
	"github.com/artem13815/resume-builder/pkg/config"
	"github.com/artem13815/resume-builder/pkg/generator/remote"
	"github.com/artem13815/resume-builder/pkg/health"
	"github.com/artem13815/resume-builder/pkg/health/checkers"
	"github.com/artem13815/resume-builder/pkg/logging"
	"github.com/artem13815/resume-builder/pkg/session"
	"github.com/artem13815/resume-builder/pkg/view"
)

var (
	flagPort       string
	flagBackendURL string
	flagLogLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "resume-builder",
	Short: "Serve the resume builder frontend",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load configuration from env/.env, flags win
		cfg := config.Load()
		if flagPort != "" {
			cfg.Port = flagPort
		}
		if flagBackendURL != "" {
			cfg.BackendBaseURL = flagBackendURL
		}
		if flagLogLevel != "" {
			cfg.LogLevel = flagLogLevel
		}
		return serve(cfg)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagPort, "port", "p", "", "Port to listen on (overrides PORT)")
	rootCmd.Flags().StringVar(&flagBackendURL, "backend-url", "", "Base URL of the resume generation backend (overrides BACKEND_BASE_URL)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")
}

func serve(cfg config.Config) error {
	requestLogger := logging.Init(cfg.LogLevel)
	log.WithFields(log.Fields{
		"backend": cfg.BackendBaseURL,
		"port":    cfg.Port,
	}).Info("starting resume builder")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	backend := remote.New(cfg.BackendBaseURL, cfg.BackendTimeout, log.WithField("pkg", "remote"))

	// One view per browser session
	registry := session.NewRegistry(func(id uuid.UUID) *view.Controller {
		return view.New(backend,
			view.WithErrorTTL(cfg.ErrorTTL),
			view.WithLogger(log.WithField("session", id.String())),
		)
	}, cfg.SessionTTL, log.WithField("pkg", "session"))
	go registry.Run(ctx, time.Minute)

	readiness := health.NewService(checkers.NewBackendChecker(backend))

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.UploadMaxBytes) + 1<<20,
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(requestLogger))

	apihttp.Register(app,
		middleware.Session(registry, cfg.SessionCookie, cfg.SessionTTL),
		handlers.NewPagesHandler(cfg.UploadMaxBytes, log.WithField("pkg", "pages")),
		handlers.NewViewHandler(),
		handlers.NewHealthHandler(readiness),
	)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		log.Info("gracefully shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("error when trying to shut down gracefully")
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		return errors.Wrap(err, "listen")
	}
	registry.Close()
	return nil
}
