// Command login-service runs the graph-store backed login microservice.
//
// Configuration via environment variables:
//
//	PORT                - Listen port (default: 80)
//	MU_SPARQL_ENDPOINT  - SPARQL endpoint URL (default: http://database:8890/sparql)
//	MU_SPARQL_TIMEOUT   - Store round-trip timeout (default: 30s)
//	MU_APPLICATION_SALT - Application wide password salt (required)
//	USERS_GRAPH         - Graph holding accounts (default: http://mu.semte.ch/application)
//	SESSIONS_GRAPH      - Graph holding sessions (default: http://mu.semte.ch/application)
//	LOG_LEVEL           - slog level (default: info)
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	login "github.com/goliatone/go-login"
	"github.com/goliatone/go-login/sparql"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := login.LoadConfig()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	// A single privileged client: identity management has to read and
	// write the store before the caller holds any authorization.
	client := sparql.NewClient(cfg.SPARQLEndpoint,
		sparql.Sudo(),
		sparql.WithTimeout(cfg.SPARQLTimeout),
		sparql.WithLogger(logger),
	)
	store := login.MeterStoreClient(client)

	accounts := login.NewAccountStore(store, cfg.UsersGraph)
	sessions := login.NewSessionStore(store, cfg.SessionsGraph, cfg.UsersGraph)

	verifier := login.NewVerifier(accounts, cfg.ApplicationSalt).WithLogger(logger)
	manager := login.NewSessionManager(sessions).WithLogger(logger)
	resolver := login.NewRoleResolver(accounts)

	controller := login.NewController(verifier, manager, resolver).WithLogger(logger)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	controller.RegisterRoutes(app)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "endpoint", cfg.SPARQLEndpoint)
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down gracefully")
		return app.ShutdownWithTimeout(10 * time.Second)
	case err := <-errCh:
		return err
	}
}
