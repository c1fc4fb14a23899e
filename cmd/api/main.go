package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnhub_checkout/internal/config"
	"learnhub_checkout/internal/infrastructure/logging"
	"learnhub_checkout/internal/infrastructure/metrics"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Course Checkout API
// @version         1.0
// @description     Course checkout: payment intents, gateway notifications and access grants.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin token.

const shutdownTimeout = 30 * time.Second

func main() {
	cfg := config.MustLoadConfig(".")
	logger, stopLogs := logging.GetLogger(cfg.Logs)
	metrics.Setup(cfg.Metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
	// Last closer: records written by the other closers still reach Loki.
	app.closers = append(app.closers, stopLogs)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("[checkout][http] listening", "addr", srv.Addr, "storage", cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("[checkout][http] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("[checkout][http] shutdown failed", "err", err)
	}
	app.close()
}
