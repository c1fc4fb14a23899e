package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"learnhub_checkout/internal/config"

	"github.com/grafana/loki-client-go/loki"
	slogloki "github.com/samber/slog-loki/v3"
)

const serviceName = "learnhub-checkout"

// GetLogger returns a JSON stdout logger, or a Loki-shipping logger when logs.url is set.
// stop flushes the Loki batch still buffered in memory; it is a no-op for the stdout
// logger and must run after the last record was written.
func GetLogger(cfg config.Logs) (logger *slog.Logger, stop func()) {
	if cfg.URL == "" {
		return localLogger(parseLevel(cfg.Level)), func() {}
	}

	logger, client, err := remoteLogger(cfg.URL, parseLevel(cfg.Level))
	if err != nil {
		fallback := localLogger(parseLevel(cfg.Level))
		fallback.Error("[logging] loki client init failed; logging to stdout", "err", err)
		return fallback, func() {}
	}
	return logger, client.Stop
}

func localLogger(level slog.Level) *slog.Logger {
	return slog.New(&ContextHandler{Handler: slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})}).
		With("service", serviceName)
}

func remoteLogger(url string, level slog.Level) (*slog.Logger, *loki.Client, error) {
	lokiConfig, err := loki.NewDefaultConfig(url)
	if err != nil {
		return nil, nil, err
	}
	client, err := loki.New(lokiConfig)
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slogloki.Option{
		Level:  level,
		Client: client,
		AttrFromContext: []func(ctx context.Context) []slog.Attr{
			attrsFromContext,
		},
	}.NewLokiHandler()).With("service", serviceName)
	return logger, client, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
