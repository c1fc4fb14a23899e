package metrics

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"learnhub_checkout/internal/config"

	"github.com/VictoriaMetrics/metrics"
)

// Setup starts pushing metrics when metrics.url is configured. /metrics is always served.
func Setup(cfg config.Metrics, logger *slog.Logger) {
	if cfg.URL == "" {
		return
	}

	err := metrics.InitPush(cfg.URL, time.Duration(cfg.IntervalMs)*time.Millisecond, cfg.CommonLabels, true)
	if err != nil {
		logger.Error("[metrics] push init failed", "err", err)
	}
}

func IntentCreated(gateway string) {
	metrics.GetOrCreateCounter(fmt.Sprintf(`checkout_intents_total{gateway=%q}`, gateway)).Inc()
}

func NotificationHandled(gateway, result string) {
	metrics.GetOrCreateCounter(fmt.Sprintf(`checkout_notifications_total{gateway=%q,result=%q}`, gateway, result)).Inc()
}

func NotificationDuration(gateway string, start time.Time) {
	metrics.GetOrCreateHistogram(fmt.Sprintf(`checkout_notification_duration_seconds{gateway=%q}`, gateway)).UpdateDuration(start)
}

func GrantAttempt(created bool) {
	result := "duplicate"
	if created {
		result = "created"
	}
	metrics.GetOrCreateCounter(fmt.Sprintf(`checkout_grants_total{result=%q}`, result)).Inc()
}

func SideEffect(stage, result string) {
	metrics.GetOrCreateCounter(fmt.Sprintf(`checkout_side_effects_total{stage=%q,result=%q}`, stage, result)).Inc()
}

// WritePrometheus writes every registered metric plus process metrics in text format.
func WritePrometheus(w io.Writer) {
	metrics.WritePrometheus(w, true)
}
