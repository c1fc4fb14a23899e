package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"learnhub_checkout/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHandler_AddsContextAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&ContextHandler{Handler: slog.NewJSONHandler(&buf, nil)})

	ctx := WithAttrs(context.Background(), slog.String("intent_id", "i-1"))
	ctx = WithAttrs(ctx, slog.String("gateway", "redirect"))
	logger.InfoContext(ctx, "hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "i-1", record["intent_id"])
	assert.Equal(t, "redirect", record["gateway"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestGetLogger_Local(t *testing.T) {
	logger, stop := GetLogger(config.Logs{})
	assert.NotNil(t, logger)
	assert.NotPanics(t, stop)
}

func TestGetLogger_RemoteStopFlushesBufferedRecords(t *testing.T) {
	var pushes atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/loki/api/v1/push" {
			pushes.Add(1)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	logger, stop := GetLogger(config.Logs{URL: srv.URL + "/loki/api/v1/push", Level: "info"})
	logger.Info("[checkout][http] shutting down")

	stop()
	assert.Equal(t, int32(1), pushes.Load())
}
