package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokenregistry/pkg/domain"
	"tokenregistry/pkg/requestcontext"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestContextAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info")

	caller := domain.DeriveAddress([]byte("alice"))
	ctx := requestcontext.WithRequestID(context.Background(), "req-1")
	ctx = requestcontext.WithCaller(ctx, caller)
	log.InfoContext(ctx, "minted", "token_id", 3)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "minted", line["msg"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, caller.String(), line["caller"])
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")
	log.Info("dropped")
	assert.Zero(t, buf.Len())
}
