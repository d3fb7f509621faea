package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, true)
	ctx := WithLogger(context.Background(), logger)
	require.Same(t, logger, FromContext(ctx))

	FromContext(ctx).Debug("scanned", "lines", 3)
	assert.Contains(t, buf.String(), "lines=3")
}

func TestQuietLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, false)
	logger.Debug("hidden")
	logger.Info("hidden too")
	assert.Empty(t, buf.String())
	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestFromContextDefault(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}
