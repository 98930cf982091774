package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/iro/logging"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("info by default", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := logging.New(&buf, false)
		l.Debug("hidden")
		l.Info("backup created", "path", "/x.iro.bak")
		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "level=INFO msg=\"backup created\" path=/x.iro.bak")
		assert.NotContains(t, out, "time=")
	})

	t.Run("debug when verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logging.New(&buf, true).Debug("section written")
		assert.Contains(t, buf.String(), "section written")
	})
}

func TestLevel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, slog.LevelDebug, logging.Level(true))
	assert.Equal(t, slog.LevelInfo, logging.Level(false))
}

func TestDiscard(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() { logging.Discard().Error("dropped") })
}
