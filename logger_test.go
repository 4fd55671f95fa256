package sdmgo

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("NilHandlerDefaults", func(t *testing.T) {
		logger := NewLogger(nil)
		require.NotNil(t, logger.Logger)
	})

	t.Run("LogWriteEmitsFields", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		logger.LogWrite(context.Background(), 3, nil)

		out := buf.String()
		assert.Contains(t, out, "write completed")
		assert.Contains(t, out, `"memories":3`)
	})

	t.Run("LogWriteError", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		logger.LogWrite(context.Background(), 0, &ErrDimensionMismatch{Vector: "address", Expected: 8, Actual: 3})

		assert.Contains(t, buf.String(), "write failed")
	})

	t.Run("WiredIntoSDM", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		mem, err := New(8, 4, 16, 8, WithLogger(logger))
		require.NoError(t, err)

		ctx := context.Background()
		require.NoError(t, mem.Write(ctx, []byte{1, 0, 1, 0, 1, 0, 1, 0}, []byte{1, 1, 0, 0}))
		mem.EraseMemory(ctx)

		out := buf.String()
		assert.Contains(t, out, "write completed")
		assert.Contains(t, out, "memory erased")
		assert.Contains(t, out, `"erased_writes":1`)
	})
}
