package sdmgo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector(t *testing.T) {
	t.Run("Direct", func(t *testing.T) {
		mc := &BasicMetricsCollector{}

		mc.RecordWrite(10*time.Millisecond, nil)
		mc.RecordWrite(20*time.Millisecond, errors.New("boom"))
		mc.RecordRead(5*time.Millisecond, nil)
		mc.RecordErase(time.Millisecond)
		mc.RecordBatchWrite(7, time.Millisecond, nil)
		mc.RecordBatchRead(3, time.Millisecond, nil)

		stats := mc.GetStats()
		assert.Equal(t, int64(2), stats.WriteCount)
		assert.Equal(t, int64(1), stats.WriteErrors)
		assert.Equal(t, int64(15*time.Millisecond), stats.WriteAvgNanos)
		assert.Equal(t, int64(1), stats.ReadCount)
		assert.Equal(t, int64(1), stats.EraseCount)
		assert.Equal(t, int64(1), stats.BatchWriteCount)
		assert.Equal(t, int64(7), stats.BatchWriteItems)
		assert.Equal(t, int64(1), stats.BatchReadCount)
		assert.Equal(t, int64(3), stats.BatchReadItems)
	})

	t.Run("WiredIntoSDM", func(t *testing.T) {
		ctx := context.Background()
		mc := &BasicMetricsCollector{}

		mem, err := New(8, 4, 16, 8, WithMetricsCollector(mc))
		require.NoError(t, err)

		address := []byte{1, 0, 1, 0, 1, 0, 1, 0}
		require.NoError(t, mem.Write(ctx, address, []byte{1, 1, 0, 0}))
		_, err = mem.Read(ctx, address)
		require.NoError(t, err)
		require.Error(t, mem.Write(ctx, make([]byte, 3), []byte{1, 1, 0, 0}))
		mem.EraseMemory(ctx)

		stats := mc.GetStats()
		assert.Equal(t, int64(2), stats.WriteCount)
		assert.Equal(t, int64(1), stats.WriteErrors)
		assert.Equal(t, int64(1), stats.ReadCount)
		assert.Equal(t, int64(0), stats.ReadErrors)
		assert.Equal(t, int64(1), stats.EraseCount)
	})
}
