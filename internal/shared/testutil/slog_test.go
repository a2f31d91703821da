package testutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferedSlogHandler_Captures(t *testing.T) {
	logger, handler := NewBufferedLogger(t)

	logger.Info("export written", slog.String("export", "demographic"))
	logger.Warn("rows dropped", slog.Int("count", 3))

	records := handler.Records()
	assert.Len(t, records, 2)
	assert.Equal(t, slog.LevelInfo, records[0].Level)
	assert.Equal(t, slog.LevelWarn, records[1].Level)

	assert.True(t, handler.ContainsMessage("rows dropped"))
	assert.False(t, handler.ContainsMessage("rows kept"))

	assert.True(t, handler.ContainsAttr("export", "demographic"))
	assert.True(t, handler.ContainsAttr("count", int64(3)))
	assert.False(t, handler.ContainsAttr("export", "occupations"))
}
