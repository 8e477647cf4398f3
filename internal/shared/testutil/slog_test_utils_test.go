package testutil

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferedSlogHandler(t *testing.T) {
	t.Run("captures log records", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Info("test message", slog.String("key", "value"))
		logger.Error("error message", slog.Int("code", 500))

		records := handler.GetRecords()
		require.Len(t, records, 2)
		assert.True(t, handler.ContainsMessage("test message"))
		assert.Equal(t, "value", records[0].Attrs["key"])
	})

	t.Run("filters by level", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Debug("debug msg")
		logger.Info("info msg")
		logger.Warn("warn msg")
		logger.Error("error msg")

		assert.Len(t, handler.GetRecordsByLevel(slog.LevelInfo), 1)
		assert.Len(t, handler.GetRecordsByLevel(slog.LevelError), 1)
		AssertLogContains(t, handler, slog.LevelWarn, "warn")
	})

	t.Run("derived loggers share the buffer", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.With(slog.String("component", "loader")).Info("loaded")

		records := handler.GetRecords()
		require.Len(t, records, 1)
		assert.Equal(t, "loader", records[0].Attrs["component"])
	})

	t.Run("no errors", func(t *testing.T) {
		logger, handler := NewTestLogger(t)
		logger.Info("fine")
		AssertNoErrors(t, handler)
	})
}

func TestWriteSampleCSV(t *testing.T) {
	path := WriteSampleCSV(t)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Constituency,Party,Candidate,Votes\n"+
			"North,Red,Ann,100\n"+
			"North,Blue,Bob,98\n"+
			"South,Red,Cat,50\n"+
			"South,Blue,Dan,10\n",
		string(content))
}
