package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"orderdesk/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: " warn ", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := logging.ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWithWriter_TagsRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "orderdesk", slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("order created", "order_id", "abc")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "order created", record["msg"])
	assert.Equal(t, "orderdesk", record["service"])
	assert.Equal(t, "abc", record["order_id"])
	assert.Contains(t, record, "hostname")
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := logging.New(logging.Options{Service: "orderdesk", Level: "loud"})
	require.Error(t, err)
}

func TestNew_WritesToFile(t *testing.T) {
	logger, err := logging.New(logging.Options{
		Service: "orderdesk",
		Level:   "info",
		File:    filepath.Join(t.TempDir(), "orderdesk.log"),
	})
	require.NoError(t, err)
	require.NotNil(t, logger)
}
