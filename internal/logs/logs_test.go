package logs

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTerminalLevel(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"quiet", false, false},
		{"verbose", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, closeFn, err := New(&buf, tt.verbose, "")
			require.NoError(t, err)
			defer closeFn()

			logger.Debug("resolved task", "id", 3)
			logger.Warn("orphaned temp file")

			assert.Equal(t, tt.wantDebug, strings.Contains(buf.String(), "resolved task"))
			assert.Contains(t, buf.String(), "orphaned temp file")
		})
	}
}

func TestNewLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sigo.log")
	var buf bytes.Buffer

	logger, closeFn, err := New(&buf, false, path)
	require.NoError(t, err)
	logger.Debug("completed task", "id", 5)
	require.NoError(t, closeFn())

	assert.Empty(t, buf.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &record))
	assert.Equal(t, "completed task", record["msg"])
	assert.EqualValues(t, 5, record["id"])
}
