package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abatilo/sigo/internal/config"
)

func TestConfigInitForceRewritesInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown mode", "mode: fancy\n"},
		{"malformed yaml", "mode: [simple\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := config.Load(path)
			require.Error(t, err)

			root := newRootCmd()
			root.SetArgs([]string{"--config", path, "config", "init", "--force"})
			require.NoError(t, root.Execute())

			cfg, err := config.Load(path)
			require.NoError(t, err)
			assert.Equal(t, config.ModeSimple, cfg.Mode)
		})
	}
}

func TestConfigPathWithInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: fancy\n"), 0o644))

	root := newRootCmd()
	root.SetArgs([]string{"--config", path, "config", "path"})
	require.NoError(t, root.Execute())
}
