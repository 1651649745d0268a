package main

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "sjson.yaml", "color: always\nlog_level: warn\nindent: 4\nnaive_comments: true\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.validate())
	require.Equal(t, "always", cfg.Color)
	require.Equal(t, slog.LevelWarn, cfg.level())
	require.NotNil(t, cfg.Indent)
	require.Equal(t, 4, *cfg.Indent)
	require.True(t, cfg.NaiveComments)
	require.Len(t, cfg.options(), 2)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeFile(t, "sjson.yaml", "# nothing set\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, NewConfig(), cfg)
	require.Equal(t, slog.LevelInfo, cfg.level())
	require.Empty(t, cfg.options())
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read config file")

	path := writeFile(t, "bad.yaml", "indent: [1\n")
	_, err = LoadConfig(path)
	require.ErrorContains(t, err, "failed to parse config file")
}

func TestConfigValidate(t *testing.T) {
	negative := -1
	tests := []struct {
		name    string
		cfg     Config
		message string
	}{
		{"color", Config{Color: "sometimes", LogLevel: "info"}, "invalid color mode"},
		{"log level", Config{Color: "auto", LogLevel: "loud"}, "invalid log level"},
		{"indent", Config{Color: "auto", LogLevel: "info", Indent: &negative}, "must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorContains(t, tt.cfg.validate(), tt.message)
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, slog.LevelDebug)
	log.Info("hello", "k", 1)
	log.Debug("details")

	require.Equal(t, "msg=hello k=1\nlevel=DEBUG msg=details\n", buf.String())
}
