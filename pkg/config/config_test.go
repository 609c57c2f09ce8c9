package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(t.TempDir()))
	require.NoError(t, err)

	assert.False(t, cfg.WAL)
	assert.Equal(t, "FULL", cfg.Sync)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultJournal, cfg.Journal)
	assert.NotEmpty(t, cfg.DB)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(
		"db: /from/file.db\nsync: NORMAL\njournal: file-journal\nlog_level: debug\n",
	), 0o644))

	t.Setenv("MINDLOG_SYNC", "OFF")
	t.Setenv("MINDLOG_JOURNAL", "env-journal")

	v := New(dir)
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("journal", "", "")
	flags.String("log-level", "", "")
	require.NoError(t, BindFlags(v, flags))
	require.NoError(t, flags.Parse([]string{"--journal", "flag-journal"}))

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "/from/file.db", cfg.DB, "file beats default")
	assert.Equal(t, "OFF", cfg.Sync, "env beats file")
	assert.Equal(t, "flag-journal", cfg.Journal, "flag beats env")
	assert.Equal(t, "debug", cfg.LogLevel, "unset flag falls through")
}

func TestLoad_BadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("db: [unterminated"), 0o644))

	_, err := Load(New(dir))
	assert.Error(t, err)
}
