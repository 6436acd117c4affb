package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "http://localhost:11434/api/chat", cfg.GetEndpoint())
	assert.Equal(t, "llama3.2:3b", cfg.GetModel())
	assert.Equal(t, DefaultSystemPrompt, cfg.GetSystemPrompt())

	w, h := cfg.GetWindowSize()
	assert.Equal(t, float32(1400), w)
	assert.Equal(t, float32(800), h)
}

func TestNewDefaultConfig_IgnoresEnvironmentAndFiles(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("COWRITER_ENDPOINT=http://elsewhere:1/x\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cowriter.json"), []byte(`{"inference":{"endpoint":"http://elsewhere:1/x"}}`), 0644))
	t.Setenv("COWRITER_ENDPOINT", "http://elsewhere:1/x")
	t.Setenv("COWRITER_MODEL", "other:1b")

	cfg := NewDefaultConfig()

	assert.Equal(t, DefaultEndpoint, cfg.GetEndpoint())
	assert.Equal(t, DefaultModel, cfg.GetModel())
}

func TestNewDefaultConfig_Independent(t *testing.T) {
	a := NewDefaultConfig()
	b := NewDefaultConfig()

	a.Inference.Model = "changed"

	assert.Equal(t, DefaultModel, b.GetModel())
}

func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
}
