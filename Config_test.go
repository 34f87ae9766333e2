package patrin_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rohanthewiz/assert"

	"github.com/patrin-io/patrin"
)

func TestDefaultConfig(t *testing.T) {
	cfg := patrin.DefaultConfig()
	assert.Equal(t, cfg.TrimTrailingSlash, false)
	assert.Equal(t, cfg.Debug, false)
	assert.Equal(t, cfg.ProblemTypePrefix, "https://patrin.io/problems")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte(`
trim_trailing_slash = true
debug = true
problem_type_prefix = "https://example.org/problems"
`)
	assert.Nil(t, os.WriteFile(path, data, 0o644))

	cfg, err := patrin.LoadConfig(path)
	assert.Nil(t, err)
	assert.Equal(t, cfg.TrimTrailingSlash, true)
	assert.Equal(t, cfg.Debug, true)
	assert.Equal(t, cfg.ProblemTypePrefix, "https://example.org/problems")
}

// Keys absent from the file keep their defaults.
func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	assert.Nil(t, os.WriteFile(path, []byte("debug = true\n"), 0o644))

	cfg, err := patrin.LoadConfig(path)
	assert.Nil(t, err)
	assert.Equal(t, cfg.Debug, true)
	assert.Equal(t, cfg.TrimTrailingSlash, false)
	assert.Equal(t, cfg.ProblemTypePrefix, "https://patrin.io/problems")
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := patrin.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, err != nil)

	path := filepath.Join(t.TempDir(), "bad.toml")
	assert.Nil(t, os.WriteFile(path, []byte("debug = {"), 0o644))
	_, err = patrin.LoadConfig(path)
	assert.True(t, err != nil)
}
