package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/praetorian-inc/minigrep/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.CaseSensitive)
	assert.False(t, cfg.Regex)
	assert.False(t, cfg.Count)
	assert.Equal(t, search.EngineRE2, cfg.Engine)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Jobs)
}

func TestLoad_NoFile(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvCaseInsensitive, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLFile(t *testing.T) {
	t.Setenv(EnvCaseInsensitive, "")

	path := filepath.Join(t.TempDir(), "minigrep.yaml")
	err := os.WriteFile(path, []byte("ignore_case: true\ncount: true\nengine: backtrack\njobs: 2\n"), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.CaseSensitive)
	assert.True(t, cfg.Count)
	assert.Equal(t, search.EngineBacktrack, cfg.Engine)
	assert.Equal(t, 2, cfg.Jobs)
}

func TestLoad_PathFromEnv(t *testing.T) {
	t.Setenv(EnvCaseInsensitive, "")

	path := filepath.Join(t.TempDir(), "minigrep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: true\n"), 0644))
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Count)
	assert.True(t, cfg.CaseSensitive, "unset keys keep defaults")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: [unterminated\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad_UnknownEngine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine: pcre\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown regex engine")
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		value         string
		caseSensitive bool
	}{
		{"1", false},
		{"01", false},
		{"0", true},
		{"2", true},
		{"true", true},
		{"", true},
		{"-1", true},
	}

	for _, tt := range tests {
		t.Run("CASE_INSENSITIVE="+tt.value, func(t *testing.T) {
			cfg := Default()
			cfg.applyEnv(func(key string) string {
				if key == EnvCaseInsensitive {
					return tt.value
				}
				return ""
			})
			assert.Equal(t, tt.caseSensitive, cfg.CaseSensitive)
		})
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minigrep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ignore_case: false\n"), 0644))
	t.Setenv(EnvCaseInsensitive, "1")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.CaseSensitive)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.ErrorIs(t, cfg.Validate(), ErrNotEnoughArguments)

	cfg.Files = []string{"poem.txt"}
	assert.NoError(t, cfg.Validate())

	piped := Default()
	piped.Piped = true
	assert.NoError(t, piped.Validate())

	cfg.Jobs = 0
	assert.Error(t, cfg.Validate())

	cfg.Jobs = 1
	cfg.Engine = "pcre"
	assert.Error(t, cfg.Validate())
}

func TestQuery(t *testing.T) {
	cfg := Default()
	cfg.Pattern = "x"
	cfg.Regex = true
	cfg.Engine = search.EngineBacktrack

	assert.Equal(t, search.Query{
		Pattern:       "x",
		CaseSensitive: true,
		Regex:         true,
		Engine:        search.EngineBacktrack,
	}, cfg.Query())
}

func TestString(t *testing.T) {
	cfg := Default()
	cfg.Pattern = "frog"
	cfg.Files = []string{"a.txt", "b.txt"}
	assert.Equal(t, "Searching for `frog` in `[a.txt b.txt]`; is case sensitive.", cfg.String())

	piped := Default()
	piped.Pattern = "frog"
	piped.CaseSensitive = false
	piped.Piped = true
	piped.PipedText = "one\ntwo\n"
	assert.Equal(t, "Searching for `frog` in piped text `one two`; is not case sensitive.", piped.String())
}
