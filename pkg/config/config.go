// Package config resolves the settings of one minigrep invocation from
// built-in defaults, an optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/praetorian-inc/minigrep/pkg/search"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvCaseInsensitive = "CASE_INSENSITIVE"
	EnvConfigPath      = "MINIGREP_CONFIG"
)

// ErrNotEnoughArguments is returned by Validate when there is nothing to
// search.
var ErrNotEnoughArguments = errors.New("not enough arguments")

// Config holds the settings of one invocation.
type Config struct {
	Pattern       string
	Files         []string
	CaseSensitive bool
	Regex         bool
	Engine        search.Engine
	Count         bool
	Jobs          int

	// Piped is set when the corpus comes from standard input.
	Piped bool
	// PipedText is the stdin corpus, used only for String.
	PipedText string
}

// fileConfig is the on-disk YAML layout. Pointers distinguish unset keys
// from explicit false/zero values.
type fileConfig struct {
	IgnoreCase *bool   `yaml:"ignore_case"`
	Count      *bool   `yaml:"count"`
	Engine     *string `yaml:"engine"`
	Jobs       *int    `yaml:"jobs"`
}

// Default returns the built-in settings: case-sensitive literal search,
// RE2 engine, one job per CPU.
func Default() Config {
	return Config{
		CaseSensitive: true,
		Engine:        search.EngineRE2,
		Jobs:          runtime.GOMAXPROCS(0),
	}
}

// Load returns Default overlaid with the YAML file at path (or the file
// named by $MINIGREP_CONFIG when path is empty) and then with the
// CASE_INSENSITIVE environment variable. A named file that cannot be read
// is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.applyEnv(os.Getenv)
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return c.mergeYAML(data, path)
}

func (c *Config) mergeYAML(data []byte, source string) error {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config %s: %w", source, err)
	}

	if fc.IgnoreCase != nil {
		c.CaseSensitive = !*fc.IgnoreCase
	}
	if fc.Count != nil {
		c.Count = *fc.Count
	}
	if fc.Engine != nil {
		engine, err := search.ParseEngine(*fc.Engine)
		if err != nil {
			return fmt.Errorf("config %s: %w", source, err)
		}
		c.Engine = engine
	}
	if fc.Jobs != nil {
		c.Jobs = *fc.Jobs
	}
	return nil
}

// applyEnv turns case sensitivity off when CASE_INSENSITIVE parses as the
// integer 1.
func (c *Config) applyEnv(getenv func(string) string) {
	v, err := strconv.ParseUint(getenv(EnvCaseInsensitive), 10, 8)
	if err == nil && v == 1 {
		c.CaseSensitive = false
	}
}

// Query returns the search query described by the configuration.
func (c Config) Query() search.Query {
	return search.Query{
		Pattern:       c.Pattern,
		CaseSensitive: c.CaseSensitive,
		Regex:         c.Regex,
		Engine:        c.Engine,
	}
}

// Validate reports settings that cannot produce a search.
func (c Config) Validate() error {
	if !c.Piped && len(c.Files) == 0 {
		return ErrNotEnoughArguments
	}
	if _, err := search.ParseEngine(string(c.Engine)); err != nil {
		return err
	}
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	return nil
}

// String describes the invocation in one sentence.
func (c Config) String() string {
	sensitivity := "is"
	if !c.CaseSensitive {
		sensitivity = "is not"
	}

	if c.Piped {
		text := strings.TrimRight(strings.ReplaceAll(c.PipedText, "\n", " "), " \t\r")
		return fmt.Sprintf("Searching for `%s` in piped text `%s`; %s case sensitive.", c.Pattern, text, sensitivity)
	}
	return fmt.Sprintf("Searching for `%s` in `%v`; %s case sensitive.", c.Pattern, c.Files, sensitivity)
}
