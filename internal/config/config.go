// Package config loads the YAML configuration of the puzzles command:
// logging, search limits and batch jobs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/puzzlesolver/bfs"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Job kinds understood by the batch runner.
const (
	KindClock   = "clock"
	KindDice    = "dice"
	KindHoppers = "hoppers"
	KindAstro   = "astro"
)

const defaultParallelism = 4

// LogConfig selects the log level and handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SearchConfig bounds every search started by the command.
type SearchConfig struct {
	MaxDepth  int           `yaml:"max_depth"`
	MaxStates int           `yaml:"max_states"`
	Timeout   time.Duration `yaml:"timeout"`
}

// Job is one puzzle of a batch. clock and dice take their arguments in
// Args as on the command line; hoppers and astro read File. Dir is the die
// directory for dice jobs.
type Job struct {
	Name string   `yaml:"name"`
	Kind string   `yaml:"kind"`
	Args []string `yaml:"args,omitempty"`
	File string   `yaml:"file,omitempty"`
	Dir  string   `yaml:"dir,omitempty"`
}

// BatchConfig lists the jobs solved by the batch command.
type BatchConfig struct {
	Parallelism int   `yaml:"parallelism"`
	Jobs        []Job `yaml:"jobs"`
}

// Config is the whole configuration file.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Search SearchConfig `yaml:"search"`
	Batch  BatchConfig  `yaml:"batch"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log:   LogConfig{Level: "info", Format: "text"},
		Batch: BatchConfig{Parallelism: defaultParallelism},
	}
}

// Load reads path. An empty path or a missing file yields Default().
// Relative job paths are resolved against the directory of path.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.resolvePaths(filepath.Dir(path))
	return cfg, nil
}

// Parse decodes YAML over Default(), normalizes it and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	for i := range c.Batch.Jobs {
		j := &c.Batch.Jobs[i]
		j.Name = strings.TrimSpace(j.Name)
		j.Kind = strings.ToLower(strings.TrimSpace(j.Kind))
		j.File = strings.TrimSpace(j.File)
		j.Dir = strings.TrimSpace(j.Dir)
		if j.Name == "" {
			j.Name = fmt.Sprintf("%s-%d", j.Kind, i+1)
		}
	}
}

func (c *Config) resolvePaths(base string) {
	for i := range c.Batch.Jobs {
		c.Batch.Jobs[i].File = resolvePath(base, c.Batch.Jobs[i].File)
		c.Batch.Jobs[i].Dir = resolvePath(base, c.Batch.Jobs[i].Dir)
	}
}

// Validate checks every field. Errors wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q must be debug, info, warn or error", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q must be text or json", ErrInvalidConfig, c.Log.Format)
	}
	if c.Search.MaxDepth < 0 {
		return fmt.Errorf("%w: search.max_depth must be >= 0", ErrInvalidConfig)
	}
	if c.Search.MaxStates < 0 {
		return fmt.Errorf("%w: search.max_states must be >= 0", ErrInvalidConfig)
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("%w: search.timeout must be >= 0", ErrInvalidConfig)
	}
	if c.Batch.Parallelism < 1 {
		return fmt.Errorf("%w: batch.parallelism must be >= 1", ErrInvalidConfig)
	}
	seen := make(map[string]struct{}, len(c.Batch.Jobs))
	for i, j := range c.Batch.Jobs {
		if err := j.validate(); err != nil {
			return fmt.Errorf("%w: batch.jobs[%d]: %v", ErrInvalidConfig, i, err)
		}
		if _, dup := seen[j.Name]; dup {
			return fmt.Errorf("%w: batch.jobs[%d]: duplicate name %q", ErrInvalidConfig, i, j.Name)
		}
		seen[j.Name] = struct{}{}
	}
	return nil
}

func (j Job) validate() error {
	switch j.Kind {
	case KindClock:
		if len(j.Args) != 3 {
			return fmt.Errorf("clock wants 3 args (hours start end), got %d", len(j.Args))
		}
	case KindDice:
		if len(j.Args) < 3 {
			return fmt.Errorf("dice wants args start end die..., got %d", len(j.Args))
		}
	case KindHoppers, KindAstro:
		if j.File == "" {
			return fmt.Errorf("%s requires file", j.Kind)
		}
	default:
		return fmt.Errorf("kind %q must be clock, dice, hoppers or astro", j.Kind)
	}
	return nil
}

// SearchOptions converts the search limits to engine options.
func (c *Config) SearchOptions() []bfs.Option {
	var opts []bfs.Option
	if c.Search.MaxDepth > 0 {
		opts = append(opts, bfs.WithMaxDepth(c.Search.MaxDepth))
	}
	if c.Search.MaxStates > 0 {
		opts = append(opts, bfs.WithMaxStates(c.Search.MaxStates))
	}
	return opts
}

func resolvePath(base, candidate string) string {
	if candidate == "" || filepath.IsAbs(candidate) {
		return candidate
	}
	return filepath.Clean(filepath.Join(base, candidate))
}
