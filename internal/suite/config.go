package suite

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/fijjas/go-experiments/pkg/bench"
)

// Config is the optional TOML configuration for a suite run. Telegram
// credentials never live here; they are read from the environment only.
type Config struct {
	Harness     HarnessConfig     `toml:"harness"`
	Report      ReportConfig      `toml:"report"`
	Notify      NotifyConfig      `toml:"notify"`
	Experiments ExperimentsConfig `toml:"experiments"`
}

type HarnessConfig struct {
	Warmup     int  `toml:"warmup"`
	Iterations int  `toml:"iterations"`
	Samples    int  `toml:"samples"`
	TargetMs   int  `toml:"target_ms"`
	MemStats   bool `toml:"mem_stats"`
}

type ReportConfig struct {
	Text bool   `toml:"text"`
	SVG  string `toml:"svg"`
	JSON string `toml:"json"`
}

type NotifyConfig struct {
	Enabled bool `toml:"enabled"`
}

type ExperimentsConfig struct {
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
}

// DefaultConfig mirrors bench.DefaultOptions with text output enabled.
func DefaultConfig() Config {
	return Config{
		Harness: HarnessConfig{
			Warmup:   10_000,
			Samples:  7,
			TargetMs: 100,
		},
		Report: ReportConfig{Text: true},
	}
}

// LoadConfig reads a TOML config file, layering it over the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "unable to read config %s", path)
	}

	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "unable to parse config %s", path)
	}

	return cfg, nil
}

// Options converts the harness section to bench options.
func (c Config) Options() bench.Options {
	return bench.Options{
		Warmup:         c.Harness.Warmup,
		Iterations:     c.Harness.Iterations,
		Samples:        c.Harness.Samples,
		TargetDuration: time.Duration(c.Harness.TargetMs) * time.Millisecond,
		MemStats:       c.Harness.MemStats,
	}
}

// Selection applies the include/exclude lists to the registry, preserving
// registration order. An empty include list means everything.
func (c Config) Selection(registry *Registry) []string {
	excluded := make(map[string]struct{}, len(c.Experiments.Exclude))
	for _, name := range c.Experiments.Exclude {
		excluded[name] = struct{}{}
	}

	base := c.Experiments.Include
	if len(base) == 0 {
		base = registry.Names()
	}

	names := make([]string, 0, len(base))
	for _, name := range base {
		if _, ok := excluded[name]; ok {
			continue
		}
		names = append(names, name)
	}

	return names
}
