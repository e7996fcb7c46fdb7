// Package config loads pancake CLI settings from defaults, an optional config
// file, and PANCAKE_* environment variables via viper.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/pancake/pancake"
	"github.com/katalvlaran/pancake/search"
)

// EnvPrefix is the prefix for environment overrides, e.g. PANCAKE_SEARCH_STRATEGY.
const EnvPrefix = "PANCAKE"

// Config represents the complete CLI configuration
type Config struct {
	Search  SearchConfig  `mapstructure:"search"`
	Random  RandomConfig  `mapstructure:"random"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SearchConfig controls the solver
type SearchConfig struct {
	// Strategy is the search strategy: "astar" or "ucs"
	Strategy string `mapstructure:"strategy"`
	// Heuristic is "gap" (internal adjacency only) or "gap-plate" (adds the bottom boundary)
	Heuristic string `mapstructure:"heuristic"`
	// Replace is the frontier replacement policy: "better" or "always"
	Replace string `mapstructure:"replace"`
	// MaxExpansions stops the search after this many expansions (0 = unlimited)
	MaxExpansions int `mapstructure:"max_expansions"`
}

// RandomConfig controls random stack generation
type RandomConfig struct {
	// Size is the number of pancakes in a generated stack
	Size int `mapstructure:"size"`
	// Seed seeds the generator (0 = derive from the clock)
	Seed int64 `mapstructure:"seed"`
}

// OutputConfig controls how solutions are reported
type OutputConfig struct {
	// Format is "text", "json" or "toml"
	Format string `mapstructure:"format"`
	// Draw renders each stack as pancakes in text output
	Draw bool `mapstructure:"draw"`
}

// LoggingConfig controls the logger
type LoggingConfig struct {
	// Level is "debug", "info", "warn" or "error"
	Level string `mapstructure:"level"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			Strategy:      "astar",
			Heuristic:     "gap",
			Replace:       "better",
			MaxExpansions: 0,
		},
		Random: RandomConfig{
			Size: 10,
			Seed: 0,
		},
		Output: OutputConfig{
			Format: "text",
			Draw:   true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers every default on v and enables environment overrides.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("search.strategy", defaults.Search.Strategy)
	v.SetDefault("search.heuristic", defaults.Search.Heuristic)
	v.SetDefault("search.replace", defaults.Search.Replace)
	v.SetDefault("search.max_expansions", defaults.Search.MaxExpansions)

	v.SetDefault("random.size", defaults.Random.Size)
	v.SetDefault("random.seed", defaults.Random.Seed)

	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("output.draw", defaults.Output.Draw)

	v.SetDefault("logging.level", defaults.Logging.Level)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ReadFile loads path into v. The format is taken from the file extension.
func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	return v.ReadInConfig()
}

// SearchOptions translates the search section into search options.
// It assumes the config has been validated.
func (c *Config) SearchOptions() (search.Strategy, []search.Option, error) {
	strategy, err := search.ParseStrategy(c.Search.Strategy)
	if err != nil {
		return 0, nil, err
	}
	replace, err := search.ParseReplacePolicy(c.Search.Replace)
	if err != nil {
		return 0, nil, err
	}

	opts := []search.Option{
		search.WithHeuristic(Heuristic(c.Search.Heuristic)),
		search.WithReplacePolicy(replace),
		search.WithMaxExpansions(c.Search.MaxExpansions),
	}

	return strategy, opts, nil
}

// Heuristic maps a heuristic name to its function; unknown names return nil.
func Heuristic(name string) pancake.HeuristicFunc {
	switch strings.ToLower(name) {
	case "gap":
		return pancake.Gap
	case "gap-plate", "plate":
		return pancake.GapWithPlate
	default:
		return nil
	}
}
