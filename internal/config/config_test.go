package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pancake/search"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)

	assert.Equal(t, "astar", cfg.Search.Strategy)
	assert.Equal(t, "gap", cfg.Search.Heuristic)
	assert.Equal(t, "better", cfg.Search.Replace)
	assert.Zero(t, cfg.Search.MaxExpansions)
	assert.Equal(t, 10, cfg.Random.Size)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.True(t, cfg.Output.Draw)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pancake.toml")
	content := `
[search]
strategy = "ucs"
heuristic = "gap-plate"
max_expansions = 500

[random]
size = 7
seed = 42

[output]
format = "json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := viper.New()
	SetDefaults(v)
	require.NoError(t, ReadFile(v, path))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "ucs", cfg.Search.Strategy)
	assert.Equal(t, "gap-plate", cfg.Search.Heuristic)
	assert.Equal(t, "better", cfg.Search.Replace, "unset keys keep defaults")
	assert.Equal(t, 500, cfg.Search.MaxExpansions)
	assert.Equal(t, 7, cfg.Random.Size)
	assert.Equal(t, int64(42), cfg.Random.Seed)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PANCAKE_SEARCH_STRATEGY", "ucs")
	t.Setenv("PANCAKE_RANDOM_SIZE", "6")

	v := viper.New()
	SetDefaults(v)
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "ucs", cfg.Search.Strategy)
	assert.Equal(t, 6, cfg.Random.Size)
}

func TestLoad_Invalid(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("search.strategy", "dfs")
	v.Set("random.size", 0)
	v.Set("output.format", "yaml")

	_, err := Load(v)
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 3)
	assert.Contains(t, err.Error(), "3 validation errors")
	assert.Contains(t, err.Error(), "search.strategy")
}

func TestValidationError_Single(t *testing.T) {
	err := ValidationErrors{{Field: "logging.level", Value: "loud", Message: "bad"}}
	assert.Equal(t, "logging.level: bad (got: loud)", err.Error())
	assert.Empty(t, ValidationErrors{}.Error())
}

func TestSearchOptions(t *testing.T) {
	cfg := Default()
	cfg.Search.Strategy = "ucs"
	cfg.Search.Replace = "always"

	strategy, opts, err := cfg.SearchOptions()
	require.NoError(t, err)
	assert.Equal(t, search.UniformCost, strategy)
	assert.Len(t, opts, 3)

	cfg.Search.Strategy = "nope"
	_, _, err = cfg.SearchOptions()
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)
}

func TestHeuristic(t *testing.T) {
	assert.NotNil(t, Heuristic("gap"))
	assert.NotNil(t, Heuristic("GAP-PLATE"))
	assert.Nil(t, Heuristic("manhattan"))
}
