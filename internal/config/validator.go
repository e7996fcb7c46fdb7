package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pancake/search"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "search.strategy")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidFormats returns the accepted output formats
func ValidFormats() []string {
	return []string{"text", "json", "toml"}
}

// ValidLogLevels returns the accepted logging levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks every section and returns all failures found
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if _, err := search.ParseStrategy(c.Search.Strategy); err != nil {
		errs = append(errs, ValidationError{"search.strategy", c.Search.Strategy, "must be one of astar, ucs"})
	}
	if Heuristic(c.Search.Heuristic) == nil {
		errs = append(errs, ValidationError{"search.heuristic", c.Search.Heuristic, "must be one of gap, gap-plate"})
	}
	if _, err := search.ParseReplacePolicy(c.Search.Replace); err != nil {
		errs = append(errs, ValidationError{"search.replace", c.Search.Replace, "must be one of better, always"})
	}
	if c.Search.MaxExpansions < 0 {
		errs = append(errs, ValidationError{"search.max_expansions", c.Search.MaxExpansions, "must be non-negative"})
	}

	if c.Random.Size < 1 {
		errs = append(errs, ValidationError{"random.size", c.Random.Size, "must be at least 1"})
	}

	if !contains(ValidFormats(), strings.ToLower(c.Output.Format)) {
		errs = append(errs, ValidationError{"output.format", c.Output.Format, "must be one of " + strings.Join(ValidFormats(), ", ")})
	}
	if !contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errs = append(errs, ValidationError{"logging.level", c.Logging.Level, "must be one of " + strings.Join(ValidLogLevels(), ", ")})
	}

	return errs
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
