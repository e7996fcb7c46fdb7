package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pancake/internal/config"
	"github.com/katalvlaran/pancake/pancake"
	"github.com/katalvlaran/pancake/search"
	"github.com/katalvlaran/pancake/telemetry"
)

// solveOpts holds the solve flags that are not backed by config keys.
type solveOpts struct {
	random  bool // generate the stack instead of reading arguments
	metrics bool // print search metrics after the report
}

// solveCommand creates the solve command. The stack comes from the
// arguments, or from the generator when --random is set or no arguments
// are given.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "solve [STACK...]",
		Short: "Find the fewest flips that sort a stack",
		Long: `Solve searches the flip graph from the given stack (top pancake first)
to the sorted stack N..1 and prints every intermediate state.`,
		Example: `  pancake solve 3 1 2
  pancake solve --strategy ucs 4,2,3,1
  pancake solve --random --size 8 --seed 7 --format json`,
		PreRun: func(cmd *cobra.Command, args []string) {
			c.bindFlags(cmd, solveKeys)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd.Context(), args, opts)
		},
	}

	f := cmd.Flags()
	f.String("strategy", defaults.Search.Strategy, "search strategy: astar or ucs")
	f.String("heuristic", defaults.Search.Heuristic, "heuristic: gap or gap-plate")
	f.String("replace", defaults.Search.Replace, "frontier replacement: better or always")
	f.Int("max-expansions", defaults.Search.MaxExpansions, "stop after this many expansions (0 = unlimited)")
	f.Int("size", defaults.Random.Size, "pancakes in a random stack")
	f.Int64("seed", defaults.Random.Seed, "random seed (0 = from clock)")
	f.String("format", defaults.Output.Format, "output format: text, json or toml")
	f.Bool("draw", defaults.Output.Draw, "draw each stack in text output")
	f.BoolVar(&opts.random, "random", false, "solve a random stack")
	f.BoolVar(&opts.metrics, "metrics", false, "print search metrics")

	return cmd
}

// solveKeys maps config keys to the solve flags that override them.
var solveKeys = map[string]string{
	"search.strategy":       "strategy",
	"search.heuristic":      "heuristic",
	"search.replace":        "replace",
	"search.max_expansions": "max-expansions",
	"random.size":           "size",
	"random.seed":           "seed",
	"output.format":         "format",
	"output.draw":           "draw",
}

// bindFlags ties config keys to cmd's flags so that flags set on the
// command line win over the config file and the environment. Binding
// happens when the command runs, since commands share keys.
func (c *CLI) bindFlags(cmd *cobra.Command, keys map[string]string) {
	for key, name := range keys {
		if f := cmd.Flags().Lookup(name); f != nil {
			_ = c.viper.BindPFlag(key, f)
		}
	}
}

func (c *CLI) runSolve(ctx context.Context, args []string, opts solveOpts) error {
	cfg, err := c.currentConfig()
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	logger := loggerFromContext(ctx).With("run", runID)

	initial, err := c.initialStack(logger, cfg, args, opts.random)
	if err != nil {
		return err
	}

	strategy, searchOpts, err := cfg.SearchOptions()
	if err != nil {
		return wrap(err, "search options")
	}
	searchOpts = append(searchOpts, search.WithContext(ctx))
	if logger.GetLevel() <= log.DebugLevel {
		searchOpts = append(searchOpts, search.WithOnPop(func(st *pancake.State) {
			logger.Debug("Pop", "stack", st.Stack(), "g", st.G(), "h", st.H())
		}))
	}

	var collector *telemetry.Collector
	if opts.metrics {
		collector, err = telemetry.NewCollector(prometheus.NewRegistry())
		if err != nil {
			return err
		}
		searchOpts = append(searchOpts, collector.Options(strategy)...)
	}

	logger.Info("Solving", "strategy", strategy, "heuristic", cfg.Search.Heuristic, "stack", initial)
	start := time.Now()
	out, searchErr := search.Search(initial, strategy, searchOpts...)
	if out == nil {
		return wrap(searchErr, "search")
	}
	logger.Info("Search finished",
		"status", out.Status,
		"flips", out.Length(),
		"expanded", out.Expanded,
		"elapsed", time.Since(start).Round(time.Microsecond))

	if searchErr != nil && !errors.Is(searchErr, search.ErrExpansionLimit) {
		return wrap(searchErr, "search")
	}
	if searchErr != nil {
		logger.Warn("Expansion limit reached", "limit", cfg.Search.MaxExpansions)
	}

	r := newReport(runID, cfg.Search.Heuristic, initial, out, len(pancake.Naive(initial)))
	if err := writeReport(c.out, r, cfg.Output.Format, cfg.Output.Draw); err != nil {
		return wrap(err, "write report")
	}

	if collector != nil {
		collector.Observe(out)
		if err := collector.WriteText(c.out); err != nil {
			return err
		}
	}

	return searchErr
}

// initialStack parses args, or generates a stack when asked to or when
// there is nothing to parse.
func (c *CLI) initialStack(logger *log.Logger, cfg *config.Config, args []string, random bool) (pancake.Stack, error) {
	if !random && len(args) > 0 {
		s, err := parseStack(args, 0)
		if err != nil {
			return nil, wrap(err, "parse stack")
		}
		return s, nil
	}

	seed := cfg.Random.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s, err := pancake.Shuffled(cfg.Random.Size, pancake.NewRand(seed))
	if err != nil {
		return nil, wrapf(err, "random stack of %d", cfg.Random.Size)
	}
	logger.Info("Generated random stack", "size", cfg.Random.Size, "seed", seed)

	return s, nil
}
