// Package cli implements the pancake command-line interface.
//
// Commands:
//   - solve:  sort a stack given on the command line, or a random one, with A* or UCS
//   - random: print a random stack
//
// Settings come from flags, an optional --config file and PANCAKE_*
// environment variables (see internal/config). All commands support
// --verbose (-v) for debug logging; loggers travel in the command context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pancake/internal/config"
)

// appName is the application name used for display and the default config file.
const appName = "pancake"

// LogInfo is the starting log level for main.go; --verbose and
// logging.level adjust it once the config is read.
const LogInfo = log.InfoLevel

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer
	viper      *viper.Viper
	configPath string
	verbose    bool
}

// New creates a CLI writing results to out and logs to logOut.
func New(out, logOut io.Writer, level log.Level) *CLI {
	v := viper.New()
	config.SetDefaults(v)

	return &CLI{
		Logger: newLogger(logOut, level),
		out:    out,
		viper:  v,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Pancake sorts stacks of pancakes with the fewest flips",
		Long:          `Pancake finds a minimum-length sequence of prefix flips that sorts a stack of pancakes, using A* or uniform-cost search over the flip graph.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, c.Logger))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (toml, yaml or json)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.randomCommand())

	return root
}

// loadConfig reads the optional config file and applies the log level.
// --verbose wins over logging.level. The rest of the config is validated by
// currentConfig, once the subcommand has bound its flags.
func (c *CLI) loadConfig() error {
	if c.configPath != "" {
		if err := config.ReadFile(c.viper, c.configPath); err != nil {
			return wrapf(err, "read config %s", c.configPath)
		}
	}
	if c.verbose {
		c.SetLogLevel(log.DebugLevel)
		return nil
	}

	level, err := log.ParseLevel(c.viper.GetString("logging.level"))
	if err != nil {
		return wrap(err, "logging.level")
	}
	c.SetLogLevel(level)

	return nil
}

// currentConfig returns the validated configuration including flag
// overrides. Call it only after bindFlags.
func (c *CLI) currentConfig() (*config.Config, error) {
	cfg, err := config.Load(c.viper)
	if err != nil {
		return nil, wrap(err, "load config")
	}
	return cfg, nil
}
