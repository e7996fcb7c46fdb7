package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pancake/internal/config"
	"github.com/katalvlaran/pancake/pancake"
)

// randomCommand prints a shuffled stack, one line, ready to paste into solve.
func (c *CLI) randomCommand() *cobra.Command {
	defaults := config.Default()
	var draw bool

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a random stack",
		Args:  cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, args []string) {
			c.bindFlags(cmd, map[string]string{
				"random.size": "size",
				"random.seed": "seed",
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.currentConfig()
			if err != nil {
				return err
			}
			seed := cfg.Random.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			s, err := pancake.Shuffled(cfg.Random.Size, pancake.NewRand(seed))
			if err != nil {
				return wrapf(err, "random stack of %d", cfg.Random.Size)
			}
			loggerFromContext(cmd.Context()).Debug("Generated random stack", "size", cfg.Random.Size, "seed", seed)

			if draw {
				newPainter(c.out).drawStack(s)
			}
			for i, v := range s {
				if i > 0 {
					fmt.Fprint(c.out, " ")
				}
				fmt.Fprint(c.out, v)
			}
			fmt.Fprintln(c.out)

			return nil
		},
	}

	f := cmd.Flags()
	f.Int("size", defaults.Random.Size, "pancakes in the stack")
	f.Int64("seed", defaults.Random.Seed, "random seed (0 = from clock)")
	f.BoolVar(&draw, "draw", false, "draw the stack above the sizes")

	return cmd
}
