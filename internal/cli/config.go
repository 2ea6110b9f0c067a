package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mcoot/othello-arena/internal/config"
)

// options holds flag values; only flags set on the command line override
// the loaded config
type options struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
	Output     string
	Verbose    bool

	Size         int
	TimeLimit    time.Duration
	IllegalLimit int
	Black        string
	White        string
	Seed         uint64
}

// apply merges explicitly set flags into c
func (o *options) apply(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("log-level") {
		c.LogLevel = o.LogLevel
	}
	if o.Verbose {
		c.LogLevel = "debug"
	}
	if flags.Changed("log-format") {
		c.LogFormat = o.LogFormat
	}
	if flags.Changed("output") {
		c.Output = o.Output
	}

	if flags.Changed("size") {
		c.Match.Size = o.Size
	}
	if flags.Changed("time-limit") {
		c.Match.TimeLimit = o.TimeLimit
	}
	if flags.Changed("illegal-limit") {
		c.Match.IllegalLimit = o.IllegalLimit
	}
	if flags.Changed("black") {
		c.Match.Black = o.Black
	}
	if flags.Changed("white") {
		c.Match.White = o.White
	}
	if flags.Changed("seed") {
		c.Match.Seed = o.Seed
	}
}
