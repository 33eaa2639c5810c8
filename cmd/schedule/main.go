// Command schedule exposes the pp-schedule library on the command line:
// business-day queries, calendar-aware date shifting, permissive date
// parsing, epoch conversions, and a quick timing harness.
//
// Usage:
//
//	schedule between 2023-01-01 2023-01-07
//	schedule next 2023-05-19 --keep
//	schedule check 2023-05-25 --ar
//	schedule check 2023-05-19 --holidays feriados.yaml
//	schedule shift 2023-01-01 --days 1 --months 1 --years 1
//	schedule epoch 2023-05-19
//	schedule bench "2023-05-19 12:30:45" --repeat 5 --number 1000
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Business-day and date/time utilities",
	Long: `Business-day arithmetic, calendar-aware date shifting and date/time
conversions, as provided by the pp-schedule library.

Dates are accepted in any of the library's parse formats, e.g.
2023-05-19, "2023-05-19 12:30:45", 2023-05-19T12:30:45.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			if l, err := zap.NewDevelopment(); err == nil {
				logger = l
			}
		}
	},
}

func main() {
	defer func() { _ = logger.Sync() }()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(
		betweenCmd,
		nextCmd,
		prevCmd,
		lastCmd,
		checkCmd,
		shiftCmd,
		parseCmd,
		epochCmd,
		benchCmd,
	)
}
