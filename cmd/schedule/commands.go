package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lcastiglione/pp-schedule"
)

const dateFormat = "2006-01-02"

// parseArg runs an argument through the library's permissive parser.
func parseArg(s string) (time.Time, error) {
	t, ok := schedule.ParseDate(s)
	if !ok {
		return time.Time{}, fmt.Errorf("unrecognized date %q", s)
	}
	logger.Debug("parsed argument", zap.String("input", s), zap.Time("value", t))
	return t, nil
}

var betweenCmd = &cobra.Command{
	Use:   "between <start> <end>",
	Short: "List business days after start, up to and including end",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseArg(args[0])
		if err != nil {
			return err
		}
		end, err := parseArg(args[1])
		if err != nil {
			return err
		}
		for _, day := range schedule.BusinessDaysBetween(start, end) {
			fmt.Fprintln(cmd.OutOrStdout(), day.Format(dateFormat))
		}
		return nil
	},
}

var (
	keepFlag bool

	nextCmd = &cobra.Command{
		Use:   "next <date>",
		Short: "Print the next business day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseArg(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), schedule.NextBusinessDay(t, keepFlag).Format(dateFormat))
			return nil
		},
	}

	prevCmd = &cobra.Command{
		Use:   "prev <date>",
		Short: "Print the previous business day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseArg(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), schedule.PreviousBusinessDay(t, keepFlag).Format(dateFormat))
			return nil
		},
	}
)

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Print the last business day up to today",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), schedule.LastBusinessDay().Format(dateFormat))
		return nil
	},
}

var (
	holidayFile  string
	useArgentine bool

	checkCmd = &cobra.Command{
		Use:   "check <date>",
		Short: "Report whether a date is a business day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseArg(args[0])
			if err != nil {
				return err
			}
			var holidays schedule.HolidaySet
			switch {
			case holidayFile != "":
				holidays, err = loadHolidayFile(holidayFile)
				if err != nil {
					return err
				}
				logger.Debug("loaded holiday file",
					zap.String("path", holidayFile), zap.Int("years", len(holidays)))
			case useArgentine:
				holidays = schedule.ArgentineHolidays(t.Year())
			}
			fmt.Fprintln(cmd.OutOrStdout(), schedule.IsBusinessDay(t, holidays))
			return nil
		},
	}
)

var (
	shiftDays   int
	shiftMonths int
	shiftYears  int

	shiftCmd = &cobra.Command{
		Use:   "shift <date>",
		Short: "Shift a date by days, months and years",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseArg(args[0])
			if err != nil {
				return err
			}
			shifted := schedule.ShiftDate(t, shiftDays, shiftMonths, shiftYears)
			fmt.Fprintln(cmd.OutOrStdout(), shifted.Format(dateFormat))
			return nil
		},
	}
)

var parseCmd = &cobra.Command{
	Use:   "parse <string>...",
	Short: "Try the permissive multi-format parser on each argument",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			if t, ok := schedule.ParseDate(arg); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", arg, t.Format(time.RFC3339))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tno match\n", arg)
			}
		}
		return nil
	},
}

var epochCmd = &cobra.Command{
	Use:   "epoch <date>",
	Short: "Convert a strict ISO 8601 date to epoch milliseconds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ms, err := schedule.EpochMillisString(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ms)
		return nil
	},
}

var (
	benchRepeat int
	benchNumber int

	benchCmd = &cobra.Command{
		Use:   "bench <string>",
		Short: "Time the permissive parser on the given input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			ok := schedule.Measure(
				schedule.Timeit{
					Name:   "ParseDate",
					Repeat: benchRepeat,
					Number: benchNumber,
					Output: cmd.OutOrStdout(),
				},
				func() bool {
					_, ok := schedule.ParseDate(input)
					return ok
				})
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: no match\n", input)
			}
			return nil
		},
	}
)

func init() {
	nextCmd.Flags().BoolVar(&keepFlag, "keep", false, "return the date itself when it already is a business day")
	prevCmd.Flags().BoolVar(&keepFlag, "keep", false, "return the date itself when it already is a business day")
	checkCmd.Flags().StringVar(&holidayFile, "holidays", "", "YAML file mapping years to holiday dates")
	checkCmd.Flags().BoolVar(&useArgentine, "ar", false, "exclude Argentine national holidays")
	shiftCmd.Flags().IntVar(&shiftDays, "days", 0, "days to add")
	shiftCmd.Flags().IntVar(&shiftMonths, "months", 0, "months to add")
	shiftCmd.Flags().IntVar(&shiftYears, "years", 0, "years to add")
	benchCmd.Flags().IntVar(&benchRepeat, "repeat", 1, "number of trials")
	benchCmd.Flags().IntVar(&benchNumber, "number", 1, "calls per trial")
}
