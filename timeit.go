package schedule

import (
	"fmt"
	"io"
	"math"
	"runtime/debug"
	"strconv"
	"strings"
	"time"
)

// Timeit configures [Measure]. The zero value runs a single trial with a
// single call and reports nothing.
type Timeit struct {
	// Name labels the measured function in the report.
	Name string
	// Repeat is the number of trials. Values below 1 mean 1.
	Repeat int
	// Number is the number of calls per trial. Values below 1 mean 1.
	Number int
	// Output receives the human-readable report. nil disables reporting.
	Output io.Writer
}

// pauseGC disables the garbage collector and returns the function that
// restores the previous setting. The toggle is process-wide, so concurrent
// measurements are not meaningful.
func pauseGC() func() {
	prev := debug.SetGCPercent(-1)
	return func() { debug.SetGCPercent(prev) }
}

// Measure runs fn Number times per trial for Repeat trials, summing
// wall-clock nanoseconds per trial, and reports the fastest trial's
// per-call average. Garbage collection is paused for the duration and
// restored on every exit path, including a panic from fn.
//
// The return value is whatever fn returned on its final invocation,
// whether or not a report was written.
func Measure[T any](cfg Timeit, fn func() T) T {
	repeat := max(cfg.Repeat, 1)
	number := max(cfg.Number, 1)

	resume := pauseGC()
	defer resume()

	var result T
	best := int64(math.MaxInt64)
	for range repeat {
		var total int64
		for range number {
			start := time.Now()
			result = fn()
			total += time.Since(start).Nanoseconds()
		}
		if total < best {
			best = total
		}
	}

	if cfg.Output != nil {
		name := cfg.Name
		if name == "" {
			name = "function"
		}
		avg := float64(best) / float64(number)
		fmt.Fprintf(cfg.Output,
			"\n`%s` ran in an average of %s over %d trials with %d calls per trial\n\n",
			name, FormatDuration(avg), repeat, number)
	}
	return result
}

// FormatDuration renders a nanosecond count using the largest unit that
// keeps the value under 1000 (under 60 for minutes), rounded to three
// decimals and always showing at least one: 1500 becomes "1.5uS" and
// exactly 1000 becomes "1.0uS".
func FormatDuration(ns float64) string {
	switch {
	case ns < 1_000:
		return formatScaled(ns) + "nS"
	case ns < 1_000_000:
		return formatScaled(ns/1_000) + "uS"
	case ns < 1_000_000_000:
		return formatScaled(ns/1_000_000) + "mS"
	case ns < 60_000_000_000:
		return formatScaled(ns/1_000_000_000) + "S"
	default:
		return formatScaled(ns/60_000_000_000) + "min"
	}
}

// formatScaled rounds to three decimals and trims trailing zeros, keeping
// at least one decimal digit.
func formatScaled(v float64) string {
	s := strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
