package schedule

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Random fixture generators for tests and demo data. All of them draw from
// the process-wide math/rand/v2 source; none keep state of their own.

// RandomPastDate returns a date up to 365 days before origin, formatted as
// 2006-01-02T00:00:00. Passing a fixed offset (typically negative) makes
// the result deterministic; a fixed offset of 0 still randomizes, so that
// callers can thread an optional value through unchanged.
func RandomPastDate(origin time.Time, fixedOffsetDays ...int) string {
	offset := -rand.IntN(366)
	if len(fixedOffsetDays) > 0 && fixedOffsetDays[0] != 0 {
		offset = fixedOffsetDays[0]
	}
	return origin.AddDate(0, 0, offset).Format("2006-01-02") + "T00:00:00"
}

// RandomPastDateTime returns an instant up to 365 days in the past with a
// six-digit fractional second. When truncateMillis is true the fraction is
// cut to millisecond precision and zero-padded back to six digits.
func RandomPastDateTime(truncateMillis bool) string {
	t := Today().AddDate(0, 0, -rand.IntN(366))
	frac := t.Format(".000000")[1:]
	if truncateMillis {
		frac = frac[:3] + "000"
	}
	return t.Format("2006-01-02T15:04:05") + "." + frac
}

// RandomMillisecondOfDay returns a random millisecond offset within a day,
// in [0, 86399999].
func RandomMillisecondOfDay() int {
	return rand.IntN(86400000)
}

// RandomFullDate returns the given calendar date with a random time-of-day
// down to microseconds, formatted as 2006-01-02 15:04:05.000000. Fields
// that are zero or negative take the defaults: day 1, month 1, year 2019.
func RandomFullDate(day, month, year int) string {
	if day <= 0 {
		day = 1
	}
	if month <= 0 {
		month = 1
	}
	if year <= 0 {
		year = 2019
	}
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d.%06d",
		year, month, day, rand.IntN(24), rand.IntN(60), rand.IntN(60), rand.IntN(1000000))
}
