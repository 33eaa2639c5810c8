package schedule

import (
	"fmt"
	"time"
)

// parseLayouts is the ordered list of formats tried by [ParseDate]. The
// first successful layout wins. The trailing Z in the fifth entry is a
// literal character, not a zone marker.
var parseLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999",
	"2006-01-02T15:04:05.999999Z",
	"2006-01-02T15:04:05",
}

// isoLayouts is the stricter list accepted by [EpochMillisString].
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// isoCompact is the format consumed and produced by [AdjustDate].
const isoCompact = "2006-01-02T15:04:05"

// ParseDate attempts each supported layout in order and returns the first
// match. The second return value is false when no layout matches; that is
// the only failure mode, there is no error. Parsed values are in UTC since
// none of the layouts carries an offset.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseDates applies [ParseDate] element-wise. Strings that match no layout
// yield the zero time in their position.
func ParseDates(ss []string) []time.Time {
	out := make([]time.Time, len(ss))
	for i, s := range ss {
		out[i], _ = ParseDate(s)
	}
	return out
}

// EpochMillis returns t as milliseconds since the Unix epoch, truncated
// toward zero.
func EpochMillis(t time.Time) int64 {
	ms := t.UnixMilli()
	// UnixMilli floors. The two differ only before the epoch when
	// sub-millisecond digits are present.
	if ms < 0 && t.Nanosecond()%int(time.Millisecond) != 0 {
		ms++
	}
	return ms
}

// EpochMillisString parses s as strict ISO 8601 and returns it as epoch
// milliseconds. Offset-less strings are interpreted in the default Buenos
// Aires zone. Unlike [ParseDate], a malformed input is an error.
func EpochMillisString(s string) (int64, error) {
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, artZone); err == nil {
			return t.UnixMilli(), nil
		}
	}
	return 0, fmt.Errorf("schedule: %q is not an ISO 8601 date", s)
}

// FromEpochMillis converts epoch milliseconds back to an instant in the
// default Buenos Aires zone. The arithmetic stays in integer milliseconds,
// so large timestamps lose no precision.
func FromEpochMillis(ms int64) time.Time {
	return time.UnixMilli(ms).In(artZone)
}

// AdjustDate shifts a date string in 2006-01-02T15:04:05 format by the
// given number of days (negative to go back) and returns it in the same
// format.
func AdjustDate(s string, days int) (string, error) {
	t, err := time.Parse(isoCompact, s)
	if err != nil {
		return "", fmt.Errorf("schedule: invalid date %q: %w", s, err)
	}
	return t.AddDate(0, 0, days).Format(isoCompact), nil
}
