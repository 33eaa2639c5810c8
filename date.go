package schedule

import "time"

// artZone is the America/Argentina/Buenos_Aires timezone (UTC-3) used by
// [Today] and the epoch conversions when no explicit zone is available.
// Argentina has not observed DST since 2009, so a fixed offset suffices.
var artZone = time.FixedZone("America/Argentina/Buenos_Aires", -3*60*60)

// date is an internal comparable key for calendar-date equality checks.
// Users work with time.Time; this type is not exported.
type date struct {
	year  int
	month time.Month
	day   int
}

// dateFromTime extracts the calendar date of t in t's own location.
// No zone conversion happens here: a value carries its calendar fields
// with it, which is how the rest of this package treats inputs.
func dateFromTime(t time.Time) date {
	y, m, d := t.Date()
	return date{year: y, month: m, day: d}
}

// midnight returns the date at 00:00:00 in the given location.
func (d date) midnight(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}
