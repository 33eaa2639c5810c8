package schedule

import "time"

// floorDiv divides a by b rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ShiftDate adds years, then months, then days to ref. Month overflow
// carries into the year (month 13 becomes January of the next year, month 0
// becomes December of the previous one). When the target month has no such
// day (e.g. January 31 shifted one month), the result clamps to day 1 of
// the following month instead of failing.
//
// A zero shift returns ref untouched; any other shift discards ref's
// time-of-day and returns midnight in ref's location.
func ShiftDate(ref time.Time, days, months, years int) time.Time {
	if days == 0 && months == 0 && years == 0 {
		return ref
	}
	y, m, d := ref.Date()
	total := int(m) + months
	year := y + years + floorDiv(total-1, 12)
	month := time.Month(total - 12*floorDiv(total-1, 12))
	if d > daysIn(year, month) {
		d = 1
		if month++; month > time.December {
			month = time.January
			year++
		}
	}
	return time.Date(year, month, d, 0, 0, 0, 0, ref.Location()).AddDate(0, 0, days)
}
