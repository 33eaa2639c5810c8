package schedule

import "time"

// HolidaySet maps a year to the holiday dates falling in it. Only the
// calendar date of each entry matters; time-of-day and zone are ignored.
// A nil HolidaySet means "no holidays".
type HolidaySet map[int][]time.Time

// Contains reports whether the calendar date of t is registered as a
// holiday for t's year.
func (h HolidaySet) Contains(t time.Time) bool {
	days, ok := h[t.Year()]
	if !ok {
		return false
	}
	d := dateFromTime(t)
	for _, hd := range days {
		if dateFromTime(hd) == d {
			return true
		}
	}
	return false
}

// weekdayIndex returns the day of the week with Monday as 0 and Sunday as 6.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// IsBusinessDay reports whether t falls on a business day: Monday through
// Friday, excluding any date present in holidays. Pass nil to skip holiday
// filtering.
func IsBusinessDay(t time.Time, holidays HolidaySet) bool {
	if weekdayIndex(t) > 4 {
		return false
	}
	return !holidays.Contains(t)
}

// PreviousBusinessDay returns the closest business day before t, preserving
// t's time-of-day. If keep is true and t already is a business day, t is
// returned unchanged. Weekends are the only non-business days considered.
func PreviousBusinessDay(t time.Time, keep bool) time.Time {
	if keep && IsBusinessDay(t, nil) {
		return t
	}
	cur := t.AddDate(0, 0, -1)
	for !IsBusinessDay(cur, nil) {
		cur = cur.AddDate(0, 0, -1)
	}
	return cur
}

// NextBusinessDay returns the closest business day after t, preserving t's
// time-of-day. If keep is true and t already is a business day, t is
// returned unchanged.
func NextBusinessDay(t time.Time, keep bool) time.Time {
	if keep && IsBusinessDay(t, nil) {
		return t
	}
	cur := t.AddDate(0, 0, 1)
	for !IsBusinessDay(cur, nil) {
		cur = cur.AddDate(0, 0, 1)
	}
	return cur
}

// LastBusinessDay returns the most recent business day up to today, at
// midnight in the default zone. On Saturdays and Sundays that is the
// preceding Friday; on business days it is today itself.
func LastBusinessDay() time.Time {
	t := Today()
	if wd := weekdayIndex(t); wd > 4 {
		t = t.AddDate(0, 0, -(wd - 4))
	}
	return dateFromTime(t).midnight(t.Location())
}

// BusinessDaysBetween returns every business day strictly after start and
// up to end inclusive, each normalized to midnight in start's location.
// Returns nil when end is not after start or no business day falls in the
// range.
func BusinessDaysBetween(start, end time.Time) []time.Time {
	var days []time.Time
	for cur := start.AddDate(0, 0, 1); !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		if weekdayIndex(cur) <= 4 {
			days = append(days, dateFromTime(cur).midnight(cur.Location()))
		}
	}
	return days
}
