// Package schedule provides business-day arithmetic, calendar-aware date
// shifting, string/epoch conversions, random date fixtures, and a small
// wall-clock benchmarking helper.
//
// Business days are Monday through Friday. Holiday filtering is opt-in: the
// caller passes a [HolidaySet] (year keyed, as the data is usually stored)
// and only [IsBusinessDay] consults it. A ready-made Argentine national
// holiday set is available via [ArgentineHolidays].
//
// The default timezone is America/Argentina/Buenos_Aires (UTC-3). It is used
// by [Today], by [FromEpochMillis], and to interpret offset-less strings in
// [EpochMillisString]. All other functions operate on the calendar fields of
// their inputs as given, without zone conversion.
//
// Basic usage:
//
//	monday := time.Date(2023, time.May, 22, 0, 0, 0, 0, time.UTC)
//	schedule.IsBusinessDay(monday, nil)              // true
//	schedule.NextBusinessDay(monday.AddDate(0, 0, -2), false)
//	schedule.ShiftDate(monday, 1, 1, 1)              // 2024-06-23
package schedule

import "time"

// nowFunc returns the current time. It is a variable so tests can pin it.
var nowFunc = time.Now

// Today returns the current instant in the default Buenos Aires timezone.
func Today() time.Time {
	return nowFunc().In(artZone)
}
