package schedule

import (
	"sort"
	"time"

	"github.com/rickar/cal/v2/ar"
)

// Feriados lists the Argentine national holidays, taken from the rickar/cal
// country data: the feriados inamovibles plus the Easter-relative ones
// (Carnaval, Viernes Santo).
var Feriados = ar.Holidays

// ArgentineHolidays computes the Argentine national holidays for the given
// years and returns them as a [HolidaySet] ready to pass to
// [IsBusinessDay]. Each holiday contributes its statutory date, not the
// decree-moved observed one. Each year's dates are sorted.
func ArgentineHolidays(years ...int) HolidaySet {
	set := make(HolidaySet, len(years))
	for _, year := range years {
		dates := make([]time.Time, 0, len(Feriados))
		for _, h := range Feriados {
			actual, _ := h.Calc(year)
			if actual.IsZero() {
				continue
			}
			dates = append(dates, actual)
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
		set[year] = dates
	}
	return set
}
