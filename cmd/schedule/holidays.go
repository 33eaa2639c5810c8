package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lcastiglione/pp-schedule"
)

// loadHolidayFile reads a YAML file mapping years to lists of holiday
// dates, e.g.:
//
//	2023:
//	  - 2023-05-19
//	  - 2023-12-25
//
// Dates are accepted in any of the library's parse formats.
func loadHolidayFile(path string) (schedule.HolidaySet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("holiday file: %w", err)
	}

	var byYear map[int][]string
	if err := yaml.Unmarshal(raw, &byYear); err != nil {
		return nil, fmt.Errorf("holiday file %s: %w", path, err)
	}

	set := make(schedule.HolidaySet, len(byYear))
	for year, dates := range byYear {
		for _, s := range dates {
			t, ok := schedule.ParseDate(s)
			if !ok {
				return nil, fmt.Errorf("holiday file %s: unrecognized date %q for year %d", path, s, year)
			}
			set[year] = append(set[year], t)
		}
	}
	return set, nil
}
