// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datecalc

import "fmt"

// DateDifference reports the difference between two dates as four
// independent whole-unit counts. Each field is a complete calendar-aware
// count of the elapsed span in that unit, not a decomposition: a 400 day
// gap yields Days 400, Weeks 57, Months 13 and Years 1. Use Age for a
// non-overlapping breakdown.
type DateDifference struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Weeks  int `json:"weeks"`
	Days   int `json:"days"`
}

func (dd DateDifference) String() string {
	return fmt.Sprintf("years: %d, months: %d, weeks: %d, days: %d", dd.Years, dd.Months, dd.Weeks, dd.Days)
}

// Difference returns the whole-unit difference from a to b for each
// supported unit, each computed at its own granularity. All fields are
// zero when a == b.
func Difference(a, b CalendarDate) DateDifference {
	return DateDifference{
		Years:  YearsBetween(a, b),
		Months: MonthsBetween(a, b),
		Weeks:  WeeksBetween(a, b),
		Days:   DaysBetween(a, b),
	}
}
