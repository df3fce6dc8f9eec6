// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datecalc provides exact arithmetic over proleptic Gregorian
// calendar dates with no time of day or timezone component: day offsets,
// calendar-aware differences in days, weeks, months and years, age
// breakdowns and the supporting month/leap-year calculations. All
// operations are pure and run in constant time using ordinal day numbers
// rather than iterating over the calendar.
package datecalc

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month as an int.
type Month time.Month

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d", n)
	}
	return Month(n), nil
}

// ParseMonth parses a month name of the form "Jan" to "Dec" or any other longer
// prefixes of "January" to "December" in either lower or upper case.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(val)
	if len(lc) == 0 {
		return 0, fmt.Errorf("empty month name")
	}
	for i := range months {
		if strings.HasPrefix(months[i], lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %s", val)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

var (
	daysBeforeMonth     []int // per month cumulative days in year so [0, 31, 59 etc]
	daysBeforeMonthLeap []int // per month cumulative days in leap year [0, 31, 60 etc]
	daysInMonth         []int // days in each month
	daysInMonthLeap     []int
	months              = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	daysBeforeMonth = make([]int, 12)
	daysBeforeMonthLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		daysBeforeMonth[i+1] += daysBeforeMonth[i] + daysInMonth[i]
		daysBeforeMonthLeap[i+1] += daysBeforeMonthLeap[i] + daysInMonthLeap[i]
	}
}

// DaysInMonth returns the number of days in the given month for the given year.
func DaysInMonth(year int, month Month) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

func daysInMonthForYear(year int) []int {
	if IsLeap(year) {
		return daysInMonthLeap
	}
	return daysInMonth
}

// IsLeap returns true if the given year is a leap year per the proleptic
// Gregorian rule: divisible by 4, except centuries not divisible by 400.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInYear returns the number of days in the given year, 365 or 366.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// dayOfYearFor returns the day of the year as 1-365 for non-leap years
// and 1-366 for leap years. The day must be valid for the month and year.
func dayOfYearFor(year int, month Month, day int) int {
	if IsLeap(year) {
		return daysBeforeMonthLeap[month-1] + day
	}
	return daysBeforeMonth[month-1] + day
}

// dateFromDayOfYear is the inverse of dayOfYearFor: it returns the month
// and day for the 1-based day of the given year.
func dateFromDayOfYear(year, doy int) (Month, int) {
	dim := daysInMonthForYear(year)
	for month := 0; month < 12; month++ {
		if doy <= dim[month] {
			return Month(month + 1), doy
		}
		doy -= dim[month]
	}
	panic("unreachable")
}
