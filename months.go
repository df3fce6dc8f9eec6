// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datecalc

// AddMonths returns the calendar date n months later (earlier for
// negative n), preserving the day of the month. When the target month is
// shorter the day is clamped to its last valid day rather than
// overflowing into the next month, so Jan 31 plus one month is Feb 29 in
// a leap year and Feb 28 otherwise.
func (cd CalendarDate) AddMonths(n int) CalendarDate {
	m := cd.Year()*12 + int(cd.Month()) - 1 + n
	year, month := m/12, Month(m%12+1)
	day := cd.Day()
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return newCalendarDate(year, month, day)
}

// AddYears returns the calendar date n years later, equivalent to
// AddMonths(n*12). A Feb 29 start clamps to Feb 28 in non-leap years.
func (cd CalendarDate) AddYears(n int) CalendarDate {
	return cd.AddMonths(n * 12)
}

// MonthsBetween returns the whole number of calendar months from a to b
// using the anniversary rule: the count m, with sign following b relative
// to a, such that advancing a by m months (day of month preserved,
// clamped to the shorter month's length if needed) does not overshoot b.
func MonthsBetween(a, b CalendarDate) int {
	m := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b >= a {
		if a.AddMonths(m) > b {
			m--
		}
		return m
	}
	if a.AddMonths(m) < b {
		m++
	}
	return m
}

// YearsBetween returns the whole number of calendar years from a to b: a
// year is counted only once the month and day of a have been reached in
// b's timeline, with a Feb 29 anniversary clamped to Feb 28 in non-leap
// years. Sign follows b relative to a.
func YearsBetween(a, b CalendarDate) int {
	y := b.Year() - a.Year()
	if b >= a {
		if a.AddYears(y) > b {
			y--
		}
		return y
	}
	if a.AddYears(y) < b {
		y++
	}
	return y
}
