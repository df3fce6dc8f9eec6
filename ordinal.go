// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datecalc

const (
	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461
)

// Ordinal returns the date's ordinal day number: its sequential index
// since a fixed epoch, with Jan 1 of year 1 as day 1. The difference of
// two ordinals is the exact number of days between the dates.
func (cd CalendarDate) Ordinal() int {
	y := cd.Year() - 1
	return y*365 + y/4 - y/100 + y/400 + cd.DayOfYear()
}

// calendarDateFromOrdinal is the closed form inverse of Ordinal. It peels
// off whole 400, 100, 4 and 1 year cycles, capping the 100 and 1 year
// counts at 3 so that the trailing leap day lands in the final year of
// its cycle.
func calendarDateFromOrdinal(ord int) CalendarDate {
	d := ord - 1
	n400 := d / daysPer400Years
	d -= n400 * daysPer400Years
	n100 := d / daysPer100Years
	if n100 == 4 {
		n100 = 3
	}
	d -= n100 * daysPer100Years
	n4 := d / daysPer4Years
	d -= n4 * daysPer4Years
	n1 := d / 365
	if n1 == 4 {
		n1 = 3
	}
	d -= n1 * 365
	year := n400*400 + n100*100 + n4*4 + n1 + 1
	month, day := dateFromDayOfYear(year, d+1)
	return newCalendarDate(year, month, day)
}

// AddDays returns the calendar date n days later; n may be negative.
// Month, year and leap boundaries are handled exactly via the ordinal
// representation.
func (cd CalendarDate) AddDays(n int) CalendarDate {
	return calendarDateFromOrdinal(cd.Ordinal() + n)
}

// SubDays returns the calendar date n days earlier, equivalent to
// AddDays(-n).
func (cd CalendarDate) SubDays(n int) CalendarDate {
	return cd.AddDays(-n)
}

// Tomorrow returns the date of the next day.
func (cd CalendarDate) Tomorrow() CalendarDate {
	return cd.AddDays(1)
}

// Yesterday returns the date of the previous day.
func (cd CalendarDate) Yesterday() CalendarDate {
	return cd.AddDays(-1)
}

// DaysBetween returns the signed number of days from a to b, positive
// when b is after a, zero when they are equal. Swapping the arguments
// negates the result exactly.
func DaysBetween(a, b CalendarDate) int {
	return b.Ordinal() - a.Ordinal()
}

// WeeksBetween returns the number of whole weeks from a to b, that is
// DaysBetween(a, b)/7 truncated toward zero.
func WeeksBetween(a, b CalendarDate) int {
	return DaysBetween(a, b) / 7
}
