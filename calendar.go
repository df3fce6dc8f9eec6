// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datecalc

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CalendarDate represents an immutable year, month and day in the
// proleptic Gregorian calendar with no time of day or timezone attached.
// It is encoded as year<<16|month<<8|day so that values order and compare
// as dates. Years 1 through 9999 are supported; the zero value is not a
// valid date.
type CalendarDate uint32

func newCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate(uint32(year)<<16 | uint32(month)<<8 | uint32(day))
}

// NewCalendarDate returns the CalendarDate for the given year, month and
// day. The day must be valid for the month and year, eg. 29 is accepted
// for February only in a leap year; an out of range day is an error
// (wrapping ErrInvalidDate) and is never clamped.
func NewCalendarDate(year int, month Month, day int) (CalendarDate, error) {
	if year < 1 || year > 9999 {
		return 0, fmt.Errorf("invalid year: %d: %w", year, ErrInvalidDate)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("invalid month: %d: %w", month, ErrInvalidDate)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return 0, fmt.Errorf("invalid day %d for %s %d: %w", day, time.Month(month), year, ErrInvalidDate)
	}
	return newCalendarDate(year, month, day), nil
}

// CalendarDateFromTime returns the CalendarDate for the given time in its
// location.
func CalendarDateFromTime(when time.Time) CalendarDate {
	return newCalendarDate(when.Year(), Month(when.Month()), when.Day())
}

// Year returns the year.
func (cd CalendarDate) Year() int {
	return int(cd >> 16)
}

// Month returns the month.
func (cd CalendarDate) Month() Month {
	return Month(cd >> 8 & 0xff)
}

// Day returns the day of the month.
func (cd CalendarDate) Day() int {
	return int(cd & 0xff)
}

// DayOfYear returns the day of the year as 1-365 for non-leap years and
// 1-366 for leap years.
func (cd CalendarDate) DayOfYear() int {
	return dayOfYearFor(cd.Year(), cd.Month(), cd.Day())
}

// Weekday returns the day of the week the date falls on.
func (cd CalendarDate) Weekday() time.Weekday {
	// Ordinal 1, Jan 1 of year 1, is a Monday.
	return time.Weekday(cd.Ordinal() % 7)
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", cd.Month(), cd.Day(), cd.Year())
}

// MarshalText implements encoding.TextMarshaler.
func (cd CalendarDate) MarshalText() ([]byte, error) {
	return []byte(cd.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (cd *CalendarDate) UnmarshalText(data []byte) error {
	return cd.Parse(string(data))
}

const expectedCalendarDateFormats = "01/02/2006, Jan-02-2006 or 2006-01-02"

func parseNumericCalendarDate(val string) (int, Month, int, error) {
	parts := strings.Split(val, "/")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid date %q, expected %s", val, expectedCalendarDateFormats)
	}
	month, err := ParseNumericMonth(parts[0])
	if err != nil {
		return 0, 0, 0, err
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid day: %s", parts[1])
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year: %s", parts[2])
	}
	return year, month, day, nil
}

func parseDashedCalendarDate(val string) (int, Month, int, error) {
	parts := strings.Split(val, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid date %q, expected %s", val, expectedCalendarDateFormats)
	}
	if len(parts[0]) == 4 {
		// ISO 8601 calendar date, year first.
		year, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid year: %s", parts[0])
		}
		month, err := ParseNumericMonth(parts[1])
		if err != nil {
			return 0, 0, 0, err
		}
		day, err := strconv.Atoi(parts[2])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid day: %s", parts[2])
		}
		return year, month, day, nil
	}
	month, err := ParseMonth(parts[0])
	if err != nil {
		return 0, 0, 0, err
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid day: %s", parts[1])
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year: %s", parts[2])
	}
	return year, month, day, nil
}

// Parse parses a date in formats '01/02/2006', 'Jan-02-2006' or
// '2006-01-02' with error checking for a valid month and day, taking the
// year into account for Feb.
func (cd *CalendarDate) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected %s: %w", expectedCalendarDateFormats, ErrInvalidDate)
	}
	var year, day int
	var month Month
	var err error
	switch {
	case strings.Contains(val, "/"):
		year, month, day, err = parseNumericCalendarDate(val)
	case strings.Contains(val, "-"):
		year, month, day, err = parseDashedCalendarDate(val)
	default:
		err = fmt.Errorf("invalid date %q, expected %s", val, expectedCalendarDateFormats)
	}
	if err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidDate)
	}
	ncd, err := NewCalendarDate(year, month, day)
	if err != nil {
		return err
	}
	*cd = ncd
	return nil
}

// CalendarDateList represents a list of CalendarDate values.
type CalendarDateList []CalendarDate

// Parse parses a comma separated list of dates, each in the formats
// accepted by CalendarDate.Parse.
func (cdl *CalendarDateList) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected a comma separated list of dates: %w", ErrInvalidDate)
	}
	parts := strings.Split(val, ",")
	dates := make(CalendarDateList, 0, len(parts))
	for _, part := range parts {
		var cd CalendarDate
		if err := cd.Parse(strings.TrimSpace(part)); err != nil {
			return err
		}
		dates = append(dates, cd)
	}
	*cdl = dates
	return nil
}

func (cdl CalendarDateList) String() string {
	var out strings.Builder
	for i, d := range cdl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

func (cdl CalendarDateList) Contains(d CalendarDate) bool {
	for _, cd := range cdl {
		if cd == d {
			return true
		}
	}
	return false
}
