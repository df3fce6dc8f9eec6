// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datecalc_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/datecalc"
)

func TestNewCalendarDate(t *testing.T) {
	for _, tc := range []struct {
		year, month, day int
	}{
		{2024, 1, 1},
		{2024, 2, 29},
		{2023, 2, 28},
		{2024, 12, 31},
		{1900, 2, 28},
		{2000, 2, 29},
		{1, 1, 1},
		{9999, 12, 31},
	} {
		cd, err := datecalc.NewCalendarDate(tc.year, datecalc.Month(tc.month), tc.day)
		if err != nil {
			t.Errorf("%v: %v", tc, err)
			continue
		}
		if got, want := cd.Year(), tc.year; got != want {
			t.Errorf("%v: got %v, want %v", tc, got, want)
		}
		if got, want := int(cd.Month()), tc.month; got != want {
			t.Errorf("%v: got %v, want %v", tc, got, want)
		}
		if got, want := cd.Day(), tc.day; got != want {
			t.Errorf("%v: got %v, want %v", tc, got, want)
		}
	}

	for _, tc := range []struct {
		year, month, day int
	}{
		{2023, 2, 29}, // not a leap year
		{1900, 2, 29}, // century, not a leap year
		{2024, 4, 31},
		{2024, 1, 32},
		{2024, 1, 0},
		{2024, 0, 1},
		{2024, 13, 1},
		{0, 1, 1},
		{10000, 1, 1},
	} {
		if _, err := datecalc.NewCalendarDate(tc.year, datecalc.Month(tc.month), tc.day); !errors.Is(err, datecalc.ErrInvalidDate) {
			t.Errorf("%v: expected ErrInvalidDate, got %v", tc, err)
		}
	}
}

func TestCalendarDateOrdering(t *testing.T) {
	ncd := newCalendarDate
	if !(ncd(2023, 12, 31) < ncd(2024, 1, 1)) {
		t.Errorf("expected %v < %v", ncd(2023, 12, 31), ncd(2024, 1, 1))
	}
	if !(ncd(2024, 2, 29) < ncd(2024, 3, 1)) {
		t.Errorf("expected %v < %v", ncd(2024, 2, 29), ncd(2024, 3, 1))
	}
	if got, want := ncd(2024, 3, 1), ncd(2024, 3, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseCalendarDate(t *testing.T) {
	ncd := newCalendarDate
	for _, tc := range []struct {
		input string
		cd    datecalc.CalendarDate
	}{
		{"01/01/2024", ncd(2024, 1, 1)},
		{"02/29/2024", ncd(2024, 2, 29)},
		{"02/28/2023", ncd(2023, 2, 28)},
		{"Jan-01-2024", ncd(2024, 1, 1)},
		{"Feb-29-2024", ncd(2024, 2, 29)},
		{"feb-28-2023", ncd(2023, 2, 28)},
		{"december-31-2024", ncd(2024, 12, 31)},
		{"2024-01-01", ncd(2024, 1, 1)},
		{"2024-02-29", ncd(2024, 2, 29)},
		{"2023-02-28", ncd(2023, 2, 28)},
	} {
		var cd datecalc.CalendarDate
		if err := cd.Parse(tc.input); err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if cd != tc.cd {
			t.Errorf("%v: got %v, want %v", tc.input, cd, tc.cd)
		}
		str := cd.String()
		if err := cd.Parse(str); err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if cd != tc.cd {
			t.Errorf("%v: got %v, want %v", tc.input, cd, tc.cd)
		}
	}

	for _, tc := range []string{
		"",
		"02/29/2023",
		"Feb-29-2023",
		"2023-02-29",
		"02-03",
		"Jan/03/2024",
		"01/02",
		"xxx",
		"Jan-02-0",
		"13/01/2024",
		"-03-2024",
		"--2024",
	} {
		var cd datecalc.CalendarDate
		if err := cd.Parse(tc); !errors.Is(err, datecalc.ErrInvalidDate) {
			t.Errorf("%q: expected ErrInvalidDate, got %v", tc, err)
		}
	}
}

func TestCalendarDateList(t *testing.T) {
	ncd := newCalendarDate
	for _, tc := range []struct {
		input string
		dates datecalc.CalendarDateList
	}{
		{"01/01/2024", datecalc.CalendarDateList{ncd(2024, 1, 1)}},
		{"2024-01-31,02/29/2024", datecalc.CalendarDateList{ncd(2024, 1, 31), ncd(2024, 2, 29)}},
		{"Jan-01-2024, 2024-12-31", datecalc.CalendarDateList{ncd(2024, 1, 1), ncd(2024, 12, 31)}},
	} {
		var cdl datecalc.CalendarDateList
		if err := cdl.Parse(tc.input); err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if got, want := len(cdl), len(tc.dates); got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
			continue
		}
		for i, d := range tc.dates {
			if got, want := cdl[i], d; got != want {
				t.Errorf("%v: got %v, want %v", tc.input, got, want)
			}
			if !cdl.Contains(d) {
				t.Errorf("%v: expected %v to contain %v", tc.input, cdl, d)
			}
		}
		if cdl.Contains(ncd(1999, 7, 4)) {
			t.Errorf("%v: unexpectedly contains %v", tc.input, ncd(1999, 7, 4))
		}
	}

	for _, tc := range []string{
		"",
		"2024-01-01,",
		"2024-01-01,xxx",
		",01/01/2024",
	} {
		var cdl datecalc.CalendarDateList
		if err := cdl.Parse(tc); !errors.Is(err, datecalc.ErrInvalidDate) {
			t.Errorf("%q: expected ErrInvalidDate, got %v", tc, err)
		}
	}

	cdl := datecalc.CalendarDateList{ncd(2024, 1, 31), ncd(2024, 2, 29)}
	if got, want := cdl.String(), "01/31/2024, 02/29/2024"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCalendarDateFromTime(t *testing.T) {
	when := time.Date(2024, 2, 29, 13, 24, 42, 0, time.UTC)
	if got, want := datecalc.CalendarDateFromTime(when), newCalendarDate(2024, 2, 29); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWeekday(t *testing.T) {
	for _, tc := range []struct {
		cd      datecalc.CalendarDate
		weekday time.Weekday
	}{
		{newCalendarDate(1, 1, 1), time.Monday},
		{newCalendarDate(1970, 1, 1), time.Thursday},
		{newCalendarDate(2000, 2, 29), time.Tuesday},
		{newCalendarDate(2024, 1, 1), time.Monday},
		{newCalendarDate(2026, 8, 26), time.Wednesday},
	} {
		if got, want := tc.cd.Weekday(), tc.weekday; got != want {
			t.Errorf("%v: got %v, want %v", tc.cd, got, want)
		}
	}

	// Cross-check a year's worth of days against the time package.
	cd := newCalendarDate(2024, 1, 1)
	when := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 366; i++ {
		if got, want := cd.Weekday(), when.Weekday(); got != want {
			t.Errorf("%v: got %v, want %v", cd, got, want)
		}
		cd = cd.Tomorrow()
		when = when.AddDate(0, 0, 1)
	}
}

func TestMonthParse(t *testing.T) {
	for _, tc := range []struct {
		input string
		month datecalc.Month
	}{
		{"1", 1},
		{"12", 12},
		{"Jan", 1},
		{"january", 1},
		{"Febr", 2},
		{"dec", 12},
	} {
		var m datecalc.Month
		if err := m.Parse(tc.input); err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if got, want := m, tc.month; got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
	}
	for _, tc := range []string{"", "0", "13", "xyz"} {
		var m datecalc.Month
		if err := m.Parse(tc); err == nil {
			t.Errorf("%q: expected an error", tc)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	for _, tc := range []struct {
		year, month, days int
	}{
		{2024, 2, 29},
		{2023, 2, 28},
		{2000, 2, 29},
		{1900, 2, 28},
		{2024, 4, 30},
		{2024, 1, 31},
		{2024, 12, 31},
	} {
		if got, want := datecalc.DaysInMonth(tc.year, datecalc.Month(tc.month)), tc.days; got != want {
			t.Errorf("%v/%v: got %v, want %v", tc.month, tc.year, got, want)
		}
	}
	if got, want := datecalc.DaysInYear(2024), 366; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := datecalc.DaysInYear(2100), 365; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
