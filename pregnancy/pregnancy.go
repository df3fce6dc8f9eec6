// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pregnancy estimates pregnancy due dates from a last menstrual
// period, a conception date or an IVF embryo transfer date, using
// Naegele's rule and its conception and IVF adjustments.
package pregnancy

import (
	"errors"
	"fmt"
	"strings"

	"cloudeng.io/datecalc"
)

// ErrInvalidMethod indicates an unrecognized estimation method or an
// unrecognized method and embryo age combination.
var ErrInvalidMethod = errors.New("invalid estimation method")

// Method identifies how the reference date supplied to EstimateDueDate is
// interpreted.
type Method int

const (
	// LMP interprets the reference date as the first day of the last
	// menstrual period.
	LMP Method = iota + 1
	// Conception interprets the reference date as the conception date.
	Conception
	// IVF interprets the reference date as the embryo transfer date and
	// requires an EmbryoAge.
	IVF
)

func (m Method) String() string {
	switch m {
	case LMP:
		return "lmp"
	case Conception:
		return "conception"
	case IVF:
		return "ivf"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(data []byte) error {
	return m.Parse(string(data))
}

// Parse parses one of the method tags "lmp", "conception" or "ivf" in
// either lower or upper case.
func (m *Method) Parse(val string) error {
	switch strings.ToLower(val) {
	case "lmp":
		*m = LMP
	case "conception":
		*m = Conception
	case "ivf":
		*m = IVF
	default:
		return fmt.Errorf("%q: %w", val, ErrInvalidMethod)
	}
	return nil
}

// EmbryoAge is the age of the embryo, in days, at an IVF transfer.
type EmbryoAge int

const (
	// Day3 is a cleavage stage transfer, three days after retrieval.
	Day3 EmbryoAge = 3
	// Day5 is a blastocyst transfer, five days after retrieval.
	Day5 EmbryoAge = 5
)

// Parse parses an embryo age given as "3", "5", "day3" or "day5".
func (e *EmbryoAge) Parse(val string) error {
	switch strings.ToLower(val) {
	case "3", "day3":
		*e = Day3
	case "5", "day5":
		*e = Day5
	default:
		return fmt.Errorf("embryo age %q: %w", val, ErrInvalidMethod)
	}
	return nil
}

// Gestation is counted as 280 days from the last menstrual period, with
// conception taken to be 14 days in and an IVF transfer offset by the
// embryo's age at transfer.
const (
	daysFromLMP        = 280
	daysFromConception = 266
	daysFromIVFDay3    = 263
	daysFromIVFDay5    = 261
)

// Estimate is an estimated due date together with the method, and for
// IVF the embryo age, that produced it.
type Estimate struct {
	Due       datecalc.CalendarDate `json:"due"`
	Method    Method                `json:"method"`
	EmbryoAge EmbryoAge             `json:"embryoAge,omitempty"`
}

func (e Estimate) String() string {
	if e.Method == IVF {
		return fmt.Sprintf("%v (ivf day%d)", e.Due, e.EmbryoAge)
	}
	return fmt.Sprintf("%v (%v)", e.Due, e.Method)
}

// EstimateDueDate returns the estimated due date for the given method and
// reference date: LMP + 280 days, conception + 266 days, IVF day-3
// transfer + 263 days or IVF day-5 transfer + 261 days. embryoAge applies
// only to IVF, for which it must be Day3 or Day5; it must be zero for the
// other methods. Unrecognized combinations return an error wrapping
// ErrInvalidMethod.
func EstimateDueDate(method Method, reference datecalc.CalendarDate, embryoAge EmbryoAge) (Estimate, error) {
	var days int
	switch method {
	case LMP, Conception:
		if embryoAge != 0 {
			return Estimate{}, fmt.Errorf("embryo age applies only to ivf, not %v: %w", method, ErrInvalidMethod)
		}
		days = daysFromLMP
		if method == Conception {
			days = daysFromConception
		}
	case IVF:
		switch embryoAge {
		case Day3:
			days = daysFromIVFDay3
		case Day5:
			days = daysFromIVFDay5
		default:
			return Estimate{}, fmt.Errorf("embryo age %d for ivf: %w", embryoAge, ErrInvalidMethod)
		}
	default:
		return Estimate{}, fmt.Errorf("method %v: %w", method, ErrInvalidMethod)
	}
	return Estimate{Due: reference.AddDays(days), Method: method, EmbryoAge: embryoAge}, nil
}

// GestationalAge returns the whole weeks and leftover days of gestation
// as of the given date, measured from the estimate's effective last
// menstrual period, ie. its due date less 280 days. It returns an error
// wrapping datecalc.ErrInvalidRange if asOf precedes that date.
func GestationalAge(est Estimate, asOf datecalc.CalendarDate) (weeks, days int, err error) {
	lmp := est.Due.SubDays(daysFromLMP)
	elapsed := datecalc.DaysBetween(lmp, asOf)
	if elapsed < 0 {
		return 0, 0, fmt.Errorf("%v is before the start of gestation %v: %w", asOf, lmp, datecalc.ErrInvalidRange)
	}
	return elapsed / 7, elapsed % 7, nil
}
