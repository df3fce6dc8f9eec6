// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datecalc

import "fmt"

// AgeDuration is a non-overlapping breakdown of the time elapsed between
// two dates: applying Years, then Months, then Days sequentially to the
// earlier date reconstructs the later date exactly.
type AgeDuration struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

func (ad AgeDuration) String() string {
	return fmt.Sprintf("%d years, %d months, %d days", ad.Years, ad.Months, ad.Days)
}

// Age returns the time elapsed from birth to asOf decomposed greedily
// into whole years, then whole months within the final partial year, then
// the remaining days, all per the anniversary rule. It returns an error
// wrapping ErrInvalidRange if asOf precedes birth.
//
// Months is normally 0-11 but may be 12 when the year step clamps a Feb
// 29 birth to Feb 28: a twelfth month can fit before the next Feb 29
// anniversary.
func Age(birth, asOf CalendarDate) (AgeDuration, error) {
	if asOf < birth {
		return AgeDuration{}, fmt.Errorf("%v is before %v: %w", asOf, birth, ErrInvalidRange)
	}
	years := YearsBetween(birth, asOf)
	onYears := birth.AddYears(years)
	months := MonthsBetween(onYears, asOf)
	onMonths := onYears.AddMonths(months)
	return AgeDuration{
		Years:  years,
		Months: months,
		Days:   DaysBetween(onMonths, asOf),
	}, nil
}
