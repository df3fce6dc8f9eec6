// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datecalc_test

import (
	"cloudeng.io/datecalc"
)

func newCalendarDate(y, m, d int) datecalc.CalendarDate {
	cd, err := datecalc.NewCalendarDate(y, datecalc.Month(m), d)
	if err != nil {
		panic(err)
	}
	return cd
}
