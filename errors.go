// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datecalc

import "errors"

var (
	// ErrInvalidDate indicates a CalendarDate construction or parse input
	// whose fields do not form a valid date, eg. a day out of range for
	// its month and year.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrInvalidRange indicates an operation whose precondition on the
	// ordering of its date arguments was violated.
	ErrInvalidRange = errors.New("invalid date range")
)
