// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cloudeng.io/datecalc"
	"cloudeng.io/datecalc/pregnancy"
	"cloudeng.io/errors"
	json "github.com/goccy/go-json"
)

// out is replaced by tests.
var out io.Writer = os.Stdout

type diffFlags struct {
	From string `subcmd:"from,,first date in 01/02/2006 Jan-02-2006 or 2006-01-02 format"`
	To   string `subcmd:"to,,second date"`
	JSON bool   `subcmd:"json,false,emit the result as JSON"`
}

type shiftFlags struct {
	Date string `subcmd:"date,,'the starting date, or a comma separated list of dates'"`
	Days int    `subcmd:"days,0,the number of days to add or subtract"`
	JSON bool   `subcmd:"json,false,emit the result as JSON"`
}

type ageFlags struct {
	Birth string `subcmd:"birth,,the birth date"`
	AsOf  string `subcmd:"asof,,the date to compute the age at - defaults to today"`
	JSON  bool   `subcmd:"json,false,emit the result as JSON"`
}

type dueDateFlags struct {
	Method    string `subcmd:"method,lmp,estimation method - one of lmp conception or ivf"`
	Date      string `subcmd:"date,,the reference date for the chosen method"`
	EmbryoAge string `subcmd:"embryo-age,,embryo age at transfer for ivf - 3 or 5"`
	AsOf      string `subcmd:"asof,,the date to report gestational age at - defaults to today"`
	JSON      bool   `subcmd:"json,false,emit the result as JSON"`
}

func parseDateFlag(name, val string) (datecalc.CalendarDate, error) {
	if len(val) == 0 {
		return 0, fmt.Errorf("missing --%s", name)
	}
	var cd datecalc.CalendarDate
	if err := cd.Parse(val); err != nil {
		return 0, fmt.Errorf("--%s: %v", name, err)
	}
	return cd, nil
}

func parseDateFlagOrToday(name, val string) (datecalc.CalendarDate, error) {
	if len(val) == 0 {
		return datecalc.CalendarDateFromTime(time.Now()), nil
	}
	return parseDateFlag(name, val)
}

func emit(asJSON bool, result any, text string) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	_, err := fmt.Fprintln(out, text)
	return err
}

type diffResult struct {
	From       datecalc.CalendarDate   `json:"from"`
	To         datecalc.CalendarDate   `json:"to"`
	Difference datecalc.DateDifference `json:"difference"`
}

func runDiff(_ context.Context, values interface{}, _ []string) error {
	fv := values.(*diffFlags)
	errs := errors.M{}
	from, err := parseDateFlag("from", fv.From)
	errs.Append(err)
	to, err := parseDateFlag("to", fv.To)
	errs.Append(err)
	if err := errs.Err(); err != nil {
		return err
	}
	d := datecalc.Difference(from, to)
	return emit(fv.JSON, diffResult{From: from, To: to, Difference: d},
		fmt.Sprintf("%v to %v: %v", from, to, d))
}

type shiftResult struct {
	Date    datecalc.CalendarDate `json:"date"`
	Days    int                   `json:"days"`
	Result  datecalc.CalendarDate `json:"result"`
	Weekday string                `json:"weekday"`
}

func runShift(values *shiftFlags, sign int) error {
	if len(values.Date) == 0 {
		return fmt.Errorf("missing --date")
	}
	var dates datecalc.CalendarDateList
	if err := dates.Parse(values.Date); err != nil {
		return fmt.Errorf("--date: %v", err)
	}
	results := make([]shiftResult, len(dates))
	lines := make([]string, len(dates))
	for i, date := range dates {
		result := date.AddDays(sign * values.Days)
		results[i] = shiftResult{
			Date:    date,
			Days:    sign * values.Days,
			Result:  result,
			Weekday: result.Weekday().String(),
		}
		lines[i] = fmt.Sprintf("%v %+d days: %v (%v)", date, sign*values.Days, result, result.Weekday())
	}
	if len(results) == 1 {
		return emit(values.JSON, results[0], lines[0])
	}
	return emit(values.JSON, results, strings.Join(lines, "\n"))
}

func runAdd(_ context.Context, values interface{}, _ []string) error {
	return runShift(values.(*shiftFlags), 1)
}

func runSub(_ context.Context, values interface{}, _ []string) error {
	return runShift(values.(*shiftFlags), -1)
}

type ageResult struct {
	Birth datecalc.CalendarDate `json:"birth"`
	AsOf  datecalc.CalendarDate `json:"asOf"`
	Age   datecalc.AgeDuration  `json:"age"`
}

func runAge(_ context.Context, values interface{}, _ []string) error {
	fv := values.(*ageFlags)
	errs := errors.M{}
	birth, err := parseDateFlag("birth", fv.Birth)
	errs.Append(err)
	asOf, err := parseDateFlagOrToday("asof", fv.AsOf)
	errs.Append(err)
	if err := errs.Err(); err != nil {
		return err
	}
	age, err := datecalc.Age(birth, asOf)
	if err != nil {
		return err
	}
	return emit(fv.JSON, ageResult{Birth: birth, AsOf: asOf, Age: age},
		fmt.Sprintf("born %v, as of %v: %v", birth, asOf, age))
}

type dueDateResult struct {
	pregnancy.Estimate
	GestationalWeeks int `json:"gestationalWeeks"`
	GestationalDays  int `json:"gestationalDays"`
}

func runDueDate(_ context.Context, values interface{}, _ []string) error {
	fv := values.(*dueDateFlags)
	errs := errors.M{}
	var method pregnancy.Method
	errs.Append(method.Parse(fv.Method))
	reference, err := parseDateFlag("date", fv.Date)
	errs.Append(err)
	var embryoAge pregnancy.EmbryoAge
	if len(fv.EmbryoAge) > 0 {
		errs.Append(embryoAge.Parse(fv.EmbryoAge))
	}
	asOf, err := parseDateFlagOrToday("asof", fv.AsOf)
	errs.Append(err)
	if err := errs.Err(); err != nil {
		return err
	}
	est, err := pregnancy.EstimateDueDate(method, reference, embryoAge)
	if err != nil {
		return err
	}
	weeks, days, err := pregnancy.GestationalAge(est, asOf)
	if err != nil {
		return err
	}
	return emit(fv.JSON, dueDateResult{Estimate: est, GestationalWeeks: weeks, GestationalDays: days},
		fmt.Sprintf("due %v, %d weeks %d days as of %v", est, weeks, days, asOf))
}
