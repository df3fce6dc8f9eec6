// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command datecalc is a calendar arithmetic tool: it computes the
// difference between two dates, adds or subtracts days from a date,
// breaks down an age from a birth date and estimates a pregnancy due
// date from an LMP, conception or IVF transfer date.
package main

import (
	"context"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

func init() {
	cmdSet = newCommandSet()
}

func newCommandSet() *subcmd.CommandSet {
	diffFS := subcmd.NewFlagSet()
	diffFS.MustRegisterFlagStruct(&diffFlags{}, nil, nil)
	diffCmd := subcmd.NewCommand("diff", diffFS, runDiff, subcmd.WithoutArguments())
	diffCmd.Document("print the difference between two dates in days, weeks, months and years")

	addFS := subcmd.NewFlagSet()
	addFS.MustRegisterFlagStruct(&shiftFlags{}, nil, nil)
	addCmd := subcmd.NewCommand("add", addFS, runAdd, subcmd.WithoutArguments())
	addCmd.Document("add a number of days to a date")

	subFS := subcmd.NewFlagSet()
	subFS.MustRegisterFlagStruct(&shiftFlags{}, nil, nil)
	subCmd := subcmd.NewCommand("sub", subFS, runSub, subcmd.WithoutArguments())
	subCmd.Document("subtract a number of days from a date")

	ageFS := subcmd.NewFlagSet()
	ageFS.MustRegisterFlagStruct(&ageFlags{}, nil, nil)
	ageCmd := subcmd.NewCommand("age", ageFS, runAge, subcmd.WithoutArguments())
	ageCmd.Document("break down the age of someone born on the given date into years, months and days")

	dueFS := subcmd.NewFlagSet()
	dueFS.MustRegisterFlagStruct(&dueDateFlags{}, nil, nil)
	dueCmd := subcmd.NewCommand("duedate", dueFS, runDueDate, subcmd.WithoutArguments())
	dueCmd.Document("estimate a pregnancy due date from an lmp, conception or ivf transfer date")

	return subcmd.NewCommandSet(diffCmd, addCmd, subCmd, ageCmd, dueCmd)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
