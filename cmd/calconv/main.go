// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command calconv converts dates between calendar systems.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/calendars"
	"cloudeng.io/calendars/builtin"
	"cloudeng.io/calendars/gregorian"
	"cloudeng.io/calendars/locale"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

const commands = `name: calconv
summary: convert dates between calendar systems. Dates are of the form '[<era> ]<year>-<month>-<day>', eg. 'minguo 113-03-05' or '2024-Mar-05'.
commands:
  - name: convert
    summary: convert dates from one calendar to another
    arguments:
      - <date>
      - ...
  - name: julian-day
    summary: print the Julian Day Number for dates
    arguments:
      - <date>
      - ...
  - name: from-julian-day
    summary: print the date for Julian Day Numbers
    arguments:
      - <julian-day>
      - ...
  - name: add
    summary: add an ISO 8601 duration, eg. P1Y2M or -P3W, to a date
    arguments:
      - <date>
      - <duration>
  - name: today
    summary: print the current date
  - name: calendars
    summary: list the supported calendars and their eras
`

// CommonFlags are shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
}

// CalendarFlags are used by commands that operate on a single calendar.
type CalendarFlags struct {
	CommonFlags
	Calendar string `subcmd:"calendar,gregory,calendar that dates are expressed in"`
}

type convertFlags struct {
	CommonFlags
	From string `subcmd:"from,gregory,calendar to convert from"`
	To   string `subcmd:"to,roc,calendar to convert to"`
}

type todayFlags struct {
	CalendarFlags
	Locale   string `subcmd:"locale,,'locale used to determine the calendar, eg. zh-TW or en-US-u-ca-roc, overrides --calendar'"`
	Config   string `subcmd:"config,,'YAML file containing the calendar preferences for locales'"`
	Location string `subcmd:"location,Local,time zone used to determine the current date"`
}

var (
	cmdSet *subcmd.CommandSetYAML
	out    io.Writer = os.Stdout
)

func init() {
	cmdSet = subcmd.MustFromYAML(commands)
	cmdSet.Set("convert").MustRunnerAndFlags(convert,
		subcmd.MustRegisteredFlagSet(&convertFlags{}))
	cmdSet.Set("julian-day").MustRunnerAndFlags(julianDay,
		subcmd.MustRegisteredFlagSet(&CalendarFlags{}))
	cmdSet.Set("from-julian-day").MustRunnerAndFlags(fromJulianDay,
		subcmd.MustRegisteredFlagSet(&CalendarFlags{}))
	cmdSet.Set("add").MustRunnerAndFlags(add,
		subcmd.MustRegisteredFlagSet(&CalendarFlags{}))
	cmdSet.Set("today").MustRunnerAndFlags(today,
		subcmd.MustRegisteredFlagSet(&todayFlags{}))
	cmdSet.Set("calendars").MustRunnerAndFlags(listCalendars,
		subcmd.MustRegisteredFlagSet(&CommonFlags{}))
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}

func (cf CommonFlags) withLogger(ctx context.Context) (context.Context, func(), error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { logger.Close() }, nil
}

func lookupCalendars(reg *calendars.Registry, ids ...string) ([]calendars.Calendar, error) {
	cals := make([]calendars.Calendar, len(ids))
	errs := &errors.M{}
	for i, id := range ids {
		cal, err := reg.Lookup(calendars.Identifier(id))
		errs.Append(err)
		cals[i] = cal
	}
	return cals, errs.Err()
}

func parseDates(cal calendars.Calendar, args []string) ([]calendars.CalendarDate, error) {
	dates := make([]calendars.CalendarDate, 0, len(args))
	errs := &errors.M{}
	for _, arg := range args {
		date, err := calendars.ParseCalendarDate(cal, arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		dates = append(dates, date)
	}
	return dates, errs.Err()
}

func convert(ctx context.Context, values any, args []string) error {
	fv := values.(*convertFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	cals, err := lookupCalendars(builtin.New(), fv.From, fv.To)
	if err != nil {
		return err
	}
	from, to := cals[0], cals[1]
	dates, err := parseDates(from, args)
	if err != nil {
		return err
	}
	logger := ctxlog.Logger(ctx)
	for _, date := range dates {
		converted, err := calendars.ToCalendar(date, from, to)
		if err != nil {
			return err
		}
		logger.Debug("converted", "from", from.Identifier(), "to", to.Identifier(), "date", date.String(), "julian-day", from.ToJulianDay(date))
		fmt.Fprintf(out, "%v\n", converted)
	}
	return nil
}

func julianDay(ctx context.Context, values any, args []string) error {
	fv := values.(*CalendarFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	cals, err := lookupCalendars(builtin.New(), fv.Calendar)
	if err != nil {
		return err
	}
	dates, err := parseDates(cals[0], args)
	if err != nil {
		return err
	}
	logger := ctxlog.Logger(ctx)
	for _, date := range dates {
		jd := cals[0].ToJulianDay(date)
		logger.Debug("julian day", "calendar", cals[0].Identifier(), "date", date.String(), "julian-day", jd)
		fmt.Fprintf(out, "%v: %v\n", date, jd)
	}
	return nil
}

func fromJulianDay(ctx context.Context, values any, args []string) error {
	fv := values.(*CalendarFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	cals, err := lookupCalendars(builtin.New(), fv.Calendar)
	if err != nil {
		return err
	}
	days := make([]int, 0, len(args))
	errs := &errors.M{}
	for _, arg := range args {
		jd, err := strconv.Atoi(arg)
		if err != nil {
			errs.Append(fmt.Errorf("invalid julian day: %q: %w", arg, err))
			continue
		}
		days = append(days, jd)
	}
	if err := errs.Err(); err != nil {
		return err
	}
	logger := ctxlog.Logger(ctx)
	for _, jd := range days {
		date := cals[0].FromJulianDay(jd)
		logger.Debug("from julian day", "calendar", cals[0].Identifier(), "julian-day", jd, "date", date.String())
		fmt.Fprintf(out, "%v: %v\n", jd, date)
	}
	return nil
}

func add(ctx context.Context, values any, args []string) error {
	fv := values.(*CalendarFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	cals, err := lookupCalendars(builtin.New(), fv.Calendar)
	if err != nil {
		return err
	}
	cal := cals[0]
	date, err := calendars.ParseCalendarDate(cal, args[0])
	if err != nil {
		return err
	}
	dur, err := calendars.ParseISO8601Duration(args[1])
	if err != nil {
		return err
	}
	result := calendars.Add(cal, date, dur)
	ctxlog.Logger(ctx).Debug("add", "calendar", cal.Identifier(), "date", date.String(), "duration", dur.String(), "result", result.String())
	fmt.Fprintf(out, "%v\n", result)
	return nil
}

func resolveCalendar(ctx context.Context, reg *calendars.Registry, fv *todayFlags) (calendars.Calendar, error) {
	if len(fv.Locale) == 0 {
		cals, err := lookupCalendars(reg, fv.Calendar)
		if err != nil {
			return nil, err
		}
		return cals[0], nil
	}
	var cfg locale.Config
	if len(fv.Config) > 0 {
		spec, err := os.ReadFile(fv.Config)
		if err != nil {
			return nil, err
		}
		if err := cmdutil.ParseYAMLConfig(spec, &cfg); err != nil {
			return nil, fmt.Errorf("%v: %w", fv.Config, err)
		}
		ctxlog.Logger(ctx).Info("loaded calendar preferences", "file", fv.Config, "locales", len(cfg.Locales))
	}
	resolver, err := locale.NewResolver(reg, cfg)
	if err != nil {
		return nil, err
	}
	return resolver.Resolve(fv.Locale)
}

func today(ctx context.Context, values any, args []string) error {
	fv := values.(*todayFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	loc, err := time.LoadLocation(fv.Location)
	if err != nil {
		return err
	}
	cal, err := resolveCalendar(ctx, builtin.New(), fv)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("today", "calendar", cal.Identifier(), "locale", fv.Locale, "location", loc.String())
	fmt.Fprintf(out, "%v\n", gregorian.Today(cal, loc))
	return nil
}

func listCalendars(ctx context.Context, values any, args []string) error {
	fv := values.(*CommonFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	reg := builtin.New()
	ctxlog.Logger(ctx).Debug("calendars", "registered", len(reg.Identifiers()))
	for _, id := range reg.Identifiers() {
		cal, err := reg.Lookup(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%v: %v\n", id, strings.Join(cal.Eras(), ", "))
	}
	return nil
}
