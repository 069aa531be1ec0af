// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"cmp"
	"fmt"
)

// Add returns the result of adding d to date. Years are added first,
// then months and finally weeks and days. The day is constrained to the
// length of the month after the years and months are added so that, for
// example, adding one month to January 31st yields the last day of
// February. The era and year of the result are always balanced.
func Add(cal Calendar, date CalendarDate, d Duration) CalendarDate {
	md := date
	cal.AddYears(&md, d.Years)
	md.Month += Month(d.Months)
	balanceYearMonth(cal, &md)
	constrainMonthDay(cal, &md)
	if days := d.Weeks*7 + d.Days; days != 0 {
		md.Day += days
		balanceDay(cal, &md)
	}
	cal.BalanceDate(&md)
	constrainYear(cal, &md)
	return md
}

// Subtract returns the result of subtracting d from date.
func Subtract(cal Calendar, date CalendarDate, d Duration) CalendarDate {
	return Add(cal, date, d.Negate())
}

// Fields represents the fields of a CalendarDate to be updated by Set.
// Zero values are ignored.
type Fields struct {
	Era   string
	Year  int
	Month Month
	Day   int
}

// Set returns date with the non-zero fields in f replacing those in date.
// The result is balanced and each field constrained to the range
// supported by cal.
func Set(cal Calendar, date CalendarDate, f Fields) CalendarDate {
	md := date
	if len(f.Era) > 0 {
		md.Era = f.Era
	}
	if f.Year != 0 {
		md.Year = f.Year
	}
	if f.Month != 0 {
		md.Month = f.Month
	}
	if f.Day != 0 {
		md.Day = f.Day
	}
	cal.BalanceDate(&md)
	constrainYear(cal, &md)
	md.Month = Month(clamp(int(md.Month), 1, cal.MonthsInYear(md)))
	constrainMonthDay(cal, &md)
	return md
}

// Field identifies a single field of a CalendarDate.
type Field int

const (
	FieldEra Field = iota
	FieldMonth
	FieldDay
)

func (f Field) String() string {
	switch f {
	case FieldEra:
		return "era"
	case FieldMonth:
		return "month"
	case FieldDay:
		return "day"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Cycle returns date with the specified field incremented by amount,
// wrapping around when the field exceeds its minimum or maximum value.
// Other fields are not changed except that the day is constrained to
// the length of the month.
func Cycle(cal Calendar, date CalendarDate, field Field, amount int) CalendarDate {
	md := date
	switch field {
	case FieldEra:
		eras := cal.Eras()
		idx := 0
		for i, e := range eras {
			if e == md.Era {
				idx = i
				break
			}
		}
		md.Era = eras[cycleValue(idx, amount, 0, len(eras)-1)]
		constrainYear(cal, &md)
		constrainMonthDay(cal, &md)
	case FieldMonth:
		md.Month = Month(cycleValue(int(md.Month), amount, 1, cal.MonthsInYear(md)))
		constrainMonthDay(cal, &md)
	case FieldDay:
		md.Day = cycleValue(md.Day, amount, 1, cal.DaysInMonth(md))
	}
	return md
}

// ToCalendar converts date, which must be expressed in the calendar from,
// to the calendar to.
func ToCalendar(date CalendarDate, from, to Calendar) (CalendarDate, error) {
	if date.Calendar != from.Identifier() {
		return CalendarDate{}, fmt.Errorf("%v: %v is not %v: %w", date, date.Calendar, from.Identifier(), ErrCalendarMismatch)
	}
	if from.Identifier() == to.Identifier() {
		return date, nil
	}
	return to.FromJulianDay(from.ToJulianDay(date)), nil
}

// Compare returns -1, 0 or +1 depending on whether a is before, the same
// as or after b. Both dates must be expressed in cal.
func Compare(cal Calendar, a, b CalendarDate) int {
	return cmp.Compare(cal.ToJulianDay(a), cal.ToJulianDay(b))
}

// DaysBetween returns the number of days from a to b, which is negative
// if b is before a.
func DaysBetween(cal Calendar, a, b CalendarDate) int {
	return cal.ToJulianDay(b) - cal.ToJulianDay(a)
}

func balanceYearMonth(cal Calendar, date *CalendarDate) {
	for date.Month < 1 {
		cal.AddYears(date, -1)
		date.Month += Month(cal.MonthsInYear(*date))
	}
	for n := cal.MonthsInYear(*date); int(date.Month) > n; n = cal.MonthsInYear(*date) {
		date.Month -= Month(n)
		cal.AddYears(date, 1)
	}
}

// balanceDay resolves an out of range day via the Julian day of the first
// of the month, which is well defined even when the era and year have not
// yet been balanced.
func balanceDay(cal Calendar, date *CalendarDate) {
	first := *date
	first.Day = 1
	jd := cal.ToJulianDay(first) + date.Day - 1
	*date = cal.FromJulianDay(jd)
}

func constrainMonthDay(cal Calendar, date *CalendarDate) {
	date.Day = clamp(date.Day, 1, cal.DaysInMonth(*date))
}

// constrainYear clamps the year to [1, YearsInEra]. A balanced date never
// has a year below 1, that case only arises for calendars whose
// BalanceDate does not renumber years across era boundaries.
func constrainYear(cal Calendar, date *CalendarDate) {
	if date.Year < 1 {
		date.Year, date.Month, date.Day = 1, 1, 1
		return
	}
	if maxYear := cal.YearsInEra(*date); date.Year > maxYear {
		date.Year = maxYear
		if isInverseEra(cal, *date) {
			date.Month, date.Day = 1, 1
			return
		}
		date.Month = Month(cal.MonthsInYear(*date))
		date.Day = cal.DaysInMonth(*date)
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func cycleValue(value, amount, lo, hi int) int {
	span := hi - lo + 1
	v := (value - lo + amount) % span
	if v < 0 {
		v += span
	}
	return v + lo
}
