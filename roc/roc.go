// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package roc provides the Republic of China, or Minguo, calendar used in
// Taiwan. Months and days are those of the Gregorian calendar, only the
// numbering of years differs: 1912 AD is Minguo year 1 and 1911 AD is
// year 1 before Minguo, with years before Minguo counting backwards.
// The calendar is implemented as a reinterpretation of the years of a
// base calendars.Engine, by default the proleptic Gregorian calendar.
package roc

import (
	"cloudeng.io/calendars"
	"cloudeng.io/calendars/gregorian"
)

// Identifier is the BCP 47 identifier of the Minguo calendar.
const Identifier calendars.Identifier = "roc"

// Eras of the Minguo calendar.
const (
	BeforeMinguo = "before_minguo"
	Minguo       = "minguo"
)

// EraStart is the Gregorian year immediately preceding Minguo year 1.
const EraStart = 1911

// GregorianYear returns the Gregorian year for the era and year of date.
// Any era other than Minguo is treated as BeforeMinguo. The result is
// meaningful for unbalanced dates, ie. those with a year of zero or less.
func GregorianYear(date calendars.CalendarDate) int {
	if date.Era == Minguo {
		return date.Year + EraStart
	}
	return 1 - date.Year + EraStart
}

// FromGregorianYear returns the era and year for a Gregorian year.
func FromGregorianYear(year int) (string, int) {
	offset := year - EraStart
	if offset > 0 {
		return Minguo, offset
	}
	return BeforeMinguo, 1 - offset
}

// Calendar implements calendars.Calendar for the Minguo calendar.
type Calendar struct {
	base calendars.Engine
}

var (
	_ calendars.Calendar           = (*Calendar)(nil)
	_ calendars.InverseEraCalendar = (*Calendar)(nil)
)

// New returns a Minguo calendar using the proleptic Gregorian calendar
// as its base.
func New() *Calendar {
	return NewWithEngine(gregorian.Engine{})
}

// NewWithEngine returns a Minguo calendar that uses base for all
// conversions to and from Julian Day Numbers.
func NewWithEngine(base calendars.Engine) *Calendar {
	return &Calendar{base: base}
}

// Identifier implements calendars.Calendar.
func (c *Calendar) Identifier() calendars.Identifier {
	return Identifier
}

// FromJulianDay implements calendars.Calendar.
func (c *Calendar) FromJulianDay(jd int) calendars.CalendarDate {
	y, m, d := c.base.FromJulianDay(jd)
	era, year := FromGregorianYear(y)
	return calendars.NewCalendarDateInEra(c, era, year, m, d)
}

// ToJulianDay implements calendars.Calendar.
func (c *Calendar) ToJulianDay(date calendars.CalendarDate) int {
	return c.base.ToJulianDay(GregorianYear(date), date.Month, date.Day)
}

// CurrentEra implements calendars.Calendar and always returns Minguo.
func (c *Calendar) CurrentEra() string {
	return Minguo
}

// Eras implements calendars.Calendar.
func (c *Calendar) Eras() []string {
	return []string{BeforeMinguo, Minguo}
}

// BalanceDate implements calendars.Calendar. It re-derives the era and
// year from the Gregorian year they imply and hence is idempotent.
func (c *Calendar) BalanceDate(date *calendars.CalendarDate) {
	date.Era, date.Year = FromGregorianYear(GregorianYear(*date))
}

// AddYears implements calendars.Calendar. Years before Minguo count
// backwards and so years is negated for dates in that era. The era is
// not balanced, a date that crosses the epoch will have a year of zero
// or less until BalanceDate is called.
func (c *Calendar) AddYears(date *calendars.CalendarDate, years int) {
	if date.Era == BeforeMinguo {
		years = -years
	}
	date.Year += years
}

// IsInverseEra implements calendars.InverseEraCalendar, years before
// Minguo count backwards.
func (c *Calendar) IsInverseEra(date calendars.CalendarDate) bool {
	return date.Era == BeforeMinguo
}

// MonthsInYear implements calendars.Calendar.
func (c *Calendar) MonthsInYear(calendars.CalendarDate) int {
	return 12
}

// DaysInMonth implements calendars.Calendar.
func (c *Calendar) DaysInMonth(date calendars.CalendarDate) int {
	return gregorian.DaysInMonth(GregorianYear(date), date.Month)
}

// YearsInEra implements calendars.Calendar.
func (c *Calendar) YearsInEra(date calendars.CalendarDate) int {
	if date.Era == BeforeMinguo {
		return 1 - (gregorian.MinYear - EraStart)
	}
	return gregorian.MaxYear - EraStart
}
