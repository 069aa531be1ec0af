// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendars provides support for converting dates between
// calendar systems using the Julian Day Number as a calendar agnostic
// interchange value. Each calendar system implements the Calendar
// interface and expresses dates as an era, an era relative year, a month
// and a day. Calendars that differ from the proleptic Gregorian calendar
// only in how years are numbered are typically implemented by composing
// an Engine, see cloudeng.io/calendars/roc.
package calendars

// Identifier names a calendar system, eg. "gregory" or "roc". The values
// follow the BCP 47 calendar identifiers used by the -u-ca- locale
// extension.
type Identifier string

// Engine converts between Julian Day Numbers and (year, month, day) triples
// for a base calendar. The year is an extended, or astronomical, year and
// may be zero or negative for dates prior to the calendar's epoch.
type Engine interface {
	FromJulianDay(jd int) (year int, month Month, day int)
	ToJulianDay(year int, month Month, day int) int
}

// Calendar represents a calendar system.
//
// BalanceDate and AddYears mutate the supplied date in place. AddYears
// need not leave the era and year fields consistent, callers that may
// cross an era boundary must call BalanceDate afterwards; Add, Subtract
// and Set in this package do so.
type Calendar interface {
	// Identifier returns the identifier for this calendar.
	Identifier() Identifier
	// FromJulianDay returns the date in this calendar for the supplied
	// Julian Day Number.
	FromJulianDay(jd int) CalendarDate
	// ToJulianDay returns the Julian Day Number for the supplied date.
	ToJulianDay(date CalendarDate) int
	// CurrentEra returns the era used when none is specified.
	CurrentEra() string
	// Eras returns all of the eras supported by this calendar ordered from
	// earliest to latest.
	Eras() []string
	// BalanceDate normalizes the era and year fields of date.
	BalanceDate(date *CalendarDate)
	// AddYears adds years to date such that positive values move forward
	// in time regardless of the direction in which the era counts.
	AddYears(date *CalendarDate, years int)
	// MonthsInYear returns the number of months in the year of date.
	MonthsInYear(date CalendarDate) int
	// DaysInMonth returns the number of days in the month of date.
	DaysInMonth(date CalendarDate) int
	// YearsInEra returns the largest year supported in the era of date.
	YearsInEra(date CalendarDate) int
}

// InverseEraCalendar may be implemented by calendars that have eras
// whose years count backwards in time, eg. BC. The largest year in such
// an era is its earliest.
type InverseEraCalendar interface {
	IsInverseEra(date CalendarDate) bool
}

func isInverseEra(cal Calendar, date CalendarDate) bool {
	if ie, ok := cal.(InverseEraCalendar); ok {
		return ie.IsInverseEra(date)
	}
	return false
}

// IsEra returns true if era is one of the eras supported by cal.
func IsEra(cal Calendar, era string) bool {
	for _, e := range cal.Eras() {
		if e == era {
			return true
		}
	}
	return false
}
