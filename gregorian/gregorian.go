// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package gregorian provides the proleptic Gregorian calendar, both as a
// calendars.Engine that converts between Julian Day Numbers and extended
// years and as a calendars.Calendar with BC and AD eras.
package gregorian

import "cloudeng.io/calendars"

// Identifier is the BCP 47 identifier of the Gregorian calendar.
const Identifier calendars.Identifier = "gregory"

// Eras of the Gregorian calendar. Years in BC count backwards so that
// 1 BC immediately precedes 1 AD, there is no year 0.
const (
	BC = "BC"
	AD = "AD"
)

// The range of extended years supported by Calendar, ie. 9999 BC to
// 9999 AD.
const (
	MinYear = -9998
	MaxYear = 9999
)

// ExtendedYear returns the extended, or astronomical, year for the
// supplied era and year.
func ExtendedYear(era string, year int) int {
	if era == BC {
		return 1 - year
	}
	return year
}

// FromExtendedYear returns the era and year for the supplied extended year.
func FromExtendedYear(year int) (string, int) {
	if year <= 0 {
		return BC, 1 - year
	}
	return AD, year
}

// Calendar implements calendars.Calendar for the proleptic Gregorian
// calendar.
type Calendar struct{}

var (
	_ calendars.Calendar           = Calendar{}
	_ calendars.InverseEraCalendar = Calendar{}
)

// New returns a new Gregorian calendar.
func New() Calendar {
	return Calendar{}
}

// Identifier implements calendars.Calendar.
func (Calendar) Identifier() calendars.Identifier {
	return Identifier
}

// FromJulianDay implements calendars.Calendar.
func (c Calendar) FromJulianDay(jd int) calendars.CalendarDate {
	y, m, d := FromJulianDay(jd)
	era, year := FromExtendedYear(y)
	return calendars.NewCalendarDateInEra(c, era, year, m, d)
}

// ToJulianDay implements calendars.Calendar.
func (Calendar) ToJulianDay(date calendars.CalendarDate) int {
	return ToJulianDay(ExtendedYear(date.Era, date.Year), date.Month, date.Day)
}

// CurrentEra implements calendars.Calendar.
func (Calendar) CurrentEra() string {
	return AD
}

// Eras implements calendars.Calendar.
func (Calendar) Eras() []string {
	return []string{BC, AD}
}

// BalanceDate implements calendars.Calendar.
func (Calendar) BalanceDate(date *calendars.CalendarDate) {
	date.Era, date.Year = FromExtendedYear(ExtendedYear(date.Era, date.Year))
}

// AddYears implements calendars.Calendar.
func (Calendar) AddYears(date *calendars.CalendarDate, years int) {
	if date.Era == BC {
		years = -years
	}
	date.Year += years
}

// MonthsInYear implements calendars.Calendar.
func (Calendar) MonthsInYear(calendars.CalendarDate) int {
	return 12
}

// DaysInMonth implements calendars.Calendar.
func (Calendar) DaysInMonth(date calendars.CalendarDate) int {
	return DaysInMonth(ExtendedYear(date.Era, date.Year), date.Month)
}

// IsInverseEra implements calendars.InverseEraCalendar.
func (Calendar) IsInverseEra(date calendars.CalendarDate) bool {
	return date.Era == BC
}

// YearsInEra implements calendars.Calendar.
func (Calendar) YearsInEra(date calendars.CalendarDate) int {
	if date.Era == BC {
		return 1 - MinYear
	}
	return MaxYear
}
