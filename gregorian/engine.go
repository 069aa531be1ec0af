// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import "cloudeng.io/calendars"

// epoch is the Julian Day Number of January 1st, 1 AD in the proleptic
// Gregorian calendar.
const epoch = 1721426

var (
	dayOfYear       []int // per month cumulative days in year so [0, 31, 59 etc]
	dayOfYearLeap   []int // per month cumulative days in leap year [0, 31, 60 etc]
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] += dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] += dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// IsLeap returns true if the given extended year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the given
// extended year.
func DaysInMonth(year int, month calendars.Month) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// DayOfYear returns the 1-based day of the year for the given date.
func DayOfYear(year int, month calendars.Month, day int) int {
	if IsLeap(year) {
		return dayOfYearLeap[month-1] + day
	}
	return dayOfYear[month-1] + day
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func mod(a, b int) int {
	return a - b*floorDiv(a, b)
}

// ToJulianDay returns the Julian Day Number for the given extended year,
// month and day. The month and day are not validated, days past the end
// of a month simply advance into the following month.
func ToJulianDay(year int, month calendars.Month, day int) int {
	y1 := year - 1
	monthOffset := -2
	switch {
	case month <= 2:
		monthOffset = 0
	case IsLeap(year):
		monthOffset = -1
	}
	return epoch - 1 + 365*y1 + floorDiv(y1, 4) - floorDiv(y1, 100) + floorDiv(y1, 400) +
		floorDiv(367*int(month)-362, 12) + monthOffset + day
}

// FromJulianDay returns the extended year, month and day for the given
// Julian Day Number. Years prior to 1 AD are returned as zero (1 BC) or
// negative values.
func FromJulianDay(jd int) (year int, month calendars.Month, day int) {
	depoch := jd - epoch
	quadricent := floorDiv(depoch, 146097)
	dqc := mod(depoch, 146097)
	cent := floorDiv(dqc, 36524)
	dcent := mod(dqc, 36524)
	quad := floorDiv(dcent, 1461)
	dquad := mod(dcent, 1461)
	yindex := floorDiv(dquad, 365)

	year = quadricent*400 + cent*100 + quad*4 + yindex
	if cent != 4 && yindex != 4 {
		year++
	}

	yearDay := jd - ToJulianDay(year, 1, 1)
	leapAdj := 2
	switch {
	case jd < ToJulianDay(year, 3, 1):
		leapAdj = 0
	case IsLeap(year):
		leapAdj = 1
	}
	month = calendars.Month(floorDiv((yearDay+leapAdj)*12+373, 367))
	day = jd - ToJulianDay(year, month, 1) + 1
	return
}

// Engine implements calendars.Engine for the proleptic Gregorian calendar.
type Engine struct{}

// FromJulianDay implements calendars.Engine.
func (Engine) FromJulianDay(jd int) (int, calendars.Month, int) {
	return FromJulianDay(jd)
}

// ToJulianDay implements calendars.Engine.
func (Engine) ToJulianDay(year int, month calendars.Month, day int) int {
	return ToJulianDay(year, month, day)
}
