// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import (
	"time"

	"cloudeng.io/calendars"
)

// JulianDay returns the Julian Day Number of the date of t in t's location.
func JulianDay(t time.Time) int {
	y, m, d := t.Date()
	return ToJulianDay(y, calendars.Month(m), d)
}

// FromTime returns the date of t, in t's location, expressed in cal.
func FromTime(cal calendars.Calendar, t time.Time) calendars.CalendarDate {
	return cal.FromJulianDay(JulianDay(t))
}

// ToTime returns midnight, in loc, on the specified date.
func ToTime(cal calendars.Calendar, date calendars.CalendarDate, loc *time.Location) time.Time {
	y, m, d := FromJulianDay(cal.ToJulianDay(date))
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc)
}

// Today returns the current date in loc expressed in cal.
func Today(cal calendars.Calendar, loc *time.Location) calendars.CalendarDate {
	return FromTime(cal, time.Now().In(loc))
}
