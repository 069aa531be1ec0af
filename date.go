// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var months = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}

// Month as an int.
type Month time.Month

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d", n)
	}
	return Month(n), nil
}

// ParseMonth parses a month name of the form "Jan" to "Dec" or any other longer
// prefixes of "January" to "December" in either lower or upper case.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(val)
	if len(lc) == 0 {
		return 0, fmt.Errorf("invalid month: %q", val)
	}
	for i := range months {
		if strings.HasPrefix(months[i], lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %s", val)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

// CalendarDate represents a date in a specific calendar system as an era,
// a year within that era, a month and a day. The meaning of the year
// depends on the era, eg. years in an era that counts backwards increase
// the further back in time they are.
type CalendarDate struct {
	Calendar Identifier
	Era      string
	Year     int
	Month    Month
	Day      int
}

// NewCalendarDate returns a CalendarDate in the current era of cal.
func NewCalendarDate(cal Calendar, year int, month Month, day int) CalendarDate {
	return NewCalendarDateInEra(cal, cal.CurrentEra(), year, month, day)
}

// NewCalendarDateInEra returns a CalendarDate in the specified era of cal.
func NewCalendarDateInEra(cal Calendar, era string, year int, month Month, day int) CalendarDate {
	return CalendarDate{
		Calendar: cal.Identifier(),
		Era:      era,
		Year:     year,
		Month:    month,
		Day:      day,
	}
}

func (cd CalendarDate) String() string {
	if len(cd.Era) == 0 {
		return fmt.Sprintf("%d-%02d-%02d", cd.Year, cd.Month, cd.Day)
	}
	return fmt.Sprintf("%s %d-%02d-%02d", cd.Era, cd.Year, cd.Month, cd.Day)
}

// Validate returns an error if date is not expressed in cal, or if any
// of its fields are out of range for cal.
func Validate(cal Calendar, date CalendarDate) error {
	if date.Calendar != cal.Identifier() {
		return fmt.Errorf("%v: %v is not %v: %w", date, date.Calendar, cal.Identifier(), ErrCalendarMismatch)
	}
	if !IsEra(cal, date.Era) {
		return fmt.Errorf("%v: unknown era %q for calendar %v: %w", date, date.Era, cal.Identifier(), ErrInvalidDate)
	}
	if date.Year < 1 || date.Year > cal.YearsInEra(date) {
		return fmt.Errorf("%v: year out of range: %w", date, ErrInvalidDate)
	}
	if date.Month < 1 || int(date.Month) > cal.MonthsInYear(date) {
		return fmt.Errorf("%v: month out of range: %w", date, ErrInvalidDate)
	}
	if date.Day < 1 || date.Day > cal.DaysInMonth(date) {
		return fmt.Errorf("%v: day out of range: %w", date, ErrInvalidDate)
	}
	return nil
}

// ParseCalendarDate parses a date of the form '[<era> ]<year>-<month>-<day>'
// in the calendar cal, eg. 'minguo 113-03-05', '113-Mar-05'. The month
// may be numeric or a month name. The current era of cal is used if
// the era is omitted.
func ParseCalendarDate(cal Calendar, val string) (CalendarDate, error) {
	var era, ymd string
	switch parts := strings.Fields(val); len(parts) {
	case 1:
		era, ymd = cal.CurrentEra(), parts[0]
	case 2:
		era, ymd = parts[0], parts[1]
	default:
		return CalendarDate{}, fmt.Errorf("%q: expected format '[<era> ]<year>-<month>-<day>': %w", val, ErrInvalidDate)
	}
	parts := strings.Split(ymd, "-")
	if len(parts) != 3 {
		return CalendarDate{}, fmt.Errorf("%q: expected format '[<era> ]<year>-<month>-<day>': %w", val, ErrInvalidDate)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%q: invalid year: %v: %w", val, parts[0], ErrInvalidDate)
	}
	var month Month
	if err := month.Parse(parts[1]); err != nil {
		return CalendarDate{}, fmt.Errorf("%q: %v: %w", val, err, ErrInvalidDate)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%q: invalid day: %v: %w", val, parts[2], ErrInvalidDate)
	}
	cd := NewCalendarDateInEra(cal, era, year, month, day)
	if err := Validate(cal, cd); err != nil {
		return CalendarDate{}, err
	}
	return cd, nil
}
