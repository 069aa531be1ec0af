// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import "errors"

var (
	// ErrInvalidDate is returned for dates that cannot be parsed or
	// whose fields are out of range for their calendar.
	ErrInvalidDate = errors.New("invalid date")

	// ErrUnknownCalendar is returned when a calendar identifier has not
	// been registered.
	ErrUnknownCalendar = errors.New("unknown calendar")

	// ErrDuplicateCalendar is returned when a calendar identifier is
	// registered more than once.
	ErrDuplicateCalendar = errors.New("calendar already registered")

	// ErrCalendarMismatch is returned when a date is used with a calendar
	// other than the one it is expressed in.
	ErrCalendarMismatch = errors.New("date belongs to a different calendar")
)
