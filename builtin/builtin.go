// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package builtin provides access to the calendars implemented by
// this module.
package builtin

import (
	"fmt"

	"cloudeng.io/calendars"
	"cloudeng.io/calendars/gregorian"
	"cloudeng.io/calendars/roc"
)

// Calendars returns new instances of all of the built in calendars.
func Calendars() []calendars.Calendar {
	return []calendars.Calendar{
		gregorian.New(),
		roc.New(),
	}
}

// New returns a registry containing all of the built in calendars.
func New() *calendars.Registry {
	r, err := calendars.NewRegistry(Calendars()...)
	if err != nil {
		panic(fmt.Sprintf("builtin calendars: %v", err))
	}
	return r
}

// CreateCalendar returns a new instance of the built in calendar with
// the specified identifier.
func CreateCalendar(id calendars.Identifier) (calendars.Calendar, error) {
	switch id {
	case gregorian.Identifier:
		return gregorian.New(), nil
	case roc.Identifier:
		return roc.New(), nil
	}
	return nil, fmt.Errorf("%v: %w", id, calendars.ErrUnknownCalendar)
}
