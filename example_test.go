// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars_test

import (
	"fmt"

	"cloudeng.io/calendars"
	"cloudeng.io/calendars/gregorian"
	"cloudeng.io/calendars/roc"
)

func Example() {
	rc := roc.New()
	gc := gregorian.New()
	date, err := calendars.ParseCalendarDate(rc, "before_minguo 1-12-31")
	if err != nil {
		panic(err)
	}
	fmt.Println(calendars.Add(rc, date, calendars.Duration{Days: 1}))
	converted, err := calendars.ToCalendar(calendars.NewCalendarDate(gc, 2024, 3, 5), gc, rc)
	if err != nil {
		panic(err)
	}
	fmt.Println(converted)
	// Output:
	// minguo 1-01-01
	// minguo 113-03-05
}

func ExampleParseISO8601Duration() {
	rc := roc.New()
	dur, err := calendars.ParseISO8601Duration("P1M")
	if err != nil {
		panic(err)
	}
	fmt.Println(calendars.Add(rc, calendars.NewCalendarDate(rc, 113, 1, 31), dur))
	// Output:
	// minguo 113-02-29
}
