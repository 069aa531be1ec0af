// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars_test

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"cloudeng.io/calendars"
	"cloudeng.io/calendars/gregorian"
	"cloudeng.io/calendars/roc"
)

func TestRegistry(t *testing.T) {
	reg, err := calendars.NewRegistry(roc.New(), gregorian.New())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := reg.Identifiers(), []calendars.Identifier{"gregory", "roc"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	cal, err := reg.Lookup(roc.Identifier)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cal.Identifier(), roc.Identifier; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := reg.Lookup("hebrew"); !errors.Is(err, calendars.ErrUnknownCalendar) {
		t.Errorf("expected ErrUnknownCalendar, got %v", err)
	}
	if err := reg.Register(roc.New()); !errors.Is(err, calendars.ErrDuplicateCalendar) {
		t.Errorf("expected ErrDuplicateCalendar, got %v", err)
	}

	reg, err = calendars.NewRegistry(roc.New(), gregorian.New(), roc.New())
	if !errors.Is(err, calendars.ErrDuplicateCalendar) {
		t.Errorf("expected ErrDuplicateCalendar, got %v", err)
	}
	if got, want := len(reg.Identifiers()), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	var empty calendars.Registry
	if err := empty.Register(gregorian.New()); err != nil {
		t.Fatal(err)
	}
	if _, err := empty.Lookup(gregorian.Identifier); err != nil {
		t.Fatal(err)
	}
}

func TestRegistryConcurrency(t *testing.T) {
	reg, err := calendars.NewRegistry(gregorian.New(), roc.New())
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := reg.Lookup(roc.Identifier); err != nil {
					t.Error(err)
					return
				}
				reg.Identifiers()
			}
		}()
	}
	wg.Wait()
}
