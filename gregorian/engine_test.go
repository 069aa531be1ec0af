// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian_test

import (
	"testing"
	"time"

	"cloudeng.io/calendars"
	"cloudeng.io/calendars/gregorian"
)

// unixEpochJD is the Julian Day Number of 1970-01-01.
const unixEpochJD = 2440588

func TestKnownJulianDays(t *testing.T) {
	for _, tc := range []struct {
		year  int
		month calendars.Month
		day   int
		jd    int
	}{
		{2000, 1, 1, 2451545},
		{1970, 1, 1, unixEpochJD},
		{1582, 10, 15, 2299161},
		{1, 1, 1, 1721426},
		{0, 1, 1, 1721060},
		{0, 12, 31, 1721425},
		{1912, 1, 1, 2419403},
		{1911, 12, 31, 2419402},
		{2024, 2, 29, 2460370},
		{-4713, 11, 24, 0},
	} {
		if got, want := gregorian.ToJulianDay(tc.year, tc.month, tc.day), tc.jd; got != want {
			t.Errorf("%04d-%02d-%02d: got %v, want %v", tc.year, tc.month, tc.day, got, want)
		}
		y, m, d := gregorian.FromJulianDay(tc.jd)
		if y != tc.year || m != tc.month || d != tc.day {
			t.Errorf("%v: got %04d-%02d-%02d, want %04d-%02d-%02d", tc.jd, y, m, d, tc.year, tc.month, tc.day)
		}
	}
}

func TestJulianDaysAgainstTime(t *testing.T) {
	for jd := -1_000_000; jd < 4_000_000; jd += 97 {
		when := time.Unix(int64(jd-unixEpochJD)*24*60*60, 0).UTC()
		wy, wm, wd := when.Date()
		y, m, d := gregorian.FromJulianDay(jd)
		if y != wy || m != calendars.Month(wm) || d != wd {
			t.Fatalf("%v: got %04d-%02d-%02d, want %04d-%02d-%02d", jd, y, m, d, wy, wm, wd)
		}
		if got, want := gregorian.ToJulianDay(y, m, d), jd; got != want {
			t.Fatalf("%04d-%02d-%02d: got %v, want %v", y, m, d, got, want)
		}
		if got, want := gregorian.JulianDay(when), jd; got != want {
			t.Fatalf("%v: got %v, want %v", when, got, want)
		}
	}
}

func TestEngine(t *testing.T) {
	var engine calendars.Engine = gregorian.Engine{}
	for jd := 2_400_000; jd < 2_500_000; jd += 13 {
		y, m, d := engine.FromJulianDay(jd)
		if got, want := engine.ToJulianDay(y, m, d), jd; got != want {
			t.Errorf("%v: got %v, want %v", jd, got, want)
		}
	}
}

func TestToJulianDayOverflow(t *testing.T) {
	// Days past the end of the month advance into the next month.
	if got, want := gregorian.ToJulianDay(2023, 2, 29), gregorian.ToJulianDay(2023, 3, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := gregorian.ToJulianDay(2023, 1, 0), gregorian.ToJulianDay(2022, 12, 31); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLeapYears(t *testing.T) {
	for _, tc := range []struct {
		year int
		leap bool
	}{
		{2024, true},
		{2023, false},
		{2000, true},
		{1900, false},
		{0, true},
		{-4, true},
		{-1, false},
		{-100, false},
		{-400, true},
	} {
		if got, want := gregorian.IsLeap(tc.year), tc.leap; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
	if got, want := gregorian.DaysInFeb(2024), 29; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := gregorian.DaysInFeb(2023), 28; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDaysInMonth(t *testing.T) {
	nonLeap := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for i, want := range nonLeap {
		if got := gregorian.DaysInMonth(2023, calendars.Month(i+1)); got != want {
			t.Errorf("2023-%02d: got %v, want %v", i+1, got, want)
		}
		if i == 1 {
			want = 29
		}
		if got := gregorian.DaysInMonth(2024, calendars.Month(i+1)); got != want {
			t.Errorf("2024-%02d: got %v, want %v", i+1, got, want)
		}
	}
}

func TestDayOfYear(t *testing.T) {
	for _, tc := range []struct {
		year  int
		month calendars.Month
		day   int
		yday  int
	}{
		{2023, 1, 1, 1},
		{2023, 3, 1, 60},
		{2024, 3, 1, 61},
		{2023, 12, 31, 365},
		{2024, 12, 31, 366},
	} {
		if got, want := gregorian.DayOfYear(tc.year, tc.month, tc.day), tc.yday; got != want {
			t.Errorf("%04d-%02d-%02d: got %v, want %v", tc.year, tc.month, tc.day, got, want)
		}
		when := time.Date(tc.year, time.Month(tc.month), tc.day, 0, 0, 0, 0, time.UTC)
		if got, want := gregorian.DayOfYear(tc.year, tc.month, tc.day), when.YearDay(); got != want {
			t.Errorf("%04d-%02d-%02d: got %v, want %v", tc.year, tc.month, tc.day, got, want)
		}
	}
}
