// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidISO8601Duration is returned for durations that cannot be
// parsed by ParseISO8601Duration.
var ErrInvalidISO8601Duration = errors.New("invalid ISO8601 duration")

// Duration represents a calendar duration. Unlike time.Duration the
// length of each unit depends on the calendar and the date it is
// applied to.
type Duration struct {
	Years  int
	Months int
	Weeks  int
	Days   int
}

// Negate returns the duration with all of its fields negated.
func (d Duration) Negate() Duration {
	return Duration{
		Years:  -d.Years,
		Months: -d.Months,
		Weeks:  -d.Weeks,
		Days:   -d.Days,
	}
}

// IsZero returns true if all of the fields of d are zero.
func (d Duration) IsZero() bool {
	return d == Duration{}
}

// String returns d in ISO8601 format.
func (d Duration) String() string {
	if d.IsZero() {
		return "P0D"
	}
	var out strings.Builder
	out.WriteByte('P')
	for _, f := range []struct {
		n          int
		designator byte
	}{
		{d.Years, 'Y'},
		{d.Months, 'M'},
		{d.Weeks, 'W'},
		{d.Days, 'D'},
	} {
		if f.n == 0 {
			continue
		}
		out.WriteString(strconv.Itoa(f.n))
		out.WriteByte(f.designator)
	}
	return out.String()
}

func consumeN(dur string) (int, byte, int, error) {
	for i := range dur {
		c := dur[i]
		if (c >= '0' && c <= '9') || (i == 0 && c == '-') {
			continue
		}
		switch c {
		case 'Y', 'M', 'W', 'D':
			n, err := strconv.Atoi(dur[:i])
			if err != nil {
				return 0, 0, 0, fmt.Errorf("invalid number: %q: %q: %w", dur[:i], dur, ErrInvalidISO8601Duration)
			}
			return n, c, i + 1, nil
		}
		break
	}
	return 0, 0, 0, fmt.Errorf("invalid number or duration designator: %s: %w", dur, ErrInvalidISO8601Duration)
}

// ParseISO8601Duration parses the date portion of an ISO8601 duration,
// ie. [-]PnYnMnWnD. Individual components may be negative. Time
// components (those following a 'T') are not supported since calendar
// dates have no time of day.
func ParseISO8601Duration(dur string) (Duration, error) {
	nl := len(dur)
	hasP, hasNP := (nl > 0 && dur[0] == 'P'), (nl > 1 && dur[0] == '-' && dur[1] == 'P')
	if !hasP && !hasNP {
		return Duration{}, fmt.Errorf("duration must start with P or -P: %s: %w", dur, ErrInvalidISO8601Duration)
	}
	orig := dur
	dur = dur[1:]
	if hasNP {
		dur = dur[1:]
	}
	if len(dur) == 0 {
		return Duration{}, fmt.Errorf("empty duration: %s: %w", orig, ErrInvalidISO8601Duration)
	}
	var result Duration
	for len(dur) > 0 {
		if dur[0] == 'T' {
			return Duration{}, fmt.Errorf("time components are not supported: %s: %w", orig, ErrInvalidISO8601Duration)
		}
		n, designator, idx, err := consumeN(dur)
		if err != nil {
			return Duration{}, err
		}
		dur = dur[idx:]
		switch designator {
		case 'Y':
			result.Years += n
		case 'M':
			result.Months += n
		case 'W':
			result.Weeks += n
		case 'D':
			result.Days += n
		}
	}
	if hasNP {
		result = result.Negate()
	}
	return result, nil
}
