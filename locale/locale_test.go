// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package locale_test

import (
	"errors"
	"testing"

	"cloudeng.io/calendars"
	"cloudeng.io/calendars/builtin"
	"cloudeng.io/calendars/locale"
)

const preferences = `
default: gregory
locales:
  zh-TW: roc
  zh_Hant_TW: roc
  fr: roc
`

func TestParseConfig(t *testing.T) {
	cfg, err := locale.ParseConfig([]byte(preferences))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.Default, calendars.Identifier("gregory"); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(cfg.Locales), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.Locales["zh-TW"], calendars.Identifier("roc"); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := locale.ParseConfig([]byte("locales: [")); err == nil {
		t.Errorf("expected an error")
	}
}

func TestResolve(t *testing.T) {
	cfg, err := locale.ParseConfig([]byte(preferences))
	if err != nil {
		t.Fatal(err)
	}
	resolver, err := locale.NewResolver(builtin.New(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		locale string
		cal    calendars.Identifier
	}{
		{"zh-TW", "roc"},
		{"zh_TW", "roc"},
		{" zh-tw ", "roc"},
		{"zh-Hant-TW", "roc"},
		{"en-US", "gregory"},
		{"en-US-u-ca-roc", "roc"},
		{"zh-TW-u-ca-gregory", "gregory"},
		{"zh-TW-u-ca-hebrew", "roc"},
		{"fr", "roc"},
		{"fr-FR", "roc"},
		{"fr-CA-u-ca-hebrew", "roc"},
		{"de", "gregory"},
	} {
		cal, err := resolver.Resolve(tc.locale)
		if err != nil {
			t.Errorf("%v: %v", tc.locale, err)
			continue
		}
		if got, want := cal.Identifier(), tc.cal; got != want {
			t.Errorf("%v: got %v, want %v", tc.locale, got, want)
		}
	}
	if _, err := resolver.Resolve("not a locale!"); err == nil {
		t.Errorf("expected an error")
	}
}

func TestResolverDefault(t *testing.T) {
	reg := builtin.New()
	resolver, err := locale.NewResolver(reg, locale.Config{})
	if err != nil {
		t.Fatal(err)
	}
	cal, err := resolver.Resolve("zh-TW")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cal.Identifier(), calendars.Identifier("gregory"); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	resolver, err = locale.NewResolver(reg, locale.Config{Default: "roc"})
	if err != nil {
		t.Fatal(err)
	}
	cal, err = resolver.Resolve("en")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cal.Identifier(), calendars.Identifier("roc"); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInvalidConfig(t *testing.T) {
	reg := builtin.New()
	_, err := locale.NewResolver(reg, locale.Config{Default: "hebrew"})
	if !errors.Is(err, calendars.ErrUnknownCalendar) {
		t.Errorf("expected ErrUnknownCalendar, got %v", err)
	}
	_, err = locale.NewResolver(reg, locale.Config{
		Locales: map[string]calendars.Identifier{
			"ja-JP":          "japanese",
			"not a locale!!": "roc",
			"zh-TW":          "roc",
		},
	})
	if !errors.Is(err, calendars.ErrUnknownCalendar) {
		t.Errorf("expected ErrUnknownCalendar, got %v", err)
	}
}
