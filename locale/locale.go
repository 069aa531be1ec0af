// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package locale provides support for determining the calendar to use for
// a given BCP 47 locale.
package locale

import (
	"fmt"
	"strings"

	"cloudeng.io/calendars"
	"cloudeng.io/calendars/gregorian"
	"cloudeng.io/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config represents the calendar preferences for a set of locales, eg:
//
//	default: gregory
//	locales:
//	  zh-TW: roc
type Config struct {
	Default calendars.Identifier            `yaml:"default"`
	Locales map[string]calendars.Identifier `yaml:"locales"`
}

// ParseConfig parses a YAML representation of Config.
func ParseConfig(spec []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Resolver determines the calendar for a locale.
type Resolver struct {
	registry *calendars.Registry
	def      calendars.Identifier
	locales  map[string]calendars.Identifier
}

// NewResolver returns a Resolver for the calendars in registry using the
// preferences in cfg. The gregorian calendar is used as the default if
// none is configured. All invalid locales and unregistered calendars
// in cfg are reported.
func NewResolver(registry *calendars.Registry, cfg Config) (*Resolver, error) {
	r := &Resolver{
		registry: registry,
		def:      cfg.Default,
		locales:  make(map[string]calendars.Identifier, len(cfg.Locales)),
	}
	if len(r.def) == 0 {
		r.def = gregorian.Identifier
	}
	errs := &errors.M{}
	if _, err := registry.Lookup(r.def); err != nil {
		errs.Append(fmt.Errorf("default: %w", err))
	}
	for loc, id := range cfg.Locales {
		tag, err := language.Parse(normalize(loc))
		if err != nil {
			errs.Append(fmt.Errorf("locale %q: %w", loc, err))
			continue
		}
		if _, err := registry.Lookup(id); err != nil {
			errs.Append(fmt.Errorf("locale %q: %w", loc, err))
			continue
		}
		r.locales[tag.String()] = id
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return r, nil
}

// Resolve returns the calendar for locale. A calendar specified via the
// -u-ca- extension, eg. zh-TW-u-ca-roc, is used if it is registered.
// Otherwise the locale and then each of its parents are looked up in
// the configured preferences, falling back to the default calendar.
func (r *Resolver) Resolve(locale string) (calendars.Calendar, error) {
	tag, err := language.Parse(normalize(locale))
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", locale, err)
	}
	if ca := tag.TypeForKey("ca"); len(ca) > 0 {
		if cal, err := r.registry.Lookup(calendars.Identifier(ca)); err == nil {
			return cal, nil
		}
	}
	if stripped, err := tag.SetTypeForKey("ca", ""); err == nil {
		tag = stripped
	}
	for t := tag; t != language.Und; t = t.Parent() {
		if id, ok := r.locales[t.String()]; ok {
			return r.registry.Lookup(id)
		}
	}
	return r.registry.Lookup(r.def)
}

func normalize(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}
