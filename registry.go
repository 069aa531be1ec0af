// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"
	"slices"
	"sync"

	"cloudeng.io/errors"
)

// Registry provides lookup of calendars by identifier. It is safe for
// concurrent use.
type Registry struct {
	mu   sync.RWMutex
	cals map[Identifier]Calendar // GUARDED_BY(mu)
}

// NewRegistry returns a new Registry containing the supplied calendars.
// All registration errors are returned, but the registry contains every
// calendar that was successfully registered.
func NewRegistry(cals ...Calendar) (*Registry, error) {
	r := &Registry{cals: map[Identifier]Calendar{}}
	errs := &errors.M{}
	for _, cal := range cals {
		errs.Append(r.Register(cal))
	}
	return r, errs.Err()
}

// Register adds cal to the registry.
func (r *Registry) Register(cal Calendar) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cals == nil {
		r.cals = map[Identifier]Calendar{}
	}
	id := cal.Identifier()
	if _, ok := r.cals[id]; ok {
		return fmt.Errorf("%v: %w", id, ErrDuplicateCalendar)
	}
	r.cals[id] = cal
	return nil
}

// Lookup returns the calendar with the specified identifier.
func (r *Registry) Lookup(id Identifier) (Calendar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if cal, ok := r.cals[id]; ok {
		return cal, nil
	}
	return nil, fmt.Errorf("%v: %w", id, ErrUnknownCalendar)
}

// Identifiers returns the identifiers of all registered calendars in
// sorted order.
func (r *Registry) Identifiers() []Identifier {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]Identifier, 0, len(r.cals))
	for id := range r.cals {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
