// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"slices"

	"github.com/geoportfolio/geoportfolio/internal/model"
)

// Works returns all portfolio works in insertion order.
func (s *Store) Works() []model.Work {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.works)
}

// WorkByID looks up a single work.
func (s *Store) WorkByID(id int64) (model.Work, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.works {
		if w.ID == id {
			return w, true
		}
	}
	return model.Work{}, false
}

// AddWork assigns the next id, stamps CreatedAt, sanitizes the rich-text
// description and appends the work. Returns the stored copy.
func (s *Store) AddWork(w model.Work) model.Work {
	s.mu.Lock()
	defer s.mu.Unlock()

	w.ID = next(&s.seq.works)
	w.CreatedAt = now()
	w.LongDescription = htmlPolicy.Sanitize(w.LongDescription)
	s.works = append(s.works, w)
	return w
}

// UpdateWork replaces the work with the matching id. The original
// CreatedAt is preserved. Returns ErrNotFound if the id does not exist.
func (s *Store) UpdateWork(w model.Work) (model.Work, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := findByID(s.works, w.ID, func(x model.Work) int64 { return x.ID })
	if !ok {
		return model.Work{}, ErrNotFound
	}
	w.CreatedAt = cur.CreatedAt
	w.LongDescription = htmlPolicy.Sanitize(w.LongDescription)
	s.works, _ = replaceByID(s.works, w.ID, w, func(x model.Work) int64 { return x.ID })
	return w, nil
}

// DeleteWork removes the work with the given id. Deleting a missing id is
// a no-op.
func (s *Store) DeleteWork(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.works = removeByID(s.works, id, func(x model.Work) int64 { return x.ID })
}

// findByID returns the entry matching id.
func findByID[T any](items []T, id int64, idOf func(T) int64) (T, bool) {
	for i := range items {
		if idOf(items[i]) == id {
			return items[i], true
		}
	}
	var zero T
	return zero, false
}
