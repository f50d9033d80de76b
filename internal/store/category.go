// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"slices"

	"github.com/geoportfolio/geoportfolio/internal/model"
)

// Categories returns all categories.
func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories)
}

// CategoriesByType returns the categories of one type (work or blog).
func (s *Store) CategoriesByType(categoryType string) []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Category
	for _, c := range s.categories {
		if c.Type == categoryType {
			out = append(out, c)
		}
	}
	return out
}

// AddCategory assigns the next id and appends the category.
func (s *Store) AddCategory(c model.Category) model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = next(&s.seq.categories)
	s.categories = append(s.categories, c)
	return c
}

// UpdateCategory replaces the category with the matching id. Renames do
// not cascade: works and posts keep the old category name.
func (s *Store) UpdateCategory(c model.Category) (model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ok bool
	if s.categories, ok = replaceByID(s.categories, c.ID, c, func(x model.Category) int64 { return x.ID }); !ok {
		return model.Category{}, ErrNotFound
	}
	return c, nil
}

// DeleteCategory removes the category with the given id. Content that
// referenced it keeps the dangling name. No-op when absent.
func (s *Store) DeleteCategory(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = removeByID(s.categories, id, func(x model.Category) int64 { return x.ID })
}
