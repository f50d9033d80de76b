// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"slices"

	"github.com/geoportfolio/geoportfolio/internal/model"
)

// BlogPosts returns all posts in insertion order.
func (s *Store) BlogPosts() []model.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.blogPosts)
}

// BlogPostByID looks up a single post.
func (s *Store) BlogPostByID(id int64) (model.BlogPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.blogPosts, id, func(p model.BlogPost) int64 { return p.ID })
}

// AddBlogPost assigns the next id, stamps CreatedAt, sanitizes the body
// and appends the post.
func (s *Store) AddBlogPost(p model.BlogPost) model.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = next(&s.seq.posts)
	p.CreatedAt = now()
	p.Content = htmlPolicy.Sanitize(p.Content)
	s.blogPosts = append(s.blogPosts, p)
	return p
}

// UpdateBlogPost replaces the post with the matching id, preserving the
// original CreatedAt. Returns ErrNotFound if the id does not exist.
func (s *Store) UpdateBlogPost(p model.BlogPost) (model.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := findByID(s.blogPosts, p.ID, func(x model.BlogPost) int64 { return x.ID })
	if !ok {
		return model.BlogPost{}, ErrNotFound
	}
	p.CreatedAt = cur.CreatedAt
	p.Content = htmlPolicy.Sanitize(p.Content)
	s.blogPosts, _ = replaceByID(s.blogPosts, p.ID, p, func(x model.BlogPost) int64 { return x.ID })
	return p, nil
}

// DeleteBlogPost removes the post with the given id. No-op when absent.
func (s *Store) DeleteBlogPost(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blogPosts = removeByID(s.blogPosts, id, func(x model.BlogPost) int64 { return x.ID })
}
