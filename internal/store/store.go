// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store owns every entity collection and is the only component
// allowed to mutate them. All data is held in process memory for the
// lifetime of the server; JSON import/export is the only durable transfer
// mechanism. Every mutation happens under one lock and accessors return
// copies, so callers never observe partial state.
package store

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/geoportfolio/geoportfolio/internal/model"
)

// ErrNotFound is returned by update operations targeting an id that is not
// present in the collection. Deletes stay idempotent no-ops instead.
var ErrNotFound = errors.New("entity not found")

// htmlPolicy sanitizes rich-text content fields (work long descriptions,
// post bodies, the profile bio) on every write. UGCPolicy allows safe
// formatting tags while stripping scripts and event handlers.
var htmlPolicy = bluemonday.UGCPolicy()

// sequences holds one monotonic id counter per collection. Counters never
// reuse ids after a delete; they are recomputed only when a whole
// collection is replaced (import, initialize).
type sequences struct {
	works      int64
	posts      int64
	categories int64
	skills     int64
	users      int64
	messages   int64
	emails     int64
	activity   int64

	whatIDo        int64
	competencies   int64
	education      int64
	experience     int64
	certifications int64
	training       int64
	memberships    int64
}

// Store is the in-memory data store.
type Store struct {
	mu sync.RWMutex

	works         []model.Work
	blogPosts     []model.BlogPost
	profile       model.Profile
	siteSettings  model.SiteSettings
	skills        []model.Skill
	contactInfo   model.ContactInfo
	users         []model.User
	categories    []model.Category
	loginActivity []model.LoginActivity
	messages      []model.Message
	emailLog      []model.EmailLog
	emailSettings model.EmailSettings

	seq sequences
}

// New creates an empty store. Call Seed to load the demo content.
func New() *Store {
	return &Store{}
}

// now returns the timestamp stamped onto mutated entities.
func now() time.Time {
	return time.Now().UTC()
}

// next increments a sequence counter and returns the new id.
func next(seq *int64) int64 {
	*seq++
	return *seq
}

// replaceByID returns a copy of items with the entry matching id replaced.
// The second return value reports whether a match was found.
func replaceByID[T any](items []T, id int64, item T, idOf func(T) int64) ([]T, bool) {
	for i := range items {
		if idOf(items[i]) == id {
			out := slices.Clone(items)
			out[i] = item
			return out, true
		}
	}
	return items, false
}

// removeByID returns items without the entry matching id. Removing a
// missing id returns the input unchanged.
func removeByID[T any](items []T, id int64, idOf func(T) int64) []T {
	return slices.DeleteFunc(slices.Clone(items), func(it T) bool {
		return idOf(it) == id
	})
}

// maxID returns the highest id in items, or 0 for an empty collection.
func maxID[T any](items []T, idOf func(T) int64) int64 {
	var m int64
	for i := range items {
		if id := idOf(items[i]); id > m {
			m = id
		}
	}
	return m
}

// Snapshot is a copy of the eight transferable collections, the exact set
// covered by JSON import/export. Audit collections (email log, login
// activity) and email settings stay behind.
type Snapshot struct {
	Works        []model.Work
	BlogPosts    []model.BlogPost
	Profile      model.Profile
	SiteSettings model.SiteSettings
	Skills       []model.Skill
	ContactInfo  model.ContactInfo
	Users        []model.User
	Categories   []model.Category
}

// Snapshot returns a copy of the current transferable state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Works:        slices.Clone(s.works),
		BlogPosts:    slices.Clone(s.blogPosts),
		Profile:      cloneProfile(s.profile),
		SiteSettings: s.siteSettings,
		Skills:       slices.Clone(s.skills),
		ContactInfo:  s.contactInfo,
		Users:        slices.Clone(s.users),
		Categories:   slices.Clone(s.categories),
	}
}

// ReplaceAll swaps in the snapshot wholesale and resynchronizes the id
// counters. Nothing is partially applied: validation happens before this
// call (see the transfer package) and the swap itself runs under the lock.
func (s *Store) ReplaceAll(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.works = slices.Clone(snap.Works)
	s.blogPosts = slices.Clone(snap.BlogPosts)
	s.profile = cloneProfile(snap.Profile)
	s.siteSettings = snap.SiteSettings
	s.skills = slices.Clone(snap.Skills)
	s.contactInfo = snap.ContactInfo
	s.users = slices.Clone(snap.Users)
	s.categories = slices.Clone(snap.Categories)

	s.resyncSequences()
}

// resyncSequences recomputes the id counters from the collection contents.
// Caller must hold the write lock.
func (s *Store) resyncSequences() {
	s.seq.works = maxID(s.works, func(w model.Work) int64 { return w.ID })
	s.seq.posts = maxID(s.blogPosts, func(p model.BlogPost) int64 { return p.ID })
	s.seq.categories = maxID(s.categories, func(c model.Category) int64 { return c.ID })
	s.seq.skills = maxID(s.skills, func(sk model.Skill) int64 { return sk.ID })
	s.seq.users = maxID(s.users, func(u model.User) int64 { return u.ID })
	s.resyncProfileSequences()
}

// resyncProfileSequences recomputes the sub-collection counters. Caller
// must hold the write lock.
func (s *Store) resyncProfileSequences() {
	s.seq.whatIDo = maxID(s.profile.WhatIDo, func(i model.WhatIDoItem) int64 { return i.ID })
	s.seq.competencies = maxID(s.profile.CoreCompetencies, func(i model.Competency) int64 { return i.ID })
	s.seq.education = maxID(s.profile.Education, func(i model.Education) int64 { return i.ID })
	s.seq.experience = maxID(s.profile.Experience, func(i model.Experience) int64 { return i.ID })
	s.seq.certifications = maxID(s.profile.Certifications, func(i model.Certification) int64 { return i.ID })
	s.seq.training = maxID(s.profile.Training, func(i model.Training) int64 { return i.ID })
	s.seq.memberships = maxID(s.profile.Memberships, func(i model.Membership) int64 { return i.ID })
}

// cloneProfile copies a profile including its sub-collection slices.
func cloneProfile(p model.Profile) model.Profile {
	p.WhatIDo = slices.Clone(p.WhatIDo)
	p.CoreCompetencies = slices.Clone(p.CoreCompetencies)
	p.Education = slices.Clone(p.Education)
	p.Experience = slices.Clone(p.Experience)
	p.Certifications = slices.Clone(p.Certifications)
	p.Training = slices.Clone(p.Training)
	p.Memberships = slices.Clone(p.Memberships)
	return p
}
