// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"slices"

	"github.com/geoportfolio/geoportfolio/internal/model"
)

// Messages returns all contact messages, newest first.
func (s *Store) Messages() []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.messages)
}

// UnreadMessageCount returns the number of unread messages.
func (s *Store) UnreadMessageCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	for _, m := range s.messages {
		if !m.IsRead {
			n++
		}
	}
	return n
}

// AddMessage assigns the next id, stamps SubmittedAt, resets IsRead and
// prepends the message so the inbox stays newest first.
func (s *Store) AddMessage(m model.Message) model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = next(&s.seq.messages)
	m.SubmittedAt = now()
	m.IsRead = false
	s.messages = append([]model.Message{m}, s.messages...)
	return m
}

// MarkMessageRead flips IsRead on the message with the given id. Returns
// ErrNotFound if the id does not exist.
func (s *Store) MarkMessageRead(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].IsRead = true
			return nil
		}
	}
	return ErrNotFound
}

// DeleteMessage removes the message with the given id. No-op when absent.
func (s *Store) DeleteMessage(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = removeByID(s.messages, id, func(m model.Message) int64 { return m.ID })
}
