// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"slices"

	"github.com/geoportfolio/geoportfolio/internal/model"
)

// EmailLogs returns the mail audit trail, newest first.
func (s *Store) EmailLogs() []model.EmailLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.emailLog)
}

// LogEmail records an outbound notification without sending anything.
// Used directly by the test-email endpoint; lifecycle notifications go
// through the user and login mutations.
func (s *Store) LogEmail(recipient, subject, body string) model.EmailLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendEmailLog(recipient, subject, body)
}

// appendEmailLog prepends a log entry so the trail stays newest first.
// Caller must hold the write lock.
func (s *Store) appendEmailLog(recipient, subject, body string) model.EmailLog {
	entry := model.EmailLog{
		ID:        next(&s.seq.emails),
		Timestamp: now(),
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
	}
	s.emailLog = append([]model.EmailLog{entry}, s.emailLog...)
	return entry
}

// EmailSettings returns the SMTP configuration singleton.
func (s *Store) EmailSettings() model.EmailSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.emailSettings
}

// UpdateEmailSettings overwrites the SMTP configuration wholesale.
func (s *Store) UpdateEmailSettings(settings model.EmailSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emailSettings = settings
}
