// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"fmt"
	"slices"
	"strings"

	"github.com/geoportfolio/geoportfolio/internal/model"
)

// Users returns all accounts.
func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.users)
}

// UserByID looks up an account by id.
func (s *Store) UserByID(id int64) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findByID(s.users, id, func(u model.User) int64 { return u.ID })
}

// UserByEmail looks up an account by email, case-insensitively.
func (s *Store) UserByEmail(email string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return model.User{}, false
}

// CreateUser assigns the next id, stamps CreatedOn and LastUpdate and
// appends the account. A welcome notification is written to the email log.
// The caller supplies an already hashed password.
func (s *Store) CreateUser(u model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := now()
	u.ID = next(&s.seq.users)
	u.LastLogin = nil
	u.CreatedOn = ts
	u.LastUpdate = ts
	s.users = append(s.users, u)

	s.appendEmailLog(u.Email, "Welcome to GeoPortfolio!",
		fmt.Sprintf("Hi %s,\n\nAn account has been created for you. You can now log in with your credentials.", u.Name))
	return u
}

// UpdateUser replaces the account with the matching id. The stored
// password hash, CreatedOn and LastLogin are preserved and LastUpdate is
// refreshed. Returns ErrNotFound if the id does not exist.
func (s *Store) UpdateUser(u model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := findByID(s.users, u.ID, func(x model.User) int64 { return x.ID })
	if !ok {
		return model.User{}, ErrNotFound
	}
	u.PasswordHash = cur.PasswordHash
	u.CreatedOn = cur.CreatedOn
	u.LastLogin = cur.LastLogin
	u.LastUpdate = now()
	s.users, _ = replaceByID(s.users, u.ID, u, func(x model.User) int64 { return x.ID })
	return u, nil
}

// SetUserPassword stores a new password hash for the account and refreshes
// LastUpdate. Returns ErrNotFound if the id does not exist.
func (s *Store) SetUserPassword(id int64, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].PasswordHash = passwordHash
			s.users[i].LastUpdate = now()
			return nil
		}
	}
	return ErrNotFound
}

// ToggleUserStatus flips the account between active and inactive and logs
// an enabled/disabled notification. Returns the updated account, or
// ErrNotFound if the id does not exist.
func (s *Store) ToggleUserStatus(id int64) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}

		if s.users[i].Status == model.StatusActive {
			s.users[i].Status = model.StatusInactive
		} else {
			s.users[i].Status = model.StatusActive
		}
		s.users[i].LastUpdate = now()

		u := s.users[i]
		word := "Disabled"
		if u.Status == model.StatusActive {
			word = "Enabled"
		}
		s.appendEmailLog(u.Email, "Your Account Has Been "+word,
			fmt.Sprintf("Hi %s,\n\nYour account status has been updated to: %s.", u.Name, strings.ToUpper(u.Status)))
		return u, nil
	}
	return model.User{}, ErrNotFound
}

// DeleteUser removes the account and logs a deletion notification carrying
// the reason. Deleting a missing id is a no-op with no log entry.
func (s *Store) DeleteUser(id int64, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := findByID(s.users, id, func(x model.User) int64 { return x.ID })
	if !ok {
		return
	}
	s.users = removeByID(s.users, id, func(x model.User) int64 { return x.ID })
	s.appendEmailLog(u.Email, "Your Account Has Been Deleted",
		fmt.Sprintf("Hi %s,\n\nYour account has been deleted by an administrator.\n\nReason: %s", u.Name, reason))
}

// LoginMeta is the request context captured with a successful login.
type LoginMeta struct {
	IPAddress string
	Browser   string
	OS        string
	Country   string
}

// RecordLogin stamps the account's LastLogin and appends a login activity
// entry. When securityAlert is set a security notification is also written
// to the email log; the first login of a freshly installed site skips it.
func (s *Store) RecordLogin(userID int64, meta LoginMeta, securityAlert bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user *model.User
	for i := range s.users {
		if s.users[i].ID == userID {
			user = &s.users[i]
			break
		}
	}
	if user == nil {
		return ErrNotFound
	}

	ts := now()
	user.LastLogin = &ts

	s.loginActivity = append(s.loginActivity, model.LoginActivity{
		ID:        next(&s.seq.activity),
		UserName:  user.Name,
		Timestamp: ts,
		IPAddress: meta.IPAddress,
		Browser:   meta.Browser,
		OS:        meta.OS,
		Country:   meta.Country,
	})

	if securityAlert {
		s.appendEmailLog(user.Email, "Security Alert: New Login",
			fmt.Sprintf("Hi %s,\n\nWe detected a new login to your account at %s. If this was not you, please contact an administrator immediately.",
				user.Name, ts.Format("2006-01-02 15:04:05 MST")))
	}
	return nil
}
