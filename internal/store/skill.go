// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"slices"

	"github.com/geoportfolio/geoportfolio/internal/model"
)

// Skills returns all skill groups.
func (s *Store) Skills() []model.Skill {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Skill, len(s.skills))
	for i, sk := range s.skills {
		sk.Skills = slices.Clone(sk.Skills)
		out[i] = sk
	}
	return out
}

// AddSkill assigns the next id, clamps item percentages to 0-100 and
// appends the group.
func (s *Store) AddSkill(sk model.Skill) model.Skill {
	s.mu.Lock()
	defer s.mu.Unlock()

	sk.ID = next(&s.seq.skills)
	sk.Skills = clampPercentages(sk.Skills)
	s.skills = append(s.skills, sk)
	return sk
}

// UpdateSkill replaces the group with the matching id. Returns ErrNotFound
// if the id does not exist.
func (s *Store) UpdateSkill(sk model.Skill) (model.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sk.Skills = clampPercentages(sk.Skills)
	var ok bool
	if s.skills, ok = replaceByID(s.skills, sk.ID, sk, func(x model.Skill) int64 { return x.ID }); !ok {
		return model.Skill{}, ErrNotFound
	}
	return sk, nil
}

// DeleteSkill removes the group with the given id. No-op when absent.
func (s *Store) DeleteSkill(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skills = removeByID(s.skills, id, func(x model.Skill) int64 { return x.ID })
}

func clampPercentages(items []model.SkillItem) []model.SkillItem {
	out := slices.Clone(items)
	for i := range out {
		if out[i].Percentage < 0 {
			out[i].Percentage = 0
		}
		if out[i].Percentage > 100 {
			out[i].Percentage = 100
		}
	}
	return out
}
