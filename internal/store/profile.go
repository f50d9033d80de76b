// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"github.com/geoportfolio/geoportfolio/internal/model"
)

// Profile returns a copy of the site-owner profile.
func (s *Store) Profile() model.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProfile(s.profile)
}

// UpdateProfile overwrites the profile wholesale, sanitizing the bio and
// resynchronizing the sub-collection id counters with the incoming data.
func (s *Store) UpdateProfile(p model.Profile) model.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.Bio = htmlPolicy.Sanitize(p.Bio)
	s.profile = cloneProfile(p)
	s.resyncProfileSequences()
	return cloneProfile(s.profile)
}

// addSubItem assigns the next id from seq and appends the item to the
// sub-collection selected by get. Caller must hold the write lock.
func addSubItem[T any](s *Store, seq *int64, get func(*model.Profile) *[]T, item T, setID func(*T, int64)) T {
	setID(&item, next(seq))
	list := get(&s.profile)
	*list = append(*list, item)
	return item
}

// AddWhatIDo appends a what-I-do item.
func (s *Store) AddWhatIDo(item model.WhatIDoItem) model.WhatIDoItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return addSubItem(s, &s.seq.whatIDo,
		func(p *model.Profile) *[]model.WhatIDoItem { return &p.WhatIDo },
		item, func(i *model.WhatIDoItem, id int64) { i.ID = id })
}

// UpdateWhatIDo replaces the item with the matching id.
func (s *Store) UpdateWhatIDo(item model.WhatIDoItem) (model.WhatIDoItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ok bool
	if s.profile.WhatIDo, ok = replaceByID(s.profile.WhatIDo, item.ID, item,
		func(i model.WhatIDoItem) int64 { return i.ID }); !ok {
		return model.WhatIDoItem{}, ErrNotFound
	}
	return item, nil
}

// DeleteWhatIDo removes the item with the given id. No-op when absent.
func (s *Store) DeleteWhatIDo(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.WhatIDo = removeByID(s.profile.WhatIDo, id, func(i model.WhatIDoItem) int64 { return i.ID })
}

// AddCompetency appends a core competency.
func (s *Store) AddCompetency(item model.Competency) model.Competency {
	s.mu.Lock()
	defer s.mu.Unlock()
	return addSubItem(s, &s.seq.competencies,
		func(p *model.Profile) *[]model.Competency { return &p.CoreCompetencies },
		item, func(i *model.Competency, id int64) { i.ID = id })
}

// UpdateCompetency replaces the competency with the matching id.
func (s *Store) UpdateCompetency(item model.Competency) (model.Competency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ok bool
	if s.profile.CoreCompetencies, ok = replaceByID(s.profile.CoreCompetencies, item.ID, item,
		func(i model.Competency) int64 { return i.ID }); !ok {
		return model.Competency{}, ErrNotFound
	}
	return item, nil
}

// DeleteCompetency removes the competency with the given id.
func (s *Store) DeleteCompetency(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.CoreCompetencies = removeByID(s.profile.CoreCompetencies, id, func(i model.Competency) int64 { return i.ID })
}

// AddEducation appends an education entry.
func (s *Store) AddEducation(item model.Education) model.Education {
	s.mu.Lock()
	defer s.mu.Unlock()
	return addSubItem(s, &s.seq.education,
		func(p *model.Profile) *[]model.Education { return &p.Education },
		item, func(i *model.Education, id int64) { i.ID = id })
}

// UpdateEducation replaces the entry with the matching id.
func (s *Store) UpdateEducation(item model.Education) (model.Education, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ok bool
	if s.profile.Education, ok = replaceByID(s.profile.Education, item.ID, item,
		func(i model.Education) int64 { return i.ID }); !ok {
		return model.Education{}, ErrNotFound
	}
	return item, nil
}

// DeleteEducation removes the entry with the given id.
func (s *Store) DeleteEducation(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Education = removeByID(s.profile.Education, id, func(i model.Education) int64 { return i.ID })
}

// AddExperience appends a work-history entry.
func (s *Store) AddExperience(item model.Experience) model.Experience {
	s.mu.Lock()
	defer s.mu.Unlock()
	return addSubItem(s, &s.seq.experience,
		func(p *model.Profile) *[]model.Experience { return &p.Experience },
		item, func(i *model.Experience, id int64) { i.ID = id })
}

// UpdateExperience replaces the entry with the matching id.
func (s *Store) UpdateExperience(item model.Experience) (model.Experience, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ok bool
	if s.profile.Experience, ok = replaceByID(s.profile.Experience, item.ID, item,
		func(i model.Experience) int64 { return i.ID }); !ok {
		return model.Experience{}, ErrNotFound
	}
	return item, nil
}

// DeleteExperience removes the entry with the given id.
func (s *Store) DeleteExperience(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Experience = removeByID(s.profile.Experience, id, func(i model.Experience) int64 { return i.ID })
}

// AddCertification appends a certification.
func (s *Store) AddCertification(item model.Certification) model.Certification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return addSubItem(s, &s.seq.certifications,
		func(p *model.Profile) *[]model.Certification { return &p.Certifications },
		item, func(i *model.Certification, id int64) { i.ID = id })
}

// UpdateCertification replaces the certification with the matching id.
func (s *Store) UpdateCertification(item model.Certification) (model.Certification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ok bool
	if s.profile.Certifications, ok = replaceByID(s.profile.Certifications, item.ID, item,
		func(i model.Certification) int64 { return i.ID }); !ok {
		return model.Certification{}, ErrNotFound
	}
	return item, nil
}

// DeleteCertification removes the certification with the given id.
func (s *Store) DeleteCertification(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Certifications = removeByID(s.profile.Certifications, id, func(i model.Certification) int64 { return i.ID })
}

// AddTraining appends a training course.
func (s *Store) AddTraining(item model.Training) model.Training {
	s.mu.Lock()
	defer s.mu.Unlock()
	return addSubItem(s, &s.seq.training,
		func(p *model.Profile) *[]model.Training { return &p.Training },
		item, func(i *model.Training, id int64) { i.ID = id })
}

// UpdateTraining replaces the course with the matching id.
func (s *Store) UpdateTraining(item model.Training) (model.Training, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ok bool
	if s.profile.Training, ok = replaceByID(s.profile.Training, item.ID, item,
		func(i model.Training) int64 { return i.ID }); !ok {
		return model.Training{}, ErrNotFound
	}
	return item, nil
}

// DeleteTraining removes the course with the given id.
func (s *Store) DeleteTraining(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Training = removeByID(s.profile.Training, id, func(i model.Training) int64 { return i.ID })
}

// AddMembership appends a membership.
func (s *Store) AddMembership(item model.Membership) model.Membership {
	s.mu.Lock()
	defer s.mu.Unlock()
	return addSubItem(s, &s.seq.memberships,
		func(p *model.Profile) *[]model.Membership { return &p.Memberships },
		item, func(i *model.Membership, id int64) { i.ID = id })
}

// UpdateMembership replaces the membership with the matching id.
func (s *Store) UpdateMembership(item model.Membership) (model.Membership, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ok bool
	if s.profile.Memberships, ok = replaceByID(s.profile.Memberships, item.ID, item,
		func(i model.Membership) int64 { return i.ID }); !ok {
		return model.Membership{}, ErrNotFound
	}
	return item, nil
}

// DeleteMembership removes the membership with the given id.
func (s *Store) DeleteMembership(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Memberships = removeByID(s.profile.Memberships, id, func(i model.Membership) int64 { return i.ID })
}
