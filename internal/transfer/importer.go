// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package transfer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/geoportfolio/geoportfolio/internal/model"
	"github.com/geoportfolio/geoportfolio/internal/store"
)

// requiredKeys are the top-level keys an import document must carry.
var requiredKeys = []string{
	"works", "blogPosts", "profile", "siteSettings",
	"skills", "contactInfo", "users", "categories",
}

// FieldError describes one rejected part of an import document.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationErrors is the full list of problems found in a document.
// A document with any entry is rejected without touching the store.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Path + ": " + e.Message
	}
	return "invalid import document: " + strings.Join(msgs, "; ")
}

// Importer validates and applies import documents.
type Importer struct {
	store *store.Store
}

// NewImporter creates an importer writing into the given store.
func NewImporter(st *store.Store) *Importer {
	return &Importer{store: st}
}

// ImportFromReader parses, validates and applies a document. The store is
// replaced wholesale only if the whole document is valid; any error leaves
// the current content untouched.
func (im *Importer) ImportFromReader(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading import: %w", err)
	}
	return im.Import(data)
}

// Import applies a raw JSON document. Validation failures are returned as
// ValidationErrors.
func (im *Importer) Import(data []byte) error {
	doc, errs := Parse(data)
	if errs != nil {
		return errs
	}

	im.store.ReplaceAll(toSnapshot(doc))
	return nil
}

// Parse decodes and validates a document without applying it.
func Parse(data []byte) (*Document, error) {
	// Key presence is checked on the raw object: json.Unmarshal would
	// silently default missing collections, and a backup missing a whole
	// key is a different user error than an empty collection.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, ValidationErrors{{Path: "$", Message: "not a JSON object: " + err.Error()}}
	}

	var errs ValidationErrors
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			errs = append(errs, FieldError{Path: key, Message: "required key is missing"})
		}
	}
	if errs != nil {
		return nil, errs
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, ValidationErrors{{Path: "$", Message: err.Error()}}
	}

	errs = append(errs, validateDocument(&doc)...)
	if errs != nil {
		return nil, errs
	}
	return &doc, nil
}

func validateDocument(doc *Document) ValidationErrors {
	var errs ValidationErrors

	for i, w := range doc.Works {
		if w.ID <= 0 {
			errs = append(errs, FieldError{Path: fmt.Sprintf("works[%d].id", i), Message: "must be a positive integer"})
		}
		if w.Title == "" {
			errs = append(errs, FieldError{Path: fmt.Sprintf("works[%d].title", i), Message: "must not be empty"})
		}
	}

	for i, p := range doc.BlogPosts {
		if p.ID <= 0 {
			errs = append(errs, FieldError{Path: fmt.Sprintf("blogPosts[%d].id", i), Message: "must be a positive integer"})
		}
		if p.Title == "" {
			errs = append(errs, FieldError{Path: fmt.Sprintf("blogPosts[%d].title", i), Message: "must not be empty"})
		}
	}

	for i, c := range doc.Categories {
		if c.ID <= 0 {
			errs = append(errs, FieldError{Path: fmt.Sprintf("categories[%d].id", i), Message: "must be a positive integer"})
		}
		if !model.IsValidCategoryType(c.Type) {
			errs = append(errs, FieldError{Path: fmt.Sprintf("categories[%d].type", i), Message: "must be work or blog"})
		}
	}

	for i, sk := range doc.Skills {
		if sk.ID <= 0 {
			errs = append(errs, FieldError{Path: fmt.Sprintf("skills[%d].id", i), Message: "must be a positive integer"})
		}
		for j, item := range sk.Skills {
			if item.Percentage < 0 || item.Percentage > 100 {
				errs = append(errs, FieldError{
					Path:    fmt.Sprintf("skills[%d].skills[%d].percentage", i, j),
					Message: "must be between 0 and 100",
				})
			}
		}
	}

	for i, u := range doc.Users {
		if u.ID <= 0 {
			errs = append(errs, FieldError{Path: fmt.Sprintf("users[%d].id", i), Message: "must be a positive integer"})
		}
		if u.Email == "" {
			errs = append(errs, FieldError{Path: fmt.Sprintf("users[%d].email", i), Message: "must not be empty"})
		}
		if u.Role != model.RoleAdmin && u.Role != model.RoleEditor {
			errs = append(errs, FieldError{Path: fmt.Sprintf("users[%d].role", i), Message: "must be admin or editor"})
		}
		if u.Status != model.StatusActive && u.Status != model.StatusInactive {
			errs = append(errs, FieldError{Path: fmt.Sprintf("users[%d].status", i), Message: "must be active or inactive"})
		}
	}

	return errs
}

// toSnapshot converts a validated document to a store snapshot. Imported
// accounts have no password hash and cannot log in until one is set.
func toSnapshot(doc *Document) store.Snapshot {
	snap := store.Snapshot{
		Works:        make([]model.Work, 0, len(doc.Works)),
		BlogPosts:    make([]model.BlogPost, 0, len(doc.BlogPosts)),
		Profile:      importProfile(doc.Profile),
		SiteSettings: importSiteSettings(doc.SiteSettings),
		Skills:       make([]model.Skill, 0, len(doc.Skills)),
		ContactInfo:  model.ContactInfo(doc.ContactInfo),
		Users:        make([]model.User, 0, len(doc.Users)),
		Categories:   make([]model.Category, 0, len(doc.Categories)),
	}

	for _, w := range doc.Works {
		snap.Works = append(snap.Works, model.Work{
			ID:              w.ID,
			Title:           w.Title,
			Description:     w.Description,
			LongDescription: w.LongDescription,
			ImageURL:        w.ImageURL,
			Category:        w.Category,
			Tags:            w.Tags,
			Link:            w.Link,
			ImageStyle:      w.ImageStyle,
			CreatedAt:       w.CreatedAt,
			Place:           w.Place,
		})
	}
	for _, p := range doc.BlogPosts {
		snap.BlogPosts = append(snap.BlogPosts, model.BlogPost{
			ID:          p.ID,
			Title:       p.Title,
			Summary:     p.Summary,
			Content:     p.Content,
			ImageURL:    p.ImageURL,
			PublishDate: p.PublishDate,
			Author:      p.Author,
			Category:    p.Category,
			ImageStyle:  p.ImageStyle,
			CreatedAt:   p.CreatedAt,
			Place:       p.Place,
		})
	}
	for _, sk := range doc.Skills {
		items := make([]model.SkillItem, 0, len(sk.Skills))
		for _, it := range sk.Skills {
			items = append(items, model.SkillItem(it))
		}
		snap.Skills = append(snap.Skills, model.Skill{ID: sk.ID, Category: sk.Category, Skills: items})
	}
	for _, u := range doc.Users {
		snap.Users = append(snap.Users, model.User{
			ID:         u.ID,
			Name:       u.Name,
			Email:      u.Email,
			Role:       u.Role,
			Status:     u.Status,
			LastLogin:  u.LastLogin,
			CreatedOn:  u.CreatedOn,
			LastUpdate: u.LastUpdate,
		})
	}
	for _, c := range doc.Categories {
		snap.Categories = append(snap.Categories, model.Category(c))
	}

	return snap
}

func importProfile(p Profile) model.Profile {
	out := model.Profile{
		Name:                 p.Name,
		Title:                p.Title,
		Summary:              p.Summary,
		Bio:                  p.Bio,
		AvatarURL:            p.AvatarURL,
		ResumeURL:            p.ResumeURL,
		ExpertiseTitle:       p.ExpertiseTitle,
		ExpertiseDescription: p.ExpertiseDescription,
	}
	for _, it := range p.WhatIDo {
		out.WhatIDo = append(out.WhatIDo, model.WhatIDoItem(it))
	}
	for _, it := range p.CoreCompetencies {
		out.CoreCompetencies = append(out.CoreCompetencies, model.Competency(it))
	}
	for _, it := range p.Education {
		out.Education = append(out.Education, model.Education(it))
	}
	for _, it := range p.Experience {
		out.Experience = append(out.Experience, model.Experience(it))
	}
	for _, it := range p.Certifications {
		out.Certifications = append(out.Certifications, model.Certification(it))
	}
	for _, it := range p.Training {
		out.Training = append(out.Training, model.Training(it))
	}
	for _, it := range p.Memberships {
		out.Memberships = append(out.Memberships, model.Membership(it))
	}
	return out
}

func importSiteSettings(s SiteSettings) model.SiteSettings {
	return model.SiteSettings{
		Title:           s.Title,
		SocialLinks:     model.SocialLinks(s.SocialLinks),
		CopyrightText:   s.CopyrightText,
		FaviconURL:      s.FaviconURL,
		MetaDescription: s.MetaDescription,
	}
}
