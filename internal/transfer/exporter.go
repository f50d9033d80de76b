// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package transfer

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/geoportfolio/geoportfolio/internal/model"
	"github.com/geoportfolio/geoportfolio/internal/store"
)

// Export builds the export document from a consistent store snapshot.
// Password hashes are stripped from user accounts.
func Export(st *store.Store) Document {
	snap := st.Snapshot()
	now := time.Now().UTC()

	doc := Document{
		Version:      ExportVersion,
		ExportedAt:   &now,
		ExportID:     uuid.NewString(),
		Works:        make([]Work, 0, len(snap.Works)),
		BlogPosts:    make([]BlogPost, 0, len(snap.BlogPosts)),
		Profile:      exportProfile(snap.Profile),
		SiteSettings: exportSiteSettings(snap.SiteSettings),
		Skills:       make([]Skill, 0, len(snap.Skills)),
		ContactInfo:  ContactInfo(snap.ContactInfo),
		Users:        make([]User, 0, len(snap.Users)),
		Categories:   make([]Category, 0, len(snap.Categories)),
	}

	for _, w := range snap.Works {
		doc.Works = append(doc.Works, Work{
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
	for _, p := range snap.BlogPosts {
		doc.BlogPosts = append(doc.BlogPosts, BlogPost{
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
	for _, sk := range snap.Skills {
		items := make([]SkillItem, 0, len(sk.Skills))
		for _, it := range sk.Skills {
			items = append(items, SkillItem(it))
		}
		doc.Skills = append(doc.Skills, Skill{ID: sk.ID, Category: sk.Category, Skills: items})
	}
	for _, u := range snap.Users {
		doc.Users = append(doc.Users, User{
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
	for _, c := range snap.Categories {
		doc.Categories = append(doc.Categories, Category(c))
	}

	return doc
}

// ExportToWriter writes the export document as indented JSON.
func ExportToWriter(w io.Writer, st *store.Store) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Export(st)); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	return nil
}

func exportProfile(p model.Profile) Profile {
	out := Profile{
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
		out.WhatIDo = append(out.WhatIDo, WhatIDoItem(it))
	}
	for _, it := range p.CoreCompetencies {
		out.CoreCompetencies = append(out.CoreCompetencies, Competency(it))
	}
	for _, it := range p.Education {
		out.Education = append(out.Education, Education(it))
	}
	for _, it := range p.Experience {
		out.Experience = append(out.Experience, Experience(it))
	}
	for _, it := range p.Certifications {
		out.Certifications = append(out.Certifications, Certification(it))
	}
	for _, it := range p.Training {
		out.Training = append(out.Training, Training(it))
	}
	for _, it := range p.Memberships {
		out.Memberships = append(out.Memberships, Membership(it))
	}
	return out
}

func exportSiteSettings(s model.SiteSettings) SiteSettings {
	return SiteSettings{
		Title:           s.Title,
		SocialLinks:     SocialLinks(s.SocialLinks),
		CopyrightText:   s.CopyrightText,
		FaviconURL:      s.FaviconURL,
		MetaDescription: s.MetaDescription,
	}
}
