// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"fmt"
	"time"

	"github.com/geoportfolio/geoportfolio/internal/auth"
	"github.com/geoportfolio/geoportfolio/internal/model"
)

// Demo credentials available until the setup wizard replaces the user list.
const (
	DemoAdminEmail     = "admin@tarikulparag.com"
	DemoAdminPassword  = "admin123"
	DemoEditorEmail    = "editor@tarikulparag.com"
	DemoEditorPassword = "editor123"
)

// Seed loads the demo content into an empty store. It runs on every
// process start; only the installed flag and sessions live in the state
// database, so content always begins from this snapshot.
func (s *Store) Seed() error {
	adminHash, err := auth.HashPassword(DemoAdminPassword)
	if err != nil {
		return fmt.Errorf("hashing demo admin password: %w", err)
	}
	editorHash, err := auth.HashPassword(DemoEditorPassword)
	if err != nil {
		return fmt.Errorf("hashing demo editor password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories = seedCategories()
	s.works = seedWorks()
	s.blogPosts = seedBlogPosts()
	s.profile = seedProfile()
	s.skills = seedSkills()
	s.siteSettings = seedSiteSettings()
	s.contactInfo = seedContactInfo()
	s.users = seedUsers(adminHash, editorHash)
	s.emailSettings = seedEmailSettings()
	s.loginActivity = nil
	s.messages = nil
	s.emailLog = nil

	s.resyncSequences()
	return nil
}

func ts(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

func seedCategories() []model.Category {
	return []model.Category{
		{ID: 1, Name: "GIS", Type: model.CategoryTypeWork},
		{ID: 2, Name: "Remote Sensing", Type: model.CategoryTypeWork},
		{ID: 3, Name: "Research", Type: model.CategoryTypeWork},
		{ID: 4, Name: "Experimental", Type: model.CategoryTypeWork},
		{ID: 5, Name: "Web Development", Type: model.CategoryTypeWork},
		{ID: 6, Name: "Technical Analysis", Type: model.CategoryTypeBlog},
		{ID: 7, Name: "Tutorials", Type: model.CategoryTypeBlog},
		{ID: 8, Name: "Case Studies", Type: model.CategoryTypeBlog},
	}
}

func seedWorks() []model.Work {
	return []model.Work{
		{
			ID:              1,
			Title:           "Land Use Change Analysis in Dhaka City",
			Description:     "Analyzing urban expansion and land use changes in Dhaka using satellite imagery.",
			LongDescription: "<h2>Project Overview</h2><p>This undergraduate research project examined land use and land cover changes in Dhaka city over the past decade using Landsat satellite imagery. The study employed image classification techniques and change detection analysis to understand urban expansion patterns and their environmental implications.</p>",
			ImageURL:        "https://picsum.photos/seed/dhaka-gis/600/400",
			Category:        "GIS",
			Tags:            []string{"GIS", "Urban Planning", "Land Use Change"},
			Link:            "#/works",
			ImageStyle:      model.ImageStyleCover,
			CreatedAt:       ts("2023-11-10T10:00:00Z"),
			Place:           "Dhaka, Bangladesh",
		},
		{
			ID:              2,
			Title:           "Flood Risk Assessment using Remote Sensing",
			Description:     "Using Sentinel-2 data to assess flood vulnerability in rural Bangladesh.",
			LongDescription: "A research project focusing on flood risk assessment using remote sensing data. The study utilized Sentinel-2 imagery to identify flood-prone areas and assess vulnerability in rural areas of Bangladesh, contributing to disaster risk reduction planning.",
			ImageURL:        "https://picsum.photos/seed/flood-rs/600/400",
			Category:        "Remote Sensing",
			Tags:            []string{"Remote Sensing", "Disaster Management", "Flood Analysis"},
			Link:            "#/works",
			ImageStyle:      model.ImageStyleCover,
			CreatedAt:       ts("2023-10-15T14:30:00Z"),
			Place:           "Bangladesh",
		},
		{
			ID:              3,
			Title:           "Climate Change Impact on Agriculture",
			Description:     "Research on climate variability effects on crop production in Bangladesh.",
			LongDescription: "This research project investigated the relationship between climate variability and agricultural productivity in Bangladesh. The study used meteorological data and crop yield statistics to understand how changing climate patterns affect food security in the region.",
			ImageURL:        "https://picsum.photos/seed/climate-research/600/400",
			Category:        "Research",
			Tags:            []string{"Climate Change", "Agriculture", "Food Security"},
			Link:            "#/works",
			ImageStyle:      model.ImageStyleCover,
			CreatedAt:       ts("2023-09-01T09:00:00Z"),
			Place:           "Bangladesh",
		},
		{
			ID:              4,
			Title:           "Interactive Web Portfolio",
			Description:     "A dynamic portfolio website showcasing GIS and Remote Sensing projects.",
			LongDescription: "An experimental web application demonstrating a complete dynamic website for showcasing geography and environmental research work.",
			ImageURL:        "https://picsum.photos/seed/portfolio-exp/600/400",
			Category:        "Experimental",
			Tags:            []string{"Web Development", "Portfolio"},
			Link:            "#/works",
			ImageStyle:      model.ImageStyleCover,
			CreatedAt:       ts("2023-11-20T11:00:00Z"),
		},
		{
			ID:              5,
			Title:           "Floodplain Mapping with LiDAR",
			Description:     "High-resolution floodplain delineation using LiDAR-derived Digital Elevation Models.",
			LongDescription: "This project involved processing raw LiDAR data to generate a high-resolution Digital Elevation Model (DEM). Hydrological modeling tools were then used on the DEM to accurately map floodplain boundaries for risk assessment and emergency management planning.",
			ImageURL:        "https://picsum.photos/seed/gis2/600/400",
			Category:        "GIS",
			Tags:            []string{"LiDAR", "Hydrology", "Risk Assessment"},
			ImageStyle:      model.ImageStyleCover,
			CreatedAt:       ts("2023-08-25T16:00:00Z"),
		},
		{
			ID:              6,
			Title:           "Land Cover Classification",
			Description:     "Supervised classification of satellite imagery to create a detailed land cover map.",
			LongDescription: "Using a combination of optical and radar satellite data, a supervised classification workflow was developed to create a high-accuracy land cover map for a large region. The project included signature collection, various classification algorithms (like SVM), and accuracy assessment.",
			ImageURL:        "https://picsum.photos/seed/rs2/600/400",
			Category:        "Remote Sensing",
			Tags:            []string{"Image Classification", "Mapping", "Sentinel"},
			ImageStyle:      model.ImageStyleCover,
			CreatedAt:       ts("2023-07-30T18:00:00Z"),
		},
	}
}

func seedBlogPosts() []model.BlogPost {
	return []model.BlogPost{
		{
			ID:          1,
			Title:       "Getting Started with GIS as a Geography Student",
			Summary:     "A beginner's guide to Geographic Information Systems for geography and environmental science students.",
			Content:     "<h2>Introduction to GIS</h2><p>As a Geography & Environment student at the University of Dhaka, I've discovered that Geographic Information Systems (GIS) is one of the most powerful tools we can learn. GIS allows us to visualize, analyze, and interpret spatial data in ways that traditional maps simply cannot.</p><p>Starting with software like QGIS (which is free!) and ArcGIS, I've learned to create maps, perform spatial analysis, and understand patterns in environmental data. The key is to start with simple projects and gradually build complexity.</p>",
			ImageURL:    "https://picsum.photos/seed/gis-student/800/450",
			PublishDate: "December 15, 2023",
			Author:      "M. M. Tarikul Islam Parag",
			Category:    "Tutorials",
			ImageStyle:  model.ImageStyleCover,
			CreatedAt:   ts("2023-12-15T12:00:00Z"),
		},
		{
			ID:          2,
			Title:       "Understanding Remote Sensing for Environmental Studies",
			Summary:     "How satellite imagery helps us study environmental changes in Bangladesh.",
			Content:     "<h2>Remote Sensing in Environmental Research</h2><p>Remote sensing has become an essential tool for environmental monitoring, especially in a country like Bangladesh where environmental challenges are diverse and dynamic. Using Landsat and Sentinel satellite data, we can monitor seasonal flooding, track mangrove health in the Sundarbans, and assess urban heat islands in Dhaka.</p><p>As students, we have access to free satellite data through platforms like Google Earth Engine and USGS Earth Explorer.</p>",
			ImageURL:    "https://picsum.photos/seed/remote-sensing/800/450",
			PublishDate: "November 20, 2023",
			Author:      "M. M. Tarikul Islam Parag",
			Category:    "Case Studies",
			ImageStyle:  model.ImageStyleCover,
			CreatedAt:   ts("2023-09-15T12:00:00Z"),
			Place:       "Global",
		},
		{
			ID:          3,
			Title:       "Getting Started with QGIS for Spatial Analysis",
			Summary:     "A practical tutorial covering the basics of QGIS, a powerful open-source GIS software. Learn how to load data, perform basic spatial queries, and create your first map.",
			Content:     "For those new to the world of Geographic Information Systems, the cost of proprietary software can be a significant barrier. Enter QGIS: a free and open-source GIS application that offers a robust suite of tools for spatial analysis and cartography. This tutorial will guide you through the first steps, covering the user interface, how to add different types of data, and how to perform fundamental tasks such as attribute queries and spatial selections.",
			ImageURL:    "https://picsum.photos/seed/blog3/800/450",
			PublishDate: "August 01, 2023",
			Author:      "Jane Doe",
			Category:    "Tutorials",
			ImageStyle:  model.ImageStyleCover,
			CreatedAt:   ts("2023-08-01T12:00:00Z"),
		},
		{
			ID:          4,
			Title:       "The Power of LiDAR in Modern Cartography",
			Summary:     "From forestry to urban planning, LiDAR technology is changing how we see the world. This post explores its applications and impact on creating highly accurate 3D maps.",
			Content:     "LiDAR (Light Detection and Ranging) has revolutionized how we capture the three-dimensional structure of the Earth's surface. By emitting laser pulses and measuring their return times, LiDAR systems can generate incredibly detailed point clouds that form the basis for high-resolution Digital Elevation Models. In urban planning, LiDAR data is used to create detailed 3D city models for solar potential analysis and shadow studies.",
			ImageURL:    "https://picsum.photos/seed/blog4/800/450",
			PublishDate: "November 05, 2023",
			Author:      "Jane Doe",
			Category:    "Case Studies",
			ImageStyle:  model.ImageStyleCover,
			CreatedAt:   ts("2023-11-05T12:00:00Z"),
		},
	}
}

func seedProfile() model.Profile {
	return model.Profile{
		Name:                 "M. M. Tarikul Islam Parag",
		Title:                "Geography & Environment Student | GIS & Remote Sensing Enthusiast",
		Summary:              "A passionate geography student specializing in GIS and Remote Sensing technologies, dedicated to environmental analysis and sustainable development research.",
		Bio:                  "I am M. M. Tarikul Islam Parag, a dedicated student in the Department of Geography & Environment at the University of Dhaka. My academic journey focuses on the fascinating intersection of geography, environmental science, and cutting-edge geospatial technologies. I am passionate about using GIS and Remote Sensing to understand and address environmental challenges, particularly in the context of Bangladesh and South Asia.",
		AvatarURL:            "https://picsum.photos/seed/tarikul/400/400",
		ResumeURL:            "#",
		ExpertiseTitle:       "My Areas of Interest",
		ExpertiseDescription: "As a Geography & Environment student, I am developing expertise across multiple domains of geospatial science and environmental analysis.",
		WhatIDo: []model.WhatIDoItem{
			{ID: 1, Title: "Geographic Information Systems (GIS)", Description: "Learning spatial analysis and modeling techniques to understand environmental patterns and support decision-making processes."},
			{ID: 2, Title: "Remote Sensing Analysis", Description: "Studying satellite and aerial imagery interpretation for environmental monitoring and land-use change detection."},
			{ID: 3, Title: "Environmental Research", Description: "Conducting research on environmental challenges, climate change impacts, and sustainable development in Bangladesh."},
		},
		CoreCompetencies: []model.Competency{
			{ID: 1, Name: "ArcGIS"},
			{ID: 2, Name: "QGIS"},
			{ID: 3, Name: "Remote Sensing"},
			{ID: 4, Name: "Environmental Analysis"},
			{ID: 5, Name: "Cartography"},
			{ID: 6, Name: "Spatial Statistics"},
			{ID: 7, Name: "Python Programming"},
			{ID: 8, Name: "Research Methods"},
		},
		Education: []model.Education{
			{ID: 1, Degree: "B.S. in Geography & Environment (Ongoing)", Institution: "University of Dhaka", Period: "2020 - Present"},
			{ID: 2, Degree: "Higher Secondary Certificate (HSC)", Institution: "Local College", Period: "2018 - 2020"},
			{ID: 3, Degree: "Secondary School Certificate (SSC)", Institution: "Local School", Period: "2016 - 2018"},
		},
		Experience: []model.Experience{
			{ID: 1, Role: "Research Assistant", Company: "Department of Geography & Environment, University of Dhaka", Period: "2023 - Present", Description: "Assisting in research projects related to environmental monitoring and GIS analysis. Contributing to field data collection and spatial database management."},
			{ID: 2, Role: "GIS Intern", Company: "Local Environmental NGO", Period: "2022 - 2023", Description: "Worked on community-based environmental mapping projects. Gained hands-on experience with GPS data collection and basic spatial analysis."},
		},
		Certifications: []model.Certification{
			{ID: 1, Name: "Introduction to GIS", Issuer: "Coursera - University of Toronto", Date: "2022"},
			{ID: 2, Name: "Remote Sensing Fundamentals", Issuer: "edX - University of Maryland", Date: "2023"},
		},
		Training: []model.Training{
			{ID: 1, Name: "ArcGIS Desktop Basic Training", Institution: "ESRI Bangladesh", Year: "2022"},
			{ID: 2, Name: "Python for Geospatial Analysis", Institution: "Online Course Platform", Year: "2023"},
		},
		Memberships: []model.Membership{
			{ID: 1, Name: "Bangladesh Geographical Society", Period: "2022 - Present"},
			{ID: 2, Name: "University of Dhaka Geography Student Association", Period: "2020 - Present"},
		},
	}
}

func seedSkills() []model.Skill {
	return []model.Skill{
		{
			ID:       1,
			Category: "GIS Software & Platforms",
			Skills: []model.SkillItem{
				{Name: "ArcGIS", Percentage: 75},
				{Name: "QGIS", Percentage: 85},
				{Name: "Google Earth Engine", Percentage: 60},
				{Name: "ArcGIS Online", Percentage: 65},
				{Name: "PostGIS", Percentage: 50},
			},
		},
		{
			ID:       2,
			Category: "Remote Sensing & Image Analysis",
			Skills: []model.SkillItem{
				{Name: "ERDAS IMAGINE", Percentage: 70},
				{Name: "ENVI", Percentage: 65},
				{Name: "Google Earth Pro", Percentage: 90},
				{Name: "Image Classification", Percentage: 75},
				{Name: "Change Detection", Percentage: 70},
			},
		},
		{
			ID:       3,
			Category: "Programming & Data Science",
			Skills: []model.SkillItem{
				{Name: "Python (Basic)", Percentage: 60},
				{Name: "R (Statistical Analysis)", Percentage: 55},
				{Name: "SQL (Basic)", Percentage: 50},
				{Name: "Excel & Data Analysis", Percentage: 85},
				{Name: "Statistical Methods", Percentage: 70},
			},
		},
		{
			ID:       4,
			Category: "Research & Academic Skills",
			Skills: []model.SkillItem{
				{Name: "Research Methodology", Percentage: 80},
				{Name: "Academic Writing", Percentage: 85},
				{Name: "Field Data Collection", Percentage: 75},
				{Name: "Literature Review", Percentage: 90},
				{Name: "Presentation Skills", Percentage: 80},
			},
		},
	}
}

func seedSiteSettings() model.SiteSettings {
	return model.SiteSettings{
		Title: "Tarikul Islam Parag - Geography & Environment Portfolio",
		SocialLinks: model.SocialLinks{
			Twitter:  "https://twitter.com",
			GitHub:   "https://github.com/tarikul-du",
			LinkedIn: "https://linkedin.com",
		},
		CopyrightText:   "M. M. Tarikul Islam Parag. All Rights Reserved.",
		FaviconURL:      "https://www.google.com/s2/favicons?sz=64&domain=react.dev",
		MetaDescription: "Portfolio website of M. M. Tarikul Islam Parag, Geography & Environment student specializing in GIS and Remote Sensing at University of Dhaka.",
	}
}

func seedContactInfo() model.ContactInfo {
	return model.ContactInfo{
		Email:   "tarikul.parag@example.com",
		Phone:   "+880 1234-567890",
		Address: "Dept. of Geography & Environment, Faculty of Earth and Environmental Sciences, University of Dhaka, Dhaka-1000, Bangladesh",
	}
}

func seedUsers(adminHash, editorHash string) []model.User {
	return []model.User{
		{
			ID:           1,
			Name:         "M. M. Tarikul Islam Parag",
			Email:        DemoAdminEmail,
			PasswordHash: adminHash,
			Role:         model.RoleAdmin,
			Status:       model.StatusActive,
			CreatedOn:    ts("2024-01-15T10:00:00Z"),
			LastUpdate:   ts("2024-01-15T10:00:00Z"),
		},
		{
			ID:           2,
			Name:         "Content Editor",
			Email:        DemoEditorEmail,
			PasswordHash: editorHash,
			Role:         model.RoleEditor,
			Status:       model.StatusActive,
			CreatedOn:    ts("2024-01-20T11:30:00Z"),
			LastUpdate:   ts("2024-01-20T11:30:00Z"),
		},
	}
}

func seedEmailSettings() model.EmailSettings {
	return model.EmailSettings{
		SMTPServer: "smtp.example.com",
		SMTPPort:   587,
		SMTPUser:   "user@example.com",
		FromName:   "Tarikul Islam Parag",
		FromEmail:  "noreply@tarikulparag.com",
	}
}
