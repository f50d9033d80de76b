// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/geoportfolio/geoportfolio/internal/middleware"
)

// Routes builds the chi router with all middleware and endpoints mounted.
// metricsHandler serves the Prometheus scrape endpoint; pass nil to skip it.
func (h *Handler) Routes(metricsHandler http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(h.sm.LoadAndSave)

	r.Get("/health", h.Health)
	r.Get("/health/live", h.Liveness)
	r.Get("/health/ready", h.Readiness)
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Public portfolio content.
		r.Get("/works", h.ListWorks)
		r.Get("/works/{id}", h.GetWork)
		r.Get("/blog", h.ListBlogPosts)
		r.Get("/blog/{id}", h.GetBlogPost)
		r.Get("/profile", h.GetProfile)
		r.Get("/skills", h.ListSkills)
		r.Get("/categories", h.ListCategories)
		r.Get("/settings", h.GetSiteSettings)
		r.Get("/contact-info", h.GetContactInfo)
		r.With(h.lp.Middleware()).Post("/messages", h.SubmitMessage)

		// Setup wizard.
		r.Get("/setup", h.SetupStatus)
		r.Get("/setup/status", h.SetupStatus)
		r.Post("/setup", h.CompleteSetup)

		// Authentication.
		r.Route("/auth", func(r chi.Router) {
			r.With(
				middleware.RequireInstalled(h.installer),
				h.lp.Middleware(),
			).Post("/login", h.Login)
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(h.sm, h.store))
				r.Post("/logout", h.Logout)
				r.Get("/me", h.Me)
				r.Put("/me", h.UpdateMe)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.Auth(h.sm, h.store))

			// Content editing is open to editors and admins.
			r.Post("/works", h.CreateWork)
			r.Put("/works/{id}", h.UpdateWork)
			r.Delete("/works/{id}", h.DeleteWork)

			r.Post("/posts", h.CreateBlogPost)
			r.Put("/posts/{id}", h.UpdateBlogPost)
			r.Delete("/posts/{id}", h.DeleteBlogPost)

			r.Post("/categories", h.CreateCategory)
			r.Put("/categories/{id}", h.UpdateCategory)
			r.Delete("/categories/{id}", h.DeleteCategory)

			r.Post("/skills", h.CreateSkill)
			r.Put("/skills/{id}", h.UpdateSkill)
			r.Delete("/skills/{id}", h.DeleteSkill)

			r.Put("/profile", h.UpdateProfile)
			h.profileSubRoutes(r)

			// Administration requires the admin role.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", h.ListUsers)
					r.Post("/", h.CreateUser)
					r.Put("/{id}", h.UpdateUser)
					r.Delete("/{id}", h.DeleteUser)
					r.Post("/{id}/status", h.ToggleUserStatus)
					r.Post("/{id}/password", h.SetUserPassword)
				})

				r.Get("/settings/site", h.GetSiteSettings)
				r.Put("/settings/site", h.UpdateSiteSettings)
				r.Get("/settings/contact", h.GetContactInfo)
				r.Put("/settings/contact", h.UpdateContactInfo)
				r.Get("/settings/email", h.GetEmailSettings)
				r.Put("/settings/email", h.UpdateEmailSettings)

				r.Get("/messages", h.ListMessages)
				r.Post("/messages/{id}/read", h.MarkMessageRead)
				r.Delete("/messages/{id}", h.DeleteMessage)

				r.Get("/email-log", h.ListEmailLog)
				r.Post("/email-log/test", h.SendTestEmail)

				r.Get("/activity", h.ListLoginActivity)

				r.Get("/export", h.ExportData)
				r.Post("/import", h.ImportData)
			})
		})
	})

	return r
}

// profileSubRoutes mounts CRUD for the seven profile sub-collections.
func (h *Handler) profileSubRoutes(r chi.Router) {
	st := h.store
	r.Route("/profile/what-i-do", func(r chi.Router) {
		r.Post("/", createSub(h, st.AddWhatIDo))
		r.Put("/{id}", updateSub(h, setWhatIDoID, st.UpdateWhatIDo))
		r.Delete("/{id}", deleteSub(h, st.DeleteWhatIDo))
	})
	r.Route("/profile/core-competencies", func(r chi.Router) {
		r.Post("/", createSub(h, st.AddCompetency))
		r.Put("/{id}", updateSub(h, setCompetencyID, st.UpdateCompetency))
		r.Delete("/{id}", deleteSub(h, st.DeleteCompetency))
	})
	r.Route("/profile/education", func(r chi.Router) {
		r.Post("/", createSub(h, st.AddEducation))
		r.Put("/{id}", updateSub(h, setEducationID, st.UpdateEducation))
		r.Delete("/{id}", deleteSub(h, st.DeleteEducation))
	})
	r.Route("/profile/experience", func(r chi.Router) {
		r.Post("/", createSub(h, st.AddExperience))
		r.Put("/{id}", updateSub(h, setExperienceID, st.UpdateExperience))
		r.Delete("/{id}", deleteSub(h, st.DeleteExperience))
	})
	r.Route("/profile/certifications", func(r chi.Router) {
		r.Post("/", createSub(h, st.AddCertification))
		r.Put("/{id}", updateSub(h, setCertificationID, st.UpdateCertification))
		r.Delete("/{id}", deleteSub(h, st.DeleteCertification))
	})
	r.Route("/profile/training", func(r chi.Router) {
		r.Post("/", createSub(h, st.AddTraining))
		r.Put("/{id}", updateSub(h, setTrainingID, st.UpdateTraining))
		r.Delete("/{id}", deleteSub(h, st.DeleteTraining))
	})
	r.Route("/profile/memberships", func(r chi.Router) {
		r.Post("/", createSub(h, st.AddMembership))
		r.Put("/{id}", updateSub(h, setMembershipID, st.UpdateMembership))
		r.Delete("/{id}", deleteSub(h, st.DeleteMembership))
	})
}
