// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metrics interface used by services and handlers.
type Recorder interface {
	RecordLoginSuccess()
	RecordLoginFailure(reason string)
	RecordContentMutation(entity string)
	RecordMessageReceived()
}

// Collector implements Recorder on top of a Prometheus registry.
type Collector struct {
	loginSuccess    prometheus.Counter
	loginFail       *prometheus.CounterVec
	contentMutation *prometheus.CounterVec
	messages        prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		loginSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "geoportfolio_login_success_total",
			Help: "Total number of successful admin logins.",
		}),
		loginFail: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "geoportfolio_login_fail_total",
			Help: "Total number of failed login attempts by reason.",
		}, []string{"reason"}),
		contentMutation: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "geoportfolio_content_mutations_total",
			Help: "Total number of content mutations by entity.",
		}, []string{"entity"}),
		messages: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "geoportfolio_messages_received_total",
			Help: "Total number of contact form submissions.",
		}),
	}

	reg.MustRegister(
		c.loginSuccess,
		c.loginFail,
		c.contentMutation,
		c.messages,
	)

	return c
}

// RecordLoginSuccess counts a successful login.
func (c *Collector) RecordLoginSuccess() {
	c.loginSuccess.Inc()
}

// RecordLoginFailure counts a failed login attempt.
func (c *Collector) RecordLoginFailure(reason string) {
	c.loginFail.WithLabelValues(reason).Inc()
}

// RecordContentMutation counts a create, update or delete of an entity.
func (c *Collector) RecordContentMutation(entity string) {
	c.contentMutation.WithLabelValues(entity).Inc()
}

// RecordMessageReceived counts a contact form submission.
func (c *Collector) RecordMessageReceived() {
	c.messages.Inc()
}

// Handler returns the HTTP handler exposing the registry.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// Nop is a Recorder that discards all observations. Used in tests.
type Nop struct{}

func (Nop) RecordLoginSuccess()          {}
func (Nop) RecordLoginFailure(string)    {}
func (Nop) RecordContentMutation(string) {}
func (Nop) RecordMessageReceived()       {}
