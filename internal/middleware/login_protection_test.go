// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAccountLockoutAfterMaxFailures(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{
		MaxFailedAttempts: 3,
		LockoutDuration:   time.Minute,
		AttemptWindow:     time.Minute,
	})

	email := "victim@example.com"

	locked, _ := lp.RecordFailedAttempt(email)
	if locked {
		t.Fatal("first failure should not lock")
	}
	locked, _ = lp.RecordFailedAttempt(email)
	if locked {
		t.Fatal("second failure should not lock")
	}

	locked, dur := lp.RecordFailedAttempt(email)
	if !locked {
		t.Fatal("third failure should lock")
	}
	if dur != time.Minute {
		t.Errorf("lock duration = %v, want 1m", dur)
	}

	isLocked, remaining := lp.IsAccountLocked(email)
	if !isLocked || remaining <= 0 {
		t.Errorf("account should be locked with time remaining, got %v %v", isLocked, remaining)
	}
}

func TestSuccessfulLoginClearsAttempts(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{MaxFailedAttempts: 2})

	lp.RecordFailedAttempt("a@example.com")
	lp.RecordSuccessfulLogin("a@example.com")

	if locked, _ := lp.RecordFailedAttempt("a@example.com"); locked {
		t.Error("counter should reset after a successful login")
	}
}

func TestExponentialBackoff(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{
		MaxFailedAttempts: 1,
		LockoutDuration:   time.Minute,
	})

	_, first := lp.RecordFailedAttempt("b@example.com")
	_, second := lp.RecordFailedAttempt("b@example.com")

	if second != 2*first {
		t.Errorf("second lockout = %v, want double %v", second, first)
	}
}

func TestMiddlewareRateLimitsPosts(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{IPRateLimit: 0.001, IPBurst: 2})

	handler := lp.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = "198.51.100.1:54321"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := post(); code != http.StatusOK {
		t.Fatalf("first request status = %d", code)
	}
	if code := post(); code != http.StatusOK {
		t.Fatalf("second request status = %d", code)
	}
	if code := post(); code != http.StatusTooManyRequests {
		t.Errorf("burst exceeded status = %d, want 429", code)
	}

	// GET requests are never rate limited.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/login", nil)
	req.RemoteAddr = "198.51.100.1:54321"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("GET status = %d, want 200", rec.Code)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		realIP     string
		forwarded  string
		remoteAddr string
		want       string
	}{
		{"x-real-ip wins", "203.0.113.1", "198.51.100.2", "10.0.0.1:80", "203.0.113.1"},
		{"forwarded first entry", "", "198.51.100.2, 10.0.0.9", "10.0.0.1:80", "198.51.100.2"},
		{"remote addr fallback", "", "", "192.0.2.4:12345", "192.0.2.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			if got := ClientIP(req); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
