// Copyright (c) 2025-2026 GeoPortfolio Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// EmailLog is one entry of the append-only mail audit trail, newest first.
// No mail is ever transmitted; account lifecycle mutations and logins write
// here instead.
type EmailLog struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
}

// EmailSettings is the SMTP configuration singleton. It is stored and
// editable but unused for delivery, matching the log-only mail design.
type EmailSettings struct {
	SMTPServer string `json:"smtp_server"`
	SMTPPort   int    `json:"smtp_port"`
	SMTPUser   string `json:"smtp_user"`
	SMTPPass   string `json:"smtp_pass"`
	FromName   string `json:"from_name"`
	FromEmail  string `json:"from_email"`
}
