// SPDX-License-Identifier: MIT

package report

import (
	"strings"
	"time"
)

// NotAvailable replaces blank header fields.
const NotAvailable = "N/A"

// DateLayout is the header date format.
const DateLayout = time.DateOnly

// Header carries the identifying fields printed above the exercises.
type Header struct {
	Subject string
	Author  string
	Program string
	Campus  string
	Shift   string
	// Date is the report date; the zero value means "today".
	Date time.Time
}

// HeaderFields is a Header resolved for display: every field is non-empty.
type HeaderFields struct {
	Subject string `json:"subject"`
	Author  string `json:"author"`
	Program string `json:"program"`
	Campus  string `json:"campus"`
	Shift   string `json:"shift"`
	Date    string `json:"date"`
}

// Resolve fills blank fields with NotAvailable and a zero Date with now.
func (h Header) Resolve(now time.Time) HeaderFields {
	date := h.Date
	if date.IsZero() {
		date = now
	}

	return HeaderFields{
		Subject: orNA(h.Subject),
		Author:  orNA(h.Author),
		Program: orNA(h.Program),
		Campus:  orNA(h.Campus),
		Shift:   orNA(h.Shift),
		Date:    date.Format(DateLayout),
	}
}

func orNA(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return NotAvailable
	}

	return s
}
