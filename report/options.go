// SPDX-License-Identifier: MIT

package report

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// Option configures a Report.
type Option func(*options)

type options struct {
	clock func() time.Time
	newID func() uuid.UUID
	lang  language.Tag
}

func defaultOptions() options {
	return options{
		clock: time.Now,
		newID: func() uuid.UUID { return uuid.Must(uuid.NewV7()) },
		lang:  DefaultLanguage,
	}
}

// WithClock sets the time source used for the default header date.
// Panics if clock is nil.
func WithClock(clock func() time.Time) Option {
	if clock == nil {
		panic("report: WithClock(nil)")
	}

	return func(o *options) { o.clock = clock }
}

// WithIDGenerator sets the exercise ID source (UUIDv7 by default).
// Panics if gen is nil.
func WithIDGenerator(gen func() uuid.UUID) Option {
	if gen == nil {
		panic("report: WithIDGenerator(nil)")
	}

	return func(o *options) { o.newID = gen }
}

// WithLanguage selects the report language. Unsupported tags fall back to the
// closest supported one, or DefaultLanguage.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		if t, err := matchLanguage(tag); err == nil {
			o.lang = t
		}
	}
}

// SequentialIDs returns a generator of deterministic UUIDs derived from seed.
// It is meant for tests and reproducible output.
func SequentialIDs(seed string) func() uuid.UUID {
	var n int

	return func() uuid.UUID {
		n++
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed+"/"+strconv.Itoa(n)))
	}
}
