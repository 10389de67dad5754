// Package store persists patient profiles, doctor assignments and chat
// transcripts.  Two backends are provided: a MongoDB document store and a
// Postgres store.  Writes are at-least-once with no cross-record
// transactions; a write failure never invalidates the in-memory profile.
package store

import (
	"context"
	"strings"

	"mediconnect-bot/pkg"
)

// Store is the persistence contract the session relies on.  The handle is
// injected per session; there is no process-wide store.
type Store interface {
	// SaveProfile upserts the profile keyed by PatientKey and returns the key.
	SaveProfile(ctx context.Context, sessionID string, p *pkg.PatientProfile) (string, error)
	// SaveDoctorAssignment records that a doctor was selected in a session.
	SaveDoctorAssignment(ctx context.Context, sessionID string, p *pkg.PatientProfile, d pkg.Doctor) error
	// AppendMessage appends one transcript message for a session.
	AppendMessage(ctx context.Context, sessionID string, m pkg.Message) error
	Close(ctx context.Context) error
}

// PatientKey derives the upsert key for a profile: slugged name plus the
// digits of the emergency contact.  Sessions with the same name and contact
// merge into one record.  When the contact carries no digits (or is unset)
// the randomly generated session ID supplies the fallback suffix, so the key
// stays stable for the lifetime of the session.
func PatientKey(sessionID string, p *pkg.PatientProfile) string {
	name := "patient"
	if p.Name != nil {
		if s := slug(*p.Name); s != "" {
			name = s
		}
	}
	if p.EmergencyContact != nil {
		if digits := digitsOf(*p.EmergencyContact); digits != "" {
			return name + "-" + digits
		}
	}
	suffix := sessionID
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return name + "-" + suffix
}

func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Noop discards everything.  It backs sessions that run without a configured
// database.
type Noop struct{}

func (Noop) SaveProfile(ctx context.Context, sessionID string, p *pkg.PatientProfile) (string, error) {
	return PatientKey(sessionID, p), nil
}

func (Noop) SaveDoctorAssignment(ctx context.Context, sessionID string, p *pkg.PatientProfile, d pkg.Doctor) error {
	return nil
}

func (Noop) AppendMessage(ctx context.Context, sessionID string, m pkg.Message) error { return nil }

func (Noop) Close(ctx context.Context) error { return nil }
