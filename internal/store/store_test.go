package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mediconnect-bot/pkg"
)

func strPtr(s string) *string { return &s }

func TestPatientKey(t *testing.T) {
	tests := []struct {
		name      string
		profile   pkg.PatientProfile
		sessionID string
		want      string
	}{
		{
			name: "name and contact digits",
			profile: pkg.PatientProfile{
				Name:             strPtr("John Smith"),
				EmergencyContact: strPtr("call my wife at 555-0134"),
			},
			sessionID: "abcd1234-ffff",
			want:      "john-smith-5550134",
		},
		{
			name: "contact without digits falls back to session suffix",
			profile: pkg.PatientProfile{
				Name:             strPtr("John Smith"),
				EmergencyContact: strPtr("my brother"),
			},
			sessionID: "abcd1234-ffff",
			want:      "john-smith-abcd1234",
		},
		{
			name:      "empty profile",
			profile:   pkg.PatientProfile{},
			sessionID: "abcd1234-ffff",
			want:      "patient-abcd1234",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PatientKey(tt.sessionID, &tt.profile))
		})
	}
}

func TestPatientKey_SameNameAndContactMerge(t *testing.T) {
	a := pkg.PatientProfile{Name: strPtr("Jane Doe"), EmergencyContact: strPtr("555 0199")}
	b := pkg.PatientProfile{Name: strPtr("jane doe"), EmergencyContact: strPtr("phone: 5550199")}

	// Distinct sessions with the same name and contact digits collide by
	// design: they upsert into the same record.
	assert.Equal(t, PatientKey("session-a", &a), PatientKey("session-b", &b))
}
