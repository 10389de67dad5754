package extract

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediconnect-bot/pkg"
)

func newTestExtractor() *Extractor {
	return New(zerolog.Nop())
}

func TestExtract_Name(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
		wantSet bool
	}{
		{name: "my name is", message: "My name is John Smith", want: "John Smith", wantSet: true},
		{name: "title cased", message: "my name is jane doe", want: "Jane Doe", wantSet: true},
		{name: "call me", message: "please call me Bob", want: "Bob", wantSet: true},
		{name: "name colon", message: "name: Alice Cooper", want: "Alice Cooper", wantSet: true},
		{name: "bare name message", message: "Maria Garcia", want: "Maria Garcia", wantSet: true},
		{name: "digits rejected", message: "asdf1234", wantSet: false},
		{name: "too many tokens", message: "my name is one two three four five", wantSet: false},
		{name: "too short", message: "my name is X", wantSet: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p pkg.PatientProfile
			newTestExtractor().Extract(&p, tt.message)
			if !tt.wantSet {
				assert.Nil(t, p.Name)
				return
			}
			require.NotNil(t, p.Name)
			assert.Equal(t, tt.want, *p.Name)
		})
	}
}

func TestExtract_Age(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    int
		wantSet bool
	}{
		{name: "years old", message: "I am 34 years old", want: 34, wantSet: true},
		{name: "age keyword", message: "age 60", want: 60, wantSet: true},
		{name: "no gating keyword", message: "I am 34", wantSet: false},
		{name: "out of range", message: "I am 150 years old", wantSet: false},
		{name: "zero rejected", message: "I am 0 years old", wantSet: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p pkg.PatientProfile
			newTestExtractor().Extract(&p, tt.message)
			if !tt.wantSet {
				assert.Nil(t, p.Age)
				return
			}
			require.NotNil(t, p.Age)
			assert.Equal(t, tt.want, *p.Age)
		})
	}
}

func TestExtract_WeightAndHeight(t *testing.T) {
	var p pkg.PatientProfile
	e := newTestExtractor()

	e.Extract(&p, "I weigh 72.5 kg and I'm 180 cm tall")
	require.NotNil(t, p.WeightKg)
	require.NotNil(t, p.HeightCm)
	assert.Equal(t, 72.5, *p.WeightKg)
	assert.Equal(t, 180.0, *p.HeightCm)

	// First match wins: a later message never overwrites.
	e.Extract(&p, "actually 90 kg and 170 cm")
	assert.Equal(t, 72.5, *p.WeightKg)
	assert.Equal(t, 180.0, *p.HeightCm)
}

func TestExtract_Gender(t *testing.T) {
	t.Run("male", func(t *testing.T) {
		var p pkg.PatientProfile
		newTestExtractor().Extract(&p, "I am a male")
		require.NotNil(t, p.Gender)
		assert.Equal(t, pkg.GenderMale, *p.Gender)
	})
	t.Run("female via girl", func(t *testing.T) {
		var p pkg.PatientProfile
		newTestExtractor().Extract(&p, "a girl")
		require.NotNil(t, p.Gender)
		assert.Equal(t, pkg.GenderFemale, *p.Gender)
	})
	t.Run("male keywords win when both present", func(t *testing.T) {
		var p pkg.PatientProfile
		newTestExtractor().Extract(&p, "boy or girl")
		require.NotNil(t, p.Gender)
		assert.Equal(t, pkg.GenderMale, *p.Gender)
	})
	t.Run("no keyword", func(t *testing.T) {
		var p pkg.PatientProfile
		newTestExtractor().Extract(&p, "hello there")
		assert.Nil(t, p.Gender)
	})
}

func TestExtract_VerbatimFields(t *testing.T) {
	var p pkg.PatientProfile
	e := newTestExtractor()

	msg := "I have diabetes and take insulin pills, allergic to penicillin, emergency contact is 555-0134"
	e.Extract(&p, msg)

	// Overlapping lexicons store the whole message into every matched field.
	require.NotNil(t, p.MedicalHistory)
	require.NotNil(t, p.CurrentMedications)
	require.NotNil(t, p.Allergies)
	require.NotNil(t, p.EmergencyContact)
	assert.Equal(t, msg, *p.MedicalHistory)
	assert.Equal(t, msg, *p.CurrentMedications)
	assert.Equal(t, msg, *p.Allergies)
	assert.Equal(t, msg, *p.EmergencyContact)

	// First match wins for all of them.
	e.Extract(&p, "no medical conditions, no medication, no allergy, family phone 555")
	assert.Equal(t, msg, *p.MedicalHistory)
	assert.Equal(t, msg, *p.Allergies)
}

func TestExtract_NoneSetsThreeFields(t *testing.T) {
	var p pkg.PatientProfile
	newTestExtractor().Extract(&p, "none")
	assert.NotNil(t, p.MedicalHistory)
	assert.NotNil(t, p.CurrentMedications)
	assert.NotNil(t, p.Allergies)
	assert.Nil(t, p.EmergencyContact)
}

func TestExtract_BasicInfoCollected(t *testing.T) {
	var p pkg.PatientProfile
	e := newTestExtractor()

	e.Extract(&p, "My name is John Smith")
	e.Extract(&p, "I am 40 years old, 80 kg, male")
	assert.False(t, p.BasicInfoCollected)

	e.Extract(&p, "I have diabetes")
	e.Extract(&p, "taking metformin tablets")
	e.Extract(&p, "no allergy")
	assert.False(t, p.BasicInfoCollected)

	// The eighth required field lands here.
	e.Extract(&p, "my emergency contact is my brother, phone 555-0134")
	assert.True(t, p.BasicInfoCollected)
	assert.False(t, p.InfoComplete)

	// Monotone: stays true regardless of later input.
	e.Extract(&p, "gibberish")
	assert.True(t, p.BasicInfoCollected)
}

func TestExtract_ChiefComplaintGatedOnBasicInfo(t *testing.T) {
	var p pkg.PatientProfile
	e := newTestExtractor()

	// Symptom keywords before basic info never set the chief complaint.
	e.Extract(&p, "I have a headache")
	assert.Nil(t, p.ChiefComplaint)
	assert.False(t, p.SymptomAnalysisStarted)

	fillBasicInfo(e, &p)
	require.True(t, p.BasicInfoCollected)
	assert.Nil(t, p.ChiefComplaint)

	e.Extract(&p, "my head hurts badly")
	require.NotNil(t, p.ChiefComplaint)
	assert.Equal(t, "my head hurts badly", *p.ChiefComplaint)
	assert.True(t, p.SymptomAnalysisStarted)
	assert.True(t, p.InfoComplete)
}

func TestExtract_HeightNotRequired(t *testing.T) {
	var p pkg.PatientProfile
	e := newTestExtractor()
	fillBasicInfo(e, &p)
	assert.Nil(t, p.HeightCm)
	assert.True(t, p.BasicInfoCollected)
}

func fillBasicInfo(e *Extractor, p *pkg.PatientProfile) {
	e.Extract(p, "My name is John Smith")
	e.Extract(p, "I am 40 years old")
	e.Extract(p, "80 kg")
	e.Extract(p, "male")
	e.Extract(p, "I have diabetes")
	e.Extract(p, "taking metformin tablets")
	e.Extract(p, "no allergy")
	e.Extract(p, "emergency contact 555-0134")
}
