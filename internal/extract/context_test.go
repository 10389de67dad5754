package extract

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"mediconnect-bot/pkg"
)

func TestRenderContext_EmptyProfile(t *testing.T) {
	var p pkg.PatientProfile
	out := RenderContext(&p)

	assert.Contains(t, out, "Name: Not provided")
	assert.Contains(t, out, "Age: Not provided")
	assert.Contains(t, out, "Weight: Not provided")
	assert.Contains(t, out, "Chief Complaint: Not provided")
	assert.Contains(t, out, "Basic Info Collected: false")
	assert.Contains(t, out, "Info Complete: false")
	assert.Equal(t, 10, strings.Count(out, "Not provided"))
}

func TestRenderContext_PopulatedProfile(t *testing.T) {
	var p pkg.PatientProfile
	e := New(zerolog.Nop())
	e.Extract(&p, "My name is John Smith")
	e.Extract(&p, "I am 40 years old and weigh 72.5 kg")

	out := RenderContext(&p)
	assert.Contains(t, out, "Name: John Smith")
	assert.Contains(t, out, "Age: 40")
	assert.Contains(t, out, "Weight: 72.5 kg")
	assert.Contains(t, out, "Height: Not provided")
}

func TestRenderContext_Idempotent(t *testing.T) {
	var p pkg.PatientProfile
	e := New(zerolog.Nop())
	e.Extract(&p, "My name is John Smith")

	assert.Equal(t, RenderContext(&p), RenderContext(&p))
}
