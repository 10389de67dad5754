package extract

import (
	"fmt"
	"strconv"
	"strings"

	"mediconnect-bot/pkg"
)

const notProvided = "Not provided"

// RenderContext serialises the profile into the deterministic block that is
// prepended to the system prompt on every turn.  It carries no control
// logic; it only exists so the model can see what has been collected so far.
func RenderContext(p *pkg.PatientProfile) string {
	var b strings.Builder
	b.WriteString("PATIENT PROFILE:\n")
	fmt.Fprintf(&b, "Name: %s\n", strOr(p.Name))
	fmt.Fprintf(&b, "Age: %s\n", intOr(p.Age))
	fmt.Fprintf(&b, "Weight: %s\n", floatOr(p.WeightKg, " kg"))
	fmt.Fprintf(&b, "Height: %s\n", floatOr(p.HeightCm, " cm"))
	if p.Gender != nil {
		fmt.Fprintf(&b, "Gender: %s\n", *p.Gender)
	} else {
		fmt.Fprintf(&b, "Gender: %s\n", notProvided)
	}
	fmt.Fprintf(&b, "Medical History: %s\n", strOr(p.MedicalHistory))
	fmt.Fprintf(&b, "Current Medications: %s\n", strOr(p.CurrentMedications))
	fmt.Fprintf(&b, "Allergies: %s\n", strOr(p.Allergies))
	fmt.Fprintf(&b, "Emergency Contact: %s\n", strOr(p.EmergencyContact))
	fmt.Fprintf(&b, "Chief Complaint: %s\n", strOr(p.ChiefComplaint))
	fmt.Fprintf(&b, "Basic Info Collected: %t\n", p.BasicInfoCollected)
	fmt.Fprintf(&b, "Symptom Analysis Started: %t\n", p.SymptomAnalysisStarted)
	fmt.Fprintf(&b, "Info Complete: %t\n", p.InfoComplete)
	return b.String()
}

func strOr(s *string) string {
	if s == nil {
		return notProvided
	}
	return *s
}

func intOr(n *int) string {
	if n == nil {
		return notProvided
	}
	return strconv.Itoa(*n)
}

func floatOr(f *float64, unit string) string {
	if f == nil {
		return notProvided
	}
	return strconv.FormatFloat(*f, 'f', -1, 64) + unit
}
