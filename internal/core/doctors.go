package core

import (
	"fmt"
	"strings"

	"mediconnect-bot/pkg"
)

// catalog is the fixed doctor roster.  Order matters: patients select by the
// 1-based position shown in the listing.
var catalog = []pkg.Doctor{
	{ID: 1, Name: "Dr. Michael Johnson", Specialty: "General Medicine", Experience: "12 years", Rating: 4.8, ReviewsCount: 247, ConsultationFee: 45, Languages: []string{"English", "Spanish"}, Availability: "Available now"},
	{ID: 2, Name: "Dr. Sarah Williams", Specialty: "Internal Medicine", Experience: "8 years", Rating: 4.6, ReviewsCount: 189, ConsultationFee: 55, Languages: []string{"English", "French"}, Availability: "Available in 30 mins"},
	{ID: 3, Name: "Dr. Ahmed Hassan", Specialty: "Emergency Medicine", Experience: "15 years", Rating: 4.9, ReviewsCount: 312, ConsultationFee: 65, Languages: []string{"English", "Arabic"}, Availability: "Available now"},
	{ID: 4, Name: "Dr. Emily Chen", Specialty: "Family Medicine", Experience: "6 years", Rating: 4.5, ReviewsCount: 156, ConsultationFee: 40, Languages: []string{"English", "Mandarin"}, Availability: "Available in 1 hour"},
	{ID: 5, Name: "Dr. Robert Martinez", Specialty: "General Practice", Experience: "20 years", Rating: 4.7, ReviewsCount: 428, ConsultationFee: 50, Languages: []string{"English", "Spanish"}, Availability: "Available now"},
}

// Catalog returns the doctor roster.  Callers must treat it as read-only.
func Catalog() []pkg.Doctor {
	return catalog
}

// RenderDoctorList formats the catalog for the patient, ending with the
// selection instruction.
func RenderDoctorList(doctors []pkg.Doctor) string {
	var b strings.Builder
	b.WriteString("👨‍⚕️ *AVAILABLE DOCTORS - MediConnect*\n")
	b.WriteString(strings.Repeat("=", 30) + "\n\n")
	for _, d := range doctors {
		stars := strings.Repeat("⭐", int(d.Rating)) + strings.Repeat("☆", 5-int(d.Rating))
		fmt.Fprintf(&b, "*%d. %s*\n", d.ID, d.Name)
		fmt.Fprintf(&b, "   🩺 Specialty: %s\n", d.Specialty)
		fmt.Fprintf(&b, "   %s %.1f/5.0 (%d reviews)\n", stars, d.Rating, d.ReviewsCount)
		fmt.Fprintf(&b, "   💰 Fee: $%d\n", d.ConsultationFee)
		fmt.Fprintf(&b, "   🗣️ Languages: %s\n", strings.Join(d.Languages, ", "))
		fmt.Fprintf(&b, "   🟢 %s\n", d.Availability)
		b.WriteString(strings.Repeat("-", 30) + "\n")
	}
	b.WriteString("\nPlease select a doctor by sending their number (e.g., '1', '2', etc.).")
	return b.String()
}
