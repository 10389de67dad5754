package core

import (
	"fmt"
	"math/rand"
	"strings"

	"mediconnect-bot/pkg"
)

const paymentBaseURL = "https://mediconnect.com/payment/"

// NewPaymentIntent generates an ephemeral payment reference for the chosen
// doctor.  Payment IDs are "MC" followed by six random digits; the link
// embeds the ID.  Nothing is charged: the link is handed to an external
// payment page.
func NewPaymentIntent(doctor pkg.Doctor, consultType pkg.ConsultationType) pkg.PaymentIntent {
	paymentID := fmt.Sprintf("MC%06d", 100000+rand.Intn(900000))
	return pkg.PaymentIntent{
		Doctor:           doctor,
		PaymentID:        paymentID,
		PaymentLink:      paymentBaseURL + paymentID,
		ConsultationType: consultType,
	}
}

// RenderPayment formats the payment details message sent to the patient.
func RenderPayment(intent pkg.PaymentIntent) string {
	var b strings.Builder
	b.WriteString("💳 *PAYMENT DETAILS - MediConnect*\n")
	b.WriteString(strings.Repeat("=", 30) + "\n")
	fmt.Fprintf(&b, "Doctor: %s\n", intent.Doctor.Name)
	fmt.Fprintf(&b, "Consultation Type: %s\n", titleConsult(intent.ConsultationType))
	fmt.Fprintf(&b, "Fee: $%d\n", intent.Doctor.ConsultationFee)
	fmt.Fprintf(&b, "Payment ID: `%s`\n", intent.PaymentID)
	fmt.Fprintf(&b, "🔗 *Payment Link*: %s\n", intent.PaymentLink)
	b.WriteString(strings.Repeat("=", 30) + "\n\n")
	b.WriteString("✅ Here is your payment link. Your medical information will be shared with the doctor upon confirmation.")
	return b.String()
}

func titleConsult(t pkg.ConsultationType) string {
	switch t {
	case pkg.ConsultVideo:
		return "Video"
	case pkg.ConsultInPerson:
		return "In-Person"
	default:
		return string(t)
	}
}
