package core

import (
	"fmt"
	"strconv"
	"strings"

	"mediconnect-bot/pkg"
)

// SelectionState is the tagged state of the doctor-selection flow.  A
// session holds exactly one Selector; illegal flag combinations are not
// representable.
type SelectionState int

const (
	StateIdle SelectionState = iota
	StateAwaitingDoctorChoice
	StateAwaitingConsultType
)

// Selector drives the scripted doctor-selection flow:
// Idle -> AwaitingDoctorChoice -> AwaitingConsultType -> Idle.
// Invalid input keeps the current state and returns an error message; there
// is no retry limit.
type Selector struct {
	doctors  []pkg.Doctor
	state    SelectionState
	selected *pkg.Doctor
}

// SelectionResult carries the replies for one selection-flow input plus the
// side effects the caller may want to persist.
type SelectionResult struct {
	Replies []string
	// Doctor is set on the input that selected a doctor.
	Doctor *pkg.Doctor
	// Payment is set on the input that confirmed a consultation type.
	Payment *pkg.PaymentIntent
}

// NewSelector returns an idle Selector over the given catalog.
func NewSelector(doctors []pkg.Doctor) *Selector {
	return &Selector{doctors: doctors}
}

// State reports the current selection state.
func (s *Selector) State() SelectionState { return s.state }

// SelectedDoctor returns the doctor chosen in the current flow, if any.
func (s *Selector) SelectedDoctor() *pkg.Doctor { return s.selected }

// DetectReferral reports whether a model reply is steering the patient
// toward booking a doctor.
func DetectReferral(reply string) bool {
	lower := strings.ToLower(reply)
	for _, phrase := range referralPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// Begin moves an idle Selector to AwaitingDoctorChoice and returns the
// rendered catalog listing.
func (s *Selector) Begin() string {
	s.state = StateAwaitingDoctorChoice
	s.selected = nil
	return RenderDoctorList(s.doctors)
}

// HandleInput consumes one line of patient input while the Selector is not
// idle.
func (s *Selector) HandleInput(input string) SelectionResult {
	switch s.state {
	case StateAwaitingDoctorChoice:
		return s.handleDoctorChoice(input)
	case StateAwaitingConsultType:
		return s.handleConsultType(input)
	default:
		return SelectionResult{}
	}
}

func (s *Selector) handleDoctorChoice(input string) SelectionResult {
	id, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return SelectionResult{Replies: []string{"❌ That's not a valid number. Please reply with the doctor's number."}}
	}
	if id < 1 || id > len(s.doctors) {
		return SelectionResult{Replies: []string{fmt.Sprintf("❌ Invalid number. Please select a doctor from the list (1-%d).", len(s.doctors))}}
	}
	doctor := s.doctors[id-1]
	s.selected = &doctor
	s.state = StateAwaitingConsultType
	reply := fmt.Sprintf("Great, you've selected %s.\n\nPlease choose the consultation type:\n1. 📹 Video\n2. 🏥 In-Person\n\nReply with '1' or '2'.", doctor.Name)
	return SelectionResult{Replies: []string{reply}, Doctor: &doctor}
}

func (s *Selector) handleConsultType(input string) SelectionResult {
	var consultType pkg.ConsultationType
	switch strings.TrimSpace(input) {
	case "1":
		consultType = pkg.ConsultVideo
	case "2":
		consultType = pkg.ConsultInPerson
	default:
		return SelectionResult{Replies: []string{"❌ Invalid choice. Please reply with '1' for Video or '2' for In-Person."}}
	}
	intent := NewPaymentIntent(*s.selected, consultType)
	s.state = StateIdle
	s.selected = nil
	return SelectionResult{
		Replies: []string{RenderPayment(intent), "Is there anything else I can help you with today?"},
		Payment: &intent,
	}
}
