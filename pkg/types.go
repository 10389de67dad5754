package pkg

import "time"

// Gender is the patient's gender as reported in conversation.  Only two
// values are recognised by the extractor.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// PatientProfile is the single mutable record backing one conversation
// session.  Every field is a pointer: nil means "not provided yet".  Fields
// are set at most once per session (first match wins) and never cleared.
// The three derived booleans are pure functions of the other fields and are
// recomputed by the extractor after each update; callers must not set them
// directly.
type PatientProfile struct {
	Name               *string  `json:"name,omitempty" bson:"name,omitempty"`
	Age                *int     `json:"age,omitempty" bson:"age,omitempty"`
	WeightKg           *float64 `json:"weight_kg,omitempty" bson:"weight_kg,omitempty"`
	HeightCm           *float64 `json:"height_cm,omitempty" bson:"height_cm,omitempty"`
	Gender             *Gender  `json:"gender,omitempty" bson:"gender,omitempty"`
	MedicalHistory     *string  `json:"medical_history,omitempty" bson:"medical_history,omitempty"`
	CurrentMedications *string  `json:"current_medications,omitempty" bson:"current_medications,omitempty"`
	Allergies          *string  `json:"allergies,omitempty" bson:"allergies,omitempty"`
	EmergencyContact   *string  `json:"emergency_contact,omitempty" bson:"emergency_contact,omitempty"`
	ChiefComplaint     *string  `json:"chief_complaint,omitempty" bson:"chief_complaint,omitempty"`

	BasicInfoCollected     bool `json:"basic_info_collected" bson:"basic_info_collected"`
	SymptomAnalysisStarted bool `json:"symptom_analysis_started" bson:"symptom_analysis_started"`
	InfoComplete           bool `json:"info_complete" bson:"info_complete"`
}

// MessageRole describes who authored a message in the transcript.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one turn of the conversation, kept in memory for prompt
// construction and appended to the transcript store.
type Message struct {
	Role      MessageRole `json:"role" bson:"role"`
	Content   string      `json:"content" bson:"content"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
}

// Doctor is a read-only catalog entry.  The catalog is fixed at startup and
// never mutated at runtime.
type Doctor struct {
	ID              int      `json:"id" bson:"id"`
	Name            string   `json:"name" bson:"name"`
	Specialty       string   `json:"specialty" bson:"specialty"`
	Experience      string   `json:"experience" bson:"experience"`
	Rating          float64  `json:"rating" bson:"rating"`
	ReviewsCount    int      `json:"reviews_count" bson:"reviews_count"`
	ConsultationFee int      `json:"consultation_fee" bson:"consultation_fee"`
	Languages       []string `json:"languages" bson:"languages"`
	Availability    string   `json:"availability" bson:"availability"`
}

// ConsultationType is how the patient wants to meet the selected doctor.
type ConsultationType string

const (
	ConsultVideo    ConsultationType = "video"
	ConsultInPerson ConsultationType = "in-person"
)

// PaymentIntent is generated on demand once the patient confirms a doctor
// and a consultation type.  It is ephemeral unless the shell persists it.
type PaymentIntent struct {
	Doctor           Doctor           `json:"doctor" bson:"doctor"`
	PaymentID        string           `json:"payment_id" bson:"payment_id"`
	PaymentLink      string           `json:"payment_link" bson:"payment_link"`
	ConsultationType ConsultationType `json:"consultation_type" bson:"consultation_type"`
}
