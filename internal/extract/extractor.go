// Package extract implements the keyword/regex field extraction that fills a
// PatientProfile from free-text chat messages, plus the profile context
// renderer used for prompt construction.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"mediconnect-bot/pkg"
)

// namePatterns are tried in order; the first template that matches wins.
// The last pattern accepts a message that is nothing but a name.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)my name is ([a-zA-Z ]+)`),
	regexp.MustCompile(`(?i)\bi am ([a-zA-Z ]+)`),
	regexp.MustCompile(`(?i)\bi'm ([a-zA-Z ]+)`),
	regexp.MustCompile(`(?i)\bcall me ([a-zA-Z ]+)`),
	regexp.MustCompile(`(?i)name:\s*([a-zA-Z ]+)`),
	regexp.MustCompile(`^([a-zA-Z ]+)$`),
}

var (
	agePattern    = regexp.MustCompile(`\b(\d{1,3})\b`)
	weightPattern = regexp.MustCompile(`(\d+\.?\d*)\s*kg`)
	heightPattern = regexp.MustCompile(`(\d+\.?\d*)\s*cm`)
)

// Keyword lexicons gate the verbatim-capture fields.  They are deliberately
// overlapping ("none" appears in three of them): a single message may satisfy
// several fields at once and is then stored into all of them.  Matching is
// plain substring search on the lowercased message, as in the shipped bot.
var (
	ageKeywords     = []string{"years old", "age", "born", "year old"}
	maleKeywords    = []string{"male", "man", "boy"}
	femaleKeywords  = []string{"female", "woman", "girl"}
	historyKeywords = []string{"diabetes", "hypertension", "asthma", "heart", "cancer", "disease", "condition", "none", "no medical"}
	medsKeywords    = []string{"medication", "medicine", "pills", "tablets", "drug", "taking", "none", "no medication"}
	allergyKeywords = []string{"allergy", "allergic", "reaction", "none", "no allergy"}
	contactKeywords = []string{"contact", "phone", "number", "emergency", "family", "friend"}
	symptomKeywords = []string{"pain", "hurt", "sick", "problem", "issue", "feel", "symptom", "headache", "fever", "cough"}
)

// Extractor fills unset PatientProfile fields from incoming messages.  It is
// stateless; all state lives in the profile itself.
type Extractor struct {
	log zerolog.Logger
}

// New returns an Extractor that logs field captures at debug level.
func New(log zerolog.Logger) *Extractor {
	return &Extractor{log: log}
}

// Extract attempts every unset field against message, in a fixed order:
// name, age, weight/height, gender, medical history, medications, allergies,
// emergency contact, chief complaint.  A field is set by its first successful
// match and never re-evaluated afterwards.  Misses and out-of-range values
// are silent.  Derived booleans are recomputed before returning.
func (e *Extractor) Extract(p *pkg.PatientProfile, message string) {
	lower := strings.ToLower(message)

	if p.Name == nil {
		if name, ok := matchName(message); ok {
			p.Name = &name
			e.log.Debug().Str("field", "name").Str("value", name).Msg("captured profile field")
		}
	}
	if p.Age == nil && containsAny(lower, ageKeywords) {
		if m := agePattern.FindStringSubmatch(message); m != nil {
			if age, err := strconv.Atoi(m[1]); err == nil && age >= 1 && age <= 120 {
				p.Age = &age
				e.log.Debug().Str("field", "age").Int("value", age).Msg("captured profile field")
			}
		}
	}
	if p.WeightKg == nil {
		if m := weightPattern.FindStringSubmatch(message); m != nil {
			if w, err := strconv.ParseFloat(m[1], 64); err == nil {
				p.WeightKg = &w
			}
		}
	}
	if p.HeightCm == nil {
		if m := heightPattern.FindStringSubmatch(message); m != nil {
			if h, err := strconv.ParseFloat(m[1], 64); err == nil {
				p.HeightCm = &h
			}
		}
	}
	if p.Gender == nil {
		// The male keyword set is checked first and wins when both match.
		if containsAny(lower, maleKeywords) {
			g := pkg.GenderMale
			p.Gender = &g
		} else if containsAny(lower, femaleKeywords) {
			g := pkg.GenderFemale
			p.Gender = &g
		}
	}
	if p.MedicalHistory == nil && containsAny(lower, historyKeywords) {
		p.MedicalHistory = &message
	}
	if p.CurrentMedications == nil && containsAny(lower, medsKeywords) {
		p.CurrentMedications = &message
	}
	if p.Allergies == nil && containsAny(lower, allergyKeywords) {
		p.Allergies = &message
	}
	if p.EmergencyContact == nil && containsAny(lower, contactKeywords) {
		p.EmergencyContact = &message
	}
	// Chief complaint is only collected after the basic set is complete, even
	// when symptom keywords show up earlier in the conversation.
	if p.BasicInfoCollected && p.ChiefComplaint == nil && containsAny(lower, symptomKeywords) {
		p.ChiefComplaint = &message
		p.SymptomAnalysisStarted = true
	}

	recompute(p)
}

// recompute derives the phase booleans from the field set.  Height is
// deliberately not part of the required basic set.
func recompute(p *pkg.PatientProfile) {
	p.BasicInfoCollected = p.Name != nil &&
		p.Age != nil &&
		p.WeightKg != nil &&
		p.Gender != nil &&
		p.MedicalHistory != nil &&
		p.CurrentMedications != nil &&
		p.Allergies != nil &&
		p.EmergencyContact != nil
	p.InfoComplete = p.BasicInfoCollected && p.ChiefComplaint != nil
}

// matchName runs the name templates in order and validates the capture: 1-4
// whitespace-separated tokens, at least two letters overall, letters and
// spaces only.  The accepted name is title-cased.
func matchName(message string) (string, bool) {
	for _, re := range namePatterns {
		m := re.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		tokens := strings.Fields(candidate)
		if len(tokens) < 1 || len(tokens) > 4 {
			return "", false
		}
		compact := strings.ReplaceAll(candidate, " ", "")
		if len(compact) < 2 || !isAlpha(compact) {
			return "", false
		}
		return titleCase(tokens), true
	}
	return "", false
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}
	return true
}

func titleCase(tokens []string) string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = strings.ToUpper(t[:1]) + strings.ToLower(t[1:])
	}
	return strings.Join(out, " ")
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
