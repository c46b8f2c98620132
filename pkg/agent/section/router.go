package section

import "strings"

// Keyword sets routing an INFO utterance to a section. Matching is
// substring-based over the lowercased utterance; benefit keywords are
// checked before eligibility before description, first match wins.
var (
	benefitKeywords     = []string{"लाभ", "benefit"}
	eligibilityKeywords = []string{"eligibility", "पात्रता"}
	descKeywords        = []string{"क्या है", "details", "desc"}
)

// Route maps an utterance to the section it asks about. The boolean is
// false when no keyword matches, in which case the caller shows a menu.
// Kept separate from the state machine so the matching policy can change
// without touching transition logic.
func Route(utterance string) (string, bool) {
	lower := strings.ToLower(utterance)

	for _, k := range benefitKeywords {
		if strings.Contains(lower, k) {
			return Benefits, true
		}
	}
	for _, k := range eligibilityKeywords {
		if strings.Contains(lower, k) {
			return Eligibility, true
		}
	}
	for _, k := range descKeywords {
		if strings.Contains(lower, k) {
			return Desc, true
		}
	}

	return "", false
}
