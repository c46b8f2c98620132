package application

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// Fields is the applicant profile required for a mock submission.
// Values arrive as free text from the COLLECT turn.
type Fields struct {
	Name       string
	Age        string
	Income     string
	Category   string
	Occupation string
	State      string
}

const idPrefix = "APP"

// Submitter validates a completed applicant profile and issues a mock
// submission acknowledgement. It keeps no record of what it issued.
type Submitter struct{}

func NewSubmitter() *Submitter {
	return &Submitter{}
}

// Submit performs the all-or-nothing validation gate and returns a
// user-facing Hindi message plus whether the application was accepted.
// A missing scheme name or missing fields short-circuit with an
// itemized deficiency message; nothing is consumed in that case.
func (s *Submitter) Submit(schemeName string, fields Fields) (string, bool) {
	if schemeName == "" {
		return "STOP! पहले योजना का नाम स्पष्ट करें।", false
	}

	var missing []string
	if fields.Name == "" {
		missing = append(missing, "नाम")
	}
	if fields.Age == "" {
		missing = append(missing, "उम्र")
	}
	if fields.Income == "" {
		missing = append(missing, "आय")
	}
	if fields.Category == "" {
		missing = append(missing, "श्रेणी")
	}
	if fields.Occupation == "" {
		missing = append(missing, "पेशा")
	}
	if fields.State == "" {
		missing = append(missing, "राज्य")
	}

	if len(missing) > 0 {
		return fmt.Sprintf("STOP! निम्न जानकारी अधूरी है: %s", strings.Join(missing, ", ")), false
	}

	// Numeric gate runs after completeness so deficiency messages stay
	// itemized the same way.
	var nonNumeric []string
	if !isNumeric(fields.Age) {
		nonNumeric = append(nonNumeric, "उम्र")
	}
	if !isNumeric(fields.Income) {
		nonNumeric = append(nonNumeric, "आय")
	}
	if len(nonNumeric) > 0 {
		return fmt.Sprintf("STOP! यह जानकारी संख्या में होनी चाहिए: %s", strings.Join(nonNumeric, ", ")), false
	}

	applicationId := GenerateApplicationId(fields.Name)

	return fmt.Sprintf(
		"✅ आपका आवेदन सफलतापूर्वक जमा हो गया है।\nयोजना: %s\nआवेदन आईडी: %s",
		schemeName,
		applicationId,
	), true
}

// GenerateApplicationId derives a stable five-digit identifier from the
// applicant name. FNV-1a keeps it deterministic within and across runs;
// collisions between different names are acceptable for a mock receipt.
func GenerateApplicationId(name string) string {
	h := fnv.New32a()
	h.Write([]byte(name))
	return fmt.Sprintf("%s-%05d", idPrefix, h.Sum32()%100000)
}

func isNumeric(value string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	return err == nil
}
