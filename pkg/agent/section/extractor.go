package section

import (
	"strings"

	"schemekhoj-be/pkg/agent/response"
)

// Section names recognized in stored scheme text.
const (
	Desc        = "DESC"
	Benefits    = "BENEFITS"
	Eligibility = "ELIGIBILITY"
)

// markers maps a section to its opening marker and the marker that
// terminates it. Eligibility runs to end of text.
var markers = map[string][2]string{
	Desc:        {"DESC:", "BENEFITS:"},
	Benefits:    {"BENEFITS:", "ELIGIBILITY:"},
	Eligibility: {"ELIGIBILITY:", ""},
}

// Extract isolates one named section from raw scheme text.
// Pure function: same input, same output, no external calls.
// Unknown sections and absent opening markers yield the fixed
// unavailable sentinel instead of an error.
func Extract(rawText string, section string) string {
	section = strings.ToUpper(section)

	m, ok := markers[section]
	if !ok {
		return response.SectionUnavailable
	}

	start, end := m[0], m[1]
	if !strings.Contains(rawText, start) {
		return response.SectionUnavailable
	}

	content := rawText[strings.Index(rawText, start)+len(start):]
	if end != "" {
		if idx := strings.Index(content, end); idx >= 0 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
