package section

import (
	"testing"

	"schemekhoj-be/pkg/agent/response"
)

const sampleScheme = "SCHEME: किसान सम्मान निधि\n" +
	"DESC: किसानों के लिए आय सहायता योजना.\n" +
	"BENEFITS: प्रति वर्ष 6000 रुपये, तीन किस्तों में\n" +
	"ELIGIBILITY: भूमिधारक किसान, आधार से जुड़ा बैंक खाता"

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		rawText string
		section string
		want    string
	}{
		{
			name:    "description section",
			rawText: sampleScheme,
			section: Desc,
			want:    "किसानों के लिए आय सहायता योजना.",
		},
		{
			name:    "benefits section",
			rawText: sampleScheme,
			section: Benefits,
			want:    "प्रति वर्ष 6000 रुपये, तीन किस्तों में",
		},
		{
			name:    "eligibility runs to end of text",
			rawText: sampleScheme,
			section: Eligibility,
			want:    "भूमिधारक किसान, आधार से जुड़ा बैंक खाता",
		},
		{
			name:    "section name is case insensitive",
			rawText: sampleScheme,
			section: "benefits",
			want:    "प्रति वर्ष 6000 रुपये, तीन किस्तों में",
		},
		{
			name:    "unknown section",
			rawText: sampleScheme,
			section: "DOCUMENTS",
			want:    response.SectionUnavailable,
		},
		{
			name:    "marker absent from text",
			rawText: "SCHEME: कोई योजना\nDESC: विवरण मात्र.",
			section: Benefits,
			want:    response.SectionUnavailable,
		},
		{
			name:    "empty text",
			rawText: "",
			section: Desc,
			want:    response.SectionUnavailable,
		},
		{
			name:    "desc without trailing sections",
			rawText: "DESC: केवल विवरण उपलब्ध है.",
			section: Desc,
			want:    "केवल विवरण उपलब्ध है.",
		},
		{
			name:    "surrounding whitespace is trimmed",
			rawText: "DESC:   विवरण   \nBENEFITS: लाभ",
			section: Desc,
			want:    "विवरण",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.rawText, tt.section)
			if got != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.section, got, tt.want)
			}
		})
	}
}

func TestExtractDeterministic(t *testing.T) {
	first := Extract(sampleScheme, Benefits)
	for i := 0; i < 10; i++ {
		if got := Extract(sampleScheme, Benefits); got != first {
			t.Fatalf("Extract changed between calls: %q vs %q", got, first)
		}
	}
}
