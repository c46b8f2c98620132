package section

import "testing"

func TestRoute(t *testing.T) {
	tests := []struct {
		name        string
		utterance   string
		wantSection string
		wantMatched bool
	}{
		{
			name:        "hindi benefit keyword",
			utterance:   "इस योजना के लाभ बताओ",
			wantSection: Benefits,
			wantMatched: true,
		},
		{
			name:        "english benefit keyword",
			utterance:   "what are the benefits",
			wantSection: Benefits,
			wantMatched: true,
		},
		{
			name:        "hindi eligibility keyword",
			utterance:   "पात्रता बताइए",
			wantSection: Eligibility,
			wantMatched: true,
		},
		{
			name:        "english eligibility keyword",
			utterance:   "eligibility rules please",
			wantSection: Eligibility,
			wantMatched: true,
		},
		{
			name:        "description keyword",
			utterance:   "यह योजना क्या है",
			wantSection: Desc,
			wantMatched: true,
		},
		{
			name:        "uppercase english keyword",
			utterance:   "BENEFITS?",
			wantSection: Benefits,
			wantMatched: true,
		},
		{
			name:        "no keyword",
			utterance:   "हाँ ठीक है",
			wantSection: "",
			wantMatched: false,
		},
		{
			name:        "empty utterance",
			utterance:   "",
			wantSection: "",
			wantMatched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, matched := Route(tt.utterance)
			if matched != tt.wantMatched {
				t.Fatalf("Route(%q) matched = %v, want %v", tt.utterance, matched, tt.wantMatched)
			}
			if got != tt.wantSection {
				t.Errorf("Route(%q) = %q, want %q", tt.utterance, got, tt.wantSection)
			}
		})
	}
}

func TestRoutePrecedence(t *testing.T) {
	// An utterance hitting several keyword sets resolves in fixed
	// order: benefits, then eligibility, then description.
	got, matched := Route("लाभ और पात्रता क्या है")
	if !matched || got != Benefits {
		t.Errorf("Route = %q (matched=%v), want %q", got, matched, Benefits)
	}

	got, matched = Route("पात्रता क्या है")
	if !matched || got != Eligibility {
		t.Errorf("Route = %q (matched=%v), want %q", got, matched, Eligibility)
	}
}
