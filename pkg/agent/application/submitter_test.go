package application

import (
	"strings"
	"testing"
)

func completeFields() Fields {
	return Fields{
		Name:       "Asha",
		Age:        "45",
		Income:     "20000",
		Category:   "General",
		Occupation: "Farmer",
		State:      "Bihar",
	}
}

func TestSubmit(t *testing.T) {
	s := NewSubmitter()

	tests := []struct {
		name          string
		schemeName    string
		mutate        func(*Fields)
		wantSubmitted bool
		wantContains  []string
	}{
		{
			name:          "complete profile is accepted",
			schemeName:    "किसान सम्मान निधि",
			mutate:        func(f *Fields) {},
			wantSubmitted: true,
			wantContains:  []string{"सफलतापूर्वक", "किसान सम्मान निधि", "APP-"},
		},
		{
			name:          "empty scheme name rejected before field checks",
			schemeName:    "",
			mutate:        func(f *Fields) { f.Name = "" },
			wantSubmitted: false,
			wantContains:  []string{"STOP!", "योजना का नाम"},
		},
		{
			name:          "missing name itemized",
			schemeName:    "कोई योजना",
			mutate:        func(f *Fields) { f.Name = "" },
			wantSubmitted: false,
			wantContains:  []string{"STOP!", "अधूरी", "नाम"},
		},
		{
			name:       "all missing fields itemized together",
			schemeName: "कोई योजना",
			mutate: func(f *Fields) {
				f.Age = ""
				f.State = ""
			},
			wantSubmitted: false,
			wantContains:  []string{"उम्र", "राज्य"},
		},
		{
			name:          "non numeric age rejected",
			schemeName:    "कोई योजना",
			mutate:        func(f *Fields) { f.Age = "पैंतालीस" },
			wantSubmitted: false,
			wantContains:  []string{"संख्या", "उम्र"},
		},
		{
			name:          "non numeric income rejected",
			schemeName:    "कोई योजना",
			mutate:        func(f *Fields) { f.Income = "twenty thousand" },
			wantSubmitted: false,
			wantContains:  []string{"संख्या", "आय"},
		},
		{
			name:          "numeric values with spaces accepted",
			schemeName:    "कोई योजना",
			mutate:        func(f *Fields) { f.Age = " 45 " },
			wantSubmitted: true,
			wantContains:  []string{"सफलतापूर्वक"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := completeFields()
			tt.mutate(&fields)

			got, submitted := s.Submit(tt.schemeName, fields)
			if submitted != tt.wantSubmitted {
				t.Fatalf("submitted = %v, want %v (message: %q)", submitted, tt.wantSubmitted, got)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("message %q does not contain %q", got, want)
				}
			}
		})
	}
}

func TestGenerateApplicationIdDeterministic(t *testing.T) {
	first := GenerateApplicationId("Asha")
	for i := 0; i < 5; i++ {
		if got := GenerateApplicationId("Asha"); got != first {
			t.Fatalf("id changed between calls: %q vs %q", got, first)
		}
	}

	if !strings.HasPrefix(first, "APP-") {
		t.Errorf("id %q missing APP- prefix", first)
	}
	if len(first) != len("APP-")+5 {
		t.Errorf("id %q is not five digits wide", first)
	}
}

func TestGenerateApplicationIdVariesByName(t *testing.T) {
	if GenerateApplicationId("Asha") == GenerateApplicationId("Ravi") {
		t.Error("different names produced the same application id")
	}
}
