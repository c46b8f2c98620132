package agent

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"schemekhoj-be/pkg/agent/intent"
	"schemekhoj-be/pkg/agent/response"
	"schemekhoj-be/pkg/store"
)

type fakeClassifier struct {
	label string
}

func (f *fakeClassifier) Classify(ctx context.Context, utterance string) string {
	return f.label
}

type fakeRetriever struct {
	docs []store.SchemeDocument
	err  error
}

func (f *fakeRetriever) Search(ctx context.Context, query string, k int) ([]store.SchemeDocument, error) {
	return f.docs, f.err
}

func (f *fakeRetriever) FetchFull(ctx context.Context, schemeName string) (*store.SchemeDocument, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.docs) == 0 {
		return nil, nil
	}
	return &f.docs[0], nil
}

const schemeText = "SCHEME: किसान योजना\n" +
	"DESC: किसानों के लिए सहायता.\n" +
	"BENEFITS: 6000 रुपये प्रति वर्ष\n" +
	"ELIGIBILITY: भूमिधारक किसान"

func newTestMachine(label string, retriever Retriever) *Machine {
	logger := log.New(io.Discard, "", 0)
	return NewMachine(&fakeClassifier{label: label}, retriever, logger)
}

func newSession(state string) *store.Session {
	return &store.Session{ID: "test-session", State: state}
}

func TestStepStart(t *testing.T) {
	m := newTestMachine(intent.Search, &fakeRetriever{})
	session := newSession(store.StateStart)

	res := m.Step(context.Background(), session, "किसान योजना")

	if res.Action != ActionSearch {
		t.Fatalf("Action = %q, want %q", res.Action, ActionSearch)
	}
	if res.Query != "किसान योजना" {
		t.Errorf("Query = %q, want the utterance", res.Query)
	}
	if session.State != store.StateConfirm {
		t.Errorf("State = %q, want %q", session.State, store.StateConfirm)
	}
	if session.SelectedScheme != "किसान योजना" {
		t.Errorf("SelectedScheme = %q, want the utterance", session.SelectedScheme)
	}
	if session.LastQuery != "किसान योजना" {
		t.Errorf("LastQuery = %q, want the utterance", session.LastQuery)
	}
}

func TestStepConfirmTransitions(t *testing.T) {
	tests := []struct {
		name         string
		label        string
		utterance    string
		wantState    string
		wantText     string
		wantContains string
	}{
		{
			name:      "apply moves to collect",
			label:     intent.Apply,
			utterance: "आवेदन करना है",
			wantState: store.StateCollect,
			wantText:  response.CollectPrompt,
		},
		{
			name:      "no ends the session",
			label:     intent.No,
			utterance: "नहीं चाहिए",
			wantState: store.StateEnd,
			wantText:  response.Closing,
		},
		{
			name:      "search stays in confirm with disambiguation",
			label:     intent.Search,
			utterance: "कुछ और",
			wantState: store.StateConfirm,
			wantText:  response.Disambiguation,
		},
		{
			name:         "info with benefit keyword answers the section",
			label:        intent.Info,
			utterance:    "लाभ बताओ",
			wantState:    store.StateConfirm,
			wantContains: "6000 रुपये",
		},
		{
			name:      "info without keyword shows the menu",
			label:     intent.Info,
			utterance: "हम्म",
			wantState: store.StateConfirm,
			wantText:  response.SectionMenu,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			retriever := &fakeRetriever{docs: []store.SchemeDocument{{SchemeName: "किसान योजना", Content: schemeText}}}
			m := newTestMachine(tt.label, retriever)
			session := newSession(store.StateConfirm)
			session.SelectedScheme = "किसान योजना"

			res := m.Step(context.Background(), session, tt.utterance)

			if session.State != tt.wantState {
				t.Errorf("State = %q, want %q", session.State, tt.wantState)
			}
			if res.Action != "" {
				t.Errorf("Action = %q, want none", res.Action)
			}
			if tt.wantText != "" && res.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", res.Text, tt.wantText)
			}
			if tt.wantContains != "" && !strings.Contains(res.Text, tt.wantContains) {
				t.Errorf("Text %q does not contain %q", res.Text, tt.wantContains)
			}
		})
	}
}

func TestStepConfirmSectionMissing(t *testing.T) {
	// Scheme text without an ELIGIBILITY marker degrades to the fixed
	// sentinel, never an error.
	partial := "SCHEME: किसान योजना\nDESC: विवरण.\nBENEFITS: कुछ लाभ"
	retriever := &fakeRetriever{docs: []store.SchemeDocument{{SchemeName: "किसान योजना", Content: partial}}}
	m := newTestMachine(intent.Info, retriever)
	session := newSession(store.StateConfirm)
	session.SelectedScheme = "किसान योजना"

	res := m.Step(context.Background(), session, "पात्रता बताओ")

	if res.Text != response.SectionUnavailable {
		t.Errorf("Text = %q, want %q", res.Text, response.SectionUnavailable)
	}
	if session.State != store.StateConfirm {
		t.Errorf("State = %q, want %q", session.State, store.StateConfirm)
	}
}

func TestStepConfirmRetrieverFailure(t *testing.T) {
	retriever := &fakeRetriever{err: errors.New("db down")}
	m := newTestMachine(intent.Info, retriever)
	session := newSession(store.StateConfirm)
	session.SelectedScheme = "किसान योजना"

	res := m.Step(context.Background(), session, "लाभ बताओ")

	if res.Text != response.SectionUnavailable {
		t.Errorf("Text = %q, want %q", res.Text, response.SectionUnavailable)
	}
}

func TestStepCollect(t *testing.T) {
	tests := []struct {
		name         string
		utterance    string
		wantState    string
		wantText     string
		wantContains string
	}{
		{
			name:      "fewer than six parts keeps collecting",
			utterance: "Asha, 45, 20000",
			wantState: store.StateCollect,
			wantText:  response.CollectIncomplete,
		},
		{
			name:         "six parts with blank field keeps collecting",
			utterance:    "Asha, , 20000, General, Farmer, Bihar",
			wantState:    store.StateCollect,
			wantContains: "उम्र",
		},
		{
			name:         "non numeric age keeps collecting",
			utterance:    "Asha, पैंतालीस, 20000, General, Farmer, Bihar",
			wantState:    store.StateCollect,
			wantContains: "संख्या",
		},
		{
			name:         "complete profile submits and advances",
			utterance:    "Asha, 45, 20000, General, Farmer, Bihar",
			wantState:    store.StateApply,
			wantContains: "आवेदन आईडी: APP-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(intent.Apply, &fakeRetriever{})
			session := newSession(store.StateCollect)
			session.SelectedScheme = "किसान योजना"

			res := m.Step(context.Background(), session, tt.utterance)

			if session.State != tt.wantState {
				t.Errorf("State = %q, want %q", session.State, tt.wantState)
			}
			if tt.wantText != "" && res.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", res.Text, tt.wantText)
			}
			if tt.wantContains != "" && !strings.Contains(res.Text, tt.wantContains) {
				t.Errorf("Text %q does not contain %q", res.Text, tt.wantContains)
			}
		})
	}
}

func TestStepCollectFillsProfile(t *testing.T) {
	m := newTestMachine(intent.Apply, &fakeRetriever{})
	session := newSession(store.StateCollect)
	session.SelectedScheme = "किसान योजना"

	m.Step(context.Background(), session, "Asha, 45, 20000, General, Farmer, Bihar")

	want := map[string]string{
		"name":       "Asha",
		"age":        "45",
		"income":     "20000",
		"category":   "General",
		"occupation": "Farmer",
		"state":      "Bihar",
	}
	for k, v := range want {
		if session.Profile[k] != v {
			t.Errorf("Profile[%q] = %q, want %q", k, session.Profile[k], v)
		}
	}
}

func TestStepCollectIncompleteLeavesProfileEmpty(t *testing.T) {
	m := newTestMachine(intent.Apply, &fakeRetriever{})
	session := newSession(store.StateCollect)
	session.SelectedScheme = "किसान योजना"

	m.Step(context.Background(), session, "Asha, 45")

	if len(session.Profile) != 0 {
		t.Errorf("Profile = %v, want empty until submission succeeds", session.Profile)
	}
}

func TestStepCollectWithoutSchemeUsesFallbackName(t *testing.T) {
	m := newTestMachine(intent.Apply, &fakeRetriever{})
	session := newSession(store.StateCollect)

	res := m.Step(context.Background(), session, "Asha, 45, 20000, General, Farmer, Bihar")

	if !strings.Contains(res.Text, response.DefaultSchemeName) {
		t.Errorf("Text %q does not reference the fallback scheme name", res.Text)
	}
	if session.State != store.StateApply {
		t.Errorf("State = %q, want %q", session.State, store.StateApply)
	}
}

func TestStepTerminalStates(t *testing.T) {
	for _, state := range []string{store.StateApply, store.StateEnd} {
		m := newTestMachine(intent.Search, &fakeRetriever{})
		session := newSession(state)

		res := m.Step(context.Background(), session, "और कुछ")

		if res.Text != response.ThankYou {
			t.Errorf("state %s: Text = %q, want %q", state, res.Text, response.ThankYou)
		}
		if session.State != state {
			t.Errorf("state %s changed to %s", state, session.State)
		}
	}
}

func TestFullConversationFlow(t *testing.T) {
	retriever := &fakeRetriever{docs: []store.SchemeDocument{{SchemeName: "किसान योजना", Content: schemeText}}}
	logger := log.New(io.Discard, "", 0)
	classifier := &fakeClassifier{}
	m := NewMachine(classifier, retriever, logger)
	session := newSession(store.StateStart)
	ctx := context.Background()

	// Turn 1: discovery
	res := m.Step(ctx, session, "किसान योजना")
	if res.Action != ActionSearch {
		t.Fatalf("turn 1: Action = %q, want %q", res.Action, ActionSearch)
	}

	// Turn 2: ask about benefits
	classifier.label = intent.Info
	res = m.Step(ctx, session, "लाभ बताओ")
	if !strings.Contains(res.Text, "6000 रुपये") {
		t.Fatalf("turn 2: Text = %q, want benefits content", res.Text)
	}

	// Turn 3: decide to apply
	classifier.label = intent.Apply
	res = m.Step(ctx, session, "आवेदन करना है")
	if res.Text != response.CollectPrompt {
		t.Fatalf("turn 3: Text = %q, want collection prompt", res.Text)
	}

	// Turn 4: provide applicant details
	res = m.Step(ctx, session, "Asha, 45, 20000, General, Farmer, Bihar")
	if session.State != store.StateApply {
		t.Fatalf("turn 4: State = %q, want %q", session.State, store.StateApply)
	}
	if !strings.Contains(res.Text, "सफलतापूर्वक") {
		t.Fatalf("turn 4: Text = %q, want submission acknowledgement", res.Text)
	}

	// Turn 5: anything afterwards is acknowledged only
	res = m.Step(ctx, session, "धन्यवाद")
	if res.Text != response.ThankYou {
		t.Fatalf("turn 5: Text = %q, want %q", res.Text, response.ThankYou)
	}
}
