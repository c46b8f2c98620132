package agent

import (
	"context"
	"log"
	"strings"

	"schemekhoj-be/pkg/agent/application"
	"schemekhoj-be/pkg/agent/intent"
	"schemekhoj-be/pkg/agent/response"
	"schemekhoj-be/pkg/agent/section"
	"schemekhoj-be/pkg/store"
)

// ActionSearch marks a Response the host must resolve by calling the
// retriever and rendering summarized results.
const ActionSearch = "SEARCH"

// Response is the outcome of one turn: either a retrieval directive
// (Action == ActionSearch, Query set) or a final Text for display.
type Response struct {
	Action string `json:"action,omitempty"`
	Query  string `json:"query,omitempty"`
	Text   string `json:"text,omitempty"`
}

// Machine is the per-turn dialogue state machine. It owns no sessions
// itself; the caller passes the session in and serializes turns, so a
// single Machine instance serves all sessions.
type Machine struct {
	classifier Classifier
	retriever  Retriever
	submitter  *application.Submitter
	logger     *log.Logger
}

func NewMachine(classifier Classifier, retriever Retriever, logger *log.Logger) *Machine {
	return &Machine{
		classifier: classifier,
		retriever:  retriever,
		submitter:  application.NewSubmitter(),
		logger:     logger,
	}
}

// Step advances the session by one user utterance and returns the next
// response. External failures never escape: the classifier fails open
// and retrieval failures degrade to the unavailable message, so the
// worst case is a conversation that repeats itself, never one with
// corrupted state.
func (m *Machine) Step(ctx context.Context, session *store.Session, utterance string) Response {
	switch session.State {
	case store.StateStart:
		return m.stepStart(session, utterance)
	case store.StateConfirm:
		return m.stepConfirm(ctx, session, utterance)
	case store.StateCollect:
		return m.stepCollect(session, utterance)
	default: // APPLY, END
		return Response{Text: response.ThankYou}
	}
}

// stepStart records the first utterance as the selected scheme and
// hands the host a retrieval directive for it.
func (m *Machine) stepStart(session *store.Session, utterance string) Response {
	session.SelectedScheme = utterance
	session.LastQuery = utterance
	session.State = store.StateConfirm
	m.logger.Printf("[STATE] %s: START -> CONFIRM (scheme=%q)", session.ID, utterance)

	return Response{Action: ActionSearch, Query: utterance}
}

func (m *Machine) stepConfirm(ctx context.Context, session *store.Session, utterance string) Response {
	label := m.classifier.Classify(ctx, utterance)

	switch label {
	case intent.Info:
		return Response{Text: m.answerSection(ctx, session, utterance)}

	case intent.Apply:
		session.State = store.StateCollect
		m.logger.Printf("[STATE] %s: CONFIRM -> COLLECT", session.ID)
		return Response{Text: response.CollectPrompt}

	case intent.No:
		session.State = store.StateEnd
		m.logger.Printf("[STATE] %s: CONFIRM -> END", session.ID)
		return Response{Text: response.Closing}

	default: // SEARCH or anything the classifier could not place
		return Response{Text: response.Disambiguation}
	}
}

// answerSection resolves an INFO request against the selected scheme's
// full text. Empty retrieval degenerates to the unavailable sentinel
// via the extractor; it is never an error.
func (m *Machine) answerSection(ctx context.Context, session *store.Session, utterance string) string {
	sec, ok := section.Route(utterance)
	if !ok {
		return response.SectionMenu
	}

	var rawText string
	doc, err := m.retriever.FetchFull(ctx, session.SelectedScheme)
	if err != nil {
		m.logger.Printf("[WARN] FetchFull failed for %q: %v", session.SelectedScheme, err)
	} else if doc != nil {
		rawText = doc.Content
	}

	return section.Extract(rawText, sec)
}

// stepCollect parses the six comma-separated applicant fields
// positionally and submits. Arity and validation failures keep the
// session in COLLECT; only an accepted application advances to APPLY.
func (m *Machine) stepCollect(session *store.Session, utterance string) Response {
	parts := strings.Split(utterance, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if len(parts) < 6 {
		return Response{Text: response.CollectIncomplete}
	}

	fields := application.Fields{
		Name:       parts[0],
		Age:        parts[1],
		Income:     parts[2],
		Category:   parts[3],
		Occupation: parts[4],
		State:      parts[5],
	}

	schemeName := session.SelectedScheme
	if schemeName == "" {
		schemeName = response.DefaultSchemeName
	}

	result, submitted := m.submitter.Submit(schemeName, fields)
	if !submitted {
		return Response{Text: result}
	}

	session.Profile = map[string]string{
		"name":       fields.Name,
		"age":        fields.Age,
		"income":     fields.Income,
		"category":   fields.Category,
		"occupation": fields.Occupation,
		"state":      fields.State,
	}
	session.State = store.StateApply
	m.logger.Printf("[STATE] %s: COLLECT -> APPLY (scheme=%q)", session.ID, schemeName)

	return Response{Text: result}
}
