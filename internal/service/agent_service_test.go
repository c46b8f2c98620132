package service

import (
	"context"
	"errors"
	"testing"

	"schemekhoj-be/internal/dto"
	"schemekhoj-be/internal/repository/memory"
	"schemekhoj-be/pkg/agent"
	"schemekhoj-be/pkg/agent/response"
	"schemekhoj-be/pkg/llm"
	"schemekhoj-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLLM struct {
	output string
	err    error
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.output, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.output, s.err
}

type stubRetriever struct {
	docs []store.SchemeDocument
	err  error
}

func (s *stubRetriever) Search(ctx context.Context, query string, k int) ([]store.SchemeDocument, error) {
	return s.docs, s.err
}

func (s *stubRetriever) FetchFull(ctx context.Context, schemeName string) (*store.SchemeDocument, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.docs) == 0 {
		return nil, nil
	}
	return &s.docs[0], nil
}

func newTestService(llmOut string, retriever agent.Retriever) IAgentService {
	return NewAgentService(
		&stubLLM{output: llmOut},
		retriever,
		memory.NewSessionRepository(),
		memory.NewTranscriptRepository(),
		nil, // NATS optional
		3,
	)
}

func TestCreateSession(t *testing.T) {
	svc := newTestService("INFO", &stubRetriever{})

	res, err := svc.CreateSession(context.Background())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.Id)
	assert.Equal(t, store.StateStart, res.State)
	assert.Equal(t, response.Greeting, res.Greeting)

	transcript, err := svc.GetTranscript(context.Background(), res.Id)
	require.NoError(t, err)
	require.Len(t, transcript.Entries, 1)
	assert.Equal(t, "assistant", transcript.Entries[0].Role)
	assert.Equal(t, response.Greeting, transcript.Entries[0].Content)
}

func TestChatUnknownSession(t *testing.T) {
	svc := newTestService("INFO", &stubRetriever{})

	_, err := svc.Chat(context.Background(), &dto.ChatRequest{
		SessionId: uuid.New(),
		Utterance: "किसान योजना",
	})

	require.Error(t, err)
}

func TestChatFirstTurnRendersSearchResults(t *testing.T) {
	retriever := &stubRetriever{docs: []store.SchemeDocument{
		{SchemeName: "किसान योजना", Content: "Income support for farmers. More text."},
		{SchemeName: "पेंशन योजना", Content: "Monthly pension for seniors. More text."},
	}}
	svc := newTestService("सरल हिंदी सारांश", retriever)

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{
		SessionId: created.Id,
		Utterance: "किसान योजना",
	})

	require.NoError(t, err)
	assert.Equal(t, store.StateConfirm, res.State)
	assert.Equal(t, agent.ActionSearch, res.Action)
	assert.Contains(t, res.Reply, "योजना 1: किसान योजना")
	assert.Contains(t, res.Reply, "योजना 2: पेंशन योजना")
	assert.Contains(t, res.Reply, "संक्षेप: सरल हिंदी सारांश")
}

func TestChatFirstTurnNoResults(t *testing.T) {
	svc := newTestService("INFO", &stubRetriever{})

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{
		SessionId: created.Id,
		Utterance: "अनजान योजना",
	})

	require.NoError(t, err)
	assert.Equal(t, response.NoSchemeFound, res.Reply)
}

func TestChatFirstTurnRetrievalFailure(t *testing.T) {
	svc := newTestService("INFO", &stubRetriever{err: errors.New("db down")})

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{
		SessionId: created.Id,
		Utterance: "किसान योजना",
	})

	require.NoError(t, err)
	assert.Equal(t, response.NoSchemeFound, res.Reply)
}

func TestChatAppendsTranscript(t *testing.T) {
	svc := newTestService("INFO", &stubRetriever{})

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	_, err = svc.Chat(context.Background(), &dto.ChatRequest{
		SessionId: created.Id,
		Utterance: "किसान योजना",
	})
	require.NoError(t, err)

	transcript, err := svc.GetTranscript(context.Background(), created.Id)
	require.NoError(t, err)
	// greeting + user turn + assistant reply
	require.Len(t, transcript.Entries, 3)
	assert.Equal(t, "user", transcript.Entries[1].Role)
	assert.Equal(t, "किसान योजना", transcript.Entries[1].Content)
	assert.Equal(t, "assistant", transcript.Entries[2].Role)
}

func TestChatSubmissionFlowWithoutNats(t *testing.T) {
	retriever := &stubRetriever{docs: []store.SchemeDocument{
		{SchemeName: "किसान योजना", Content: "DESC: Support.\nBENEFITS: Cash.\nELIGIBILITY: Farmers."},
	}}
	svc := newTestService("APPLY", retriever)

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)
	ctx := context.Background()

	// Turn 1: discovery
	_, err = svc.Chat(ctx, &dto.ChatRequest{SessionId: created.Id, Utterance: "किसान योजना"})
	require.NoError(t, err)

	// Turn 2: classifier stub says APPLY
	res, err := svc.Chat(ctx, &dto.ChatRequest{SessionId: created.Id, Utterance: "आवेदन करना है"})
	require.NoError(t, err)
	assert.Equal(t, store.StateCollect, res.State)

	// Turn 3: applicant details; NATS publisher is nil and must not panic
	res, err = svc.Chat(ctx, &dto.ChatRequest{SessionId: created.Id, Utterance: "Asha, 45, 20000, General, Farmer, Bihar"})
	require.NoError(t, err)
	assert.Equal(t, store.StateApply, res.State)
	assert.Contains(t, res.Reply, "APP-")
}

func TestDeleteSession(t *testing.T) {
	svc := newTestService("INFO", &stubRetriever{})

	created, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSession(context.Background(), created.Id))

	_, err = svc.GetTranscript(context.Background(), created.Id)
	assert.Error(t, err)

	assert.Error(t, svc.DeleteSession(context.Background(), created.Id))
}
