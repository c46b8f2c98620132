package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"schemekhoj-be/internal/dto"
	"schemekhoj-be/internal/pkg/serverutils"
	"schemekhoj-be/internal/repository/memory"
	"schemekhoj-be/pkg/agent"
	"schemekhoj-be/pkg/agent/application"
	"schemekhoj-be/pkg/agent/intent"
	"schemekhoj-be/pkg/agent/response"
	"schemekhoj-be/pkg/events"
	"schemekhoj-be/pkg/llm"
	pkgnats "schemekhoj-be/pkg/nats"
	"schemekhoj-be/pkg/store"
	"schemekhoj-be/pkg/translate"

	"github.com/google/uuid"
)

// IAgentService drives one conversation turn per call and owns the
// in-memory session lifecycle around the dialogue machine.
type IAgentService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
	GetTranscript(ctx context.Context, sessionId uuid.UUID) (*dto.TranscriptResponse, error)
	DeleteSession(ctx context.Context, sessionId uuid.UUID) error
}

type agentService struct {
	machine        *agent.Machine
	retriever      agent.Retriever
	simplifier     *translate.Simplifier
	sessionRepo    *memory.SessionRepository
	transcriptRepo *memory.TranscriptRepository
	natsPub        *pkgnats.Publisher
	topK           int
	agentLogger    *log.Logger
}

// NewAgentService wires the dialogue machine with its production
// classifier and retriever. natsPub may be nil; submission events are
// then skipped with a warning.
func NewAgentService(
	llmProvider llm.LLMProvider,
	retriever agent.Retriever,
	sessionRepo *memory.SessionRepository,
	transcriptRepo *memory.TranscriptRepository,
	natsPub *pkgnats.Publisher,
	topK int,
) IAgentService {
	agentLogger := initAgentLogger()

	classifier := intent.NewClassifier(llmProvider, agentLogger)
	machine := agent.NewMachine(classifier, retriever, agentLogger)
	simplifier := translate.NewSimplifier(llmProvider, agentLogger)

	return &agentService{
		machine:        machine,
		retriever:      retriever,
		simplifier:     simplifier,
		sessionRepo:    sessionRepo,
		transcriptRepo: transcriptRepo,
		natsPub:        natsPub,
		topK:           topK,
		agentLogger:    agentLogger,
	}
}

func initAgentLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "agent.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[AGENT] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}

func (as *agentService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	session := &store.Session{
		ID:    uuid.New().String(),
		State: store.StateStart,
	}
	as.sessionRepo.Save(session)

	as.transcriptRepo.Append(session.ID, memory.TranscriptEntry{
		Role:      "assistant",
		Content:   response.Greeting,
		CreatedAt: time.Now(),
	})

	id, _ := uuid.Parse(session.ID)
	return &dto.CreateSessionResponse{
		Id:       id,
		Greeting: response.Greeting,
		State:    session.State,
	}, nil
}

// Chat runs one turn: classify, transition, and when the machine hands
// back a SEARCH directive, resolve it against the retriever and render
// short Hindi summaries.
func (as *agentService) Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	session, found := as.sessionRepo.Get(request.SessionId.String())
	if !found {
		return nil, serverutils.NotFoundError("Session not found or expired")
	}

	stateBefore := session.State
	result := as.machine.Step(ctx, session, request.Utterance)

	reply := result.Text
	if result.Action == agent.ActionSearch {
		reply = as.resolveSearch(ctx, result.Query)
	}

	as.sessionRepo.Save(session)

	now := time.Now()
	as.transcriptRepo.Append(session.ID,
		memory.TranscriptEntry{Role: "user", Content: request.Utterance, CreatedAt: now},
		memory.TranscriptEntry{Role: "assistant", Content: reply, CreatedAt: now},
	)

	if stateBefore == store.StateCollect && session.State == store.StateApply {
		as.publishSubmission(ctx, session)
	}

	return &dto.ChatResponse{
		SessionId: request.SessionId,
		State:     session.State,
		Action:    result.Action,
		Reply:     reply,
		CreatedAt: now,
	}, nil
}

// resolveSearch renders discovery results the way the assistant speaks:
// scheme name plus a one-sentence simplified Hindi summary. Retrieval
// failures and empty results both collapse to the no-match message.
func (as *agentService) resolveSearch(ctx context.Context, query string) string {
	docs, err := as.retriever.Search(ctx, query, as.topK)
	if err != nil {
		as.agentLogger.Printf("[WARN] Search failed for %q: %v", query, err)
		return response.NoSchemeFound
	}
	if len(docs) == 0 {
		return response.NoSchemeFound
	}

	summaries := make([]string, 0, len(docs))
	for i, doc := range docs {
		firstSentence := firstSentenceOf(doc.Content)
		hindi := as.simplifier.ToSimpleHindi(ctx, firstSentence)

		name := doc.SchemeName
		if name == "" {
			name = "अज्ञात"
		}
		summaries = append(summaries, fmt.Sprintf("योजना %d: %s\nसंक्षेप: %s", i+1, name, hindi))
	}

	return strings.Join(summaries, "\n\n")
}

func firstSentenceOf(text string) string {
	sentence, _, _ := strings.Cut(text, ".")
	return strings.TrimSpace(sentence) + "."
}

func (as *agentService) publishSubmission(ctx context.Context, session *store.Session) {
	if as.natsPub == nil {
		as.agentLogger.Printf("[WARN] NATS publisher unavailable, skipping submission event for %s", session.ID)
		return
	}

	applicationId := application.GenerateApplicationId(session.Profile["name"])
	event := events.NewApplicationSubmitted(session.ID, session.SelectedScheme, applicationId)
	if err := as.natsPub.Publish(ctx, event); err != nil {
		// The acknowledgement already went to the user; event fan-out
		// is best effort.
		as.agentLogger.Printf("[WARN] Failed to publish submission event: %v", err)
	}
}

func (as *agentService) GetTranscript(ctx context.Context, sessionId uuid.UUID) (*dto.TranscriptResponse, error) {
	entries, found := as.transcriptRepo.Get(sessionId.String())
	if !found {
		return nil, serverutils.NotFoundError("Session not found or expired")
	}

	resp := &dto.TranscriptResponse{
		SessionId: sessionId,
		Entries:   make([]dto.TranscriptEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, dto.TranscriptEntryResponse{
			Role:      e.Role,
			Content:   e.Content,
			CreatedAt: e.CreatedAt,
		})
	}
	return resp, nil
}

func (as *agentService) DeleteSession(ctx context.Context, sessionId uuid.UUID) error {
	if _, found := as.sessionRepo.Get(sessionId.String()); !found {
		return serverutils.NotFoundError("Session not found or expired")
	}
	as.sessionRepo.Delete(sessionId.String())
	as.transcriptRepo.Delete(sessionId.String())
	return nil
}
