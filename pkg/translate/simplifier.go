package translate

import (
	"context"
	"fmt"
	"log"
	"strings"

	"schemekhoj-be/pkg/llm"
)

// Simplifier rewrites English scheme text into simple Hindi via the
// LLM provider. On any failure it returns the input unchanged; a raw
// English summary beats a stalled turn.
type Simplifier struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewSimplifier(llmProvider llm.LLMProvider, logger *log.Logger) *Simplifier {
	return &Simplifier{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

func (s *Simplifier) ToSimpleHindi(ctx context.Context, text string) string {
	prompt := fmt.Sprintf(
		"नीचे दिए गए सरकारी योजना विवरण को सरल हिंदी में समझाइए।\nअंग्रेज़ी शब्द न रखें।\n\n%s",
		text,
	)

	out, err := s.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.0))
	if err != nil {
		s.logger.Printf("[WARN] Hindi simplification failed, returning original text: %v", err)
		return text
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return text
	}
	return out
}
