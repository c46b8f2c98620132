package intent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"schemekhoj-be/pkg/llm"
)

// Intent labels for a single user utterance.
const (
	Search = "SEARCH"
	Info   = "INFO"
	Apply  = "APPLY"
	No     = "NO"
)

var validLabels = map[string]bool{
	Search: true,
	Info:   true,
	Apply:  true,
	No:     true,
}

// Classifier performs pure LLM-based intent classification.
// No retrieval, no session access, just the label.
type Classifier struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewClassifier(llmProvider llm.LLMProvider, logger *log.Logger) *Classifier {
	return &Classifier{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Classify returns one of SEARCH, INFO, APPLY, NO for the given Hindi
// utterance. Any provider failure or out-of-set output fails open to
// SEARCH so the dialogue never stalls; the caller cannot tell the
// difference, and that is intentional.
func (c *Classifier) Classify(ctx context.Context, utterance string) string {
	prompt := buildPrompt(utterance)

	// Temperature 0 for deterministic labeling
	raw, err := c.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.0))
	if err != nil {
		c.logger.Printf("[WARN] Intent classification failed, defaulting to SEARCH: %v", err)
		return Search
	}

	label := strings.ToUpper(strings.TrimSpace(raw))
	if !validLabels[label] {
		c.logger.Printf("[WARN] Intent classifier returned %q, defaulting to SEARCH", raw)
		return Search
	}

	c.logger.Printf("[INTENT] Classified: %s", label)
	return label
}

func buildPrompt(utterance string) string {
	var prompt strings.Builder

	prompt.WriteString("यूज़र का इरादा पहचानिए।\n")
	prompt.WriteString("केवल एक शब्द लौटाएँ: SEARCH, INFO, APPLY, NO\n\n")
	prompt.WriteString("INFO तब जब यूज़र लाभ, पात्रता, दस्तावेज़ पूछे\n")
	prompt.WriteString("APPLY तब जब यूज़र आवेदन करना चाहे\n\n")
	prompt.WriteString(fmt.Sprintf("वाक्य: \"%s\"\n", utterance))

	return prompt.String()
}
