package intent

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"schemekhoj-be/pkg/llm"
)

type fakeLLM struct {
	output string
	err    error
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.output, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.output, f.err
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		output string
		err    error
		want   string
	}{
		{name: "info label", output: "INFO", want: Info},
		{name: "apply label", output: "APPLY", want: Apply},
		{name: "no label", output: "NO", want: No},
		{name: "search label", output: "SEARCH", want: Search},
		{name: "lowercase output normalized", output: "info", want: Info},
		{name: "surrounding whitespace stripped", output: "  APPLY\n", want: Apply},
		{name: "provider error fails open to search", output: "", err: errors.New("timeout"), want: Search},
		{name: "unknown label fails open to search", output: "MAYBE", want: Search},
		{name: "chatty output fails open to search", output: "The intent is INFO", want: Search},
		{name: "empty output fails open to search", output: "", want: Search},
	}

	logger := log.New(io.Discard, "", 0)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(&fakeLLM{output: tt.output, err: tt.err}, logger)
			got := c.Classify(context.Background(), "कोई भी वाक्य")
			if got != tt.want {
				t.Errorf("Classify = %q, want %q", got, tt.want)
			}
		})
	}
}
