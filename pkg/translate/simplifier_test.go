package translate

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

func TestToSimpleHindi(t *testing.T) {
	logger := log.New(io.Discard, "", 0)

	tests := []struct {
		name   string
		output string
		err    error
		input  string
		want   string
	}{
		{
			name:   "provider output is used",
			output: "किसानों के लिए आय सहायता।",
			input:  "Income support for farmers.",
			want:   "किसानों के लिए आय सहायता।",
		},
		{
			name:   "provider error returns input unchanged",
			err:    errors.New("timeout"),
			input:  "Income support for farmers.",
			want:   "Income support for farmers.",
		},
		{
			name:   "blank output returns input unchanged",
			output: "  \n",
			input:  "Income support for farmers.",
			want:   "Income support for farmers.",
		},
		{
			name:   "output is trimmed",
			output: "  सरल हिंदी  ",
			input:  "anything",
			want:   "सरल हिंदी",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSimplifier(&fakeLLM{output: tt.output, err: tt.err}, logger)
			got := s.ToSimpleHindi(context.Background(), tt.input)
			if got != tt.want {
				t.Errorf("ToSimpleHindi = %q, want %q", got, tt.want)
			}
		})
	}
}
