package agent

import (
	"context"

	"schemekhoj-be/pkg/store"
)

// Classifier labels a single utterance with a coarse intent
// (SEARCH, INFO, APPLY, NO). Implementations must fail open to SEARCH
// rather than returning an error; the machine never sees a failure.
type Classifier interface {
	Classify(ctx context.Context, utterance string) string
}

// Retriever is the similarity-based scheme lookup the machine depends
// on. Both operations are fuzzy: a returned document's name need not
// equal the query.
type Retriever interface {
	// Search returns the top-k matching schemes for discovery.
	// An empty result is a valid outcome, not an error.
	Search(ctx context.Context, query string, k int) ([]store.SchemeDocument, error)

	// FetchFull returns the single best-matching scheme with its full
	// marker-structured text, or nil when nothing matches.
	FetchFull(ctx context.Context, schemeName string) (*store.SchemeDocument, error)
}
