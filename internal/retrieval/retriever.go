package retrieval

import (
	"context"
	"fmt"
	"log"

	"schemekhoj-be/internal/repository/contract"
	"schemekhoj-be/pkg/agent"
	"schemekhoj-be/pkg/embedding"
	"schemekhoj-be/pkg/store"
)

// SchemeRetriever resolves free-text queries against the pgvector
// scheme index. It is the production implementation of the dialogue
// machine's Retriever port.
type SchemeRetriever struct {
	schemeRepo        contract.SchemeRepository
	embeddingProvider embedding.EmbeddingProvider
	logger            *log.Logger
}

var _ agent.Retriever = &SchemeRetriever{}

func NewSchemeRetriever(
	schemeRepo contract.SchemeRepository,
	embeddingProvider embedding.EmbeddingProvider,
	logger *log.Logger,
) *SchemeRetriever {
	return &SchemeRetriever{
		schemeRepo:        schemeRepo,
		embeddingProvider: embeddingProvider,
		logger:            logger,
	}
}

// Search embeds the query and returns the top-k schemes by cosine
// similarity. An empty result is valid; only embedding/storage
// failures are errors.
func (r *SchemeRetriever) Search(ctx context.Context, query string, k int) ([]store.SchemeDocument, error) {
	embedded, err := r.embeddingProvider.Generate(query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	scored, err := r.schemeRepo.SearchSimilar(ctx, embedded.Embedding.Values, k)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}

	docs := make([]store.SchemeDocument, 0, len(scored))
	for _, s := range scored {
		docs = append(docs, toDocument(s))
	}

	r.logger.Printf("[RETRIEVE] query=%q k=%d hits=%d", query, k, len(docs))
	return docs, nil
}

// FetchFull returns the single best match for a scheme name, or nil
// when the index has nothing. Similarity-based: the returned scheme's
// name need not equal the query.
func (r *SchemeRetriever) FetchFull(ctx context.Context, schemeName string) (*store.SchemeDocument, error) {
	docs, err := r.Search(ctx, schemeName, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return &docs[0], nil
}

func toDocument(s *contract.ScoredScheme) store.SchemeDocument {
	return store.SchemeDocument{
		ID:         s.Scheme.Id.String(),
		SchemeName: s.Scheme.SchemeName,
		Content:    s.Scheme.Content,
		Score:      float32(s.Similarity),
		Metadata: map[string]interface{}{
			"state":      s.Scheme.Metadata.State,
			"category":   s.Scheme.Metadata.Category,
			"min_age":    s.Scheme.Metadata.MinAge,
			"max_age":    s.Scheme.Metadata.MaxAge,
			"max_income": s.Scheme.Metadata.MaxIncome,
			"source_url": s.Scheme.Metadata.SourceURL,
		},
	}
}
