package contract

import (
	"context"

	"schemekhoj-be/internal/entity"

	"github.com/google/uuid"
)

// ScoredScheme pairs a scheme with its cosine similarity to a query.
type ScoredScheme struct {
	Scheme     *entity.Scheme
	Similarity float64
}

type SchemeRepository interface {
	Create(ctx context.Context, scheme *entity.Scheme) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.Scheme, error)
	FindAll(ctx context.Context) ([]*entity.Scheme, error)
	// SearchSimilar returns schemes ordered by cosine similarity of
	// their embeddings to the query vector, best first.
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*ScoredScheme, error)
}

type SchemeEmbeddingRepository interface {
	Create(ctx context.Context, embedding *entity.SchemeEmbedding) error
	DeleteBySchemeId(ctx context.Context, schemeId uuid.UUID) error
}
