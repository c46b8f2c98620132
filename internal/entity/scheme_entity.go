package entity

import (
	"time"

	"github.com/google/uuid"
)

// SchemeMetadata mirrors the structured metadata captured by the
// ingestion pipeline for each scheme.
type SchemeMetadata struct {
	State     string  `json:"state,omitempty"`
	Category  string  `json:"category,omitempty"`
	MinAge    float64 `json:"min_age,omitempty"`
	MaxAge    float64 `json:"max_age,omitempty"`
	MaxIncome float64 `json:"max_income,omitempty"`
	SourceURL string  `json:"source_url,omitempty"`
}

type Scheme struct {
	Id         uuid.UUID
	SchemeName string
	Content    string
	Metadata   SchemeMetadata
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}

type SchemeEmbedding struct {
	Id             uuid.UUID
	Document       string
	EmbeddingValue []float32
	SchemeId       uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
