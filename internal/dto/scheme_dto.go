package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSchemeRequest struct {
	SchemeName string  `json:"scheme_name" validate:"required"`
	Content    string  `json:"content" validate:"required"` // must carry DESC:/BENEFITS:/ELIGIBILITY: markers
	State      string  `json:"state,omitempty"`
	Category   string  `json:"category,omitempty"`
	MinAge     float64 `json:"min_age,omitempty"`
	MaxAge     float64 `json:"max_age,omitempty"`
	MaxIncome  float64 `json:"max_income,omitempty"`
	SourceURL  string  `json:"source_url,omitempty"`
}

type CreateSchemeResponse struct {
	Id uuid.UUID `json:"id"`
}

type SchemeResponse struct {
	Id         uuid.UUID `json:"id"`
	SchemeName string    `json:"scheme_name"`
	State      string    `json:"state,omitempty"`
	Category   string    `json:"category,omitempty"`
	SourceURL  string    `json:"source_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// PublishEmbedSchemeMessage is the payload of the embed-scheme topic.
type PublishEmbedSchemeMessage struct {
	SchemeId uuid.UUID `json:"scheme_id"`
}
