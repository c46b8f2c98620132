package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	Id       uuid.UUID `json:"id"`
	Greeting string    `json:"greeting"`
	State    string    `json:"state"`
}

type ChatRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Utterance string    `json:"utterance" validate:"required"`
}

type ChatResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	State     string    `json:"state"`
	Action    string    `json:"action,omitempty"` // "SEARCH" when the turn triggered retrieval
	Reply     string    `json:"reply"`
	CreatedAt time.Time `json:"created_at"`
}

type TranscriptEntryResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type TranscriptResponse struct {
	SessionId uuid.UUID                 `json:"session_id"`
	Entries   []TranscriptEntryResponse `json:"entries"`
}
