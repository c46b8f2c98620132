package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// TranscriptEntry is one rendered turn of a conversation.
type TranscriptEntry struct {
	Role      string    `json:"role"` // "user" | "assistant"
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// TranscriptRepository keeps the per-session evaluation transcript in
// memory, expiring on the same schedule as sessions.
type TranscriptRepository struct {
	cache *cache.Cache
}

func NewTranscriptRepository() *TranscriptRepository {
	return &TranscriptRepository{
		cache: cache.New(1*time.Hour, 10*time.Minute),
	}
}

func (r *TranscriptRepository) Append(sessionID string, entries ...TranscriptEntry) {
	existing, _ := r.Get(sessionID)
	r.cache.Set(sessionID, append(existing, entries...), cache.DefaultExpiration)
}

func (r *TranscriptRepository) Get(sessionID string) ([]TranscriptEntry, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.([]TranscriptEntry), true
	}
	return nil, false
}

func (r *TranscriptRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
