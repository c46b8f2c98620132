package store

// SchemeDocument is a retrieved government scheme record.
// Produced by the retrieval layer, read-only to the dialogue core.
type SchemeDocument struct {
	ID         string                 `json:"id"`
	SchemeName string                 `json:"scheme_name"`
	Content    string                 `json:"content"` // raw text with DESC:/BENEFITS:/ELIGIBILITY: markers
	Score      float32                `json:"score"`
	Metadata   map[string]interface{} `json:"metadata"`
}

// Session represents the active conversation state in memory.
// One instance per conversation; the calling layer serializes turns,
// so nothing here is locked.
type Session struct {
	ID    string `json:"id"`
	State string `json:"state"` // START | CONFIRM | COLLECT | APPLY | END

	// Scheme the user picked on the first turn. Set exactly once,
	// at the START -> CONFIRM transition.
	SelectedScheme string `json:"selected_scheme"`

	// Applicant slot-filling data. Non-empty only once the session
	// has reached APPLY.
	Profile map[string]string `json:"profile"`

	LastQuery string `json:"last_query"`
}

const (
	StateStart   = "START"
	StateConfirm = "CONFIRM"
	StateCollect = "COLLECT"
	StateApply   = "APPLY"
	StateEnd     = "END"
)
