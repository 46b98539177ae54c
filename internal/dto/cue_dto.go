package dto

import (
	"time"

	"github.com/google/uuid"

	"ai-salescoach-be/pkg/trigger"
)

// CuePayload is the cue as delivered to the overlay (websocket) and returned
// by the history endpoint.
type CuePayload struct {
	Id        uuid.UUID   `json:"id"`
	CallId    string      `json:"call_id"`
	Text      string      `json:"text"`
	Triggers  trigger.Set `json:"triggers"`
	RagUsed   bool        `json:"rag_used"`
	Source    string      `json:"source"`
	CreatedAt time.Time   `json:"created_at"`
}
