package entity

import (
	"time"

	"github.com/google/uuid"

	"ai-salescoach-be/pkg/trigger"
)

type CoachingCue struct {
	Id        uuid.UUID
	CallId    string
	OwnerId   uuid.UUID
	Text      string
	Triggers  trigger.Set
	RagUsed   bool
	Source    string // "llm" | "fallback"
	CreatedAt time.Time
}
