package entity

import (
	"time"

	"github.com/google/uuid"
)

type TranscriptEntry struct {
	Id         uuid.UUID
	CallId     string
	OwnerId    uuid.UUID
	Role       string
	Text       string
	ReceivedAt time.Time
	CreatedAt  time.Time
}
