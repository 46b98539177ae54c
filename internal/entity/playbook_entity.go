package entity

import (
	"time"

	"github.com/google/uuid"
)

type Playbook struct {
	Id           uuid.UUID
	OwnerId      uuid.UUID
	Name         string
	Scenario     string
	SystemPrompt string
	ExampleCues  string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
