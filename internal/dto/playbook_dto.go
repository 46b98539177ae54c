package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePlaybookRequest struct {
	Name         string `json:"name" validate:"required"`
	Scenario     string `json:"scenario"`
	SystemPrompt string `json:"system_prompt" validate:"required"`
	ExampleCues  string `json:"example_cues"`
}

type CreatePlaybookResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdatePlaybookRequest struct {
	Id           uuid.UUID
	Name         string `json:"name" validate:"required"`
	Scenario     string `json:"scenario"`
	SystemPrompt string `json:"system_prompt" validate:"required"`
	ExampleCues  string `json:"example_cues"`
}

type ShowPlaybookResponse struct {
	Id           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Scenario     string     `json:"scenario"`
	SystemPrompt string     `json:"system_prompt"`
	ExampleCues  string     `json:"example_cues"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}
