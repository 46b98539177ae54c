package dto

import "github.com/google/uuid"

type RegisterCallRequest struct {
	CallId     string     `json:"call_id" validate:"required"`
	PlaybookId *uuid.UUID `json:"playbook_id"`
}

type RegisterCallResponse struct {
	CallId string `json:"call_id"`
}

// SelectPlaybookRequest switches the active playbook mid-call. A null
// playbook_id reverts the call to the default persona.
type SelectPlaybookRequest struct {
	PlaybookId *uuid.UUID `json:"playbook_id"`
}
