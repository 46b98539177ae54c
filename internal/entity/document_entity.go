package entity

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	Id        uuid.UUID
	OwnerId   uuid.UUID
	Name      string
	Content   string
	Status    string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
