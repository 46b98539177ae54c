package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Playbook struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name         string         `gorm:"type:varchar(255);not null"`
	Scenario     string         `gorm:"type:varchar(255)"`
	SystemPrompt string         `gorm:"type:text;not null"`
	ExampleCues  string         `gorm:"type:text"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Playbook) TableName() string {
	return "playbooks"
}
