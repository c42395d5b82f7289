package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AiInsight is an advisory record produced by the insight generator.
// Type: "recommendation" | "alert" | "forecast"
// Priority: "low" | "medium" | "high"
type AiInsight struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Type        string    `gorm:"not null"`
	Title       string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	Data        json.RawMessage `gorm:"type:jsonb"`
	Priority    string          `gorm:"type:varchar(10);not null;default:'medium'"`
	IsRead      bool            `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

func (AiInsight) TableName() string { return "ai_insights" }
