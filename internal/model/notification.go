package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an informational record with a read flag. Delivery to
// connected clients goes through the websocket hub; the row is the only
// durable trace.
// Type: "info" | "warning" | "error" | "success"
type Notification struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Title     string     `gorm:"not null"`
	Message   string     `gorm:"not null"`
	Type      string     `gorm:"type:varchar(10);not null;default:'info'"`
	IsRead    bool       `gorm:"not null;default:false"`
	CreatedAt time.Time

	User *User `gorm:"foreignKey:UserID"`
}
