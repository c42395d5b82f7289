package model

import (
	"time"

	"github.com/google/uuid"
)

// User stores system accounts with role-based access and a subscription tier.
// Role: "admin" | "manager" | "sales" | "cashier"
// SubscriptionTier: "standard" | "premium" — feature gate, not a billing engine.
type User struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username         string    `gorm:"uniqueIndex;not null"`
	Email            string    `gorm:"uniqueIndex;not null"`
	PasswordHash     string    `gorm:"not null"`
	Role             string    `gorm:"type:varchar(20);not null;default:'sales'"`
	SubscriptionTier string    `gorm:"type:varchar(20);not null;default:'standard'"`
	Active           bool      `gorm:"not null;default:true"`
	CreatedAt        time.Time
}
