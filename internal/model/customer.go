package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer is an independent reference entity. TotalDue is a running
// balance maintained by payment/order recording, not by this aggregate.
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	Email     *string
	Phone     *string
	Address   *string
	TotalDue  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt time.Time
}
