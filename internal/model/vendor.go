package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Vendor is the procurement counterpart of Customer.
type Vendor struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name             string    `gorm:"not null"`
	Email            *string
	Phone            *string
	Address          *string
	TotalDue         decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	PerformanceScore int             `gorm:"not null;default:100"`
	CreatedAt        time.Time

	PurchaseOrders []PurchaseOrder `gorm:"foreignKey:VendorID"`
}
