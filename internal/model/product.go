package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the catalog entity. Quantity is mutated only by order
// processing or a manual adjustment; removal is a soft delete (Active=false)
// so historical order items keep a valid reference.
type Product struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name              string    `gorm:"index;not null"`
	SKU               *string   `gorm:"column:sku;uniqueIndex"`
	Barcode           *string   `gorm:"uniqueIndex"`
	Price             decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Cost              decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Quantity          int             `gorm:"not null;default:0"`
	LowStockThreshold int             `gorm:"not null;default:10"`
	Category          *string
	Description       *string
	Active            bool `gorm:"not null;default:true"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
