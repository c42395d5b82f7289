package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrder tracks incoming stock from a vendor. Creating one never
// mutates product quantity; receipt reconciliation is a separate manual step.
// Status: "pending" | "confirmed" | "received" | "cancelled"
type PurchaseOrder struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PONumber     string    `gorm:"column:po_number;uniqueIndex;not null"`
	VendorID     uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Tax          decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Total        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status       string          `gorm:"type:varchar(20);not null;default:'pending'"`
	ExpectedDate *time.Time
	CreatedAt    time.Time

	Items  []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID"`
	Vendor *Vendor             `gorm:"foreignKey:VendorID"`
	User   *User               `gorm:"foreignKey:UserID"`
}

// PurchaseOrderItem is the procurement line: unit cost instead of price.
type PurchaseOrderItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PurchaseOrderID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity        int       `gorm:"not null"`
	Cost            decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total           decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
