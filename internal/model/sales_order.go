package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesOrder is a customer-facing transaction that decrements inventory.
// Invariant: Total = Subtotal - Discount + Tax, and it equals the sum of
// its item totals minus discount plus tax.
// Status: "pending" | "completed" | "cancelled"
// PaymentStatus: "paid" | "unpaid" | "partial"
type SalesOrder struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderNumber   string     `gorm:"uniqueIndex;not null"`
	CustomerID    *uuid.UUID `gorm:"type:uuid;index"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Discount      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Tax           decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status        string          `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentStatus string          `gorm:"type:varchar(20);not null;default:'unpaid'"`
	CreatedAt     time.Time

	Items    []SalesOrderItem `gorm:"foreignKey:SalesOrderID"`
	Customer *Customer        `gorm:"foreignKey:CustomerID"`
	User     *User            `gorm:"foreignKey:UserID"`
}

// SalesOrderItem snapshots the unit price at sale time. Immutable once created.
type SalesOrderItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SalesOrderID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity     int       `gorm:"not null"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total        decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
