package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment records an amount against an optional customer/order pair.
// Immutable once created.
// Method: "cash" | "card" | "transfer"
type Payment struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID   *uuid.UUID `gorm:"type:uuid;index"`
	SalesOrderID *uuid.UUID `gorm:"type:uuid;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Method       string          `gorm:"type:varchar(20);not null"`
	Reference    *string
	CreatedAt    time.Time

	Customer   *Customer   `gorm:"foreignKey:CustomerID"`
	SalesOrder *SalesOrder `gorm:"foreignKey:SalesOrderID"`
}
