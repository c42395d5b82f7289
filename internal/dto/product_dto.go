package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name              string          `json:"name"              validate:"required,min=2,max=120"`
	SKU               *string         `json:"sku"               validate:"omitempty,min=2,max=40"`
	Barcode           *string         `json:"barcode"           validate:"omitempty,min=6,max=18"`
	Price             decimal.Decimal `json:"price"             validate:"required,min=0"`
	Cost              decimal.Decimal `json:"cost"              validate:"min=0"`
	Quantity          int             `json:"quantity"          validate:"min=0"`
	LowStockThreshold *int            `json:"lowStockThreshold" validate:"omitempty,min=0"`
	Category          *string         `json:"category"`
	Description       *string         `json:"description"`
}

type UpdateProductRequest struct {
	Name              *string          `json:"name"              validate:"omitempty,min=2,max=120"`
	SKU               *string          `json:"sku"               validate:"omitempty,min=2,max=40"`
	Barcode           *string          `json:"barcode"           validate:"omitempty,min=6,max=18"`
	Price             *decimal.Decimal `json:"price"             validate:"omitempty,min=0"`
	Cost              *decimal.Decimal `json:"cost"              validate:"omitempty,min=0"`
	LowStockThreshold *int             `json:"lowStockThreshold" validate:"omitempty,min=0"`
	Category          *string          `json:"category"`
	Description       *string          `json:"description"`
}

// UpdateQuantityRequest sets the absolute on-hand quantity (manual adjustment).
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductFilter struct {
	Name     string `form:"name"`
	Category string `form:"category"`
	Active   string `form:"active"` // "false" = inactive, "all" = everything, default active
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	SKU               *string         `json:"sku"`
	Barcode           *string         `json:"barcode"`
	Price             decimal.Decimal `json:"price"`
	Cost              decimal.Decimal `json:"cost"`
	Quantity          int             `json:"quantity"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	Category          *string         `json:"category"`
	Description       *string         `json:"description"`
	Active            bool            `json:"isActive"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
