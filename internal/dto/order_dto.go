package dto

import "github.com/shopspring/decimal"

// ─── Sales orders ────────────────────────────────────────────────────────────

// SalesOrderHeaderRequest is the "order" half of POST /api/sales-orders.
// Totals are computed by the client; the processor re-verifies the
// identity total = subtotal - discount + tax before writing anything.
type SalesOrderHeaderRequest struct {
	CustomerID    *string         `json:"customerId"    validate:"omitempty,uuid"`
	Subtotal      decimal.Decimal `json:"subtotal"      validate:"required,min=0"`
	Discount      decimal.Decimal `json:"discount"      validate:"min=0"`
	Tax           decimal.Decimal `json:"tax"           validate:"min=0"`
	Total         decimal.Decimal `json:"total"         validate:"required,min=0"`
	Status        string          `json:"status"        validate:"omitempty,oneof=pending completed cancelled"`
	PaymentStatus string          `json:"paymentStatus" validate:"omitempty,oneof=paid unpaid partial"`
}

type SalesOrderItemRequest struct {
	ProductID string          `json:"productId" validate:"required,uuid"`
	Quantity  int             `json:"quantity"  validate:"required,min=1"`
	Price     decimal.Decimal `json:"price"     validate:"required,min=0"`
	Total     decimal.Decimal `json:"total"     validate:"required,min=0"`
}

type CreateSalesOrderRequest struct {
	Order SalesOrderHeaderRequest `json:"order" validate:"required"`
	Items []SalesOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type SalesOrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Product   string          `json:"product,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
}

type SalesOrderResponse struct {
	ID            string                   `json:"id"`
	OrderNumber   string                   `json:"orderNumber"`
	CustomerID    *string                  `json:"customerId"`
	UserID        string                   `json:"userId"`
	Subtotal      decimal.Decimal          `json:"subtotal"`
	Discount      decimal.Decimal          `json:"discount"`
	Tax           decimal.Decimal          `json:"tax"`
	Total         decimal.Decimal          `json:"total"`
	Status        string                   `json:"status"`
	PaymentStatus string                   `json:"paymentStatus"`
	Items         []SalesOrderItemResponse `json:"items"`
	CreatedAt     string                   `json:"createdAt"`
}

// ─── Purchase orders ─────────────────────────────────────────────────────────

type PurchaseOrderHeaderRequest struct {
	VendorID     string          `json:"vendorId"     validate:"required,uuid"`
	Subtotal     decimal.Decimal `json:"subtotal"     validate:"required,min=0"`
	Tax          decimal.Decimal `json:"tax"          validate:"min=0"`
	Total        decimal.Decimal `json:"total"        validate:"required,min=0"`
	ExpectedDate *string         `json:"expectedDate" validate:"omitempty,datetime=2006-01-02"`
}

type PurchaseOrderItemRequest struct {
	ProductID string          `json:"productId" validate:"required,uuid"`
	Quantity  int             `json:"quantity"  validate:"required,min=1"`
	Cost      decimal.Decimal `json:"cost"      validate:"required,min=0"`
	Total     decimal.Decimal `json:"total"     validate:"required,min=0"`
}

type CreatePurchaseOrderRequest struct {
	Order PurchaseOrderHeaderRequest `json:"order" validate:"required"`
	Items []PurchaseOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdatePurchaseOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed received cancelled"`
}

type PurchaseOrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Product   string          `json:"product,omitempty"`
	Quantity  int             `json:"quantity"`
	Cost      decimal.Decimal `json:"cost"`
	Total     decimal.Decimal `json:"total"`
}

type PurchaseOrderResponse struct {
	ID           string                      `json:"id"`
	PONumber     string                      `json:"poNumber"`
	VendorID     string                      `json:"vendorId"`
	UserID       string                      `json:"userId"`
	Subtotal     decimal.Decimal             `json:"subtotal"`
	Tax          decimal.Decimal             `json:"tax"`
	Total        decimal.Decimal             `json:"total"`
	Status       string                      `json:"status"`
	ExpectedDate *string                     `json:"expectedDate"`
	Items        []PurchaseOrderItemResponse `json:"items"`
	CreatedAt    string                      `json:"createdAt"`
}
