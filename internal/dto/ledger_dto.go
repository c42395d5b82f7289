package dto

import "github.com/shopspring/decimal"

// ─── Customers ───────────────────────────────────────────────────────────────

type CreateCustomerRequest struct {
	Name    string  `json:"name"    validate:"required,min=2,max=120"`
	Email   *string `json:"email"   validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// UpdateCustomerRequest is a partial update: only non-nil fields change.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"    validate:"omitempty,min=2,max=120"`
	Email   *string `json:"email"   validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

type CustomerResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     *string         `json:"email"`
	Phone     *string         `json:"phone"`
	Address   *string         `json:"address"`
	TotalDue  decimal.Decimal `json:"totalDue"`
	CreatedAt string          `json:"createdAt"`
}

// ─── Vendors ─────────────────────────────────────────────────────────────────

type CreateVendorRequest struct {
	Name    string  `json:"name"    validate:"required,min=2,max=120"`
	Email   *string `json:"email"   validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

type UpdateVendorRequest struct {
	Name    *string `json:"name"    validate:"omitempty,min=2,max=120"`
	Email   *string `json:"email"   validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

type VendorResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Email            *string         `json:"email"`
	Phone            *string         `json:"phone"`
	Address          *string         `json:"address"`
	TotalDue         decimal.Decimal `json:"totalDue"`
	PerformanceScore int             `json:"performanceScore"`
	CreatedAt        string          `json:"createdAt"`
}

// ─── Payments ────────────────────────────────────────────────────────────────

type CreatePaymentRequest struct {
	CustomerID   *string         `json:"customerId"   validate:"omitempty,uuid"`
	SalesOrderID *string         `json:"salesOrderId" validate:"omitempty,uuid"`
	Amount       decimal.Decimal `json:"amount"       validate:"required,gt=0"`
	Method       string          `json:"method"       validate:"required,oneof=cash card transfer"`
	Reference    *string         `json:"reference"`
}

type PaymentResponse struct {
	ID           string          `json:"id"`
	CustomerID   *string         `json:"customerId"`
	SalesOrderID *string         `json:"salesOrderId"`
	Amount       decimal.Decimal `json:"amount"`
	Method       string          `json:"method"`
	Reference    *string         `json:"reference"`
	CreatedAt    string          `json:"createdAt"`
}
