package dto

import "github.com/shopspring/decimal"

type DashboardMetrics struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	OrderCount     int64           `json:"orderCount"`
	ProductCount   int64           `json:"productCount"`
	CustomerCount  int64           `json:"customerCount"`
	LowStockCount  int64           `json:"lowStockCount"`
	PendingOrders  int64           `json:"pendingOrders"`
	RevenueToday   decimal.Decimal `json:"revenueToday"`
	OrdersToday    int64           `json:"ordersToday"`
}

type SalesByDay struct {
	Day     string          `json:"day"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int64           `json:"orders"`
}

type TopProduct struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	UnitsSold int64           `json:"unitsSold"`
	Revenue   decimal.Decimal `json:"revenue"`
}
