package repository

import (
	"context"

	"biztrack/internal/dto"
	"biztrack/internal/model"

	"gorm.io/gorm"
)

// DashboardRepository runs the aggregation queries behind the dashboard
// endpoints. These are read-only rollups, so raw SQL is used directly.
type DashboardRepository interface {
	Metrics(ctx context.Context) (*dto.DashboardMetrics, error)
	SalesByDay(ctx context.Context, days int) ([]dto.SalesByDay, error)
	TopProducts(ctx context.Context, limit int) ([]dto.TopProduct, error)
}

type dashboardRepo struct{ db *gorm.DB }

func NewDashboardRepository(db *gorm.DB) DashboardRepository { return &dashboardRepo{db: db} }

func (r *dashboardRepo) Metrics(ctx context.Context) (*dto.DashboardMetrics, error) {
	var m dto.DashboardMetrics
	db := r.db.WithContext(ctx)

	// Revenue counts completed orders only; pending ones are surfaced as
	// their own metric instead of inflating the totals.
	row := db.Raw(`
		SELECT
			COALESCE(SUM(total) FILTER (WHERE status = 'completed'), 0)    AS total_revenue,
			COUNT(*) FILTER (WHERE status = 'completed')                   AS order_count,
			COUNT(*) FILTER (WHERE status = 'pending')                     AS pending_orders,
			COALESCE(SUM(total) FILTER (WHERE status = 'completed' AND DATE(created_at) = CURRENT_DATE), 0) AS revenue_today,
			COUNT(*) FILTER (WHERE status = 'completed' AND DATE(created_at) = CURRENT_DATE) AS orders_today
		FROM sales_orders`).Row()
	if err := row.Scan(&m.TotalRevenue, &m.OrderCount, &m.PendingOrders, &m.RevenueToday, &m.OrdersToday); err != nil {
		return nil, err
	}

	if err := db.Model(&model.Product{}).Where("active = true").Count(&m.ProductCount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Product{}).
		Where("quantity <= low_stock_threshold AND active = true").
		Count(&m.LowStockCount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.Customer{}).Count(&m.CustomerCount).Error; err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *dashboardRepo) SalesByDay(ctx context.Context, days int) ([]dto.SalesByDay, error) {
	var out []dto.SalesByDay
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			TO_CHAR(DATE(created_at), 'YYYY-MM-DD') AS day,
			COALESCE(SUM(total), 0)                 AS revenue,
			COUNT(*)                                AS orders
		FROM sales_orders
		WHERE status = 'completed'
		  AND created_at >= CURRENT_DATE - (? * INTERVAL '1 day')
		GROUP BY DATE(created_at)
		ORDER BY day ASC`, days).Scan(&out).Error
	return out, err
}

func (r *dashboardRepo) TopProducts(ctx context.Context, limit int) ([]dto.TopProduct, error) {
	var out []dto.TopProduct
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id                      AS product_id,
			p.name                    AS name,
			SUM(i.quantity)           AS units_sold,
			COALESCE(SUM(i.total), 0) AS revenue
		FROM sales_order_items i
		JOIN products p      ON p.id = i.product_id
		JOIN sales_orders o  ON o.id = i.sales_order_id
		WHERE o.status = 'completed'
		GROUP BY p.id, p.name
		ORDER BY units_sold DESC
		LIMIT ?`, limit).Scan(&out).Error
	return out, err
}
