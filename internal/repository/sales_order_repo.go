package repository

import (
	"context"

	"biztrack/internal/dto"
	"biztrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SalesOrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, o *model.SalesOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.SalesOrder, error)
	List(ctx context.Context, filter dto.OrderFilter) ([]model.SalesOrder, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, paymentStatus string) error
	UpdatePaymentStatusTx(tx *gorm.DB, id uuid.UUID, paymentStatus string) error
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type salesOrderRepo struct{ db *gorm.DB }

func NewSalesOrderRepository(db *gorm.DB) SalesOrderRepository { return &salesOrderRepo{db: db} }

func (r *salesOrderRepo) DB() *gorm.DB { return r.db }

func (r *salesOrderRepo) Create(ctx context.Context, tx *gorm.DB, o *model.SalesOrder) error {
	return tx.WithContext(ctx).Create(o).Error
}

func (r *salesOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.SalesOrder, error) {
	var o model.SalesOrder
	err := r.db.WithContext(ctx).Preload("Items.Product").Preload("Customer").First(&o, id).Error
	return &o, err
}

func (r *salesOrderRepo) List(ctx context.Context, filter dto.OrderFilter) ([]model.SalesOrder, int64, error) {
	var orders []model.SalesOrder
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.SalesOrder{})

	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.From != "" {
		q = q.Where("DATE(created_at) >= ?", filter.From)
	}
	if filter.To != "" {
		q = q.Where("DATE(created_at) <= ?", filter.To)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Items.Product").Preload("Customer").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&orders).Error

	return orders, total, err
}

func (r *salesOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.SalesOrder{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *salesOrderRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, paymentStatus string) error {
	return r.db.WithContext(ctx).Model(&model.SalesOrder{}).Where("id = ?", id).
		Update("payment_status", paymentStatus).Error
}

func (r *salesOrderRepo) UpdatePaymentStatusTx(tx *gorm.DB, id uuid.UUID, paymentStatus string) error {
	return tx.Model(&model.SalesOrder{}).Where("id = ?", id).
		Update("payment_status", paymentStatus).Error
}
