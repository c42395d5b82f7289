package repository

import (
	"context"

	"biztrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, p *model.Payment) error
	List(ctx context.Context) ([]model.Payment, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Payment, error)
	DB() *gorm.DB
}

type paymentRepo struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) PaymentRepository { return &paymentRepo{db: db} }

func (r *paymentRepo) DB() *gorm.DB { return r.db }

func (r *paymentRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Payment) error {
	return tx.WithContext(ctx).Create(p).Error
}

func (r *paymentRepo) List(ctx context.Context) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(200).Find(&payments).Error
	return payments, err
}

func (r *paymentRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).
		Order("created_at DESC").Find(&payments).Error
	return payments, err
}
