package repository

import (
	"context"

	"biztrack/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VendorRepository interface {
	Create(ctx context.Context, v *model.Vendor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vendor, error)
	List(ctx context.Context) ([]model.Vendor, error)
	Update(ctx context.Context, v *model.Vendor) error
	Delete(ctx context.Context, id uuid.UUID) error

	AdjustTotalDueTx(tx *gorm.DB, id uuid.UUID, delta decimal.Decimal) error
	UpdatePerformanceScore(ctx context.Context, id uuid.UUID, score int) error
}

type vendorRepo struct{ db *gorm.DB }

func NewVendorRepository(db *gorm.DB) VendorRepository { return &vendorRepo{db: db} }

func (r *vendorRepo) Create(ctx context.Context, v *model.Vendor) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vendorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Vendor, error) {
	var v model.Vendor
	err := r.db.WithContext(ctx).First(&v, id).Error
	return &v, err
}

func (r *vendorRepo) List(ctx context.Context) ([]model.Vendor, error) {
	var vendors []model.Vendor
	err := r.db.WithContext(ctx).Order("name ASC").Find(&vendors).Error
	return vendors, err
}

func (r *vendorRepo) Update(ctx context.Context, v *model.Vendor) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *vendorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Vendor{}, id).Error
}

func (r *vendorRepo) AdjustTotalDueTx(tx *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	return tx.Model(&model.Vendor{}).Where("id = ?", id).
		Update("total_due", gorm.Expr("total_due + ?", delta)).Error
}

func (r *vendorRepo) UpdatePerformanceScore(ctx context.Context, id uuid.UUID, score int) error {
	return r.db.WithContext(ctx).Model(&model.Vendor{}).Where("id = ?", id).
		Update("performance_score", score).Error
}
