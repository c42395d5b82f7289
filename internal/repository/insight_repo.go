package repository

import (
	"context"

	"biztrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InsightRepository interface {
	Create(ctx context.Context, i *model.AiInsight) error
	List(ctx context.Context, limit int) ([]model.AiInsight, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type insightRepo struct{ db *gorm.DB }

func NewInsightRepository(db *gorm.DB) InsightRepository { return &insightRepo{db: db} }

func (r *insightRepo) Create(ctx context.Context, i *model.AiInsight) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *insightRepo) List(ctx context.Context, limit int) ([]model.AiInsight, error) {
	var insights []model.AiInsight
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&insights).Error
	return insights, err
}

func (r *insightRepo) MarkRead(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.AiInsight{}).Where("id = ?", id).
		Update("is_read", true).Error
}
