package service

import (
	"context"

	"biztrack/internal/dto"
	"biztrack/internal/repository"
)

type DashboardService interface {
	Metrics(ctx context.Context) (*dto.DashboardMetrics, error)
	SalesAnalytics(ctx context.Context, days int) ([]dto.SalesByDay, error)
	TopProducts(ctx context.Context, limit int) ([]dto.TopProduct, error)
}

type dashboardService struct {
	repo repository.DashboardRepository
}

func NewDashboardService(repo repository.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

func (s *dashboardService) Metrics(ctx context.Context) (*dto.DashboardMetrics, error) {
	return s.repo.Metrics(ctx)
}

func (s *dashboardService) SalesAnalytics(ctx context.Context, days int) ([]dto.SalesByDay, error) {
	if days < 1 || days > 365 {
		days = 30
	}
	return s.repo.SalesByDay(ctx, days)
}

func (s *dashboardService) TopProducts(ctx context.Context, limit int) ([]dto.TopProduct, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return s.repo.TopProducts(ctx, limit)
}
