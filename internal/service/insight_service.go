package service

import (
	"context"
	"errors"

	"biztrack/internal/dto"
	"biztrack/internal/infra"
	"biztrack/internal/model"
	"biztrack/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type InsightService interface {
	List(ctx context.Context, limit int) ([]dto.InsightResponse, error)
	GenerateAndStore(ctx context.Context) (int, error)
	Generate(ctx context.Context) (*dto.GenerateInsightsResponse, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type insightService struct {
	repo          repository.InsightRepository
	dashboardRepo repository.DashboardRepository
	productRepo   repository.ProductRepository
	ai            *infra.AIClient
	breaker       *infra.CircuitBreaker
	events        EventPublisher
}

func NewInsightService(
	repo repository.InsightRepository,
	dashboardRepo repository.DashboardRepository,
	productRepo repository.ProductRepository,
	ai *infra.AIClient,
	breaker *infra.CircuitBreaker,
	events EventPublisher,
) InsightService {
	return &insightService{
		repo:          repo,
		dashboardRepo: dashboardRepo,
		productRepo:   productRepo,
		ai:            ai,
		breaker:       breaker,
		events:        events,
	}
}

func (s *insightService) List(ctx context.Context, limit int) ([]dto.InsightResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	insights, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InsightResponse, 0, len(insights))
	for i := range insights {
		out = append(out, insightToResponse(&insights[i]))
	}
	return out, nil
}

// GenerateAndStore builds a business snapshot, asks the AI upstream for
// recommendations through the circuit breaker, and persists whatever comes
// back. Returns the number of stored insights.
func (s *insightService) GenerateAndStore(ctx context.Context) (int, error) {
	metrics, err := s.dashboardRepo.Metrics(ctx)
	if err != nil {
		return 0, err
	}
	salesTrend, err := s.dashboardRepo.SalesByDay(ctx, 30)
	if err != nil {
		return 0, err
	}
	lowStock, err := s.productRepo.ListLowStock(ctx)
	if err != nil {
		return 0, err
	}

	type inventorySnapshot struct {
		Name      string `json:"name"`
		Quantity  int    `json:"quantity"`
		Threshold int    `json:"threshold"`
	}
	inventory := make([]inventorySnapshot, 0, len(lowStock))
	for _, p := range lowStock {
		inventory = append(inventory, inventorySnapshot{
			Name:      p.Name,
			Quantity:  p.Quantity,
			Threshold: p.LowStockThreshold,
		})
	}

	snapshot := infra.InsightSnapshot{
		Sales: map[string]interface{}{
			"metrics": metrics,
			"byDay":   salesTrend,
		},
		Inventory: inventory,
	}

	var insights []infra.BusinessInsight
	cbErr := s.breaker.Execute(func() error {
		var aiErr error
		insights, aiErr = s.ai.GenerateInsights(ctx, snapshot)
		return aiErr
	})
	if cbErr != nil {
		return 0, cbErr
	}

	stored := 0
	for _, ins := range insights {
		rec := &model.AiInsight{
			Type:        ins.Type,
			Title:       ins.Title,
			Description: ins.Description,
			Data:        ins.Data,
			Priority:    ins.Priority,
		}
		if rec.Type == "" {
			rec.Type = "recommendation"
		}
		if rec.Priority == "" {
			rec.Priority = "medium"
		}
		if err := s.repo.Create(ctx, rec); err != nil {
			log.Error().Err(err).Str("title", ins.Title).Msg("failed to persist insight")
			continue
		}
		stored++
	}

	if stored > 0 && s.events != nil {
		s.events.Publish("insights_ready", map[string]interface{}{"count": stored})
	}
	return stored, nil
}

// Generate is the synchronous variant behind POST /api/ai/generate-insights.
func (s *insightService) Generate(ctx context.Context) (*dto.GenerateInsightsResponse, error) {
	n, err := s.GenerateAndStore(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Listing with limit 0 would fall back to older rows; an empty run
		// reports exactly nothing.
		return &dto.GenerateInsightsResponse{Generated: 0, Insights: []dto.InsightResponse{}}, nil
	}
	latest, err := s.repo.List(ctx, n)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InsightResponse, 0, len(latest))
	for i := range latest {
		out = append(out, insightToResponse(&latest[i]))
	}
	return &dto.GenerateInsightsResponse{Generated: n, Insights: out}, nil
}

func (s *insightService) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func insightToResponse(i *model.AiInsight) dto.InsightResponse {
	return dto.InsightResponse{
		ID:          i.ID.String(),
		Type:        i.Type,
		Title:       i.Title,
		Description: i.Description,
		Data:        i.Data,
		Priority:    i.Priority,
		IsRead:      i.IsRead,
		CreatedAt:   i.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
