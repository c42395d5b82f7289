package service

import (
	"context"

	"biztrack/internal/dto"
	"biztrack/internal/model"
	"biztrack/internal/repository"

	"github.com/google/uuid"
)

type NotificationService interface {
	ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]dto.NotificationResponse, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]dto.NotificationResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}
	notifications, err := s.repo.ListForUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		out = append(out, notificationToResponse(&notifications[i]))
	}
	return out, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkRead(ctx, id)
}

func notificationToResponse(n *model.Notification) dto.NotificationResponse {
	var userID *string
	if n.UserID != nil {
		s := n.UserID.String()
		userID = &s
	}
	return dto.NotificationResponse{
		ID:        n.ID.String(),
		UserID:    userID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
