package worker

// alert_worker.go
// Processes low-stock alert jobs from QueueAlerts: persists a notification
// for every admin/manager user and broadcasts the alert to connected clients.

import (
	"context"
	"encoding/json"
	"fmt"

	"biztrack/internal/model"
	"biztrack/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AlertJobPayload is the job envelope sent to QueueAlerts.
type AlertJobPayload struct {
	ProductID string `json:"product_id"`
}

// Broadcaster pushes an event to all connected websocket clients.
type Broadcaster interface {
	Publish(eventType string, data interface{})
}

type AlertWorker struct {
	productRepo      repository.ProductRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	events           Broadcaster
}

func NewAlertWorker(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	events Broadcaster,
) *AlertWorker {
	return &AlertWorker{
		productRepo:      productRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		events:           events,
	}
}

// Process re-reads the product before alerting: a restock may have landed
// between enqueue and dequeue, in which case the alert is dropped.
func (w *AlertWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload AlertJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("alert_worker: invalid payload: %w", err)
	}
	pid, err := uuid.Parse(payload.ProductID)
	if err != nil {
		return fmt.Errorf("alert_worker: invalid product_id %q", payload.ProductID)
	}

	p, err := w.productRepo.FindByID(ctx, pid)
	if err != nil {
		return fmt.Errorf("alert_worker: product lookup: %w", err)
	}
	if p.Quantity > p.LowStockThreshold {
		log.Debug().Str("product", p.Name).Msg("alert_worker: stock recovered, alert dropped")
		return nil
	}

	title := "Low stock alert"
	message := fmt.Sprintf("%s is down to %d units (threshold %d)", p.Name, p.Quantity, p.LowStockThreshold)

	recipients, err := w.userRepo.ListByRoles(ctx, []string{"admin", "manager"})
	if err != nil {
		return fmt.Errorf("alert_worker: listing recipients: %w", err)
	}
	for _, u := range recipients {
		uid := u.ID
		n := &model.Notification{
			UserID:  &uid,
			Title:   title,
			Message: message,
			Type:    "warning",
		}
		if err := w.notificationRepo.Create(ctx, n); err != nil {
			log.Error().Err(err).Str("user", u.Username).Msg("alert_worker: failed to persist notification")
		}
	}

	if w.events != nil {
		w.events.Publish("low_stock_alert", map[string]interface{}{
			"productId": p.ID.String(),
			"name":      p.Name,
			"quantity":  p.Quantity,
			"threshold": p.LowStockThreshold,
		})
	}

	log.Info().Str("product", p.Name).Int("quantity", p.Quantity).Msg("alert_worker: low stock alert sent")
	return nil
}
