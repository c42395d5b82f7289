package tests

import (
	"context"
	"encoding/json"
	"testing"

	"biztrack/internal/model"
	"biztrack/internal/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAlertWorker() (*worker.AlertWorker, *stubProductRepo, *stubUserRepo, *stubNotificationRepo, *stubEvents) {
	productRepo := newStubProductRepo()
	userRepo := newStubUserRepo()
	notificationRepo := &stubNotificationRepo{}
	events := &stubEvents{}
	w := worker.NewAlertWorker(productRepo, userRepo, notificationRepo, events)
	return w, productRepo, userRepo, notificationRepo, events
}

func seedUser(r *stubUserRepo, username, role string) *model.User {
	u := &model.User{ID: uuid.New(), Username: username, Role: role, Active: true}
	r.users[u.ID] = u
	return u
}

func alertPayload(t *testing.T, productID uuid.UUID) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(worker.AlertJobPayload{ProductID: productID.String()})
	require.NoError(t, err)
	return raw
}

func TestAlertWorker_NotifiesAdminsAndManagers(t *testing.T) {
	w, productRepo, userRepo, notificationRepo, events := buildAlertWorker()
	p := seedProduct(productRepo, "Nearly Out", "", 2, 5)
	seedUser(userRepo, "boss", "admin")
	seedUser(userRepo, "floor-lead", "manager")
	seedUser(userRepo, "register-1", "sales") // must not be notified

	err := w.Process(context.Background(), alertPayload(t, p.ID))
	require.NoError(t, err)

	assert.Len(t, notificationRepo.notifications, 2)
	for _, n := range notificationRepo.notifications {
		assert.Equal(t, "warning", n.Type)
		assert.Contains(t, n.Message, "Nearly Out")
	}
	assert.Len(t, events.byType("low_stock_alert"), 1)
}

func TestAlertWorker_DropsAlertWhenStockRecovered(t *testing.T) {
	// A restock may land between enqueue and dequeue; the worker re-reads
	// the product and drops the stale alert.
	w, productRepo, userRepo, notificationRepo, events := buildAlertWorker()
	p := seedProduct(productRepo, "Restocked", "", 50, 5)
	seedUser(userRepo, "boss", "admin")

	err := w.Process(context.Background(), alertPayload(t, p.ID))
	require.NoError(t, err)
	assert.Empty(t, notificationRepo.notifications)
	assert.Empty(t, events.byType("low_stock_alert"))
}

func TestAlertWorker_UnknownProductErrors(t *testing.T) {
	w, _, _, _, _ := buildAlertWorker()
	err := w.Process(context.Background(), alertPayload(t, uuid.New()))
	assert.Error(t, err)
}
