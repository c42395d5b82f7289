package tests

import (
	"context"
	"sync"

	"biztrack/internal/dto"
	"biztrack/internal/model"
	"biztrack/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Product stub ──────────────────────────────────────────────────────────────

// stubProductRepo is an in-memory ProductRepository. Tx methods accept a nil
// *gorm.DB because services run fn(nil) when no real database is wired.
type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) FindByBarcode(_ context.Context, barcode string) (*model.Product, error) {
	for _, p := range r.products {
		if p.Barcode != nil && *p.Barcode == barcode && p.Active {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) List(_ context.Context, _ dto.ProductFilter) ([]model.Product, int64, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.Active {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) ListLowStock(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.Active && p.Quantity <= p.LowStockThreshold {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) SetQuantity(_ context.Context, id uuid.UUID, quantity int) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *stubProductRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Active = false
	return nil
}

func (r *stubProductRepo) Reactivate(_ context.Context, id uuid.UUID) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Active = true
	return nil
}

func (r *stubProductRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProductRepo) UpdateQuantityTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Quantity += delta
	return nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

func seedProduct(r *stubProductRepo, name string, barcode string, quantity, threshold int) *model.Product {
	var bc *string
	if barcode != "" {
		bc = &barcode
	}
	p := &model.Product{
		ID:                uuid.New(),
		Name:              name,
		Barcode:           bc,
		Price:             decimal.NewFromInt(100),
		Cost:              decimal.NewFromInt(60),
		Quantity:          quantity,
		LowStockThreshold: threshold,
		Active:            true,
	}
	r.products[p.ID] = p
	return p
}

// ── Sales order stub ──────────────────────────────────────────────────────────

type stubSalesOrderRepo struct {
	orders map[uuid.UUID]*model.SalesOrder
}

func newStubSalesOrderRepo() *stubSalesOrderRepo {
	return &stubSalesOrderRepo{orders: make(map[uuid.UUID]*model.SalesOrder)}
}

func (r *stubSalesOrderRepo) Create(_ context.Context, _ *gorm.DB, o *model.SalesOrder) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	for i := range o.Items {
		if o.Items[i].ID == uuid.Nil {
			o.Items[i].ID = uuid.New()
		}
		o.Items[i].SalesOrderID = o.ID
	}
	r.orders[o.ID] = o
	return nil
}

func (r *stubSalesOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.SalesOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *stubSalesOrderRepo) List(_ context.Context, _ dto.OrderFilter) ([]model.SalesOrder, int64, error) {
	out := make([]model.SalesOrder, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *stubSalesOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	o, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Status = status
	return nil
}

func (r *stubSalesOrderRepo) UpdatePaymentStatus(_ context.Context, id uuid.UUID, ps string) error {
	o, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.PaymentStatus = ps
	return nil
}

func (r *stubSalesOrderRepo) UpdatePaymentStatusTx(_ *gorm.DB, id uuid.UUID, ps string) error {
	o, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.PaymentStatus = ps
	return nil
}

func (r *stubSalesOrderRepo) DB() *gorm.DB { return nil }

var _ repository.SalesOrderRepository = (*stubSalesOrderRepo)(nil)

// ── Purchase order stub ───────────────────────────────────────────────────────

type stubPurchaseOrderRepo struct {
	orders map[uuid.UUID]*model.PurchaseOrder
}

func newStubPurchaseOrderRepo() *stubPurchaseOrderRepo {
	return &stubPurchaseOrderRepo{orders: make(map[uuid.UUID]*model.PurchaseOrder)}
}

func (r *stubPurchaseOrderRepo) Create(_ context.Context, _ *gorm.DB, o *model.PurchaseOrder) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	r.orders[o.ID] = o
	return nil
}

func (r *stubPurchaseOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.PurchaseOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *stubPurchaseOrderRepo) List(_ context.Context, _ dto.OrderFilter) ([]model.PurchaseOrder, int64, error) {
	out := make([]model.PurchaseOrder, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *stubPurchaseOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	o, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Status = status
	return nil
}

func (r *stubPurchaseOrderRepo) DB() *gorm.DB { return nil }

var _ repository.PurchaseOrderRepository = (*stubPurchaseOrderRepo)(nil)

// ── Customer / vendor stubs ───────────────────────────────────────────────────

type stubCustomerRepo struct {
	customers map[uuid.UUID]*model.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[uuid.UUID]*model.Customer)}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCustomerRepo) List(_ context.Context) ([]model.Customer, error) {
	out := make([]model.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *model.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *stubCustomerRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.customers)), nil
}

func (r *stubCustomerRepo) AdjustTotalDueTx(_ *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	c, ok := r.customers[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.TotalDue = c.TotalDue.Add(delta)
	return nil
}

var _ repository.CustomerRepository = (*stubCustomerRepo)(nil)

func newCustomer(r *stubCustomerRepo, name string) *model.Customer {
	c := &model.Customer{ID: uuid.New(), Name: name}
	r.customers[c.ID] = c
	return c
}

type stubPaymentRepo struct {
	payments []*model.Payment
}

func (r *stubPaymentRepo) Create(_ context.Context, _ *gorm.DB, p *model.Payment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.payments = append(r.payments, p)
	return nil
}

func (r *stubPaymentRepo) List(_ context.Context) ([]model.Payment, error) {
	out := make([]model.Payment, 0, len(r.payments))
	for _, p := range r.payments {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPaymentRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range r.payments {
		if p.CustomerID != nil && *p.CustomerID == customerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPaymentRepo) DB() *gorm.DB { return nil }

var _ repository.PaymentRepository = (*stubPaymentRepo)(nil)

type stubVendorRepo struct {
	vendors map[uuid.UUID]*model.Vendor
}

func newStubVendorRepo() *stubVendorRepo {
	return &stubVendorRepo{vendors: make(map[uuid.UUID]*model.Vendor)}
}

func (r *stubVendorRepo) Create(_ context.Context, v *model.Vendor) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.vendors[v.ID] = v
	return nil
}

func (r *stubVendorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Vendor, error) {
	v, ok := r.vendors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVendorRepo) List(_ context.Context) ([]model.Vendor, error) {
	out := make([]model.Vendor, 0, len(r.vendors))
	for _, v := range r.vendors {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVendorRepo) Update(_ context.Context, v *model.Vendor) error {
	r.vendors[v.ID] = v
	return nil
}

func (r *stubVendorRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.vendors, id)
	return nil
}

func (r *stubVendorRepo) AdjustTotalDueTx(_ *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	v, ok := r.vendors[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.TotalDue = v.TotalDue.Add(delta)
	return nil
}

func (r *stubVendorRepo) UpdatePerformanceScore(_ context.Context, id uuid.UUID, score int) error {
	v, ok := r.vendors[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.PerformanceScore = score
	return nil
}

var _ repository.VendorRepository = (*stubVendorRepo)(nil)

// ── User / notification / insight stubs ──────────────────────────────────────

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username && u.Active {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) UpdateTier(_ context.Context, id uuid.UUID, tier string) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.SubscriptionTier = tier
	return nil
}

func (r *stubUserRepo) ListByRoles(_ context.Context, roles []string) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		for _, role := range roles {
			if u.Role == role && u.Active {
				out = append(out, *u)
			}
		}
	}
	return out, nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

type stubNotificationRepo struct {
	notifications []*model.Notification
}

func (r *stubNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *stubNotificationRepo) ListForUser(_ context.Context, userID uuid.UUID, _ int) ([]model.Notification, error) {
	var out []model.Notification
	for _, n := range r.notifications {
		if n.UserID == nil || *n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id uuid.UUID) error {
	for _, n := range r.notifications {
		if n.ID == id {
			n.IsRead = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

var _ repository.NotificationRepository = (*stubNotificationRepo)(nil)

type stubInsightRepo struct {
	insights []*model.AiInsight
}

func (r *stubInsightRepo) Create(_ context.Context, i *model.AiInsight) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	r.insights = append(r.insights, i)
	return nil
}

func (r *stubInsightRepo) List(_ context.Context, limit int) ([]model.AiInsight, error) {
	out := make([]model.AiInsight, 0, len(r.insights))
	for i := len(r.insights) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *r.insights[i])
	}
	return out, nil
}

func (r *stubInsightRepo) MarkRead(_ context.Context, id uuid.UUID) error {
	for _, i := range r.insights {
		if i.ID == id {
			i.IsRead = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

var _ repository.InsightRepository = (*stubInsightRepo)(nil)

// ── Dashboard stub ────────────────────────────────────────────────────────────

type stubDashboardRepo struct{}

func (stubDashboardRepo) Metrics(_ context.Context) (*dto.DashboardMetrics, error) {
	return &dto.DashboardMetrics{
		TotalRevenue: decimal.NewFromInt(5000),
		OrderCount:   42,
	}, nil
}

func (stubDashboardRepo) SalesByDay(_ context.Context, _ int) ([]dto.SalesByDay, error) {
	return []dto.SalesByDay{{Day: "2026-08-30", Revenue: decimal.NewFromInt(500), Orders: 4}}, nil
}

func (stubDashboardRepo) TopProducts(_ context.Context, _ int) ([]dto.TopProduct, error) {
	return nil, nil
}

var _ repository.DashboardRepository = (stubDashboardRepo{})

// ── Event publisher stub ──────────────────────────────────────────────────────

type publishedEvent struct {
	Type string
	Data interface{}
}

type stubEvents struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (s *stubEvents) Publish(eventType string, data interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, publishedEvent{Type: eventType, Data: data})
}

func (s *stubEvents) byType(eventType string) []publishedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []publishedEvent
	for _, e := range s.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}
