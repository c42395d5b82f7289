package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"biztrack/internal/dto"
	"biztrack/internal/model"
	"biztrack/internal/repository"
	"biztrack/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EventPublisher pushes realtime events to connected dashboard clients.
// Satisfied by ws.Hub; stubbed in unit tests.
type EventPublisher interface {
	Publish(eventType string, data interface{})
}

type SalesOrderService interface {
	Create(ctx context.Context, userID uuid.UUID, req dto.CreateSalesOrderRequest) (*dto.SalesOrderResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.SalesOrderResponse, error)
	List(ctx context.Context, filter dto.OrderFilter) ([]dto.SalesOrderResponse, int64, error)
}

type salesOrderService struct {
	repo         repository.SalesOrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	events       EventPublisher
	dispatcher   *worker.Dispatcher
}

func NewSalesOrderService(
	repo repository.SalesOrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	events EventPublisher,
	dispatcher *worker.Dispatcher,
) SalesOrderService {
	return &salesOrderService{
		repo:         repo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		events:       events,
		dispatcher:   dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// Order numbers are millisecond timestamps with a monotonic guard so two
// orders created in the same millisecond never collide.
var (
	orderNumMu   sync.Mutex
	lastOrderNum int64
)

func nextOrderNumber(prefix string) string {
	orderNumMu.Lock()
	defer orderNumMu.Unlock()
	n := time.Now().UnixMilli()
	if n <= lastOrderNum {
		n = lastOrderNum + 1
	}
	lastOrderNum = n
	return fmt.Sprintf("%s-%d", prefix, n)
}

// ── Create ────────────────────────────────────────────────────────────────────
// Single ACID transaction:
//   1. Verify the header total identity and each line total.
//   2. BEGIN TX: resolve every product (unknown product aborts the whole
//      order — zero rows written), insert header+items, decrement stock
//      per line. Stock is decremented unconditionally and may go negative;
//      the worker flags it rather than the sale being blocked.
//   3. COMMIT, then (async, best-effort) broadcast and enqueue low-stock alerts.
func (s *salesOrderService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateSalesOrderRequest) (*dto.SalesOrderResponse, error) {
	// Pre-flight arithmetic checks, before touching the DB.
	lineSum := decimal.Zero
	for i, item := range req.Items {
		expected := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		if !item.Total.Equal(expected) {
			return nil, NewValidationError(fmt.Sprintf("items[%d].total", i),
				"line total does not equal price * quantity")
		}
		lineSum = lineSum.Add(item.Total)
	}
	if !req.Order.Subtotal.Equal(lineSum) {
		return nil, NewValidationError("order.subtotal", "subtotal does not equal the sum of line totals")
	}
	expectedTotal := req.Order.Subtotal.Sub(req.Order.Discount).Add(req.Order.Tax)
	if !req.Order.Total.Equal(expectedTotal) {
		return nil, NewValidationError("order.total", "total does not equal subtotal - discount + tax")
	}

	var customerID *uuid.UUID
	if req.Order.CustomerID != nil {
		cid, err := uuid.Parse(*req.Order.CustomerID)
		if err != nil {
			return nil, NewValidationError("order.customerId", "must be a valid UUID")
		}
		customerID = &cid
	}

	status := req.Order.Status
	if status == "" {
		status = "pending"
	}
	paymentStatus := req.Order.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = "unpaid"
	}

	order := model.SalesOrder{
		OrderNumber:   nextOrderNumber("SO"),
		CustomerID:    customerID,
		UserID:        userID,
		Subtotal:      req.Order.Subtotal,
		Discount:      req.Order.Discount,
		Tax:           req.Order.Tax,
		Total:         req.Order.Total,
		Status:        status,
		PaymentStatus: paymentStatus,
	}

	type stockLevel struct {
		productID uuid.UUID
		name      string
		after     int
		threshold int
	}
	var levels []stockLevel

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		levels = levels[:0]
		order.Items = order.Items[:0]

		for _, item := range req.Items {
			pid, _ := uuid.Parse(item.ProductID)

			p, err := s.productRepo.FindByIDTx(tx, pid)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %s", ErrProductNotFound, item.ProductID)
				}
				return err
			}

			order.Items = append(order.Items, model.SalesOrderItem{
				ProductID: pid,
				Quantity:  item.Quantity,
				Price:     item.Price,
				Total:     item.Total,
			})

			if err := s.productRepo.UpdateQuantityTx(tx, pid, -item.Quantity); err != nil {
				return fmt.Errorf("decrementing stock of %s: %w", p.Name, err)
			}
			levels = append(levels, stockLevel{
				productID: pid,
				name:      p.Name,
				after:     p.Quantity - item.Quantity,
				threshold: p.LowStockThreshold,
			})
		}

		if err := s.repo.Create(ctx, tx, &order); err != nil {
			return err
		}

		// Credit sale: the outstanding balance grows until a payment lands.
		if customerID != nil && paymentStatus != "paid" {
			if err := s.customerRepo.AdjustTotalDueTx(tx, *customerID, order.Total); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := salesOrderToResponse(&order)
	for i, lv := range levels {
		resp.Items[i].Product = lv.name
	}

	// Post-commit side effects never fail the sale.
	if s.events != nil {
		s.events.Publish("order_update", resp)
	}
	if s.dispatcher != nil {
		for _, lv := range levels {
			if lv.after <= lv.threshold {
				_ = s.dispatcher.EnqueueAlert(ctx, map[string]interface{}{
					"product_id": lv.productID.String(),
				})
			}
		}
	}

	return resp, nil
}

func (s *salesOrderService) Get(ctx context.Context, id uuid.UUID) (*dto.SalesOrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return salesOrderToResponse(order), nil
}

func (s *salesOrderService) List(ctx context.Context, filter dto.OrderFilter) ([]dto.SalesOrderResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	orders, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.SalesOrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *salesOrderToResponse(&orders[i]))
	}
	return out, total, nil
}

func salesOrderToResponse(o *model.SalesOrder) *dto.SalesOrderResponse {
	items := make([]dto.SalesOrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		items = append(items, dto.SalesOrderItemResponse{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Product:   name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Total:     item.Total,
		})
	}
	var customerID *string
	if o.CustomerID != nil {
		cid := o.CustomerID.String()
		customerID = &cid
	}
	return &dto.SalesOrderResponse{
		ID:            o.ID.String(),
		OrderNumber:   o.OrderNumber,
		CustomerID:    customerID,
		UserID:        o.UserID.String(),
		Subtotal:      o.Subtotal,
		Discount:      o.Discount,
		Tax:           o.Tax,
		Total:         o.Total,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		Items:         items,
		CreatedAt:     o.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
