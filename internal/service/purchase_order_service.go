package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"biztrack/internal/dto"
	"biztrack/internal/model"
	"biztrack/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PurchaseOrderService interface {
	Create(ctx context.Context, userID uuid.UUID, req dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PurchaseOrderResponse, error)
	List(ctx context.Context, filter dto.OrderFilter) ([]dto.PurchaseOrderResponse, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.PurchaseOrderResponse, error)
}

type purchaseOrderService struct {
	repo        repository.PurchaseOrderRepository
	productRepo repository.ProductRepository
	vendorRepo  repository.VendorRepository
	events      EventPublisher
}

func NewPurchaseOrderService(
	repo repository.PurchaseOrderRepository,
	productRepo repository.ProductRepository,
	vendorRepo repository.VendorRepository,
	events EventPublisher,
) PurchaseOrderService {
	return &purchaseOrderService{
		repo:        repo,
		productRepo: productRepo,
		vendorRepo:  vendorRepo,
		events:      events,
	}
}

// validTransitions is the purchase order state machine. "received" and
// "cancelled" are terminal. No transition ever mutates product stock.
var validTransitions = map[string][]string{
	"pending":   {"confirmed", "cancelled"},
	"confirmed": {"received", "cancelled"},
}

func canTransition(from, to string) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Create inserts the header and items atomically. Product stock is NOT
// touched here — procurement paperwork precedes physical receipt.
func (s *purchaseOrderService) Create(ctx context.Context, userID uuid.UUID, req dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	// Same arithmetic pre-flight as the sales path, with cost in place of
	// price and no discount term.
	lineSum := decimal.Zero
	for i, item := range req.Items {
		expected := item.Cost.Mul(decimal.NewFromInt(int64(item.Quantity)))
		if !item.Total.Equal(expected) {
			return nil, NewValidationError(fmt.Sprintf("items[%d].total", i),
				"line total does not equal cost * quantity")
		}
		lineSum = lineSum.Add(item.Total)
	}
	if !req.Order.Subtotal.Equal(lineSum) {
		return nil, NewValidationError("order.subtotal", "subtotal does not equal the sum of line totals")
	}
	if !req.Order.Total.Equal(req.Order.Subtotal.Add(req.Order.Tax)) {
		return nil, NewValidationError("order.total", "total does not equal subtotal + tax")
	}

	vendorID, err := uuid.Parse(req.Order.VendorID)
	if err != nil {
		return nil, NewValidationError("order.vendorId", "must be a valid UUID")
	}
	if _, err := s.vendorRepo.FindByID(ctx, vendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewValidationError("order.vendorId", "vendor does not exist")
		}
		return nil, err
	}

	var expectedDate *time.Time
	if req.Order.ExpectedDate != nil {
		d, err := time.Parse("2006-01-02", *req.Order.ExpectedDate)
		if err != nil {
			return nil, NewValidationError("order.expectedDate", "must be YYYY-MM-DD")
		}
		expectedDate = &d
	}

	order := model.PurchaseOrder{
		PONumber:     nextOrderNumber("PO"),
		VendorID:     vendorID,
		UserID:       userID,
		Subtotal:     req.Order.Subtotal,
		Tax:          req.Order.Tax,
		Total:        req.Order.Total,
		Status:       "pending",
		ExpectedDate: expectedDate,
	}

	names := make([]string, 0, len(req.Items))
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		names = names[:0]
		order.Items = order.Items[:0]

		for _, item := range req.Items {
			pid, _ := uuid.Parse(item.ProductID)
			p, err := s.productRepo.FindByIDTx(tx, pid)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrProductNotFound
				}
				return err
			}
			names = append(names, p.Name)
			order.Items = append(order.Items, model.PurchaseOrderItem{
				ProductID: pid,
				Quantity:  item.Quantity,
				Cost:      item.Cost,
				Total:     item.Total,
			})
		}

		if err := s.repo.Create(ctx, tx, &order); err != nil {
			return err
		}
		// Amount owed to the vendor accrues when the order is placed.
		return s.vendorRepo.AdjustTotalDueTx(tx, vendorID, order.Total)
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := purchaseOrderToResponse(&order)
	for i, n := range names {
		resp.Items[i].Product = n
	}
	if s.events != nil {
		s.events.Publish("purchase_order_update", resp)
	}
	return resp, nil
}

func (s *purchaseOrderService) Get(ctx context.Context, id uuid.UUID) (*dto.PurchaseOrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return purchaseOrderToResponse(order), nil
}

func (s *purchaseOrderService) List(ctx context.Context, filter dto.OrderFilter) ([]dto.PurchaseOrderResponse, int64, error) {
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
	out := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *purchaseOrderToResponse(&orders[i]))
	}
	return out, total, nil
}

func (s *purchaseOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.PurchaseOrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !canTransition(order.Status, status) {
		return nil, ErrInvalidTransition
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	order.Status = status

	resp := purchaseOrderToResponse(order)
	if s.events != nil {
		s.events.Publish("purchase_order_update", resp)
	}
	return resp, nil
}

func purchaseOrderToResponse(o *model.PurchaseOrder) *dto.PurchaseOrderResponse {
	items := make([]dto.PurchaseOrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		items = append(items, dto.PurchaseOrderItemResponse{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Product:   name,
			Quantity:  item.Quantity,
			Cost:      item.Cost,
			Total:     item.Total,
		})
	}
	var expected *string
	if o.ExpectedDate != nil {
		d := o.ExpectedDate.Format("2006-01-02")
		expected = &d
	}
	return &dto.PurchaseOrderResponse{
		ID:           o.ID.String(),
		PONumber:     o.PONumber,
		VendorID:     o.VendorID.String(),
		UserID:       o.UserID.String(),
		Subtotal:     o.Subtotal,
		Tax:          o.Tax,
		Total:        o.Total,
		Status:       o.Status,
		ExpectedDate: expected,
		Items:        items,
		CreatedAt:    o.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
