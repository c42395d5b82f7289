package service

import (
	"context"
	"errors"

	"biztrack/internal/dto"
	"biztrack/internal/model"
	"biztrack/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentService interface {
	Create(ctx context.Context, req dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	List(ctx context.Context) ([]dto.PaymentResponse, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]dto.PaymentResponse, error)
}

type paymentService struct {
	repo         repository.PaymentRepository
	customerRepo repository.CustomerRepository
	orderRepo    repository.SalesOrderRepository
}

func NewPaymentService(
	repo repository.PaymentRepository,
	customerRepo repository.CustomerRepository,
	orderRepo repository.SalesOrderRepository,
) PaymentService {
	return &paymentService{repo: repo, customerRepo: customerRepo, orderRepo: orderRepo}
}

// Create records the payment, reduces the customer's outstanding balance,
// and settles the linked order — all in one transaction.
func (s *paymentService) Create(ctx context.Context, req dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	var customerID, orderID *uuid.UUID
	if req.CustomerID != nil {
		cid, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			return nil, NewValidationError("customerId", "must be a valid UUID")
		}
		if _, err := s.customerRepo.FindByID(ctx, cid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewValidationError("customerId", "customer does not exist")
			}
			return nil, err
		}
		customerID = &cid
	}

	var order *model.SalesOrder
	if req.SalesOrderID != nil {
		oid, err := uuid.Parse(*req.SalesOrderID)
		if err != nil {
			return nil, NewValidationError("salesOrderId", "must be a valid UUID")
		}
		o, err := s.orderRepo.FindByID(ctx, oid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewValidationError("salesOrderId", "sales order does not exist")
			}
			return nil, err
		}
		order = o
		orderID = &oid
	}

	payment := &model.Payment{
		CustomerID:   customerID,
		SalesOrderID: orderID,
		Amount:       req.Amount,
		Method:       req.Method,
		Reference:    req.Reference,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, payment); err != nil {
			return err
		}
		if customerID != nil {
			if err := s.customerRepo.AdjustTotalDueTx(tx, *customerID, req.Amount.Neg()); err != nil {
				return err
			}
		}
		if order != nil {
			status := "partial"
			if req.Amount.GreaterThanOrEqual(order.Total) {
				status = "paid"
			}
			if err := s.orderRepo.UpdatePaymentStatusTx(tx, order.ID, status); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := paymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) List(ctx context.Context) ([]dto.PaymentResponse, error) {
	payments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, paymentToResponse(&payments[i]))
	}
	return out, nil
}

func (s *paymentService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]dto.PaymentResponse, error) {
	payments, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, paymentToResponse(&payments[i]))
	}
	return out, nil
}

func paymentToResponse(p *model.Payment) dto.PaymentResponse {
	var customerID, orderID *string
	if p.CustomerID != nil {
		s := p.CustomerID.String()
		customerID = &s
	}
	if p.SalesOrderID != nil {
		s := p.SalesOrderID.String()
		orderID = &s
	}
	return dto.PaymentResponse{
		ID:           p.ID.String(),
		CustomerID:   customerID,
		SalesOrderID: orderID,
		Amount:       p.Amount,
		Method:       p.Method,
		Reference:    p.Reference,
		CreatedAt:    p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
