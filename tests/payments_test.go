package tests

import (
	"context"
	"testing"

	"biztrack/internal/dto"
	"biztrack/internal/model"
	"biztrack/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPaymentSvc() (service.PaymentService, *stubCustomerRepo, *stubSalesOrderRepo) {
	customerRepo := newStubCustomerRepo()
	orderRepo := newStubSalesOrderRepo()
	paymentRepo := &stubPaymentRepo{}
	svc := service.NewPaymentService(paymentRepo, customerRepo, orderRepo)
	return svc, customerRepo, orderRepo
}

func TestCreatePayment_ReducesCustomerBalance(t *testing.T) {
	svc, customerRepo, _ := buildPaymentSvc()
	customer := newCustomer(customerRepo, "ACME Corp")
	customer.TotalDue = decimal.NewFromInt(500)

	cid := customer.ID.String()
	_, err := svc.Create(context.Background(), dto.CreatePaymentRequest{
		CustomerID: &cid,
		Amount:     decimal.NewFromInt(200),
		Method:     "cash",
	})
	require.NoError(t, err)
	assert.True(t, customer.TotalDue.Equal(decimal.NewFromInt(300)))
}

func TestCreatePayment_SettlesLinkedOrder(t *testing.T) {
	svc, _, orderRepo := buildPaymentSvc()
	order := &model.SalesOrder{
		ID:            uuid.New(),
		OrderNumber:   "SO-1",
		UserID:        uuid.New(),
		Total:         decimal.NewFromInt(300),
		PaymentStatus: "unpaid",
	}
	orderRepo.orders[order.ID] = order

	oid := order.ID.String()
	_, err := svc.Create(context.Background(), dto.CreatePaymentRequest{
		SalesOrderID: &oid,
		Amount:       decimal.NewFromInt(300),
		Method:       "card",
	})
	require.NoError(t, err)
	assert.Equal(t, "paid", order.PaymentStatus)
}

func TestCreatePayment_PartialAmountMarksPartial(t *testing.T) {
	svc, _, orderRepo := buildPaymentSvc()
	order := &model.SalesOrder{
		ID:            uuid.New(),
		OrderNumber:   "SO-2",
		UserID:        uuid.New(),
		Total:         decimal.NewFromInt(300),
		PaymentStatus: "unpaid",
	}
	orderRepo.orders[order.ID] = order

	oid := order.ID.String()
	_, err := svc.Create(context.Background(), dto.CreatePaymentRequest{
		SalesOrderID: &oid,
		Amount:       decimal.NewFromInt(100),
		Method:       "card",
	})
	require.NoError(t, err)
	assert.Equal(t, "partial", order.PaymentStatus)
}

func TestCreatePayment_UnknownCustomerRejected(t *testing.T) {
	svc, _, _ := buildPaymentSvc()
	cid := uuid.NewString()
	_, err := svc.Create(context.Background(), dto.CreatePaymentRequest{
		CustomerID: &cid,
		Amount:     decimal.NewFromInt(50),
		Method:     "cash",
	})
	var ve *service.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "customerId")
}
