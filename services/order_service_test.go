package services

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/odualeSamsonSolomon/JoTech/errors"
	"github.com/odualeSamsonSolomon/JoTech/models"
)

// fakeProductRepo tracks stock in memory.
type fakeProductRepo struct {
	stock      map[string]int
	increments []string
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]models.Product, error) { return nil, nil }
func (f *fakeProductRepo) FindByID(ctx context.Context, id string) (*models.Product, error) {
	return nil, apperrors.ErrNotFound
}
func (f *fakeProductRepo) Create(ctx context.Context, product *models.Product) error { return nil }

func (f *fakeProductRepo) DecrementStock(ctx context.Context, id string, qty int) error {
	if f.stock[id] < qty {
		return apperrors.ErrInsufficientStock
	}
	f.stock[id] -= qty
	return nil
}

func (f *fakeProductRepo) IncrementStock(ctx context.Context, id string, qty int) error {
	f.stock[id] += qty
	f.increments = append(f.increments, id)
	return nil
}

type fakeOrderRepo struct {
	created []*models.Order
	fail    error
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *models.Order) error {
	if f.fail != nil {
		return f.fail
	}
	f.created = append(f.created, order)
	return nil
}

func (f *fakeOrderRepo) FindByOrderNumber(ctx context.Context, n string) (*models.Order, error) {
	for _, order := range f.created {
		if order.OrderNumber == n {
			return order, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

type fakeProducer struct {
	keys     []string
	payloads [][]byte
}

func (f *fakeProducer) Publish(ctx context.Context, key string, value []byte) error {
	f.keys = append(f.keys, key)
	f.payloads = append(f.payloads, append([]byte(nil), value...))
	return nil
}

func validRequest() *models.OrderRequest {
	return &models.OrderRequest{
		Customer: models.Customer{
			Name:    "Ada Obi",
			Email:   "ada@example.com",
			Phone:   "+2348000000000",
			Address: "12 Broad Street, Lagos",
		},
		Items: []models.OrderItem{
			{ProductID: "a", Name: "Product A", Price: 1000, Qty: 2},
			{ProductID: "b", Name: "Product B", Price: 500, Qty: 1},
		},
		PaymentMethod: models.PaymentMethodCard,
	}
}

func TestPlaceOrderHappyPath(t *testing.T) {
	products := &fakeProductRepo{stock: map[string]int{"a": 5, "b": 5}}
	orders := &fakeOrderRepo{}
	producer := &fakeProducer{}
	svc := NewOrderPlacementService(products, orders, producer)

	order, err := svc.PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
	assert.Equal(t, int64(2500), order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusUnpaid, order.PaymentStatus)
	require.Len(t, order.Items, 2)
	assert.Equal(t, int64(2000), order.Items[0].Subtotal)
	assert.Equal(t, int64(500), order.Items[1].Subtotal)

	// Stock was reserved and the order persisted.
	assert.Equal(t, 3, products.stock["a"])
	assert.Equal(t, 4, products.stock["b"])
	require.Len(t, orders.created, 1)

	// And the event went out, keyed by order number.
	require.Len(t, producer.keys, 1)
	assert.Equal(t, order.OrderNumber, producer.keys[0])
	var event OrderCreatedEvent
	require.NoError(t, json.Unmarshal(producer.payloads[0], &event))
	assert.Equal(t, "order.created", event.Event)
	assert.Equal(t, int64(2500), event.TotalAmount)
}

func TestPlaceOrderIgnoresSubmittedSubtotal(t *testing.T) {
	products := &fakeProductRepo{stock: map[string]int{"a": 5}}
	orders := &fakeOrderRepo{}
	svc := NewOrderPlacementService(products, orders, nil)

	req := &models.OrderRequest{
		Customer:      validRequest().Customer,
		PaymentMethod: models.PaymentMethodCOD,
		Items: []models.OrderItem{
			// Lying subtotal must be recomputed from price*qty.
			{ProductID: "a", Name: "Product A", Price: 1000, Qty: 2, Subtotal: 1},
		},
	}

	order, err := svc.PlaceOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), order.Items[0].Subtotal)
	assert.Equal(t, int64(2000), order.TotalAmount)
}

func TestPlaceOrderEmptyItems(t *testing.T) {
	svc := NewOrderPlacementService(&fakeProductRepo{stock: map[string]int{}}, &fakeOrderRepo{}, nil)

	req := validRequest()
	req.Items = nil
	_, err := svc.PlaceOrder(context.Background(), req)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.CodeOf(err))
}

func TestPlaceOrderInvalidCustomer(t *testing.T) {
	svc := NewOrderPlacementService(&fakeProductRepo{stock: map[string]int{"a": 5}}, &fakeOrderRepo{}, nil)

	req := validRequest()
	req.Customer.Email = "  "
	_, err := svc.PlaceOrder(context.Background(), req)

	assert.ErrorIs(t, err, apperrors.ErrInvalidContact)
}

func TestPlaceOrderUnknownPaymentMethod(t *testing.T) {
	svc := NewOrderPlacementService(&fakeProductRepo{stock: map[string]int{"a": 5}}, &fakeOrderRepo{}, nil)

	req := validRequest()
	req.PaymentMethod = "cowries"
	_, err := svc.PlaceOrder(context.Background(), req)

	assert.ErrorIs(t, err, apperrors.ErrInvalidPayment)
}

func TestPlaceOrderInsufficientStockRollsBack(t *testing.T) {
	products := &fakeProductRepo{stock: map[string]int{"a": 5, "b": 0}}
	orders := &fakeOrderRepo{}
	svc := NewOrderPlacementService(products, orders, nil)

	_, err := svc.PlaceOrder(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Product B")

	// The reservation on "a" was released, nothing was persisted.
	assert.Equal(t, 5, products.stock["a"])
	assert.Equal(t, []string{"a"}, products.increments)
	assert.Empty(t, orders.created)
}

func TestPlaceOrderPersistFailureRollsBack(t *testing.T) {
	products := &fakeProductRepo{stock: map[string]int{"a": 5, "b": 5}}
	orders := &fakeOrderRepo{fail: assert.AnError}
	svc := NewOrderPlacementService(products, orders, nil)

	_, err := svc.PlaceOrder(context.Background(), validRequest())

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperrors.CodeOf(err))
	assert.Equal(t, 5, products.stock["a"])
	assert.Equal(t, 5, products.stock["b"])
}

func TestPlaceOrderWithoutProducerSkipsAnnounce(t *testing.T) {
	products := &fakeProductRepo{stock: map[string]int{"a": 5, "b": 5}}
	orders := &fakeOrderRepo{}
	svc := NewOrderPlacementService(products, orders, nil)

	_, err := svc.PlaceOrder(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestFindOrderReturnsPlacedOrder(t *testing.T) {
	products := &fakeProductRepo{stock: map[string]int{"a": 5, "b": 5}}
	orders := &fakeOrderRepo{}
	svc := NewOrderPlacementService(products, orders, nil)

	placed, err := svc.PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)

	found, err := svc.FindOrder(context.Background(), placed.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, placed.OrderNumber, found.OrderNumber)
	assert.Equal(t, placed.TotalAmount, found.TotalAmount)
}

func TestFindOrderUnknownNumber(t *testing.T) {
	svc := NewOrderPlacementService(&fakeProductRepo{stock: map[string]int{}}, &fakeOrderRepo{}, nil)

	_, err := svc.FindOrder(context.Background(), "ORD-MISSING")

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperrors.CodeOf(err))
}

func TestFindOrderBlankNumber(t *testing.T) {
	svc := NewOrderPlacementService(&fakeProductRepo{stock: map[string]int{}}, &fakeOrderRepo{}, nil)

	_, err := svc.FindOrder(context.Background(), "   ")

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperrors.CodeOf(err))
}
