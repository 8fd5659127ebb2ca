package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/odualeSamsonSolomon/JoTech/errors"
	"github.com/odualeSamsonSolomon/JoTech/kafka"
	"github.com/odualeSamsonSolomon/JoTech/models"
	"github.com/odualeSamsonSolomon/JoTech/repository"
)

// OrderPlacer is the order-side contract the HTTP layer depends on.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req *models.OrderRequest) (*models.Order, error)
	FindOrder(ctx context.Context, orderNumber string) (*models.Order, error)
}

// OrderCreatedEvent is the payload published after an order is persisted.
type OrderCreatedEvent struct {
	Event       string    `json:"event"`
	OrderNumber string    `json:"order_number"`
	TotalAmount int64     `json:"total_amount"`
	ItemCount   int       `json:"item_count"`
	Timestamp   time.Time `json:"timestamp"`
}

// OrderPlacementService validates an incoming order, reserves stock, persists
// the order and announces it. The kafka producer is optional and best-effort:
// a publish failure never fails the order.
type OrderPlacementService struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	producer kafka.ProducerAPI
}

func NewOrderPlacementService(
	products repository.ProductRepository,
	orders repository.OrderRepository,
	producer kafka.ProducerAPI,
) *OrderPlacementService {
	return &OrderPlacementService{
		products: products,
		orders:   orders,
		producer: producer,
	}
}

// PlaceOrder processes a single order submission end to end. Subtotals and
// the order total are recomputed server-side from each item's price and
// quantity; the submitted subtotal field is never trusted.
func (s *OrderPlacementService) PlaceOrder(ctx context.Context, req *models.OrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, apperrors.New(http.StatusBadRequest, "At least one item is required", nil)
	}
	if !validCustomer(req.Customer) {
		return nil, apperrors.ErrInvalidContact
	}
	if !models.IsAcceptedPaymentMethod(req.PaymentMethod) {
		return nil, apperrors.ErrInvalidPayment
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	var total int64
	for _, item := range req.Items {
		if item.Qty <= 0 {
			return nil, apperrors.New(http.StatusBadRequest, fmt.Sprintf("Invalid quantity for %s", item.Name), nil)
		}
		if item.Price < 0 {
			return nil, apperrors.New(http.StatusBadRequest, fmt.Sprintf("Invalid price for %s", item.Name), nil)
		}
		item.Subtotal = item.Price * int64(item.Qty)
		total += item.Subtotal
		items = append(items, item)
	}

	// Reserve stock item by item; undo what was applied if any line cannot
	// be satisfied.
	applied := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if err := s.products.DecrementStock(ctx, item.ProductID, item.Qty); err != nil {
			s.releaseStock(ctx, applied)
			if err == apperrors.ErrInsufficientStock {
				return nil, apperrors.New(http.StatusBadRequest,
					fmt.Sprintf("%s is no longer available in the requested quantity", item.Name),
					apperrors.ErrInsufficientStock)
			}
			zap.L().Error("orders: stock reservation failed",
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
			return nil, apperrors.New(http.StatusInternalServerError, "Failed to place order", err)
		}
		applied = append(applied, item)
	}

	order := &models.Order{
		ID:            uuid.NewString(),
		OrderNumber:   newOrderNumber(),
		Customer:      req.Customer,
		Items:         items,
		TotalAmount:   total,
		Status:        models.OrderStatusPending,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: models.PaymentStatusUnpaid,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.releaseStock(ctx, applied)
		zap.L().Error("orders: failed to persist order", zap.Error(err))
		return nil, apperrors.New(http.StatusInternalServerError, "Failed to place order", err)
	}

	s.announce(ctx, order)

	zap.L().Info("orders: order placed",
		zap.String("order_number", order.OrderNumber),
		zap.Int64("total_amount", order.TotalAmount),
		zap.Int("items", len(order.Items)),
	)
	return order, nil
}

// FindOrder returns the persisted order for a customer-facing order number.
func (s *OrderPlacementService) FindOrder(ctx context.Context, orderNumber string) (*models.Order, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, apperrors.New(http.StatusBadRequest, "Order number is required", nil)
	}

	order, err := s.orders.FindByOrderNumber(ctx, orderNumber)
	if err == apperrors.ErrNotFound {
		return nil, apperrors.New(http.StatusNotFound, "Order not found", apperrors.ErrNotFound)
	}
	if err != nil {
		zap.L().Error("orders: lookup failed", zap.String("order_number", orderNumber), zap.Error(err))
		return nil, apperrors.New(http.StatusInternalServerError, "Failed to load order", err)
	}
	return order, nil
}

func (s *OrderPlacementService) releaseStock(ctx context.Context, applied []models.OrderItem) {
	for _, item := range applied {
		if err := s.products.IncrementStock(ctx, item.ProductID, item.Qty); err != nil {
			zap.L().Error("orders: failed to release reserved stock",
				zap.String("product_id", item.ProductID),
				zap.Int("qty", item.Qty),
				zap.Error(err),
			)
		}
	}
}

func (s *OrderPlacementService) announce(ctx context.Context, order *models.Order) {
	if s.producer == nil {
		return
	}
	event := OrderCreatedEvent{
		Event:       "order.created",
		OrderNumber: order.OrderNumber,
		TotalAmount: order.TotalAmount,
		ItemCount:   len(order.Items),
		Timestamp:   time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		zap.L().Warn("orders: failed to marshal order event", zap.Error(err))
		return
	}
	// Best-effort; the producer logs its own failures.
	_ = s.producer.Publish(ctx, order.OrderNumber, payload)
}

func validCustomer(c models.Customer) bool {
	for _, field := range []string{c.Name, c.Email, c.Phone, c.Address} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}

func newOrderNumber() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD-" + raw[:10]
}
