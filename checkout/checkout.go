// Package checkout turns the current cart plus customer-supplied contact and
// payment details into a single order submission, and reconciles the cart
// with the outcome.
package checkout

import (
	"context"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/odualeSamsonSolomon/JoTech/cart"
	apperrors "github.com/odualeSamsonSolomon/JoTech/errors"
	"github.com/odualeSamsonSolomon/JoTech/models"
)

// OrderService is the remote write endpoint an order is submitted to.
// A nil confirmation with an error means the order was not placed.
type OrderService interface {
	PlaceOrder(ctx context.Context, req models.OrderRequest) (*models.OrderConfirmation, error)
}

// Orchestrator submits orders for a single cart. It makes at most one
// submission at a time; concurrent calls fail fast with
// ErrSubmissionInFlight so rapid repeated clicks cannot create two orders
// from one cart.
type Orchestrator struct {
	cart     *cart.Store
	orders   OrderService
	inFlight atomic.Bool
}

func NewOrchestrator(cartStore *cart.Store, orders OrderService) *Orchestrator {
	return &Orchestrator{
		cart:   cartStore,
		orders: orders,
	}
}

// Submit validates the cart and contact fields, builds the order request with
// every subtotal recomputed from the frozen line prices, and submits it once.
// On success the cart is cleared and the confirmation returned; on any
// failure the cart is left untouched so the customer can edit and retry.
// There are no automatic retries.
func (o *Orchestrator) Submit(ctx context.Context, customer models.Customer, paymentMethod string) (*models.OrderConfirmation, error) {
	if !o.inFlight.CompareAndSwap(false, true) {
		return nil, apperrors.ErrSubmissionInFlight
	}
	defer o.inFlight.Store(false)

	lines := o.cart.Lines()
	if len(lines) == 0 {
		return nil, apperrors.ErrEmptyCart
	}
	if !validContact(customer) {
		return nil, apperrors.ErrInvalidContact
	}
	if !models.IsAcceptedPaymentMethod(paymentMethod) {
		return nil, apperrors.ErrInvalidPayment
	}

	req := models.OrderRequest{
		Customer:      customer,
		Items:         make([]models.OrderItem, 0, len(lines)),
		PaymentMethod: paymentMethod,
	}
	for _, line := range lines {
		req.Items = append(req.Items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Qty:       line.Qty,
			Subtotal:  line.Subtotal(),
		})
	}

	confirmation, err := o.orders.PlaceOrder(ctx, req)
	if err != nil {
		zap.L().Warn("checkout: order submission failed",
			zap.Int("lines", len(lines)),
			zap.Error(err),
		)
		return nil, err
	}

	o.cart.Clear(ctx)
	zap.L().Info("checkout: order placed",
		zap.String("order_number", confirmation.OrderNumber),
		zap.Int64("total_amount", confirmation.TotalAmount),
	)
	return confirmation, nil
}

func validContact(c models.Customer) bool {
	for _, field := range []string{c.Name, c.Email, c.Phone, c.Address} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}
