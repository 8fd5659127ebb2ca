package models

import "time"

// Order lifecycle states.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"

	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
	PaymentStatusFailed = "failed"
)

// Payment methods accepted by the order endpoint.
const (
	PaymentMethodCard     = "card"
	PaymentMethodTransfer = "transfer"
	PaymentMethodCOD      = "cod"
)

// IsAcceptedPaymentMethod reports whether m is one of the enumerated payment
// methods the order service accepts.
func IsAcceptedPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCard, PaymentMethodTransfer, PaymentMethodCOD:
		return true
	}
	return false
}

// Customer holds the contact details collected at checkout. All fields are
// required.
type Customer struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Phone   string `json:"phone" bson:"phone"`
	Address string `json:"address" bson:"address"`
}

// OrderItem is one purchased line. Subtotal is always recomputed from
// price*qty at submission time, never trusted from elsewhere.
type OrderItem struct {
	ProductID string `json:"productId" bson:"product_id"`
	Name      string `json:"name" bson:"name"`
	Price     int64  `json:"price" bson:"price"`
	Qty       int    `json:"qty" bson:"qty"`
	Subtotal  int64  `json:"subtotal" bson:"subtotal"`
}

// OrderRequest is the body of POST /api/orders.
type OrderRequest struct {
	Customer      Customer    `json:"customer"`
	Items         []OrderItem `json:"items"`
	PaymentMethod string      `json:"paymentMethod"`
}

// OrderConfirmation is the payload returned to the customer after a
// successful submission.
type OrderConfirmation struct {
	OrderNumber string `json:"orderNumber"`
	TotalAmount int64  `json:"totalAmount"`
}

// Order is the persisted record of a placed order.
type Order struct {
	ID             string      `json:"_id,omitempty" bson:"_id,omitempty"`
	OrderNumber    string      `json:"orderNumber" bson:"order_number"`
	Customer       Customer    `json:"customer" bson:"customer"`
	Items          []OrderItem `json:"items" bson:"items"`
	TotalAmount    int64       `json:"totalAmount" bson:"total_amount"`
	Status         string      `json:"status" bson:"status"`
	PaymentMethod  string      `json:"paymentMethod" bson:"payment_method"`
	PaymentStatus  string      `json:"paymentStatus" bson:"payment_status"`
	TransactionRef string      `json:"transactionRef,omitempty" bson:"transaction_ref,omitempty"`
	CreatedAt      time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at" bson:"updated_at"`
}
