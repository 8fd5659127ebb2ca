package models

// CartLine is one product+quantity entry in the cart. Name and price are a
// snapshot frozen when the product was first added; they are never re-fetched,
// so the total a customer reviewed is the total that gets submitted.
type CartLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Qty       int    `json:"qty"`
}

// Subtotal is the line amount at the frozen price.
func (l CartLine) Subtotal() int64 {
	return l.Price * int64(l.Qty)
}
