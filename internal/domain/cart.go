package domain

// CartLine is a cart entry: a product snapshot plus the ordered quantity.
// Lines are unique by product id; a quantity at or below zero collapses the
// line into a removal.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal is the line's contribution to the cart total.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}
