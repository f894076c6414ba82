package cartsvc

import (
	"github.com/kopkit/storefront/internal/domain"
	"github.com/kopkit/storefront/internal/infra/logging"
)

// CartService holds the session's shopping cart: line items unique by
// product id. The cart is deliberately session-only and never touches
// durable storage; it resets when the session ends. Totals are derived on
// every read, never stored.
type CartService struct {
	Log logging.Logger

	lines []domain.CartLine
}

// NewCartService creates an empty cart.
func NewCartService() *CartService {
	return &CartService{
		Log: logging.GetLogger("svc.cartsvc.cart_service"),
	}
}

// AddToCart inserts a line for the product with quantity 1, or increments
// the existing line's quantity by 1 when the product is already in the cart.
func (s *CartService) AddToCart(product domain.Product) {
	for i := range s.lines {
		if s.lines[i].ID == product.ID {
			s.lines[i].Quantity++

			return
		}
	}

	s.lines = append(s.lines, domain.CartLine{Product: product, Quantity: 1})
}

// RemoveFromCart deletes the line with the given product id. Absent ids are
// a no-op.
func (s *CartService) RemoveFromCart(id int) {
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)

			return
		}
	}
}

// UpdateQuantity sets the quantity of an existing line. A quantity at or
// below zero removes the line. Absent ids are a no-op.
func (s *CartService) UpdateQuantity(id, quantity int) {
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity = quantity

			if quantity <= 0 {
				s.RemoveFromCart(id)
			}

			return
		}
	}
}

// ClearCart empties the cart.
func (s *CartService) ClearCart() {
	s.lines = nil
}

// Lines returns a copy of the cart's line items.
func (s *CartService) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)

	return out
}

// TotalItems is the sum of line quantities.
func (s *CartService) TotalItems() int {
	var total int

	for _, line := range s.lines {
		total += line.Quantity
	}

	return total
}

// TotalPrice is the sum of price times quantity over all lines.
func (s *CartService) TotalPrice() float64 {
	var total float64

	for _, line := range s.lines {
		total += line.Subtotal()
	}

	return total
}
