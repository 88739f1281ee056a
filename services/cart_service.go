package services

import (
	"sync"

	"watch-shop/models"
)

// CartService keeps one in-memory cart per session. Carts live for the
// lifetime of the process only. A single mutex serializes every
// read-modify-write so each returned CartView is a snapshot of a fully
// applied operation sequence.
type CartService struct {
	mu    sync.Mutex
	carts map[string]*models.Cart
}

func NewCartService() *CartService {
	return &CartService{carts: map[string]*models.Cart{}}
}

func (s *CartService) cart(sessionID string) *models.Cart {
	if cart, ok := s.carts[sessionID]; ok {
		return cart
	}
	cart := models.NewCart()
	s.carts[sessionID] = cart
	return cart
}

func view(cart *models.Cart) models.CartView {
	return models.CartView{
		Lines:      cart.Lines(),
		TotalCount: cart.TotalCount(),
		TotalValue: cart.TotalValue(),
	}
}

func (s *CartService) GetCart(sessionID string) models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view(s.cart(sessionID))
}

func (s *CartService) AddToCart(sessionID string, product models.Product) models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(sessionID)
	cart.Add(product)
	return view(cart)
}

// RemoveFromCart deletes the line for id. Unknown ids are a no-op.
func (s *CartService) RemoveFromCart(sessionID string, id int) models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(sessionID)
	cart.Remove(id)
	return view(cart)
}

// IncrementQty bumps the quantity of an existing line. Unknown ids are a
// no-op.
func (s *CartService) IncrementQty(sessionID string, id int) models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(sessionID)
	cart.IncrementQty(id)
	return view(cart)
}

// DecrementQty lowers the quantity of an existing line, removing the line
// when it reaches zero. Unknown ids are a no-op.
func (s *CartService) DecrementQty(sessionID string, id int) models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(sessionID)
	cart.DecrementQty(id)
	return view(cart)
}
