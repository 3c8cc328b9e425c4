package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/orderly-eats/gateway/internal/profile"
	"github.com/orderly-eats/gateway/internal/upstream"
)

// Session ordering errors.
var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrNoRestaurant = errors.New("no restaurant selected")
)

// profileUpdateDelay is how long after a placed order the profile change
// signal is re-broadcast, nudging consumers that attached late.
const profileUpdateDelay = time.Second

// MenuOrderClient is the slice of the upstream API the order session needs.
type MenuOrderClient interface {
	Menu(ctx context.Context, vendorID int, city string) ([]upstream.Dish, error)
	PlaceOrder(ctx context.Context, order upstream.Order) (*upstream.OrderReceipt, error)
}

// OrderSession is the single in-memory cart/order state machine. The gateway
// serves one anonymous profile, so there is exactly one session; a mutex
// keeps it consistent under concurrent handlers.
type OrderSession struct {
	client MenuOrderClient
	store  *profile.Store

	mu              sync.Mutex
	vendor          *upstream.Restaurant
	menu            []upstream.Dish
	showMenu        bool
	cart            []upstream.LineItem
	recommendations []upstream.Restaurant
	city            string
}

// NewOrderSession creates a new OrderSession instance.
func NewOrderSession(client MenuOrderClient, store *profile.Store) *OrderSession {
	return &OrderSession{client: client, store: store}
}

// SessionView is a consistent snapshot of the session state.
type SessionView struct {
	Vendor          *upstream.Restaurant  `json:"vendor,omitempty"`
	ShowMenu        bool                  `json:"show_menu"`
	Menu            []upstream.Dish       `json:"menu"`
	Cart            []upstream.LineItem   `json:"cart"`
	TotalPrice      int                   `json:"total_price"`
	Recommendations []upstream.Restaurant `json:"recommendations"`
	City            string                `json:"city"`
}

// View returns a snapshot of the current session.
func (s *OrderSession) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *OrderSession) viewLocked() SessionView {
	view := SessionView{
		Vendor:          s.vendor,
		ShowMenu:        s.showMenu,
		Menu:            append([]upstream.Dish{}, s.menu...),
		Cart:            append([]upstream.LineItem{}, s.cart...),
		TotalPrice:      totalPrice(s.cart),
		Recommendations: append([]upstream.Restaurant{}, s.recommendations...),
		City:            s.city,
	}
	return view
}

// SetRecommendations records the latest recommendation list and its city for
// the session's browsing state and the location view.
func (s *OrderSession) SetRecommendations(recs []upstream.Restaurant, city string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recommendations = append([]upstream.Restaurant{}, recs...)
	s.city = city
}

// SelectRestaurant opens a restaurant's menu. The menu view opens even when
// the menu cannot be loaded; the cart carries over from any previous view.
func (s *OrderSession) SelectRestaurant(ctx context.Context, vendor upstream.Restaurant) SessionView {
	s.mu.Lock()
	city := s.city
	s.vendor = &vendor
	s.showMenu = true
	s.menu = nil
	s.mu.Unlock()

	menu, err := s.client.Menu(ctx, vendor.VendorID, city)
	if err != nil {
		log.Printf("[session] error loading menu for vendor %d: %v", vendor.VendorID, err)
		menu = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.vendor != nil && s.vendor.VendorID == vendor.VendorID {
		s.menu = menu
	}
	return s.viewLocked()
}

// Back returns to the browsing list. The cart is retained, just hidden.
func (s *OrderSession) Back() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showMenu = false
	return s.viewLocked()
}

// AddToCart adds one unit of a dish: an existing line gains quantity, a new
// dish starts at 1.
func (s *OrderSession) AddToCart(dish upstream.Dish) SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].DishID == dish.DishID {
			s.cart[i].Quantity++
			return s.viewLocked()
		}
	}
	s.cart = append(s.cart, upstream.LineItem{Dish: dish, Quantity: 1})
	return s.viewLocked()
}

// RemoveFromCart deletes a dish's line entirely, whatever its quantity.
func (s *OrderSession) RemoveFromCart(dishID int) SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.cart[:0]
	for _, item := range s.cart {
		if item.DishID != dishID {
			kept = append(kept, item)
		}
	}
	s.cart = kept
	return s.viewLocked()
}

// TotalPrice sums price times quantity over the cart.
func (s *OrderSession) TotalPrice() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalPrice(s.cart)
}

func totalPrice(cart []upstream.LineItem) int {
	total := 0
	for _, item := range cart {
		total += item.Price * item.Quantity
	}
	return total
}

// PlaceOrder submits the cart as an order. On success the cart is cleared,
// the profile counters are updated against a fresh read, and the profile
// change signal is re-broadcast after a fixed delay. On failure the cart is
// left untouched.
func (s *OrderSession) PlaceOrder(ctx context.Context) (*upstream.OrderReceipt, error) {
	s.mu.Lock()
	if len(s.cart) == 0 {
		s.mu.Unlock()
		return nil, ErrEmptyCart
	}
	if s.vendor == nil {
		s.mu.Unlock()
		return nil, ErrNoRestaurant
	}

	order := upstream.Order{
		VendorID:   s.vendor.VendorID,
		VendorName: s.vendor.Name,
		Items:      append([]upstream.LineItem{}, s.cart...),
		TotalPrice: totalPrice(s.cart),
	}
	s.mu.Unlock()

	receipt, err := s.client.PlaceOrder(ctx, order)
	if err != nil {
		return nil, err
	}
	if !receipt.Success {
		return receipt, nil
	}

	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()

	if _, err := s.store.RecordOrder(ctx, order.TotalPrice); err != nil {
		log.Printf("[session] error updating profile counters: %v", err)
	}
	s.store.NotifyAfter(profileUpdateDelay)

	return receipt, nil
}
