package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/maison-edition/edition/internal/models"
)

// OrdersService covers checkout and order history under /commandes.
type OrdersService struct {
	client *Client
}

// ShippingCost is the quote returned for a paper order destination.
type ShippingCost struct {
	Cost     float64 `json:"cost"`
	Currency string  `json:"currency"`
}

// Checkout opens a payment session and returns the processor URL the
// caller must redirect to.
func (s *OrdersService) Checkout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResponse, error) {
	var resp models.CheckoutResponse
	if err := s.client.post(ctx, "/commandes/checkout", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// QuoteShipping returns the shipping cost for a paper order.
func (s *OrdersService) QuoteShipping(ctx context.Context, country string, bookID int64) (*ShippingCost, error) {
	q := url.Values{}
	q.Set("country", country)
	q.Set("bookId", strconv.FormatInt(bookID, 10))
	var cost ShippingCost
	if err := s.client.get(ctx, "/commandes/shipping-cost", q, &cost); err != nil {
		return nil, err
	}
	return &cost, nil
}

// BySession returns the order created by a completed payment session.
func (s *OrdersService) BySession(ctx context.Context, sessionID string) (*models.Order, error) {
	q := url.Values{}
	q.Set("sessionId", sessionID)
	var order models.Order
	if err := s.client.get(ctx, "/commandes/by-session", q, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Mine returns the authenticated user's order history.
func (s *OrdersService) Mine(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.client.get(ctx, "/commandes/mes-commandes", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Invoice downloads the PDF invoice of an order.
func (s *OrdersService) Invoice(ctx context.Context, orderID int64) ([]byte, error) {
	return s.client.download(ctx, fmt.Sprintf("/commandes/%d/facture", orderID), nil)
}

// RenewSubscription opens a payment session renewing an expired
// subscription order.
func (s *OrdersService) RenewSubscription(ctx context.Context, orderID int64) (*models.CheckoutResponse, error) {
	var resp models.CheckoutResponse
	if err := s.client.post(ctx, fmt.Sprintf("/commandes/renouveler/%d", orderID), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
