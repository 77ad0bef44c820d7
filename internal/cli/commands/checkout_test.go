package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/maison-edition/edition/internal/models"
)

// mockOrders simulates the API client for the checkout command
type mockOrders struct {
	received *models.CheckoutRequest
}

func (m *mockOrders) Checkout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResponse, error) {
	m.received = &req
	return &models.CheckoutResponse{CheckoutURL: "https://checkout.stripe.test/pay/cs_123"}, nil
}

type fakeAuthState struct {
	authenticated bool
}

func (f *fakeAuthState) IsAuthenticated() bool { return f.authenticated }

func TestCheckout_RequiresLogin(t *testing.T) {
	err := runCheckout(models.CheckoutRequest{Type: models.OrderEbook},
		WithCheckoutClient(&mockOrders{}),
		WithCheckoutSession(&fakeAuthState{authenticated: false}),
		WithCheckoutOutput(&bytes.Buffer{}),
	)
	if err == nil {
		t.Fatal("expected an error when not signed in")
	}
	if !strings.Contains(err.Error(), "signed-in account") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCheckout_EbookPrintsProcessorURL(t *testing.T) {
	orders := &mockOrders{}
	var output bytes.Buffer
	bookID := int64(2)

	err := runCheckout(models.CheckoutRequest{Type: models.OrderEbook, BookID: &bookID},
		WithCheckoutClient(orders),
		WithCheckoutSession(&fakeAuthState{authenticated: true}),
		WithCheckoutOutput(&output),
	)
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	if orders.received == nil || orders.received.Type != models.OrderEbook {
		t.Fatalf("expected an EBOOK checkout request, got %+v", orders.received)
	}
	if !strings.Contains(output.String(), "https://checkout.stripe.test/pay/cs_123") {
		t.Errorf("expected processor URL in output, got: %s", output.String())
	}
}

func TestCheckout_EbookRequiresBook(t *testing.T) {
	err := runCheckout(models.CheckoutRequest{Type: models.OrderEbook},
		WithCheckoutClient(&mockOrders{}),
		WithCheckoutSession(&fakeAuthState{authenticated: true}),
		WithCheckoutOutput(&bytes.Buffer{}),
	)
	if err == nil {
		t.Fatal("expected an error for a missing book id")
	}
	if !strings.Contains(err.Error(), "--book is required") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCheckout_PaperRequiresAddress(t *testing.T) {
	bookID := int64(1)

	err := runCheckout(models.CheckoutRequest{Type: models.OrderPaper, BookID: &bookID},
		WithCheckoutClient(&mockOrders{}),
		WithCheckoutSession(&fakeAuthState{authenticated: true}),
		WithCheckoutOutput(&bytes.Buffer{}),
	)
	if err == nil {
		t.Fatal("expected an error for a missing shipping address")
	}
	if !strings.Contains(err.Error(), "--address is required") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCheckout_SubscriptionNeedsNoBook(t *testing.T) {
	orders := &mockOrders{}

	err := runCheckout(models.CheckoutRequest{Type: models.OrderMonthlySubscription},
		WithCheckoutClient(orders),
		WithCheckoutSession(&fakeAuthState{authenticated: true}),
		WithCheckoutOutput(&bytes.Buffer{}),
	)
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if orders.received == nil || orders.received.BookID != nil {
		t.Errorf("expected a subscription request without a book, got %+v", orders.received)
	}
}

func TestCheckout_UnknownType(t *testing.T) {
	err := runCheckout(models.CheckoutRequest{Type: "GIFT_CARD"},
		WithCheckoutClient(&mockOrders{}),
		WithCheckoutSession(&fakeAuthState{authenticated: true}),
		WithCheckoutOutput(&bytes.Buffer{}),
	)
	if err == nil {
		t.Fatal("expected an error for an unknown order type")
	}
}
