package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/maison-edition/edition/internal/models"
)

type checkoutClient interface {
	Checkout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResponse, error)
}

type sessionAuth interface {
	IsAuthenticated() bool
}

type checkoutOptions struct {
	orders  checkoutClient
	session sessionAuth
	out     io.Writer
}

// CheckoutOption overrides a checkout dependency, used by tests.
type CheckoutOption func(*checkoutOptions)

func WithCheckoutClient(orders checkoutClient) CheckoutOption {
	return func(o *checkoutOptions) { o.orders = orders }
}

func WithCheckoutSession(session sessionAuth) CheckoutOption {
	return func(o *checkoutOptions) { o.session = session }
}

func WithCheckoutOutput(w io.Writer) CheckoutOption {
	return func(o *checkoutOptions) { o.out = w }
}

var orderTypeLabels = []struct {
	Label string
	Type  string
}{
	{"Paper book (shipped)", models.OrderPaper},
	{"Ebook (instant download)", models.OrderEbook},
	{"Monthly subscription", models.OrderMonthlySubscription},
	{"Annual subscription", models.OrderAnnualSubscription},
}

// NewCheckoutCmd creates the checkout command
func NewCheckoutCmd() *cobra.Command {
	var orderType string
	var bookID int64
	var fullName, address, city, postalCode, country, phone string

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Start a payment session",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.CheckoutRequest{
				Type:       orderType,
				FullName:   fullName,
				Address:    address,
				City:       city,
				PostalCode: postalCode,
				Country:    country,
				Phone:      phone,
			}
			if bookID > 0 {
				req.BookID = &bookID
			}
			return runCheckout(req)
		},
	}

	cmd.Flags().StringVar(&orderType, "type", "", "Order type (PAPER, EBOOK, MONTHLY_SUBSCRIPTION, ANNUAL_SUBSCRIPTION; prompts if not provided)")
	cmd.Flags().Int64Var(&bookID, "book", 0, "Book id (required for PAPER and EBOOK)")
	cmd.Flags().StringVar(&fullName, "full-name", "", "Recipient full name (paper orders)")
	cmd.Flags().StringVar(&address, "address", "", "Shipping address (paper orders)")
	cmd.Flags().StringVar(&city, "city", "", "Shipping city (paper orders)")
	cmd.Flags().StringVar(&postalCode, "postal-code", "", "Shipping postal code (paper orders)")
	cmd.Flags().StringVar(&country, "country", "", "Shipping country (paper orders)")
	cmd.Flags().StringVar(&phone, "phone", "", "Contact phone (paper orders)")

	return cmd
}

func runCheckout(req models.CheckoutRequest, opts ...CheckoutOption) error {
	o := checkoutOptions{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	if o.orders == nil || o.session == nil {
		a, err := getApp()
		if err != nil {
			return err
		}
		if o.orders == nil {
			o.orders = a.Client.Orders
		}
		if o.session == nil {
			o.session = a.Store
		}
	}

	if !o.session.IsAuthenticated() {
		return fmt.Errorf("checkout requires a signed-in account. Run 'edition login' first")
	}

	if req.Type == "" {
		chosen, err := promptOrderType()
		if err != nil {
			return err
		}
		req.Type = chosen
	}

	switch req.Type {
	case models.OrderPaper, models.OrderEbook:
		if req.BookID == nil {
			return fmt.Errorf("--book is required for %s orders", req.Type)
		}
	case models.OrderMonthlySubscription, models.OrderAnnualSubscription:
	default:
		return fmt.Errorf("unknown order type %q", req.Type)
	}

	if req.Type == models.OrderPaper && req.Address == "" {
		return fmt.Errorf("--address is required for paper orders")
	}

	ctx, cancel := commandContext()
	defer cancel()

	resp, err := o.orders.Checkout(ctx, req)
	if err != nil {
		return fmt.Errorf("checkout failed: %w", err)
	}

	fmt.Fprintln(o.out, "✓ Payment session created. Open this URL to pay:")
	fmt.Fprintln(o.out, resp.CheckoutURL)

	return nil
}

func promptOrderType() (string, error) {
	labels := make([]string, len(orderTypeLabels))
	for i, t := range orderTypeLabels {
		labels[i] = t.Label
	}

	prompt := promptui.Select{
		Label: "Order type",
		Items: labels,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("order type selection cancelled: %w", err)
	}

	return orderTypeLabels[idx].Type, nil
}
