package api

import (
	"context"

	"github.com/maison-edition/edition/internal/models"
)

// NewsletterService covers the endpoints under /newsletter.
type NewsletterService struct {
	client *Client
}

type newsletterRequest struct {
	Email string `json:"email"`
}

// Subscribe adds an email address to the newsletter.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) error {
	return s.client.post(ctx, "/newsletter/subscribe", nil, newsletterRequest{Email: email}, nil)
}

// Unsubscribe removes an email address from the newsletter.
func (s *NewsletterService) Unsubscribe(ctx context.Context, email string) error {
	return s.client.post(ctx, "/newsletter/unsubscribe", nil, newsletterRequest{Email: email}, nil)
}

// Subscribers returns all newsletter entries (admin).
func (s *NewsletterService) Subscribers(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	var subscribers []models.NewsletterSubscriber
	if err := s.client.get(ctx, "/newsletter/admin/abonnes", nil, &subscribers); err != nil {
		return nil, err
	}
	return subscribers, nil
}

// ActiveSubscribers returns only the active entries (admin).
func (s *NewsletterService) ActiveSubscribers(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	var subscribers []models.NewsletterSubscriber
	if err := s.client.get(ctx, "/newsletter/admin/abonnes/actifs", nil, &subscribers); err != nil {
		return nil, err
	}
	return subscribers, nil
}
