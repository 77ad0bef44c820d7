package api

import (
	"context"
	"fmt"

	"github.com/maison-edition/edition/internal/models"
)

// ContactsService covers the contact form endpoints under /contacts.
type ContactsService struct {
	client *Client
}

// Submit sends a contact form message.
func (s *ContactsService) Submit(ctx context.Context, req models.ContactRequest) error {
	return s.client.post(ctx, "/contacts", nil, req, nil)
}

// List returns every submitted message (admin).
func (s *ContactsService) List(ctx context.Context) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := s.client.get(ctx, "/contacts/admin", nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// UnreadCount returns the number of unread messages (admin).
func (s *ContactsService) UnreadCount(ctx context.Context) (int64, error) {
	var resp struct {
		Count int64 `json:"count"`
	}
	if err := s.client.get(ctx, "/contacts/admin/non-lus", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// MarkRead flags a message as read (admin).
func (s *ContactsService) MarkRead(ctx context.Context, id int64) error {
	return s.client.put(ctx, fmt.Sprintf("/contacts/admin/%d/lu", id), nil, nil, nil)
}

// ToggleHandled flips the handled flag of a message (admin).
func (s *ContactsService) ToggleHandled(ctx context.Context, id int64) error {
	return s.client.put(ctx, fmt.Sprintf("/contacts/admin/%d/traite", id), nil, nil, nil)
}

// Delete removes a message (admin).
func (s *ContactsService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/contacts/admin/%d", id), nil)
}
