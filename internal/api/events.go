package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/maison-edition/edition/internal/models"
)

// EventsService covers the endpoints under /evenements.
type EventsService struct {
	client *Client
}

// List returns all active events.
func (s *EventsService) List(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := s.client.get(ctx, "/evenements", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Get returns a single event by ID.
func (s *EventsService) Get(ctx context.Context, id int64) (*models.Event, error) {
	var event models.Event
	if err := s.client.get(ctx, fmt.Sprintf("/evenements/%d", id), nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Upcoming returns the next events, soonest first.
func (s *EventsService) Upcoming(ctx context.Context, limit int) ([]models.Event, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var events []models.Event
	if err := s.client.get(ctx, "/evenements/a-venir", q, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Past returns one page of past events.
func (s *EventsService) Past(ctx context.Context, opts ListOptions) (*models.Page[models.Event], error) {
	var page models.Page[models.Event]
	if err := s.client.get(ctx, "/evenements/passes", opts.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ByType returns events of one type (SIGNING, FAIR, ...).
func (s *EventsService) ByType(ctx context.Context, eventType string) ([]models.Event, error) {
	var events []models.Event
	if err := s.client.get(ctx, "/evenements/type/"+eventType, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func eventRefsQuery(bookID, authorID *int64) url.Values {
	q := url.Values{}
	if bookID != nil {
		q.Set("livreId", strconv.FormatInt(*bookID, 10))
	}
	if authorID != nil {
		q.Set("auteurId", strconv.FormatInt(*authorID, 10))
	}
	return q
}

// Create adds an event, optionally linked to a book and an author (admin).
func (s *EventsService) Create(ctx context.Context, event *models.Event, bookID, authorID *int64) (*models.Event, error) {
	var created models.Event
	if err := s.client.post(ctx, "/evenements", eventRefsQuery(bookID, authorID), event, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces an event (admin).
func (s *EventsService) Update(ctx context.Context, id int64, event *models.Event, bookID, authorID *int64) (*models.Event, error) {
	var updated models.Event
	if err := s.client.put(ctx, fmt.Sprintf("/evenements/%d", id), eventRefsQuery(bookID, authorID), event, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an event (admin).
func (s *EventsService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/evenements/%d", id), nil)
}
