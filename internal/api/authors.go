package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/maison-edition/edition/internal/models"
)

// AuthorsService covers the endpoints under /auteurs.
type AuthorsService struct {
	client *Client
}

// List returns all authors.
func (s *AuthorsService) List(ctx context.Context) ([]models.Author, error) {
	var authors []models.Author
	if err := s.client.get(ctx, "/auteurs", nil, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

// Get returns a single author by ID.
func (s *AuthorsService) Get(ctx context.Context, id int64) (*models.Author, error) {
	var author models.Author
	if err := s.client.get(ctx, fmt.Sprintf("/auteurs/%d", id), nil, &author); err != nil {
		return nil, err
	}
	return &author, nil
}

// WithBooks returns only the authors that have at least one book.
func (s *AuthorsService) WithBooks(ctx context.Context) ([]models.Author, error) {
	var authors []models.Author
	if err := s.client.get(ctx, "/auteurs/avec-livres", nil, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

// Search returns authors matching the query.
func (s *AuthorsService) Search(ctx context.Context, query string) ([]models.Author, error) {
	q := url.Values{}
	q.Set("q", query)
	var authors []models.Author
	if err := s.client.get(ctx, "/auteurs/recherche", q, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

// Create adds an author (admin).
func (s *AuthorsService) Create(ctx context.Context, author *models.Author) (*models.Author, error) {
	var created models.Author
	if err := s.client.post(ctx, "/auteurs", nil, author, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces an author (admin).
func (s *AuthorsService) Update(ctx context.Context, id int64, author *models.Author) (*models.Author, error) {
	var updated models.Author
	if err := s.client.put(ctx, fmt.Sprintf("/auteurs/%d", id), nil, author, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an author (admin).
func (s *AuthorsService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/auteurs/%d", id), nil)
}
