package api

import (
	"context"
	"fmt"

	"github.com/maison-edition/edition/internal/models"
)

// CategoriesService covers the endpoints under /categories.
type CategoriesService struct {
	client *Client
}

// List returns the full category tree, flattened.
func (s *CategoriesService) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.client.get(ctx, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Roots returns only the top-level categories with their children.
func (s *CategoriesService) Roots(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.client.get(ctx, "/categories/racines", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Get returns a single category by ID.
func (s *CategoriesService) Get(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	if err := s.client.get(ctx, fmt.Sprintf("/categories/%d", id), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// BySlug returns a category by its URL slug.
func (s *CategoriesService) BySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	if err := s.client.get(ctx, "/categories/slug/"+slug, nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Create adds a category (admin).
func (s *CategoriesService) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	var created models.Category
	if err := s.client.post(ctx, "/categories", nil, category, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a category (admin).
func (s *CategoriesService) Update(ctx context.Context, id int64, category *models.Category) (*models.Category, error) {
	var updated models.Category
	if err := s.client.put(ctx, fmt.Sprintf("/categories/%d", id), nil, category, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a category (admin).
func (s *CategoriesService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/categories/%d", id), nil)
}
