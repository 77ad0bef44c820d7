package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/maison-edition/edition/internal/models"
)

// ArticlesService covers the blog endpoints under /articles.
type ArticlesService struct {
	client *Client
}

// Published returns one page of published articles, optionally filtered by
// tag IDs (serialized as repeated tags=N pairs).
func (s *ArticlesService) Published(ctx context.Context, opts ListOptions, tagIDs ...int64) (*models.Page[models.Article], error) {
	q := opts.values()
	addInt64s(q, "tags", tagIDs)
	var page models.Page[models.Article]
	if err := s.client.get(ctx, "/articles", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Latest returns the most recent published articles.
func (s *ArticlesService) Latest(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	if err := s.client.get(ctx, "/articles/derniers", nil, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// Get returns a single article by ID.
func (s *ArticlesService) Get(ctx context.Context, id int64) (*models.Article, error) {
	var article models.Article
	if err := s.client.get(ctx, fmt.Sprintf("/articles/%d", id), nil, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// BySlug returns an article by its URL slug.
func (s *ArticlesService) BySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	if err := s.client.get(ctx, "/articles/slug/"+slug, nil, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// ListAll returns every article regardless of status (admin).
func (s *ArticlesService) ListAll(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	if err := s.client.get(ctx, "/articles/admin/tous", nil, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// Create adds an article (admin).
func (s *ArticlesService) Create(ctx context.Context, article *models.Article, authorID *int64) (*models.Article, error) {
	q := url.Values{}
	if authorID != nil {
		q.Set("auteurId", strconv.FormatInt(*authorID, 10))
	}
	var created models.Article
	if err := s.client.post(ctx, "/articles", q, article, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces an article (admin).
func (s *ArticlesService) Update(ctx context.Context, id int64, article *models.Article) (*models.Article, error) {
	var updated models.Article
	if err := s.client.put(ctx, fmt.Sprintf("/articles/%d", id), nil, article, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Publish transitions an article to PUBLISHED (admin).
func (s *ArticlesService) Publish(ctx context.Context, id int64) (*models.Article, error) {
	var article models.Article
	if err := s.client.post(ctx, fmt.Sprintf("/articles/%d/publier", id), nil, nil, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// Archive transitions an article to ARCHIVED (admin).
func (s *ArticlesService) Archive(ctx context.Context, id int64) (*models.Article, error) {
	var article models.Article
	if err := s.client.post(ctx, fmt.Sprintf("/articles/%d/archiver", id), nil, nil, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// Delete removes an article (admin).
func (s *ArticlesService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/articles/%d", id), nil)
}
