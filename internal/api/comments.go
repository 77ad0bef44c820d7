package api

import (
	"context"
	"fmt"

	"github.com/maison-edition/edition/internal/models"
)

// CommentsService covers the blog comment endpoints under /commentaires.
type CommentsService struct {
	client *Client
}

// NewComment is the payload for adding a comment to an article.
type NewComment struct {
	AuthorName string `json:"authorName" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// ByArticle returns the approved comments of an article.
func (s *CommentsService) ByArticle(ctx context.Context, articleID int64) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.client.get(ctx, fmt.Sprintf("/commentaires/article/%d", articleID), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// Add submits a comment for moderation.
func (s *CommentsService) Add(ctx context.Context, articleID int64, comment NewComment) (*models.Comment, error) {
	var created models.Comment
	if err := s.client.post(ctx, fmt.Sprintf("/commentaires/article/%d", articleID), nil, comment, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListAll returns every comment (admin).
func (s *CommentsService) ListAll(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.client.get(ctx, "/commentaires/admin", nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// Pending returns the comments awaiting moderation (admin).
func (s *CommentsService) Pending(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.client.get(ctx, "/commentaires/admin/pending", nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// Approve publishes a pending comment (admin).
func (s *CommentsService) Approve(ctx context.Context, id int64) (*models.Comment, error) {
	var comment models.Comment
	if err := s.client.put(ctx, fmt.Sprintf("/commentaires/admin/%d/approuver", id), nil, nil, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete removes a comment (admin).
func (s *CommentsService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/commentaires/admin/%d", id), nil)
}
