package api

import (
	"context"
	"io"
	"net/url"

	"github.com/maison-edition/edition/internal/models"
)

// Upload kinds accepted by the generic image upload endpoint.
const (
	UploadBooks    = "livres"
	UploadAuthors  = "auteurs"
	UploadArticles = "articles"
	UploadEvents   = "evenements"
)

// UploadsService covers the generic asset upload endpoints under /upload.
type UploadsService struct {
	client *Client
}

// Upload stores an image for the given resource kind (admin, multipart
// field "file").
func (s *UploadsService) Upload(ctx context.Context, kind, filename string, file io.Reader) (*models.UploadResult, error) {
	var result models.UploadResult
	if err := s.client.upload(ctx, "/upload/"+kind, filename, file, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes a previously uploaded asset by its storage path (admin).
func (s *UploadsService) Delete(ctx context.Context, path string) error {
	q := url.Values{}
	q.Set("path", path)
	return s.client.delete(ctx, "/upload", q)
}
