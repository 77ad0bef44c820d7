package api

import (
	"context"
	"fmt"
	"io"

	"github.com/maison-edition/edition/internal/models"
)

// ChaptersService covers the chapter reading endpoints and their admin
// counterparts. Paywall gating happens server-side: the public detail
// endpoint rejects non-free chapters for readers without access.
type ChaptersService struct {
	client *Client
}

// ByBook returns the public chapter listing for a book.
func (s *ChaptersService) ByBook(ctx context.Context, bookID int64) ([]models.ChapterSummary, error) {
	var chapters []models.ChapterSummary
	if err := s.client.get(ctx, fmt.Sprintf("/livres/%d/chapitres", bookID), nil, &chapters); err != nil {
		return nil, err
	}
	return chapters, nil
}

// Free returns only the chapters readable without a purchase.
func (s *ChaptersService) Free(ctx context.Context, bookID int64) ([]models.ChapterSummary, error) {
	var chapters []models.ChapterSummary
	if err := s.client.get(ctx, fmt.Sprintf("/livres/%d/chapitres/gratuits", bookID), nil, &chapters); err != nil {
		return nil, err
	}
	return chapters, nil
}

// ByNumber returns one chapter with its content.
func (s *ChaptersService) ByNumber(ctx context.Context, bookID int64, number int) (*models.ChapterDetail, error) {
	var chapter models.ChapterDetail
	if err := s.client.get(ctx, fmt.Sprintf("/livres/%d/chapitres/%d", bookID, number), nil, &chapter); err != nil {
		return nil, err
	}
	return &chapter, nil
}

// DownloadPDF fetches the print-layout PDF of a chapter.
func (s *ChaptersService) DownloadPDF(ctx context.Context, bookID int64, number int) ([]byte, error) {
	return s.client.download(ctx, fmt.Sprintf("/livres/%d/chapitres/%d/pdf", bookID, number), nil)
}

// ListAll returns every chapter of a book, content included (admin).
func (s *ChaptersService) ListAll(ctx context.Context, bookID int64) ([]models.Chapter, error) {
	var chapters []models.Chapter
	if err := s.client.get(ctx, fmt.Sprintf("/admin/livres/%d/chapitres", bookID), nil, &chapters); err != nil {
		return nil, err
	}
	return chapters, nil
}

// Get returns a single chapter by ID (admin).
func (s *ChaptersService) Get(ctx context.Context, id int64) (*models.Chapter, error) {
	var chapter models.Chapter
	if err := s.client.get(ctx, fmt.Sprintf("/admin/chapitres/%d", id), nil, &chapter); err != nil {
		return nil, err
	}
	return &chapter, nil
}

// Create adds a chapter to a book (admin).
func (s *ChaptersService) Create(ctx context.Context, bookID int64, chapter *models.Chapter) (*models.Chapter, error) {
	var created models.Chapter
	if err := s.client.post(ctx, fmt.Sprintf("/admin/livres/%d/chapitres", bookID), nil, chapter, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a chapter (admin).
func (s *ChaptersService) Update(ctx context.Context, id int64, chapter *models.Chapter) (*models.Chapter, error) {
	var updated models.Chapter
	if err := s.client.put(ctx, fmt.Sprintf("/admin/chapitres/%d", id), nil, chapter, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a chapter (admin).
func (s *ChaptersService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/admin/chapitres/%d", id), nil)
}

// Reorder replaces the chapter ordering of a book with the given ID
// sequence (admin).
func (s *ChaptersService) Reorder(ctx context.Context, bookID int64, chapterIDs []int64) error {
	return s.client.put(ctx, fmt.Sprintf("/admin/livres/%d/chapitres/reorder", bookID), nil, chapterIDs, nil)
}

// UploadPDF attaches the print-layout PDF of a chapter (admin, multipart).
func (s *ChaptersService) UploadPDF(ctx context.Context, id int64, filename string, file io.Reader) (*models.Chapter, error) {
	var chapter models.Chapter
	if err := s.client.upload(ctx, fmt.Sprintf("/admin/chapitres/%d/pdf", id), filename, file, &chapter); err != nil {
		return nil, err
	}
	return &chapter, nil
}

// DeletePDF detaches the chapter PDF (admin).
func (s *ChaptersService) DeletePDF(ctx context.Context, id int64) (*models.Chapter, error) {
	var chapter models.Chapter
	if err := s.client.do(ctx, "DELETE", fmt.Sprintf("/admin/chapitres/%d/pdf", id), nil, nil, &chapter); err != nil {
		return nil, err
	}
	return &chapter, nil
}
