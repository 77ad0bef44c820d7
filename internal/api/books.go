package api

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/maison-edition/edition/internal/models"
)

// BooksService covers the catalog endpoints under /livres.
type BooksService struct {
	client *Client
}

// List returns one page of the catalog.
func (s *BooksService) List(ctx context.Context, opts ListOptions) (*models.Page[models.Book], error) {
	var page models.Page[models.Book]
	if err := s.client.get(ctx, "/livres", opts.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get returns a single book by ID.
func (s *BooksService) Get(ctx context.Context, id int64) (*models.Book, error) {
	var book models.Book
	if err := s.client.get(ctx, fmt.Sprintf("/livres/%d", id), nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// Featured returns the books currently highlighted on the home page.
func (s *BooksService) Featured(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := s.client.get(ctx, "/livres/vedette", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// NewReleases returns the most recently published books.
func (s *BooksService) NewReleases(ctx context.Context, limit int) ([]models.Book, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var books []models.Book
	if err := s.client.get(ctx, "/livres/nouveautes", q, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// ByCategory returns one page of books in a category.
func (s *BooksService) ByCategory(ctx context.Context, categoryID int64, opts ListOptions) (*models.Page[models.Book], error) {
	var page models.Page[models.Book]
	if err := s.client.get(ctx, fmt.Sprintf("/livres/categorie/%d", categoryID), opts.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ByAuthor returns all books by an author.
func (s *BooksService) ByAuthor(ctx context.Context, authorID int64) ([]models.Book, error) {
	var books []models.Book
	if err := s.client.get(ctx, fmt.Sprintf("/livres/auteur/%d", authorID), nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// Search returns one page of full-text search results.
func (s *BooksService) Search(ctx context.Context, query string, opts ListOptions) (*models.Page[models.Book], error) {
	q := opts.values()
	q.Set("q", query)
	var page models.Page[models.Book]
	if err := s.client.get(ctx, "/livres/recherche", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// authorCategoryQuery serializes author IDs as repeated auteurIds=N pairs,
// the parameter names the platform binds.
func authorCategoryQuery(authorIDs []int64, categoryID *int64) url.Values {
	q := url.Values{}
	addInt64s(q, "auteurIds", authorIDs)
	if categoryID != nil {
		q.Set("categorieId", strconv.FormatInt(*categoryID, 10))
	}
	return q
}

// Create adds a book to the catalog (admin).
func (s *BooksService) Create(ctx context.Context, book *models.Book, authorIDs []int64, categoryID *int64) (*models.Book, error) {
	var created models.Book
	if err := s.client.post(ctx, "/livres", authorCategoryQuery(authorIDs, categoryID), book, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces an existing book (admin).
func (s *BooksService) Update(ctx context.Context, id int64, book *models.Book, authorIDs []int64, categoryID *int64) (*models.Book, error) {
	var updated models.Book
	if err := s.client.put(ctx, fmt.Sprintf("/livres/%d", id), authorCategoryQuery(authorIDs, categoryID), book, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a book from the catalog (admin).
func (s *BooksService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/livres/%d", id), nil)
}

// UploadEbook attaches the e-book file for a book (admin, multipart).
func (s *BooksService) UploadEbook(ctx context.Context, id int64, filename string, file io.Reader) (*models.Book, error) {
	var book models.Book
	if err := s.client.upload(ctx, fmt.Sprintf("/livres/%d/epub", id), filename, file, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// DeleteEbook detaches the e-book file (admin).
func (s *BooksService) DeleteEbook(ctx context.Context, id int64) (*models.Book, error) {
	var book models.Book
	if err := s.client.do(ctx, "DELETE", fmt.Sprintf("/livres/%d/epub", id), nil, nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// DownloadEbook fetches the e-book payload for a purchased book.
func (s *BooksService) DownloadEbook(ctx context.Context, id int64) ([]byte, error) {
	return s.client.download(ctx, fmt.Sprintf("/livres/%d/epub", id), nil)
}
