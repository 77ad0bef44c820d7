package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/maison-edition/edition/internal/api"
	"github.com/maison-edition/edition/internal/models"
)

// mockBookCatalogue simulates the API client for the books commands
type mockBookCatalogue struct {
	page       *models.Page[models.Book]
	book       *models.Book
	shouldFail bool
}

func (m *mockBookCatalogue) List(ctx context.Context, opts api.ListOptions) (*models.Page[models.Book], error) {
	if m.shouldFail {
		return nil, errors.New("server unreachable")
	}
	return m.page, nil
}

func (m *mockBookCatalogue) Get(ctx context.Context, id int64) (*models.Book, error) {
	if m.shouldFail {
		return nil, errors.New("server unreachable")
	}
	return m.book, nil
}

func (m *mockBookCatalogue) Search(ctx context.Context, query string, opts api.ListOptions) (*models.Page[models.Book], error) {
	if m.shouldFail {
		return nil, errors.New("server unreachable")
	}
	return m.page, nil
}

func price(v float64) *float64 { return &v }

func TestBooksList_Empty(t *testing.T) {
	mockAPI := &mockBookCatalogue{
		page: &models.Page[models.Book]{Content: []models.Book{}, TotalPages: 1},
	}
	var output bytes.Buffer

	err := runBooksList(0, 12, WithBooksClient(mockAPI), WithBooksOutput(&output))
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	if !strings.Contains(output.String(), "No books found") {
		t.Errorf("expected 'No books found' message, got: %s", output.String())
	}
}

func TestBooksList_Table(t *testing.T) {
	mockAPI := &mockBookCatalogue{
		page: &models.Page[models.Book]{
			Content: []models.Book{
				{
					ID:      1,
					Title:   "Les Jardins Suspendus",
					Price:   price(21.90),
					Authors: []models.Author{{Name: "Claire", Surname: "Fontaine"}},
				},
			},
			TotalElements: 1,
			TotalPages:    1,
		},
	}
	var output bytes.Buffer

	err := runBooksList(0, 12, WithBooksClient(mockAPI), WithBooksOutput(&output))
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	out := output.String()
	for _, want := range []string{"Les Jardins Suspendus", "Claire Fontaine", "21.90", "Page 1/1"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got: %s", want, out)
		}
	}
}

func TestBooksSearch_NoMatch(t *testing.T) {
	mockAPI := &mockBookCatalogue{
		page: &models.Page[models.Book]{Content: []models.Book{}, TotalPages: 1},
	}
	var output bytes.Buffer

	err := runBooksSearch("introuvable", 0, 12, WithBooksClient(mockAPI), WithBooksOutput(&output))
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	if !strings.Contains(output.String(), `No books matched "introuvable"`) {
		t.Errorf("expected no-match message, got: %s", output.String())
	}
}

func TestBooksGet(t *testing.T) {
	mockAPI := &mockBookCatalogue{
		book: &models.Book{
			ID:          2,
			Title:       "La Mer Intérieure",
			ISBN:        "978-2-1234-5681-0",
			Price:       price(18.50),
			Description: "Un roman sur la mémoire.",
			Category:    &models.Category{Name: "Fiction"},
		},
	}
	var output bytes.Buffer

	err := runBooksGet(2, WithBooksClient(mockAPI), WithBooksOutput(&output))
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	out := output.String()
	for _, want := range []string{"La Mer Intérieure", "978-2-1234-5681-0", "Fiction", "Un roman sur la mémoire."} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got: %s", want, out)
		}
	}
}

func TestBooksList_ServerError(t *testing.T) {
	err := runBooksList(0, 12,
		WithBooksClient(&mockBookCatalogue{shouldFail: true}),
		WithBooksOutput(&bytes.Buffer{}),
	)
	if err == nil {
		t.Fatal("expected an error when the server is unreachable")
	}
}
