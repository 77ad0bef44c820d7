package stub

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/maison-edition/edition/internal/models"
)

func newID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

func ptrF(v float64) *float64 { return &v }
func ptrI64(v int64) *int64   { return &v }

// seed populates the in-memory catalogue and accounts.
func (s *Server) seed() {
	s.accounts["admin@edition.test"] = &account{
		ID:      newID(),
		Email:   "admin@edition.test",
		Secret:  "admin-secret",
		Name:    "Ada",
		Surname: "Martin",
		Role:    "ADMIN",
	}
	s.accounts["reader@edition.test"] = &account{
		ID:      newID(),
		Email:   "reader@edition.test",
		Secret:  "reader-secret",
		Name:    "Rémi",
		Surname: "Dupont",
		Role:    "USER",
	}

	fiction := models.Category{ID: 1, Name: "Fiction", Slug: "fiction", BookCount: 2}
	essays := models.Category{ID: 2, Name: "Essais", Slug: "essais", BookCount: 1}

	s.authors = []models.Author{
		{ID: 1, Name: "Claire", Surname: "Fontaine", Nationality: "FR", BookCount: 2},
		{ID: 2, Name: "Hugo", Surname: "Berger", Nationality: "BE", BookCount: 1},
	}

	s.books = []models.Book{
		{
			ID:          1,
			Title:       "Les Jardins Suspendus",
			ISBN:        "978-2-1234-5680-3",
			Price:       ptrF(21.90),
			PublishedOn: "2024-03-15",
			Available:   true,
			Featured:    true,
			Authors:     []models.Author{s.authors[0]},
			Category:    &fiction,
		},
		{
			ID:          2,
			Title:       "La Mer Intérieure",
			ISBN:        "978-2-1234-5681-0",
			Price:       ptrF(18.50),
			PublishedOn: "2025-01-10",
			Available:   true,
			Authors:     []models.Author{s.authors[0]},
			Category:    &fiction,
		},
		{
			ID:          3,
			Title:       "Penser l'Édition",
			ISBN:        "978-2-1234-5682-7",
			Price:       ptrF(24.00),
			PublishedOn: "2025-06-01",
			Available:   true,
			Authors:     []models.Author{s.authors[1]},
			Category:    &essays,
		},
	}

	now := time.Now()
	s.events = []models.Event{
		{
			ID:       1,
			Title:    "Dédicace au Salon du Livre",
			StartsAt: now.Add(14 * 24 * time.Hour),
			City:     "Paris",
			Type:     models.EventSigning,
			Active:   true,
			BookID:   ptrI64(1),
			AuthorID: ptrI64(1),
		},
	}

	s.articles = []models.Article{
		{
			ID:        1,
			Title:     "La rentrée littéraire",
			Slug:      "rentree-litteraire",
			Content:   "Notre sélection de la rentrée.",
			Status:    models.ArticlePublished,
			CreatedAt: now,
		},
	}

	s.chapters = []models.Chapter{
		{ID: 1, BookID: 1, Number: 1, Title: "Le Portail", Free: true},
		{ID: 2, BookID: 1, Number: 2, Title: "Les Racines"},
	}
}
