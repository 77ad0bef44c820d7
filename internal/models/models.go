// Package models holds the data-transfer types mirrored from the Édition
// platform API. These are plain wire shapes: the client performs no
// computation on them beyond marshalling.
package models

import "time"

// Page is the paginated envelope returned by every list endpoint that
// supports paging (zero-based page number).
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// LoginRequest is the credential exchange sent to POST /auth/login.
type LoginRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Secret string `json:"secret" binding:"required"`
}

// RegisterRequest creates a new reader account. A successful registration
// response carries a usable session token, same as login.
type RegisterRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Secret  string `json:"secret" binding:"required,min=8"`
	Name    string `json:"name" binding:"required"`
	Surname string `json:"surname" binding:"required"`
}

// AuthResponse is returned by both login and register. Role arrives as a raw
// string and is validated client-side before it enters the session.
type AuthResponse struct {
	Token   string `json:"token"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Role    string `json:"role"`
}

// Book represents a catalog entry.
type Book struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	ISBN        string    `json:"isbn,omitempty"`
	Description string    `json:"description,omitempty"`
	Summary     string    `json:"summary,omitempty"`
	Cover       string    `json:"cover,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	PageCount   *int      `json:"pageCount,omitempty"`
	PublishedOn string    `json:"publishedOn,omitempty"` // date only, YYYY-MM-DD
	Language    string    `json:"language,omitempty"`
	Format      string    `json:"format,omitempty"`
	Available   bool      `json:"available"`
	Featured    bool      `json:"featured"`
	EbookPath   string    `json:"ebookPath,omitempty"`
	Authors     []Author  `json:"authors,omitempty"`
	Category    *Category `json:"category,omitempty"`
}

// Author represents a published author.
type Author struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Biography   string `json:"biography,omitempty"`
	Photo       string `json:"photo,omitempty"`
	BirthDate   string `json:"birthDate,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	Website     string `json:"website,omitempty"`
	BookCount   int    `json:"bookCount"`
}

// Category is a node in the catalog category tree.
type Category struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Slug        string     `json:"slug"`
	ParentID    *int64     `json:"parentId,omitempty"`
	Children    []Category `json:"children,omitempty"`
	BookCount   int        `json:"bookCount"`
}

// Article statuses as served by the blog endpoints.
const (
	ArticleDraft     = "DRAFT"
	ArticlePublished = "PUBLISHED"
	ArticleArchived  = "ARCHIVED"
)

// Article is a blog post.
type Article struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Lede        string     `json:"lede,omitempty"`
	Content     string     `json:"content"`
	Image       string     `json:"image,omitempty"`
	Status      string     `json:"status"`
	AuthorName  string     `json:"authorName,omitempty"`
	AuthorID    *int64     `json:"authorId,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Event types as served by the events endpoints.
const (
	EventSigning    = "SIGNING"
	EventFair       = "FAIR"
	EventConference = "CONFERENCE"
	EventReading    = "READING"
	EventWorkshop   = "WORKSHOP"
	EventOther      = "OTHER"
)

// Event is a bookstore event (signing, fair, reading...).
type Event struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Image       string     `json:"image,omitempty"`
	StartsAt    time.Time  `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
	Venue       string     `json:"venue,omitempty"`
	Address     string     `json:"address,omitempty"`
	City        string     `json:"city,omitempty"`
	Type        string     `json:"type"`
	Active      bool       `json:"active"`
	BookID      *int64     `json:"bookId,omitempty"`
	BookTitle   string     `json:"bookTitle,omitempty"`
	AuthorID    *int64     `json:"authorId,omitempty"`
	AuthorName  string     `json:"authorName,omitempty"`
}

// Chapter is the full admin-side chapter record, content included.
type Chapter struct {
	ID      int64  `json:"id"`
	BookID  int64  `json:"bookId"`
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
	Free    bool   `json:"free"`
	PDFPath string `json:"pdfPath,omitempty"`
}

// ChapterSummary is the public listing shape: no content, so the paywall
// cannot be bypassed by reading the list response.
type ChapterSummary struct {
	ID     int64  `json:"id"`
	Number int    `json:"number"`
	Title  string `json:"title"`
	Free   bool   `json:"free"`
}

// ChapterDetail is the reader-facing shape for a single chapter.
type ChapterDetail struct {
	ID        int64  `json:"id"`
	Number    int    `json:"number"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Free      bool   `json:"free"`
	BookID    int64  `json:"bookId"`
	BookTitle string `json:"bookTitle,omitempty"`
}

// Comment is a reader comment on a blog article.
type Comment struct {
	ID         int64     `json:"id"`
	ArticleID  int64     `json:"articleId"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Tag labels blog articles.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Order types accepted by checkout.
const (
	OrderPaper               = "PAPER"
	OrderEbook               = "EBOOK"
	OrderMonthlySubscription = "MONTHLY_SUBSCRIPTION"
	OrderAnnualSubscription  = "ANNUAL_SUBSCRIPTION"
)

// CheckoutRequest starts a payment session.
// Shipping fields are only meaningful for paper orders.
type CheckoutRequest struct {
	BookID     *int64 `json:"bookId,omitempty"`
	Type       string `json:"type" binding:"required"`
	FullName   string `json:"fullName,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// CheckoutResponse carries the payment processor URL the caller must
// redirect to.
type CheckoutResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
}

// Order is a past or pending purchase.
type Order struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	BookID    *int64    `json:"bookId,omitempty"`
	BookTitle string    `json:"bookTitle,omitempty"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewsletterSubscriber is an admin-side newsletter entry.
type NewsletterSubscriber struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Active       bool      `json:"active"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	Handled   bool      `json:"handled"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactRequest is the public contact form payload.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message" binding:"required"`
}

// UploadResult is returned by the generic image upload endpoint.
type UploadResult struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}
