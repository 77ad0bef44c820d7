package stub

import (
	"fmt"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maison-edition/edition/internal/models"
)

func (s *Server) login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	acct, ok := s.accounts[strings.ToLower(req.Email)]
	s.mu.Unlock()
	if !ok || acct.Secret != req.Secret {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	s.respondWithToken(c, acct)
}

func (s *Server) register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(req.Email)

	s.mu.Lock()
	if _, exists := s.accounts[email]; exists {
		s.mu.Unlock()
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}
	acct := &account{
		ID:      newID(),
		Email:   email,
		Secret:  req.Secret,
		Name:    req.Name,
		Surname: req.Surname,
		Role:    "USER",
	}
	s.accounts[email] = acct
	s.mu.Unlock()

	s.respondWithToken(c, acct)
}

func (s *Server) respondWithToken(c *gin.Context, acct *account) {
	token, err := s.generateToken(acct.ID, acct.Email, acct.Role)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		Token:   token,
		Email:   acct.Email,
		Name:    acct.Name,
		Surname: acct.Surname,
		Role:    acct.Role,
	})
}

func (s *Server) whoami(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	s.mu.Lock()
	acct, exists := s.accounts[claims.Email]
	s.mu.Unlock()
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":   acct.Email,
		"name":    acct.Name,
		"surname": acct.Surname,
		"role":    acct.Role,
	})
}

func pageParams(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", "12"))
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 12
	}
	return page, size
}

func paginate[T any](items []T, page, size int) models.Page[T] {
	total := len(items)
	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}

	return models.Page[T]{
		Content:       items[start:end],
		TotalElements: int64(total),
		TotalPages:    totalPages,
		Size:          size,
		Number:        page,
		First:         page == 0,
		Last:          page >= totalPages-1,
	}
}

func (s *Server) listBooks(c *gin.Context) {
	page, size := pageParams(c)

	s.mu.Lock()
	books := append([]models.Book(nil), s.books...)
	s.mu.Unlock()

	c.JSON(http.StatusOK, paginate(books, page, size))
}

func (s *Server) featuredBooks(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	featured := make([]models.Book, 0)
	for _, b := range s.books {
		if b.Featured {
			featured = append(featured, b)
		}
	}
	c.JSON(http.StatusOK, featured)
}

func (s *Server) newReleases(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "4"))
	if limit <= 0 {
		limit = 4
	}

	s.mu.Lock()
	books := append([]models.Book(nil), s.books...)
	s.mu.Unlock()

	if len(books) > limit {
		books = books[len(books)-limit:]
	}
	c.JSON(http.StatusOK, books)
}

func (s *Server) searchBooks(c *gin.Context) {
	q := strings.ToLower(c.Query("q"))
	page, size := pageParams(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]models.Book, 0)
	for _, b := range s.books {
		if q == "" || strings.Contains(strings.ToLower(b.Title), q) {
			matched = append(matched, b)
		}
	}
	c.JSON(http.StatusOK, paginate(matched, page, size))
}

func (s *Server) getBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.books {
		if b.ID == id {
			c.JSON(http.StatusOK, b)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
}

func (s *Server) createBook(c *gin.Context) {
	var book models.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if book.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	s.mu.Lock()
	// Associations arrive as query parameters, not in the body.
	for _, raw := range c.QueryArray("auteurIds") {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.mu.Unlock()
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid auteurIds value"})
			return
		}
		for _, a := range s.authors {
			if a.ID == id {
				book.Authors = append(book.Authors, a)
			}
		}
	}
	if raw := c.Query("categorieId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.mu.Unlock()
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid categorieId value"})
			return
		}
		book.Category = &models.Category{ID: id}
	}
	var maxID int64
	for _, b := range s.books {
		if b.ID > maxID {
			maxID = b.ID
		}
	}
	book.ID = maxID + 1
	s.books = append(s.books, book)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, book)
}

func (s *Server) deleteBook(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.books {
		if b.ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
}

func (s *Server) listAuthors(c *gin.Context) {
	s.mu.Lock()
	authors := append([]models.Author(nil), s.authors...)
	s.mu.Unlock()

	c.JSON(http.StatusOK, authors)
}

func (s *Server) getAuthor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid author id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.authors {
		if a.ID == id {
			c.JSON(http.StatusOK, a)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "author not found"})
}

func (s *Server) upcomingEvents(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	upcoming := make([]models.Event, 0)
	now := time.Now()
	for _, e := range s.events {
		if e.Active && e.StartsAt.After(now) {
			upcoming = append(upcoming, e)
		}
	}
	c.JSON(http.StatusOK, upcoming)
}

func (s *Server) listArticles(c *gin.Context) {
	page, size := pageParams(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	published := make([]models.Article, 0)
	for _, a := range s.articles {
		if a.Status == models.ArticlePublished {
			published = append(published, a)
		}
	}
	c.JSON(http.StatusOK, paginate(published, page, size))
}

func (s *Server) chaptersByBook(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := make([]models.ChapterSummary, 0)
	for _, ch := range s.chapters {
		if ch.BookID == bookID {
			summaries = append(summaries, models.ChapterSummary{
				ID:     ch.ID,
				Number: ch.Number,
				Title:  ch.Title,
				Free:   ch.Free,
			})
		}
	}
	c.JSON(http.StatusOK, summaries)
}

func (s *Server) checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.validator.Var(req.Type, "ordertype"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown order type"})
		return
	}

	if req.Type == models.OrderPaper && req.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shipping address is required for paper orders"})
		return
	}

	// Mint a session id the way the payment processor would.
	session := newID()
	c.JSON(http.StatusOK, models.CheckoutResponse{
		CheckoutURL: fmt.Sprintf("https://checkout.stripe.test/pay/%s", session),
	})
}

func (s *Server) myOrders(c *gin.Context) {
	c.JSON(http.StatusOK, []models.Order{})
}

func (s *Server) subscribeNewsletter(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "subscribed"})
}

func (s *Server) submitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "message received"})
}

func (s *Server) uploadFile(c *gin.Context) {
	kind := c.Param("kind")
	switch kind {
	case "livres", "auteurs", "articles", "evenements":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown upload kind"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}

	name := newID() + path.Ext(file.Filename)
	stored := path.Join("/uploads", kind, name)
	c.JSON(http.StatusOK, models.UploadResult{
		Path: stored,
		URL:  stored,
	})
}
