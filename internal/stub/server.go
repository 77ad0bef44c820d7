// Package stub implements a small fixture server that mimics the
// publishing platform API. It exists for local development and for
// exercising the client end to end without the real backend.
package stub

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/maison-edition/edition/internal/models"
)

type account struct {
	ID      string
	Email   string
	Secret  string
	Name    string
	Surname string
	Role    string
}

// Server is the fixture API server.
type Server struct {
	router    *gin.Engine
	logger    zerolog.Logger
	validator *validator.Validate
	jwtSecret []byte

	mu       sync.Mutex
	accounts map[string]*account // keyed by email
	books    []models.Book
	authors  []models.Author
	events   []models.Event
	articles []models.Article
	chapters []models.Chapter
}

// New creates a fixture server seeded with sample data.
func New(jwtSecret string, log zerolog.Logger) *Server {
	s := &Server{
		logger:    log,
		validator: validator.New(),
		jwtSecret: []byte(jwtSecret),
		accounts:  make(map[string]*account),
	}

	// Register custom validators
	s.validator.RegisterValidation("ordertype", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case models.OrderPaper, models.OrderEbook,
			models.OrderMonthlySubscription, models.OrderAnnualSubscription:
			return true
		}
		return false
	})

	s.seed()
	s.setupRouter()
	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRouter configures the Gin router with routes and middleware
func (s *Server) setupRouter() {
	gin.SetMode(gin.ReleaseMode)

	s.router = gin.New()
	s.router.Use(gin.Recovery())
	s.router.Use(s.loggingMiddleware())

	s.router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	s.router.GET("/health", s.healthCheck)

	// Public endpoints
	s.router.POST("/api/auth/login", s.login)
	s.router.POST("/api/auth/register", s.register)
	s.router.GET("/api/livres", s.listBooks)
	s.router.GET("/api/livres/vedette", s.featuredBooks)
	s.router.GET("/api/livres/nouveautes", s.newReleases)
	s.router.GET("/api/livres/recherche", s.searchBooks)
	s.router.GET("/api/livres/:id", s.getBook)
	s.router.GET("/api/auteurs", s.listAuthors)
	s.router.GET("/api/auteurs/:id", s.getAuthor)
	s.router.GET("/api/evenements/a-venir", s.upcomingEvents)
	s.router.GET("/api/articles", s.listArticles)
	s.router.GET("/api/chapitres/livre/:bookId", s.chaptersByBook)
	s.router.POST("/api/newsletter/subscribe", s.subscribeNewsletter)
	s.router.POST("/api/contacts", s.submitContact)

	// Authenticated endpoints
	api := s.router.Group("/api")
	api.Use(s.authMiddleware())
	{
		api.GET("/auth/me", s.whoami)
		api.POST("/commandes/checkout", s.checkout)
		api.GET("/commandes/mes-commandes", s.myOrders)

		admin := api.Group("")
		admin.Use(s.adminOnlyMiddleware())
		{
			admin.POST("/livres", s.createBook)
			admin.DELETE("/livres/:id", s.deleteBook)
			admin.POST("/upload/:kind", s.uploadFile)
		}
	}
}

// Start runs the HTTP server until SIGINT or SIGTERM.
func (s *Server) Start(addr string) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	s.logger.Info().Str("addr", addr).Msg("Fixture server listening")

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		s.logger.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "online",
		"timestamp": time.Now().UTC(),
		"service":   "edition-stub",
	})
}
