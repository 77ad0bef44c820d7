package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maison-edition/edition/internal/models"
)

// staticTokens is a TokenSource returning a fixed token.
type staticTokens struct {
	token string
}

func (s *staticTokens) Token() string { return s.token }

// countingEvictor records Evict calls.
type countingEvictor struct {
	calls int
}

func (e *countingEvictor) Evict() { e.calls++ }

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.Author{})
	}))
	defer server.Close()

	client := New(server.URL, WithTokenSource(&staticTokens{token: "t-123"}))
	_, err := client.Authors.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer t-123", gotAuth)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var sawAuthHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuthHeader = r.Header["Authorization"]
		json.NewEncoder(w).Encode([]models.Author{})
	}))
	defer server.Close()

	// Token absence is a no-op, not an error.
	client := New(server.URL, WithTokenSource(&staticTokens{}))
	_, err := client.Authors.List(context.Background())
	require.NoError(t, err)
	assert.False(t, sawAuthHeader)
}

func TestClient_UnauthorizedEvictsSessionOnce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	evictor := &countingEvictor{}
	expired := 0
	client := New(server.URL,
		WithSessionEvictor(evictor),
		WithSessionExpiredHandler(func() { expired++ }),
	)

	// Any call through the shared client triggers the eviction,
	// including background/non-interactive ones.
	_, err := client.Events.Upcoming(context.Background(), 5)
	require.ErrorIs(t, err, ErrSessionExpired)

	assert.Equal(t, 1, evictor.calls)
	assert.Equal(t, 1, expired)
}

func TestClient_RejectedCredentialsKeepSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	}))
	defer server.Close()

	evictor := &countingEvictor{}
	expired := 0
	client := New(server.URL,
		WithSessionEvictor(evictor),
		WithSessionExpiredHandler(func() { expired++ }),
	)

	// A rejected login is a credential error, not an expired session.
	_, err := client.Auth.Login(context.Background(), models.LoginRequest{
		Email:  "reader@edition.test",
		Secret: "wrong",
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrSessionExpired)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "invalid credentials", apiErr.Message)

	assert.Equal(t, 0, evictor.calls)
	assert.Equal(t, 0, expired)

	// Same for a rejected registration.
	_, err = client.Auth.Register(context.Background(), models.RegisterRequest{
		Email:   "reader@edition.test",
		Secret:  "short-secret",
		Name:    "Rémi",
		Surname: "Dupont",
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, 0, evictor.calls)
	assert.Equal(t, 0, expired)
}

func TestClient_ArrayParamsSerializeAsRepeatedKeys(t *testing.T) {
	var rawQuery string
	var tags []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		tags = r.URL.Query()["tags"]
		json.NewEncoder(w).Encode(models.Page[models.Article]{})
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Articles.Published(context.Background(), ListOptions{Page: 0, Size: 10}, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2"}, tags)
	assert.NotContains(t, rawQuery, "tags%5B%5D", "bracket-suffixed keys are not the service convention")
	assert.NotContains(t, rawQuery, "tags[]")
}

func TestClient_RepeatedAuthorIDsOnCreate(t *testing.T) {
	var query url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		json.NewEncoder(w).Encode(models.Book{ID: 1})
	}))
	defer server.Close()

	client := New(server.URL)
	categoryID := int64(3)
	_, err := client.Books.Create(context.Background(), &models.Book{Title: "Les Vagues"}, []int64{10, 11}, &categoryID)
	require.NoError(t, err)

	// The platform binds the French parameter names.
	assert.Equal(t, []string{"10", "11"}, query["auteurIds"])
	assert.Equal(t, "3", query.Get("categorieId"))
	assert.Empty(t, query["authorIds"])
	assert.Empty(t, query.Get("categoryId"))
}

func TestClient_EventRefsUseFrenchParams(t *testing.T) {
	var query url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		json.NewEncoder(w).Encode(models.Event{ID: 1})
	}))
	defer server.Close()

	client := New(server.URL)
	bookID, authorID := int64(5), int64(7)
	_, err := client.Events.Create(context.Background(), &models.Event{Title: "Dédicace"}, &bookID, &authorID)
	require.NoError(t, err)

	assert.Equal(t, "5", query.Get("livreId"))
	assert.Equal(t, "7", query.Get("auteurId"))
	assert.Empty(t, query.Get("bookId"))
	assert.Empty(t, query.Get("authorId"))
}

func TestClient_UploadSendsMultipartFieldFile(t *testing.T) {
	var contentType, fieldName, fileContent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		for name, headers := range r.MultipartForm.File {
			fieldName = name
			f, err := headers[0].Open()
			require.NoError(t, err)
			defer f.Close()
			data, err := io.ReadAll(f)
			require.NoError(t, err)
			fileContent = string(data)
		}
		json.NewEncoder(w).Encode(models.Book{ID: 4})
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Books.UploadEbook(context.Background(), 4, "book.epub", strings.NewReader("epub-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(contentType, "multipart/form-data"), "content type = %q", contentType)
	assert.Equal(t, "file", fieldName)
	assert.Equal(t, "epub-bytes", fileContent)
}

func TestClient_ErrorPayloadPassedThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "book not found"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Books.Get(context.Background(), 999)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "book not found", apiErr.Message)
}

func TestClient_BasePathPrefix(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		json.NewEncoder(w).Encode(models.Page[models.Book]{})
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Books.List(context.Background(), ListOptions{Size: 12})
	require.NoError(t, err)
	assert.Equal(t, "/api/livres", path)
}

func TestClient_DecodesPaginatedEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Page[models.Book]{
			Content:       []models.Book{{ID: 1, Title: "Nord"}, {ID: 2, Title: "Sud"}},
			TotalElements: 14,
			TotalPages:    7,
			Size:          2,
			Number:        0,
			First:         true,
		})
	}))
	defer server.Close()

	client := New(server.URL)
	page, err := client.Books.List(context.Background(), ListOptions{Size: 2})
	require.NoError(t, err)

	assert.Len(t, page.Content, 2)
	assert.EqualValues(t, 14, page.TotalElements)
	assert.Equal(t, 7, page.TotalPages)
	assert.True(t, page.First)
	assert.False(t, page.Last)
}

func TestClient_CheckoutReturnsProcessorURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/commandes/checkout", r.URL.Path)
		var req models.CheckoutRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, models.OrderEbook, req.Type)
		json.NewEncoder(w).Encode(models.CheckoutResponse{CheckoutURL: "https://pay.example.com/cs_test"})
	}))
	defer server.Close()

	bookID := int64(12)
	client := New(server.URL)
	resp, err := client.Orders.Checkout(context.Background(), models.CheckoutRequest{
		BookID: &bookID,
		Type:   models.OrderEbook,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/cs_test", resp.CheckoutURL)
}
