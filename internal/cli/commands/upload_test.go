package commands

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/maison-edition/edition/internal/models"
	"github.com/maison-edition/edition/internal/nav"
)

// mockUploads simulates the API client for the upload command
type mockUploads struct {
	kind     string
	filename string
	content  []byte
}

func (m *mockUploads) Upload(ctx context.Context, kind, filename string, file io.Reader) (*models.UploadResult, error) {
	m.kind = kind
	m.filename = filename
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	m.content = data
	return &models.UploadResult{Path: "/uploads/" + kind + "/stored.jpg"}, nil
}

// fakeGate returns a fixed guard decision
type fakeGate struct {
	decision nav.Decision
}

func (f *fakeGate) Navigate(fullPath string) nav.Result {
	return nav.Result{Decision: f.decision, RouteName: "admin-dashboard"}
}

func writeTempImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cover.jpg")
	if err := os.WriteFile(path, []byte("fake image bytes"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestUpload_RequiresLogin(t *testing.T) {
	err := runUpload("livres", writeTempImage(t),
		WithUploadClient(&mockUploads{}),
		WithUploadGate(&fakeGate{decision: nav.DecisionRedirectLogin}),
		WithUploadOutput(&bytes.Buffer{}),
	)
	if err == nil {
		t.Fatal("expected an error when not signed in")
	}
	if !strings.Contains(err.Error(), "signing in") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUpload_RequiresAdminRole(t *testing.T) {
	err := runUpload("livres", writeTempImage(t),
		WithUploadClient(&mockUploads{}),
		WithUploadGate(&fakeGate{decision: nav.DecisionRedirectHome}),
		WithUploadOutput(&bytes.Buffer{}),
	)
	if err == nil {
		t.Fatal("expected an error for a non-admin user")
	}
	if !strings.Contains(err.Error(), "admin access required") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUpload_SendsFile(t *testing.T) {
	uploads := &mockUploads{}
	var output bytes.Buffer

	err := runUpload("livres", writeTempImage(t),
		WithUploadClient(uploads),
		WithUploadGate(&fakeGate{decision: nav.DecisionAllowed}),
		WithUploadOutput(&output),
	)
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	if uploads.kind != "livres" {
		t.Errorf("expected kind 'livres', got %q", uploads.kind)
	}
	if uploads.filename != "cover.jpg" {
		t.Errorf("expected filename 'cover.jpg', got %q", uploads.filename)
	}
	if string(uploads.content) != "fake image bytes" {
		t.Errorf("expected file content to reach the client, got %q", uploads.content)
	}
	if !strings.Contains(output.String(), "/uploads/livres/stored.jpg") {
		t.Errorf("expected stored path in output, got: %s", output.String())
	}
}

// mockEbookUploads simulates the books service for upload-ebook
type mockEbookUploads struct {
	bookID   int64
	filename string
}

func (m *mockEbookUploads) UploadEbook(ctx context.Context, id int64, filename string, file io.Reader) (*models.Book, error) {
	m.bookID = id
	m.filename = filename
	if _, err := io.Copy(io.Discard, file); err != nil {
		return nil, err
	}
	return &models.Book{ID: id, Title: "Les Jardins Suspendus"}, nil
}

func TestUploadEbook_SendsFile(t *testing.T) {
	uploads := &mockEbookUploads{}
	var output bytes.Buffer

	err := runUploadEbook(1, writeTempImage(t),
		WithEbookClient(uploads),
		WithAssetGate(&fakeGate{decision: nav.DecisionAllowed}),
		WithAssetOutput(&output),
	)
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	if uploads.bookID != 1 || uploads.filename != "cover.jpg" {
		t.Errorf("unexpected upload call: id=%d filename=%q", uploads.bookID, uploads.filename)
	}
	if !strings.Contains(output.String(), "Les Jardins Suspendus") {
		t.Errorf("expected book title in output, got: %s", output.String())
	}
}

func TestUploadEbook_RequiresAdmin(t *testing.T) {
	err := runUploadEbook(1, writeTempImage(t),
		WithEbookClient(&mockEbookUploads{}),
		WithAssetGate(&fakeGate{decision: nav.DecisionRedirectHome}),
		WithAssetOutput(&bytes.Buffer{}),
	)
	if err == nil {
		t.Fatal("expected an error for a non-admin user")
	}
}

func TestUpload_RejectsUnknownKind(t *testing.T) {
	err := runUpload("videos", writeTempImage(t),
		WithUploadClient(&mockUploads{}),
		WithUploadGate(&fakeGate{decision: nav.DecisionAllowed}),
		WithUploadOutput(&bytes.Buffer{}),
	)
	if err == nil {
		t.Fatal("expected an error for an unknown upload kind")
	}
}
