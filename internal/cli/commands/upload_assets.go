package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/maison-edition/edition/internal/models"
)

type ebookUploader interface {
	UploadEbook(ctx context.Context, id int64, filename string, file io.Reader) (*models.Book, error)
}

type chapterPDFUploader interface {
	UploadPDF(ctx context.Context, id int64, filename string, file io.Reader) (*models.Chapter, error)
}

type assetOptions struct {
	ebooks ebookUploader
	pdfs   chapterPDFUploader
	gate   routeGate
	out    io.Writer
}

// AssetOption overrides an asset upload dependency, used by tests.
type AssetOption func(*assetOptions)

func WithEbookClient(ebooks ebookUploader) AssetOption {
	return func(o *assetOptions) { o.ebooks = ebooks }
}

func WithPDFClient(pdfs chapterPDFUploader) AssetOption {
	return func(o *assetOptions) { o.pdfs = pdfs }
}

func WithAssetGate(gate routeGate) AssetOption {
	return func(o *assetOptions) { o.gate = gate }
}

func WithAssetOutput(w io.Writer) AssetOption {
	return func(o *assetOptions) { o.out = w }
}

func newUploadEbookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload-ebook <book-id> <file>",
		Short: "Attach an EPUB to a book (admin only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return runUploadEbook(id, args[1])
		},
	}
}

func newUploadPDFCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload-pdf <chapter-id> <file>",
		Short: "Attach a PDF to a chapter (admin only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return runUploadPDF(id, args[1])
		},
	}
}

func (o *assetOptions) resolve() error {
	if o.gate != nil && (o.ebooks != nil || o.pdfs != nil) {
		return nil
	}
	a, err := getApp()
	if err != nil {
		return err
	}
	if o.ebooks == nil {
		o.ebooks = a.Client.Books
	}
	if o.pdfs == nil {
		o.pdfs = a.Client.Chapters
	}
	if o.gate == nil {
		o.gate = a.Navigator
	}
	return nil
}

func runUploadEbook(bookID int64, path string, opts ...AssetOption) error {
	o := assetOptions{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.resolve(); err != nil {
		return err
	}
	if err := ensureAdminGate(o.gate); err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	ctx, cancel := commandContext()
	defer cancel()

	book, err := o.ebooks.UploadEbook(ctx, bookID, filepath.Base(path), file)
	if err != nil {
		return fmt.Errorf("ebook upload failed: %w", err)
	}

	fmt.Fprintf(o.out, "✓ Ebook attached to %q\n", book.Title)
	return nil
}

func runUploadPDF(chapterID int64, path string, opts ...AssetOption) error {
	o := assetOptions{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.resolve(); err != nil {
		return err
	}
	if err := ensureAdminGate(o.gate); err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	ctx, cancel := commandContext()
	defer cancel()

	chapter, err := o.pdfs.UploadPDF(ctx, chapterID, filepath.Base(path), file)
	if err != nil {
		return fmt.Errorf("pdf upload failed: %w", err)
	}

	fmt.Fprintf(o.out, "✓ PDF attached to chapter %d (%s)\n", chapter.Number, chapter.Title)
	return nil
}
