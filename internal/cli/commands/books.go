package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/maison-edition/edition/internal/api"
	"github.com/maison-edition/edition/internal/models"
)

// bookCatalogue is the slice of the API client the books commands need.
type bookCatalogue interface {
	List(ctx context.Context, opts api.ListOptions) (*models.Page[models.Book], error)
	Get(ctx context.Context, id int64) (*models.Book, error)
	Search(ctx context.Context, query string, opts api.ListOptions) (*models.Page[models.Book], error)
}

type booksOptions struct {
	catalogue bookCatalogue
	out       io.Writer
}

// BooksOption overrides a books dependency, used by tests.
type BooksOption func(*booksOptions)

func WithBooksClient(catalogue bookCatalogue) BooksOption {
	return func(o *booksOptions) { o.catalogue = catalogue }
}

func WithBooksOutput(w io.Writer) BooksOption {
	return func(o *booksOptions) { o.out = w }
}

// NewBooksCmd creates the books command group
func NewBooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Browse the catalogue",
	}

	var page, size int
	lsCmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List books",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBooksList(page, size)
		},
	}
	lsCmd.Flags().IntVar(&page, "page", 0, "Page number (0-based)")
	lsCmd.Flags().IntVar(&size, "size", 12, "Page size")
	cmd.AddCommand(lsCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return runBooksGet(id)
		},
	})

	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search books by title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBooksSearch(args[0], page, size)
		},
	}
	searchCmd.Flags().IntVar(&page, "page", 0, "Page number (0-based)")
	searchCmd.Flags().IntVar(&size, "size", 12, "Page size")
	cmd.AddCommand(searchCmd)

	cmd.AddCommand(newUploadEbookCmd())

	return cmd
}

func (o *booksOptions) resolve() error {
	if o.catalogue != nil {
		return nil
	}
	a, err := getApp()
	if err != nil {
		return err
	}
	o.catalogue = a.Client.Books
	return nil
}

func runBooksList(page, size int, opts ...BooksOption) error {
	o := booksOptions{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.resolve(); err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	result, err := o.catalogue.List(ctx, api.ListOptions{Page: page, Size: size})
	if err != nil {
		return err
	}

	printBookPage(o.out, result)
	return nil
}

func runBooksGet(id int64, opts ...BooksOption) error {
	o := booksOptions{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.resolve(); err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	book, err := o.catalogue.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(o.out, "%s\n", book.Title)
	if book.ISBN != "" {
		fmt.Fprintf(o.out, "  ISBN: %s\n", book.ISBN)
	}
	if book.Price != nil {
		fmt.Fprintf(o.out, "  Price: %.2f €\n", *book.Price)
	}
	for _, a := range book.Authors {
		fmt.Fprintf(o.out, "  Author: %s %s\n", a.Name, a.Surname)
	}
	if book.Category != nil {
		fmt.Fprintf(o.out, "  Category: %s\n", book.Category.Name)
	}
	if book.Description != "" {
		fmt.Fprintf(o.out, "\n%s\n", book.Description)
	}

	return nil
}

func runBooksSearch(query string, page, size int, opts ...BooksOption) error {
	o := booksOptions{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.resolve(); err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	result, err := o.catalogue.Search(ctx, query, api.ListOptions{Page: page, Size: size})
	if err != nil {
		return err
	}

	if len(result.Content) == 0 {
		fmt.Fprintf(o.out, "No books matched %q.\n", query)
		return nil
	}

	printBookPage(o.out, result)
	return nil
}

func printBookPage(out io.Writer, page *models.Page[models.Book]) {
	if len(page.Content) == 0 {
		fmt.Fprintln(out, "No books found.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHORS\tPRICE")
	for _, b := range page.Content {
		authors := ""
		for i, a := range b.Authors {
			if i > 0 {
				authors += ", "
			}
			authors += a.Name + " " + a.Surname
		}
		price := "-"
		if b.Price != nil {
			price = fmt.Sprintf("%.2f €", *b.Price)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", b.ID, b.Title, authors, price)
	}
	w.Flush()

	fmt.Fprintf(out, "\nPage %d/%d (%d books)\n", page.Number+1, page.TotalPages, page.TotalElements)
}
