package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/maison-edition/edition/internal/models"
)

type authorCatalogue interface {
	List(ctx context.Context) ([]models.Author, error)
	Get(ctx context.Context, id int64) (*models.Author, error)
}

type authorsOptions struct {
	catalogue authorCatalogue
	out       io.Writer
}

// AuthorsOption overrides an authors dependency, used by tests.
type AuthorsOption func(*authorsOptions)

func WithAuthorsClient(catalogue authorCatalogue) AuthorsOption {
	return func(o *authorsOptions) { o.catalogue = catalogue }
}

func WithAuthorsOutput(w io.Writer) AuthorsOption {
	return func(o *authorsOptions) { o.out = w }
}

// NewAuthorsCmd creates the authors command group
func NewAuthorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "authors",
		Short: "Browse authors",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List authors",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthorsList()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return runAuthorsGet(id)
		},
	})

	return cmd
}

func (o *authorsOptions) resolve() error {
	if o.catalogue != nil {
		return nil
	}
	a, err := getApp()
	if err != nil {
		return err
	}
	o.catalogue = a.Client.Authors
	return nil
}

func runAuthorsList(opts ...AuthorsOption) error {
	o := authorsOptions{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.resolve(); err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	authors, err := o.catalogue.List(ctx)
	if err != nil {
		return err
	}

	if len(authors) == 0 {
		fmt.Fprintln(o.out, "No authors found.")
		return nil
	}

	w := tabwriter.NewWriter(o.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tNATIONALITY\tBOOKS")
	for _, a := range authors {
		fmt.Fprintf(w, "%d\t%s %s\t%s\t%d\n", a.ID, a.Name, a.Surname, a.Nationality, a.BookCount)
	}
	w.Flush()

	return nil
}

func runAuthorsGet(id int64, opts ...AuthorsOption) error {
	o := authorsOptions{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.resolve(); err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	author, err := o.catalogue.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(o.out, "%s %s\n", author.Name, author.Surname)
	if author.Nationality != "" {
		fmt.Fprintf(o.out, "  Nationality: %s\n", author.Nationality)
	}
	if author.Website != "" {
		fmt.Fprintf(o.out, "  Website: %s\n", author.Website)
	}
	if author.Biography != "" {
		fmt.Fprintf(o.out, "\n%s\n", author.Biography)
	}

	return nil
}
