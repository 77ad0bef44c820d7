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

type blogReader interface {
	Published(ctx context.Context, opts api.ListOptions, tagIDs ...int64) (*models.Page[models.Article], error)
	BySlug(ctx context.Context, slug string) (*models.Article, error)
}

type blogOptions struct {
	reader blogReader
	out    io.Writer
}

// BlogOption overrides a blog dependency, used by tests.
type BlogOption func(*blogOptions)

func WithBlogClient(reader blogReader) BlogOption {
	return func(o *blogOptions) { o.reader = reader }
}

func WithBlogOutput(w io.Writer) BlogOption {
	return func(o *blogOptions) { o.out = w }
}

// NewBlogCmd creates the blog command group
func NewBlogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blog",
		Short: "Browse blog articles",
	}

	var page, size int
	lsCmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List published articles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBlogList(page, size)
		},
	}
	lsCmd.Flags().IntVar(&page, "page", 0, "Page number (0-based)")
	lsCmd.Flags().IntVar(&size, "size", 10, "Page size")
	cmd.AddCommand(lsCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "read <slug>",
		Short: "Read an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBlogRead(args[0])
		},
	})

	return cmd
}

func (o *blogOptions) resolve() error {
	if o.reader != nil {
		return nil
	}
	a, err := getApp()
	if err != nil {
		return err
	}
	o.reader = a.Client.Articles
	return nil
}

func runBlogList(page, size int, opts ...BlogOption) error {
	o := blogOptions{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.resolve(); err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	result, err := o.reader.Published(ctx, api.ListOptions{Page: page, Size: size})
	if err != nil {
		return err
	}

	if len(result.Content) == 0 {
		fmt.Fprintln(o.out, "No articles found.")
		return nil
	}

	w := tabwriter.NewWriter(o.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tTITLE\tPUBLISHED")
	for _, a := range result.Content {
		published := "-"
		if a.PublishedAt != nil {
			published = a.PublishedAt.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", a.Slug, a.Title, published)
	}
	w.Flush()

	return nil
}

func runBlogRead(slug string, opts ...BlogOption) error {
	o := blogOptions{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.resolve(); err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	article, err := o.reader.BySlug(ctx, slug)
	if err != nil {
		return err
	}

	fmt.Fprintf(o.out, "%s\n\n", article.Title)
	if article.Lede != "" {
		fmt.Fprintf(o.out, "%s\n\n", article.Lede)
	}
	fmt.Fprintln(o.out, article.Content)

	return nil
}
