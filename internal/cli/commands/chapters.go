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

type chapterReader interface {
	ByBook(ctx context.Context, bookID int64) ([]models.ChapterSummary, error)
	ByNumber(ctx context.Context, bookID int64, number int) (*models.ChapterDetail, error)
}

type chaptersOptions struct {
	reader chapterReader
	out    io.Writer
}

// ChaptersOption overrides a chapters dependency, used by tests.
type ChaptersOption func(*chaptersOptions)

func WithChaptersClient(reader chapterReader) ChaptersOption {
	return func(o *chaptersOptions) { o.reader = reader }
}

func WithChaptersOutput(w io.Writer) ChaptersOption {
	return func(o *chaptersOptions) { o.out = w }
}

// NewChaptersCmd creates the chapters command group
func NewChaptersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chapters",
		Short: "Browse book chapters",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "ls <book-id>",
		Short: "List chapters of a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookID, err := parseID(args[0])
			if err != nil {
				return err
			}
			return runChaptersList(bookID)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "read <book-id> <number>",
		Short: "Read a chapter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookID, err := parseID(args[0])
			if err != nil {
				return err
			}
			number, err := parseID(args[1])
			if err != nil {
				return err
			}
			return runChaptersRead(bookID, int(number))
		},
	})

	cmd.AddCommand(newUploadPDFCmd())

	return cmd
}

func (o *chaptersOptions) resolve() error {
	if o.reader != nil {
		return nil
	}
	a, err := getApp()
	if err != nil {
		return err
	}
	o.reader = a.Client.Chapters
	return nil
}

func runChaptersList(bookID int64, opts ...ChaptersOption) error {
	o := chaptersOptions{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.resolve(); err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	chapters, err := o.reader.ByBook(ctx, bookID)
	if err != nil {
		return err
	}

	if len(chapters) == 0 {
		fmt.Fprintln(o.out, "No chapters found.")
		return nil
	}

	w := tabwriter.NewWriter(o.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N°\tTITLE\tACCESS")
	for _, ch := range chapters {
		access := "subscribers"
		if ch.Free {
			access = "free"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", ch.Number, ch.Title, access)
	}
	w.Flush()

	return nil
}

func runChaptersRead(bookID int64, number int, opts ...ChaptersOption) error {
	o := chaptersOptions{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.resolve(); err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	chapter, err := o.reader.ByNumber(ctx, bookID, number)
	if err != nil {
		return err
	}

	fmt.Fprintf(o.out, "Chapter %d. %s\n\n", chapter.Number, chapter.Title)
	fmt.Fprintln(o.out, chapter.Content)

	return nil
}
