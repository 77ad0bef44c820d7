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

type eventCalendar interface {
	Upcoming(ctx context.Context, limit int) ([]models.Event, error)
}

type eventsOptions struct {
	calendar eventCalendar
	out      io.Writer
}

// EventsOption overrides an events dependency, used by tests.
type EventsOption func(*eventsOptions)

func WithEventsClient(calendar eventCalendar) EventsOption {
	return func(o *eventsOptions) { o.calendar = calendar }
}

func WithEventsOutput(w io.Writer) EventsOption {
	return func(o *eventsOptions) { o.out = w }
}

// NewEventsCmd creates the events command
func NewEventsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List upcoming events",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvents(limit)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of events")

	return cmd
}

func runEvents(limit int, opts ...EventsOption) error {
	o := eventsOptions{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	if o.calendar == nil {
		a, err := getApp()
		if err != nil {
			return err
		}
		o.calendar = a.Client.Events
	}

	ctx, cancel := commandContext()
	defer cancel()

	events, err := o.calendar.Upcoming(ctx, limit)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		fmt.Fprintln(o.out, "No upcoming events.")
		return nil
	}

	w := tabwriter.NewWriter(o.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tTITLE\tCITY")
	for _, e := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.StartsAt.Format("2006-01-02"), e.Type, e.Title, e.City)
	}
	w.Flush()

	return nil
}
