package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/maison-edition/edition/internal/session"
)

type sessionIdentity interface {
	Identity() (session.Identity, bool)
}

type whoamiOptions struct {
	store sessionIdentity
	out   io.Writer
}

// WhoamiOption overrides a whoami dependency, used by tests.
type WhoamiOption func(*whoamiOptions)

func WithWhoamiStore(store sessionIdentity) WhoamiOption {
	return func(o *whoamiOptions) { o.store = store }
}

func WithWhoamiOutput(w io.Writer) WhoamiOption {
	return func(o *whoamiOptions) { o.out = w }
}

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami()
		},
	}
}

func runWhoami(opts ...WhoamiOption) error {
	o := whoamiOptions{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	if o.store == nil {
		a, err := getApp()
		if err != nil {
			return err
		}
		o.store = a.Store
	}

	id, ok := o.store.Identity()
	if !ok {
		fmt.Fprintln(o.out, "Not signed in. Run 'edition login' first.")
		return nil
	}

	fmt.Fprintf(o.out, "%s %s <%s>\n", id.Name, id.Surname, id.Email)
	fmt.Fprintf(o.out, "Role: %s\n", id.Role)

	return nil
}
