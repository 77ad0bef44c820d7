package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

type sessionLogout interface {
	Logout()
	IsAuthenticated() bool
}

type logoutOptions struct {
	store sessionLogout
	out   io.Writer
}

// LogoutOption overrides a logout dependency, used by tests.
type LogoutOption func(*logoutOptions)

func WithLogoutStore(store sessionLogout) LogoutOption {
	return func(o *logoutOptions) { o.store = store }
}

func WithLogoutOutput(w io.Writer) LogoutOption {
	return func(o *logoutOptions) { o.out = w }
}

// NewLogoutCmd creates the logout command
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout()
		},
	}
}

func runLogout(opts ...LogoutOption) error {
	o := logoutOptions{out: os.Stdout}
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

	wasAuthenticated := o.store.IsAuthenticated()
	o.store.Logout()

	if wasAuthenticated {
		fmt.Fprintln(o.out, "✓ Logged out.")
	} else {
		fmt.Fprintln(o.out, "No active session.")
	}

	return nil
}
