package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/maison-edition/edition/internal/session"
)

// sessionLogin is the slice of the session store the login command needs.
type sessionLogin interface {
	Login(ctx context.Context, email, secret string) error
	Identity() (session.Identity, bool)
}

type loginOptions struct {
	store      sessionLogin
	out        io.Writer
	readSecret func() (string, error)
}

// LoginOption overrides a login dependency, used by tests.
type LoginOption func(*loginOptions)

func WithLoginStore(store sessionLogin) LoginOption {
	return func(o *loginOptions) { o.store = store }
}

func WithLoginOutput(w io.Writer) LoginOption {
	return func(o *loginOptions) { o.out = w }
}

func WithLoginSecretReader(fn func() (string, error)) LoginOption {
	return func(o *loginOptions) { o.readSecret = fn }
}

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var email, secret string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the publishing platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(email, secret)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (or set EDITION_EMAIL)")
	cmd.Flags().StringVar(&secret, "password", "", "Password (or set EDITION_PASSWORD, will prompt if not provided)")

	return cmd
}

func runLogin(email, secret string, opts ...LoginOption) error {
	o := loginOptions{
		out:        os.Stdout,
		readSecret: promptSecret,
	}
	for _, opt := range opts {
		opt(&o)
	}

	// Check for environment variables (useful for CI/CD)
	if email == "" {
		email = os.Getenv("EDITION_EMAIL")
	}
	if secret == "" {
		secret = os.Getenv("EDITION_PASSWORD")
	}

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or EDITION_EMAIL env var)")
	}

	if secret == "" {
		var err error
		secret, err = o.readSecret()
		if err != nil {
			return err
		}
	}

	if o.store == nil {
		a, err := getApp()
		if err != nil {
			return err
		}
		o.store = a.Store
	}

	ctx, cancel := commandContext()
	defer cancel()

	if err := o.store.Login(ctx, email, secret); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Fprintln(o.out, "✓ Login successful!")
	if id, ok := o.store.Identity(); ok {
		fmt.Fprintf(o.out, "  User: %s %s (%s)\n", id.Name, id.Surname, id.Email)
		fmt.Fprintf(o.out, "  Role: %s\n", id.Role)
	}

	return nil
}

func promptSecret() (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", fmt.Errorf("password is required in non-interactive mode (use --password flag or EDITION_PASSWORD env var)")
	}

	fmt.Print("Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Println()
	return string(raw), nil
}
