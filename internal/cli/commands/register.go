package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/maison-edition/edition/internal/models"
	"github.com/maison-edition/edition/internal/session"
)

type sessionRegister interface {
	Register(ctx context.Context, req models.RegisterRequest) error
	Identity() (session.Identity, bool)
}

type registerOptions struct {
	store      sessionRegister
	out        io.Writer
	readSecret func() (string, error)
}

// RegisterOption overrides a register dependency, used by tests.
type RegisterOption func(*registerOptions)

func WithRegisterStore(store sessionRegister) RegisterOption {
	return func(o *registerOptions) { o.store = store }
}

func WithRegisterOutput(w io.Writer) RegisterOption {
	return func(o *registerOptions) { o.out = w }
}

func WithRegisterSecretReader(fn func() (string, error)) RegisterOption {
	return func(o *registerOptions) { o.readSecret = fn }
}

// NewRegisterCmd creates the register command
func NewRegisterCmd() *cobra.Command {
	var email, secret, name, surname string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(email, secret, name, surname)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&secret, "password", "", "Password (min 8 characters, will prompt if not provided)")
	cmd.Flags().StringVar(&name, "name", "", "First name")
	cmd.Flags().StringVar(&surname, "surname", "", "Last name")

	return cmd
}

func runRegister(email, secret, name, surname string, opts ...RegisterOption) error {
	o := registerOptions{
		out:        os.Stdout,
		readSecret: promptSecret,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if email == "" || name == "" || surname == "" {
		return fmt.Errorf("email, name and surname are required")
	}

	if secret == "" {
		var err error
		secret, err = o.readSecret()
		if err != nil {
			return err
		}
	}
	if len(secret) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
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

	req := models.RegisterRequest{
		Email:   email,
		Secret:  secret,
		Name:    name,
		Surname: surname,
	}
	if err := o.store.Register(ctx, req); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Fprintln(o.out, "✓ Account created!")
	if id, ok := o.store.Identity(); ok {
		fmt.Fprintf(o.out, "  User: %s %s (%s)\n", id.Name, id.Surname, id.Email)
	}

	return nil
}
