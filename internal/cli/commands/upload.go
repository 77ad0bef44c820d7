package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/maison-edition/edition/internal/api"
	"github.com/maison-edition/edition/internal/models"
	"github.com/maison-edition/edition/internal/nav"
)

type uploadClient interface {
	Upload(ctx context.Context, kind, filename string, file io.Reader) (*models.UploadResult, error)
}

// routeGate runs the admin gate the same way the browser client does.
type routeGate interface {
	Navigate(fullPath string) nav.Result
}

type uploadOptions struct {
	uploads uploadClient
	gate    routeGate
	out     io.Writer
}

// UploadOption overrides an upload dependency, used by tests.
type UploadOption func(*uploadOptions)

func WithUploadClient(uploads uploadClient) UploadOption {
	return func(o *uploadOptions) { o.uploads = uploads }
}

func WithUploadGate(gate routeGate) UploadOption {
	return func(o *uploadOptions) { o.gate = gate }
}

func WithUploadOutput(w io.Writer) UploadOption {
	return func(o *uploadOptions) { o.out = w }
}

// NewUploadCmd creates the upload command
func NewUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <kind> <file>",
		Short: "Upload an image (admin only)",
		Long: `Upload an image to the media store.

Kind is one of: livres, auteurs, articles, evenements.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(args[0], args[1])
		},
	}
}

// ensureAdminGate runs the admin gate the same way the browser client
// does: not signed in means login first, signed in without the admin
// role means no access.
func ensureAdminGate(gate routeGate) error {
	result := gate.Navigate("/admin")
	switch result.Decision {
	case nav.DecisionRedirectLogin:
		return fmt.Errorf("admin access requires signing in. Run 'edition login' first")
	case nav.DecisionRedirectHome:
		return fmt.Errorf("admin access required")
	}
	return nil
}

func runUpload(kind, path string, opts ...UploadOption) error {
	o := uploadOptions{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	if o.uploads == nil || o.gate == nil {
		a, err := getApp()
		if err != nil {
			return err
		}
		if o.uploads == nil {
			o.uploads = a.Client.Uploads
		}
		if o.gate == nil {
			o.gate = a.Navigator
		}
	}

	switch kind {
	case api.UploadBooks, api.UploadAuthors, api.UploadArticles, api.UploadEvents:
	default:
		return fmt.Errorf("unknown upload kind %q (use livres, auteurs, articles or evenements)", kind)
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

	uploaded, err := o.uploads.Upload(ctx, kind, filepath.Base(path), file)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	fmt.Fprintf(o.out, "✓ Uploaded to %s\n", uploaded.Path)
	return nil
}
