package commands

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/maison-edition/edition/internal/cli/userconfig"
)

// NewServerCmd creates the server command group
func NewServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Manage the API server URL",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <url>",
		Short: "Set the API server base URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServerSet(args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the configured API server base URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServerShow()
		},
	})

	return cmd
}

func runServerSet(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid server URL %q (expected e.g. https://api.edition.example)", raw)
	}

	if err := userconfig.SetServerURL(raw); err != nil {
		return fmt.Errorf("failed to save server URL: %w", err)
	}

	fmt.Printf("✓ Server set to %s\n", raw)
	return nil
}

func runServerShow() error {
	cfg, err := userconfig.Load()
	if err != nil {
		return err
	}

	if cfg.ServerURL == "" {
		fmt.Println("No server configured. Using EDITION_API_URL or the default.")
		return nil
	}

	fmt.Println(cfg.ServerURL)
	return nil
}
