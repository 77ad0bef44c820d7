package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maison-edition/edition/internal/cli/commands"
)

var version = "dev" // Will be set during build

var rootCmd = &cobra.Command{
	Use:   "edition",
	Short: "Edition - Publishing platform client",
	Long: `Edition CLI - Browse the catalogue, read chapters and manage
your account on the publishing platform.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("edition version %s\n", version)
		},
	})

	// Add all subcommands
	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewRegisterCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
	rootCmd.AddCommand(commands.NewServerCmd())
	rootCmd.AddCommand(commands.NewBooksCmd())
	rootCmd.AddCommand(commands.NewAuthorsCmd())
	rootCmd.AddCommand(commands.NewEventsCmd())
	rootCmd.AddCommand(commands.NewBlogCmd())
	rootCmd.AddCommand(commands.NewChaptersCmd())
	rootCmd.AddCommand(commands.NewCheckoutCmd())
	rootCmd.AddCommand(commands.NewUploadCmd())
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
