// Command stub runs the fixture API server for local development.
package main

import (
	"fmt"
	"os"

	"github.com/maison-edition/edition/internal/config"
	"github.com/maison-edition/edition/internal/logger"
	"github.com/maison-edition/edition/internal/stub"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.GetLogger()

	addr := os.Getenv("EDITION_STUB_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	secret := os.Getenv("EDITION_STUB_JWT_SECRET")
	if secret == "" {
		secret = "stub-secret"
	}

	srv := stub.New(secret, log)

	log.Info().Msg("Starting fixture server...")
	if err := srv.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
