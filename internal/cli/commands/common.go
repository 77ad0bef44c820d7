package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/maison-edition/edition/internal/cli/app"
)

const commandTimeout = 60 * time.Second

// getApp builds the wired application shell.
// Commands call it only when no test doubles were injected.
func getApp() (*app.App, error) {
	return app.New()
}

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
