// Package app wires the client pieces (config, session store, API
// client, navigation) into one shell that commands share.
package app

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/maison-edition/edition/internal/api"
	"github.com/maison-edition/edition/internal/cli/userconfig"
	"github.com/maison-edition/edition/internal/config"
	"github.com/maison-edition/edition/internal/logger"
	"github.com/maison-edition/edition/internal/nav"
	"github.com/maison-edition/edition/internal/session"
)

// App holds the wired client shell.
type App struct {
	Config    *config.Config
	Log       zerolog.Logger
	Store     *session.Store
	Client    *api.Client
	Navigator *nav.Navigator
}

// New loads configuration and wires the session store, API client and
// navigator together.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.GetLogger()

	// A server URL saved with 'edition server set' wins over the
	// environment default.
	ucfg, err := userconfig.Load()
	if err != nil {
		return nil, err
	}
	baseURL := cfg.API.BaseURL
	if ucfg.ServerURL != "" {
		baseURL = ucfg.ServerURL
	}

	storage, err := newStorage(cfg.Session.Backend)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(storage, log)
	guard := nav.NewGuard(nav.NewTree(nav.DefaultRoutes()), store)
	navigator := nav.NewNavigator(guard)

	client := api.New(baseURL,
		api.WithLogger(log),
		api.WithTokenSource(store),
		api.WithSessionEvictor(store),
		api.WithSessionExpiredHandler(func() {
			navigator.HardNavigate("/login")
			fmt.Fprintln(os.Stderr, "Session expired. Run 'edition login' to sign in again.")
		}),
	)
	store.SetExchanger(client.Auth)

	return &App{
		Config:    cfg,
		Log:       log,
		Store:     store,
		Client:    client,
		Navigator: navigator,
	}, nil
}

func newStorage(backend string) (session.Storage, error) {
	switch backend {
	case config.SessionBackendKeyring:
		return session.NewKeyringStorage("edition"), nil
	case config.SessionBackendFile, "":
		dir, err := session.DefaultStorageDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve session storage directory: %w", err)
		}
		return session.NewFileStorage(dir), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q (use file or keyring)", backend)
	}
}
