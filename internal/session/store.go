// Package session owns the client-side session: the bearer token, the
// authenticated identity, and their durable mirror. The store is the single
// writer of session state; the request pipeline and the route guard hold a
// shared reference to it.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/maison-edition/edition/internal/models"
)

// Fixed storage keys: a raw bearer token and a JSON-serialized identity.
const (
	KeyToken    = "token"
	KeyIdentity = "user"
)

// ErrSessionSuperseded is returned when a login or register response
// resolves after a later logout cleared the session. The stale credential
// is discarded instead of resurrecting the session.
var ErrSessionSuperseded = errors.New("session: superseded by a later logout")

// ErrNoExchanger is returned when Login or Register is called before the
// store has been wired to an identity service.
var ErrNoExchanger = errors.New("session: no auth exchanger configured")

// Identity is the authenticated user as stored alongside the token.
type Identity struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Role    Role   `json:"role"`
}

// AuthExchanger performs the credential exchanges with the identity
// service. The API client implements it; the indirection keeps this
// package free of transport concerns.
type AuthExchanger interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
}

// Store holds the current session. Token and identity are set and cleared
// together, never one without the other. The generation counter fences
// mutations so a network response that raced with a logout cannot commit.
type Store struct {
	mu        sync.Mutex
	storage   Storage
	log       zerolog.Logger
	exchanger AuthExchanger

	token    string
	identity *Identity
	gen      uint64
}

// NewStore creates a session store backed by the given storage and
// rehydrates any previously persisted session. Malformed or absent
// storage yields an unauthenticated initial state, never an error.
func NewStore(storage Storage, log zerolog.Logger) *Store {
	s := &Store{storage: storage, log: log}
	s.restore()
	return s
}

// SetExchanger wires the identity service. Called once during startup,
// after the API client exists.
func (s *Store) SetExchanger(ex AuthExchanger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exchanger = ex
}

func (s *Store) restore() {
	token, err := s.storage.Get(KeyToken)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn().Err(err).Msg("Failed to read persisted token")
		}
		return
	}
	// An empty stored token is no token. Restoring an identity without
	// one would split the pair.
	if token == "" {
		return
	}

	blob, err := s.storage.Get(KeyIdentity)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn().Err(err).Msg("Failed to read persisted identity")
		}
		return
	}

	var identity Identity
	if err := json.Unmarshal([]byte(blob), &identity); err != nil {
		// Corrupted storage is treated as no prior session.
		s.log.Warn().Err(err).Msg("Persisted identity is malformed, starting unauthenticated")
		return
	}

	if role, ok := ParseRole(string(identity.Role)); !ok {
		s.log.Warn().Str("role", string(identity.Role)).Msg("Unrecognized persisted role, demoting to USER")
		identity.Role = role
	}

	s.token = token
	s.identity = &identity
}

// Token returns the current bearer token, empty when unauthenticated.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Identity returns a copy of the authenticated identity.
func (s *Store) Identity() (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

// IsAuthenticated reports whether a session token is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// IsAdmin reports whether the current identity has the ADMIN role.
func (s *Store) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity != nil && s.identity.Role == RoleAdmin
}

// IsEditorOrAdmin reports whether the current identity can access the
// back-office (EDITOR is sufficient, ADMIN is sufficient).
func (s *Store) IsEditorOrAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity != nil && (s.identity.Role == RoleEditor || s.identity.Role == RoleAdmin)
}

// Login exchanges credentials with the identity service. On success the
// token and identity are set atomically and mirrored to durable storage;
// on failure prior state is left untouched and the service error is
// surfaced unchanged.
func (s *Store) Login(ctx context.Context, email, secret string) error {
	ex, gen, err := s.snapshot()
	if err != nil {
		return err
	}

	resp, err := ex.Login(ctx, models.LoginRequest{Email: email, Secret: secret})
	if err != nil {
		return err
	}
	return s.commit(gen, resp)
}

// Register creates an account. The registration response carries a usable
// session token, so a successful register behaves exactly like a login.
func (s *Store) Register(ctx context.Context, req models.RegisterRequest) error {
	ex, gen, err := s.snapshot()
	if err != nil {
		return err
	}

	resp, err := ex.Register(ctx, req)
	if err != nil {
		return err
	}
	return s.commit(gen, resp)
}

func (s *Store) snapshot() (AuthExchanger, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.exchanger == nil {
		return nil, 0, ErrNoExchanger
	}
	return s.exchanger, s.gen, nil
}

func (s *Store) commit(gen uint64, resp *models.AuthResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A logout (or unauthorized eviction) moved the generation while the
	// exchange was in flight: the response is stale, drop it.
	if s.gen != gen {
		return ErrSessionSuperseded
	}

	role, ok := ParseRole(resp.Role)
	if !ok {
		s.log.Warn().Str("role", resp.Role).Msg("Unrecognized role from identity service, demoting to USER")
	}

	s.token = resp.Token
	s.identity = &Identity{
		Email:   resp.Email,
		Name:    resp.Name,
		Surname: resp.Surname,
		Role:    role,
	}
	s.persistLocked()
	return nil
}

// Memory first, then token, then identity. Durable storage is a mirror;
// a write failure is logged, not fatal.
func (s *Store) persistLocked() {
	if err := s.storage.Set(KeyToken, s.token); err != nil {
		s.log.Warn().Err(err).Msg("Failed to persist token")
	}
	blob, err := json.Marshal(s.identity)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to marshal identity")
		return
	}
	if err := s.storage.Set(KeyIdentity, string(blob)); err != nil {
		s.log.Warn().Err(err).Msg("Failed to persist identity")
	}
}

// Logout clears the session in memory and removes both durable entries.
// Idempotent; never contacts the server.
func (s *Store) Logout() {
	s.Evict()
}

// Evict clears the session unconditionally. It is also the request
// pipeline's reaction to an unauthorized response, so it must always clear
// durable storage even if the in-memory state was already gone.
func (s *Store) Evict() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.token = ""
	s.identity = nil

	if err := s.storage.Delete(KeyToken); err != nil {
		s.log.Warn().Err(err).Msg("Failed to delete persisted token")
	}
	if err := s.storage.Delete(KeyIdentity); err != nil {
		s.log.Warn().Err(err).Msg("Failed to delete persisted identity")
	}
}
