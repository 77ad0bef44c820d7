package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/maison-edition/edition/internal/session"
)

type mockLogoutStore struct {
	authenticated bool
	loggedOut     bool
}

func (m *mockLogoutStore) Logout()               { m.loggedOut = true; m.authenticated = false }
func (m *mockLogoutStore) IsAuthenticated() bool { return m.authenticated }

func TestLogout_ClearsSession(t *testing.T) {
	store := &mockLogoutStore{authenticated: true}
	var output bytes.Buffer

	err := runLogout(WithLogoutStore(store), WithLogoutOutput(&output))
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	if !store.loggedOut {
		t.Error("expected the store to be logged out")
	}
	if !strings.Contains(output.String(), "Logged out") {
		t.Errorf("expected logout confirmation, got: %s", output.String())
	}
}

func TestLogout_NoActiveSession(t *testing.T) {
	var output bytes.Buffer

	err := runLogout(WithLogoutStore(&mockLogoutStore{}), WithLogoutOutput(&output))
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if !strings.Contains(output.String(), "No active session") {
		t.Errorf("expected no-session message, got: %s", output.String())
	}
}

type mockIdentityStore struct {
	identity session.Identity
	present  bool
}

func (m *mockIdentityStore) Identity() (session.Identity, bool) {
	return m.identity, m.present
}

func TestWhoami_SignedIn(t *testing.T) {
	store := &mockIdentityStore{
		identity: session.Identity{
			Email:   "admin@edition.test",
			Name:    "Ada",
			Surname: "Martin",
			Role:    session.RoleAdmin,
		},
		present: true,
	}
	var output bytes.Buffer

	err := runWhoami(WithWhoamiStore(store), WithWhoamiOutput(&output))
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	out := output.String()
	if !strings.Contains(out, "Ada Martin <admin@edition.test>") {
		t.Errorf("expected identity line, got: %s", out)
	}
	if !strings.Contains(out, "Role: ADMIN") {
		t.Errorf("expected role line, got: %s", out)
	}
}

func TestWhoami_NotSignedIn(t *testing.T) {
	var output bytes.Buffer

	err := runWhoami(WithWhoamiStore(&mockIdentityStore{}), WithWhoamiOutput(&output))
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if !strings.Contains(output.String(), "Not signed in") {
		t.Errorf("expected not-signed-in message, got: %s", output.String())
	}
}
