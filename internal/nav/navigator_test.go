package nav

import "testing"

func newTestNavigator(session SessionState) *Navigator {
	return NewNavigator(NewGuard(NewTree(DefaultRoutes()), session))
}

func TestNavigator_ScrollRestoration(t *testing.T) {
	n := newTestNavigator(&fakeSession{})

	n.Navigate("/livres")
	n.SetScroll(840)
	n.Navigate("/livres/7")

	// Fresh navigation resets to top.
	if got := n.Scroll(); got != 0 {
		t.Errorf("scroll after fresh navigation = %d, want 0", got)
	}

	// Back restores the saved position.
	if !n.Back() {
		t.Fatal("expected back to succeed")
	}
	if got := n.Current(); got != "/livres" {
		t.Errorf("current = %q, want /livres", got)
	}
	if got := n.Scroll(); got != 840 {
		t.Errorf("restored scroll = %d, want 840", got)
	}

	// Forward returns to the detail page, again at the top.
	if !n.Forward() {
		t.Fatal("expected forward to succeed")
	}
	if got := n.Scroll(); got != 0 {
		t.Errorf("scroll after forward = %d, want 0", got)
	}
}

func TestNavigator_RedirectRecordsTarget(t *testing.T) {
	n := newTestNavigator(&fakeSession{})

	result := n.Navigate("/admin")

	if result.Decision != DecisionRedirectLogin {
		t.Fatalf("decision = %v, want redirect-login", result.Decision)
	}
	if got := n.Current(); got != "/login?redirect=%2Fadmin" {
		t.Errorf("current = %q, want the login redirect target", got)
	}
}

func TestNavigator_BackReRunsGuard(t *testing.T) {
	session := &fakeSession{authenticated: true, admin: true}
	n := newTestNavigator(session)

	n.Navigate("/admin")
	n.Navigate("/admin/livres")

	// Session evicted between navigations: back into the admin area must
	// redirect instead of restoring the entry.
	session.authenticated = false
	session.admin = false

	if !n.Back() {
		t.Fatal("expected back to succeed")
	}
	if got := n.Current(); got != "/login?redirect=%2Fadmin" {
		t.Errorf("current = %q, want login redirect", got)
	}
}

func TestNavigator_HardNavigateDropsHistory(t *testing.T) {
	n := newTestNavigator(&fakeSession{})

	n.Navigate("/livres")
	n.SetScroll(300)
	n.Navigate("/blog")

	n.HardNavigate("/login")

	if got := n.Current(); got != "/login" {
		t.Errorf("current = %q, want /login", got)
	}
	if n.Back() {
		t.Error("expected no history after a hard navigation")
	}
	if got := n.Scroll(); got != 0 {
		t.Errorf("scroll = %d, want 0", got)
	}
}

func TestNavigator_ForwardHistoryDiscardedOnNavigate(t *testing.T) {
	n := newTestNavigator(&fakeSession{})

	n.Navigate("/livres")
	n.Navigate("/blog")
	n.Back()
	n.Navigate("/evenements")

	if n.Forward() {
		t.Error("expected no forward history after a fresh navigation")
	}
	if got := n.Current(); got != "/evenements" {
		t.Errorf("current = %q, want /evenements", got)
	}
}
