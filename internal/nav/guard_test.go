package nav

import "testing"

// fakeSession is a fixed-flag SessionState.
type fakeSession struct {
	authenticated bool
	admin         bool
	editor        bool
}

func (f *fakeSession) IsAuthenticated() bool { return f.authenticated }
func (f *fakeSession) IsAdmin() bool         { return f.admin }
func (f *fakeSession) IsEditorOrAdmin() bool { return f.editor || f.admin }

func TestGuard_Evaluate(t *testing.T) {
	tree := NewTree(DefaultRoutes())

	tests := []struct {
		name       string
		session    fakeSession
		path       string
		wantDec    Decision
		wantTarget string
	}{
		{
			name:       "public route unauthenticated",
			session:    fakeSession{},
			path:       "/livres",
			wantDec:    DecisionAllowed,
			wantTarget: "/livres",
		},
		{
			name:       "admin route unauthenticated redirects to login with original path",
			session:    fakeSession{},
			path:       "/admin",
			wantDec:    DecisionRedirectLogin,
			wantTarget: "/login?redirect=%2Fadmin",
		},
		{
			name:       "admin child route unauthenticated goes to login, not home",
			session:    fakeSession{},
			path:       "/admin/livres",
			wantDec:    DecisionRedirectLogin,
			wantTarget: "/login?redirect=%2Fadmin%2Flivres",
		},
		{
			name:       "admin route as plain user redirects home",
			session:    fakeSession{authenticated: true},
			path:       "/admin",
			wantDec:    DecisionRedirectHome,
			wantTarget: "/",
		},
		{
			name:       "admin route as admin is allowed",
			session:    fakeSession{authenticated: true, admin: true},
			path:       "/admin",
			wantDec:    DecisionAllowed,
			wantTarget: "/admin",
		},
		{
			name:       "editor is sufficient for the back office",
			session:    fakeSession{authenticated: true, editor: true},
			path:       "/admin/articles",
			wantDec:    DecisionAllowed,
			wantTarget: "/admin/articles",
		},
		{
			name:       "meta is inherited by parameterized admin children",
			session:    fakeSession{authenticated: true},
			path:       "/admin/livres/42/chapitres",
			wantDec:    DecisionRedirectHome,
			wantTarget: "/",
		},
		{
			name:       "query is preserved in the login redirect",
			session:    fakeSession{},
			path:       "/admin/livres?page=2",
			wantDec:    DecisionRedirectLogin,
			wantTarget: "/login?redirect=%2Fadmin%2Flivres%3Fpage%3D2",
		},
		{
			name:       "login route is always reachable",
			session:    fakeSession{},
			path:       "/login",
			wantDec:    DecisionAllowed,
			wantTarget: "/login",
		},
		{
			name:       "unknown route falls through to the not-found handling",
			session:    fakeSession{},
			path:       "/nonexistent",
			wantDec:    DecisionAllowed,
			wantTarget: "/nonexistent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := NewGuard(tree, &tt.session)
			result := guard.Evaluate(tt.path)

			if result.Decision != tt.wantDec {
				t.Errorf("decision = %v, want %v", result.Decision, tt.wantDec)
			}
			if result.Target != tt.wantTarget {
				t.Errorf("target = %q, want %q", result.Target, tt.wantTarget)
			}
		})
	}
}

func TestTree_Match(t *testing.T) {
	tree := NewTree(DefaultRoutes())

	tests := []struct {
		path     string
		wantName string
		wantOK   bool
	}{
		{"/", "home", true},
		{"/livres", "books", true},
		{"/livres/7", "book-detail", true},
		{"/livres/7/lire/3", "read-chapter", true},
		{"/blog/mon-article", "article-detail", true},
		{"/admin", "admin-dashboard", true},
		{"/admin/livres/7/chapitres", "admin-chapters", true},
		{"/nope", "", false},
		{"/admin/nope", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			name, _, ok := tree.Match(tt.path)
			if ok != tt.wantOK || name != tt.wantName {
				t.Errorf("Match(%q) = (%q, %v), want (%q, %v)", tt.path, name, ok, tt.wantName, tt.wantOK)
			}
		})
	}
}

func TestTree_MetaInheritance(t *testing.T) {
	tree := NewTree(DefaultRoutes())

	_, meta, ok := tree.Match("/admin/categories")
	if !ok {
		t.Fatal("expected /admin/categories to match")
	}
	if !meta.RequiresAuth || !meta.RequiresAdmin {
		t.Errorf("meta = %+v, want both flags inherited from /admin", meta)
	}

	_, meta, ok = tree.Match("/livres/1")
	if !ok {
		t.Fatal("expected /livres/1 to match")
	}
	if meta.RequiresAuth || meta.RequiresAdmin {
		t.Errorf("public route carries auth requirements: %+v", meta)
	}
}
