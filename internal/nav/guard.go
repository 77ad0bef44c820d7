package nav

import (
	"net/url"
	"strings"
)

// Decision is the terminal state of one guard evaluation.
type Decision int

const (
	DecisionAllowed Decision = iota
	DecisionRedirectLogin
	DecisionRedirectHome
)

func (d Decision) String() string {
	switch d {
	case DecisionAllowed:
		return "allowed"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionRedirectHome:
		return "redirect-home"
	default:
		return "unknown"
	}
}

// Result carries the guard's decision and the path the navigation should
// actually go to.
type Result struct {
	Decision  Decision
	Target    string
	RouteName string
}

// SessionState is the read-only view of the session the guard consults.
// Evaluation is synchronous; the in-memory flags are read directly, no
// credential refresh is involved.
type SessionState interface {
	IsAuthenticated() bool
	IsAdmin() bool
	IsEditorOrAdmin() bool
}

// Guard evaluates route authorization before every navigation.
type Guard struct {
	tree     *Tree
	sessions SessionState
	login    string
	home     string
}

// NewGuard creates a guard over the given route tree and session state.
func NewGuard(tree *Tree, sessions SessionState) *Guard {
	return &Guard{
		tree:     tree,
		sessions: sessions,
		login:    "/login",
		home:     "/",
	}
}

// Evaluate decides the fate of a navigation to fullPath (path plus
// optional query). The authentication check strictly precedes the role
// check: an unauthenticated user hitting an admin route goes to login,
// never home. The login redirect carries the originally requested full
// path so the flow can resume after authentication.
func (g *Guard) Evaluate(fullPath string) Result {
	pathOnly := fullPath
	if i := strings.IndexByte(fullPath, '?'); i >= 0 {
		pathOnly = fullPath[:i]
	}

	name, meta, _ := g.tree.Match(pathOnly)

	switch {
	case meta.RequiresAuth && !g.sessions.IsAuthenticated():
		return Result{
			Decision:  DecisionRedirectLogin,
			Target:    g.login + "?redirect=" + url.QueryEscape(fullPath),
			RouteName: name,
		}
	case meta.RequiresAdmin && !g.sessions.IsAdmin() && !g.sessions.IsEditorOrAdmin():
		return Result{
			Decision:  DecisionRedirectHome,
			Target:    g.home,
			RouteName: name,
		}
	default:
		return Result{
			Decision:  DecisionAllowed,
			Target:    fullPath,
			RouteName: name,
		}
	}
}
