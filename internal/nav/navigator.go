package nav

type historyEntry struct {
	path   string
	scroll int
}

// Navigator commits guard-checked navigations and keeps the history
// needed for scroll restoration: a fresh navigation resets to top, going
// back restores the offset saved for that entry.
type Navigator struct {
	guard   *Guard
	entries []historyEntry
	idx     int
}

// NewNavigator creates a navigator positioned at the home route.
func NewNavigator(guard *Guard) *Navigator {
	return &Navigator{
		guard:   guard,
		entries: []historyEntry{{path: "/"}},
	}
}

// Navigate evaluates the guard and commits the resulting target as a new
// history entry, discarding any forward history.
func (n *Navigator) Navigate(fullPath string) Result {
	result := n.guard.Evaluate(fullPath)
	n.push(result.Target)
	return result
}

func (n *Navigator) push(path string) {
	n.entries = append(n.entries[:n.idx+1], historyEntry{path: path})
	n.idx = len(n.entries) - 1
}

// Back moves to the previous history entry, re-running the guard: if the
// session changed since the entry was recorded the redirect wins over the
// saved position. Returns false when there is no previous entry.
func (n *Navigator) Back() bool {
	if n.idx == 0 {
		return false
	}
	previous := n.entries[n.idx-1]

	result := n.guard.Evaluate(previous.path)
	if result.Decision != DecisionAllowed {
		n.push(result.Target)
		return true
	}

	n.idx--
	return true
}

// Forward moves to the next history entry when one exists.
func (n *Navigator) Forward() bool {
	if n.idx >= len(n.entries)-1 {
		return false
	}
	n.idx++
	return true
}

// SetScroll records the scroll offset of the current entry so it can be
// restored when the user comes back to it.
func (n *Navigator) SetScroll(offset int) {
	n.entries[n.idx].scroll = offset
}

// Current returns the path of the current history entry.
func (n *Navigator) Current() string {
	return n.entries[n.idx].path
}

// Scroll returns the offset to apply after the current navigation:
// the saved position for revisited entries, zero for fresh ones.
func (n *Navigator) Scroll() int {
	return n.entries[n.idx].scroll
}

// HardNavigate is the full page replacement analog: history and scroll
// state are discarded entirely. The session-expired subscriber uses it to
// force the user to the login route.
func (n *Navigator) HardNavigate(path string) {
	n.entries = []historyEntry{{path: path}}
	n.idx = 0
}
