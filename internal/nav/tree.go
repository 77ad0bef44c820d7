// Package nav implements the client-side navigation model: a static route
// tree annotated with authorization metadata, the guard that evaluates it
// before every navigation, and a navigator that tracks history and scroll
// state.
package nav

import "strings"

// Meta carries the authorization requirements of a route. A route
// inherits the flags of its ancestor layout routes.
type Meta struct {
	RequiresAuth  bool
	RequiresAdmin bool
}

func (m Meta) merge(other Meta) Meta {
	return Meta{
		RequiresAuth:  m.RequiresAuth || other.RequiresAuth,
		RequiresAdmin: m.RequiresAdmin || other.RequiresAdmin,
	}
}

// Route declares one node of the static route table. Path is relative to
// the parent route; ":name" segments match any single value. Defined at
// build time, never mutated at runtime.
type Route struct {
	Path     string
	Name     string
	Meta     Meta
	Children []*Route
}

type node struct {
	segment   string
	isParam   bool
	paramName string

	name     string
	terminal bool
	meta     Meta

	children   []*node
	paramChild *node
}

func (n *node) findChild(segment string) *node {
	for _, child := range n.children {
		if child.segment == segment {
			return child
		}
	}
	return nil
}

func (n *node) addChild(segment string) *node {
	if strings.HasPrefix(segment, ":") {
		if n.paramChild == nil {
			n.paramChild = &node{isParam: true, paramName: segment[1:]}
		}
		return n.paramChild
	}
	if child := n.findChild(segment); child != nil {
		return child
	}
	child := &node{segment: segment}
	n.children = append(n.children, child)
	return child
}

// Tree is the compiled route table.
type Tree struct {
	root *node
}

// NewTree compiles a route table into a matchable tree.
func NewTree(routes []*Route) *Tree {
	t := &Tree{root: &node{}}
	for _, route := range routes {
		t.insert(t.root, route)
	}
	return t
}

func (t *Tree) insert(parent *node, route *Route) {
	current := parent
	for _, segment := range splitPath(route.Path) {
		current = current.addChild(segment)
	}

	current.meta = current.meta.merge(route.Meta)
	if len(route.Children) == 0 {
		current.terminal = true
		if route.Name != "" {
			current.name = route.Name
		}
	}
	for _, child := range route.Children {
		t.insert(current, child)
	}
}

// Match resolves a concrete path against the tree. The returned Meta is
// the merge of every annotation on the matched node and its ancestors.
// An unmatched path reports ok=false with zero Meta; it is the caller's
// not-found concern, not an authorization decision.
func (t *Tree) Match(path string) (name string, meta Meta, ok bool) {
	current := t.root
	merged := current.meta

	for _, segment := range splitPath(path) {
		next := current.findChild(segment)
		if next == nil {
			next = current.paramChild
		}
		if next == nil {
			return "", Meta{}, false
		}
		current = next
		merged = merged.merge(current.meta)
	}

	if !current.terminal {
		return "", Meta{}, false
	}
	return current.name, merged, true
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
