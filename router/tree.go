package router

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/dispatch/handler"
)

// nodeKind classifies one trie level by how it matches a path segment.
type nodeKind uint8

const (
	nodeStatic nodeKind = iota // literal text, exact match
	nodeParam                  // :name, binds one segment
	nodeWildcard               // *name or bare *, captures the remainder
)

// wildcardKey is the parameter name used for a bare "*" segment.
const wildcardKey = "*"

// node is one level of the matching trie. Static children live in a
// slice and are looked up by exact text (fan-out per node is small in
// practice); param and wildcard each get a single child slot.
type node[C handler.Context] struct {
	kind    nodeKind
	label   string // literal text for static nodes, parameter name otherwise
	pattern string // full registered pattern, set on handler-bearing nodes
	handler handler.HandlerFunc[C]

	static   []*node[C]
	param    *node[C]
	wildcard *node[C]
}

// insert walks/builds the trie for the given pattern segments and
// attaches the handler to the final node. Registration-time misuse
// panics with sentinel errors; see Router.Handle.
func (n *node[C]) insert(pattern string, segments []string, h handler.HandlerFunc[C]) {
	cur := n
	for i, seg := range segments {
		switch {
		case strings.HasPrefix(seg, ":"):
			name := seg[1:]
			if name == "" {
				panic(fmt.Errorf("%w: empty parameter name in %q", ErrInvalidPattern, pattern))
			}
			if cur.param == nil {
				cur.param = &node[C]{kind: nodeParam, label: name}
			} else if cur.param.label != name {
				panic(fmt.Errorf("%w: %q vs %q in %q", ErrParamNameConflict, cur.param.label, name, pattern))
			}
			cur = cur.param
		case strings.HasPrefix(seg, "*"):
			if i != len(segments)-1 {
				panic(fmt.Errorf("%w: %q in %q", ErrWildcardPosition, seg, pattern))
			}
			name := seg[1:]
			if name == "" {
				name = wildcardKey
			}
			if cur.wildcard == nil {
				cur.wildcard = &node[C]{kind: nodeWildcard, label: name}
			} else if cur.wildcard.label != name {
				panic(fmt.Errorf("%w: %q vs %q in %q", ErrParamNameConflict, cur.wildcard.label, name, pattern))
			}
			cur = cur.wildcard
		default:
			var child *node[C]
			for _, c := range cur.static {
				if c.label == seg {
					child = c
					break
				}
			}
			if child == nil {
				child = &node[C]{kind: nodeStatic, label: seg}
				cur.static = append(cur.static, child)
			}
			cur = child
		}
	}
	cur.pattern = pattern
	cur.handler = h
}

// find resolves path segments to a handler-bearing node, binding
// parameters into ps along the way. Matching is depth-first with a
// strict priority order at every node: static children, then the param
// child, then the wildcard child. A failed param branch removes its
// tentative binding before falling through, so bindings never leak out
// of abandoned subtrees. The wildcard captures the rest of the path as
// one value with no further backtracking.
func (n *node[C]) find(segments []string, ps *Params) *node[C] {
	if len(segments) == 0 {
		if n.handler != nil {
			return n
		}
		return nil
	}

	seg := segments[0]

	for _, c := range n.static {
		if c.label == seg {
			if m := c.find(segments[1:], ps); m != nil {
				return m
			}
			break // static labels are unique per node
		}
	}

	if n.param != nil {
		mark := ps.Len()
		ps.add(n.param.label, seg)
		if m := n.param.find(segments[1:], ps); m != nil {
			return m
		}
		ps.truncate(mark)
	}

	if n.wildcard != nil && n.wildcard.handler != nil {
		ps.add(n.wildcard.label, strings.Join(segments, "/"))
		return n.wildcard
	}

	return nil
}

// splitPath turns a path into its slash-delimited segments, ignoring
// leading and trailing slashes. The empty result denotes the root: a
// single trailing slash is normalized away, and "/" itself maps to the
// root node, which is its own registrable pattern.
func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	raw := strings.Split(p, "/")
	parts := raw[:0]
	for _, s := range raw {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return parts
}
