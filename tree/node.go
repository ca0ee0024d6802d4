package tree

import (
	"slices"

	"github.com/vitalvas/pathtree/segment"
)

// Node is one level of an immutable route tree.
//
// A node may carry a handler, any number of literal children, one param
// child and one wildcard child at the same time. Nodes are never modified
// after construction, so a tree can be matched from any number of
// goroutines and shared between merged trees.
type Node[Req, Res any] struct {
	handler  Handler[Req, Res]
	literals map[string]*Node[Req, Res]
	param    *paramChild[Req, Res]
	wildcard *wildcardChild[Req, Res]

	// routes counts the handlers in this subtree.
	routes int
}

type paramChild[Req, Res any] struct {
	segment segment.Param
	node    *Node[Req, Res]
}

type wildcardChild[Req, Res any] struct {
	segment segment.Wildcard
	node    *Node[Req, Res]
}

// Empty returns a node with no handler and no children.
func Empty[Req, Res any]() *Node[Req, Res] {
	return &Node[Req, Res]{}
}

// Handler returns the handler registered at this node, or nil.
func (n *Node[Req, Res]) Handler() Handler[Req, Res] {
	if n == nil {
		return nil
	}
	return n.handler
}

// Literal returns the child registered for the literal segment name.
func (n *Node[Req, Res]) Literal(name string) (*Node[Req, Res], bool) {
	if n == nil {
		return nil, false
	}
	child, ok := n.literals[name]
	return child, ok
}

// Literals returns the literal child names in sorted order.
func (n *Node[Req, Res]) Literals() []string {
	if n == nil || len(n.literals) == 0 {
		return nil
	}
	names := make([]string, 0, len(n.literals))
	for name := range n.literals {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Param returns the param descriptor and child node, if any.
func (n *Node[Req, Res]) Param() (segment.Param, *Node[Req, Res], bool) {
	if n == nil || n.param == nil {
		return nil, nil, false
	}
	return n.param.segment, n.param.node, true
}

// Wildcard returns the wildcard descriptor and child node, if any.
func (n *Node[Req, Res]) Wildcard() (segment.Wildcard, *Node[Req, Res], bool) {
	if n == nil || n.wildcard == nil {
		return segment.Wildcard{}, nil, false
	}
	return n.wildcard.segment, n.wildcard.node, true
}

// Len returns the number of routes in the tree, i.e. the nodes carrying a
// handler. It does not walk the tree.
func (n *Node[Req, Res]) Len() int {
	if n == nil {
		return 0
	}
	return n.routes
}

// countRoutes sets n.routes from the handler and the direct children.
func (n *Node[Req, Res]) countRoutes() *Node[Req, Res] {
	n.routes = 0
	if n.handler != nil {
		n.routes++
	}
	for _, child := range n.literals {
		n.routes += child.Len()
	}
	if n.param != nil {
		n.routes += n.param.node.Len()
	}
	if n.wildcard != nil {
		n.routes += n.wildcard.node.Len()
	}
	return n
}

// IsEmpty reports whether the node has neither a handler nor children.
func (n *Node[Req, Res]) IsEmpty() bool {
	return n == nil ||
		(n.handler == nil && len(n.literals) == 0 && n.param == nil && n.wildcard == nil)
}
