package tree

import (
	"maps"

	"github.com/vitalvas/pathtree/segment"
)

// NodeBuilder assembles a single Node. It is not safe for concurrent use;
// Node returns an immutable snapshot that is.
type NodeBuilder[Req, Res any] struct {
	handler  Handler[Req, Res]
	literals map[string]*Node[Req, Res]
	param    *paramChild[Req, Res]
	wildcard *wildcardChild[Req, Res]
}

// NewNodeBuilder returns an empty node builder.
func NewNodeBuilder[Req, Res any]() *NodeBuilder[Req, Res] {
	return &NodeBuilder[Req, Res]{}
}

// SetHandler sets the handler of the node, replacing any previous one.
func (b *NodeBuilder[Req, Res]) SetHandler(h Handler[Req, Res]) {
	b.handler = h
}

// AddLiteral registers child under the literal segment name.
func (b *NodeBuilder[Req, Res]) AddLiteral(name string, child *Node[Req, Res]) error {
	if !segment.ValidLiteral(name) {
		return errInvalidLiteral(name)
	}
	if child == nil {
		return errNilChild("literal", name)
	}
	if _, exists := b.literals[name]; exists {
		return errDuplicateLiteral(name)
	}
	if b.literals == nil {
		b.literals = make(map[string]*Node[Req, Res])
	}
	b.literals[name] = child
	return nil
}

// SetParam registers the param child. A node holds at most one.
func (b *NodeBuilder[Req, Res]) SetParam(p segment.Param, child *Node[Req, Res]) error {
	if p == nil {
		return errNilChild("param", "")
	}
	if b.param != nil {
		return errDuplicateParam(b.param.segment.Name(), p.Name())
	}
	if child == nil {
		return errNilChild("param", p.Name())
	}
	b.param = &paramChild[Req, Res]{segment: p, node: child}
	return nil
}

// SetWildcard registers the wildcard child. A node holds at most one.
func (b *NodeBuilder[Req, Res]) SetWildcard(w segment.Wildcard, child *Node[Req, Res]) error {
	if b.wildcard != nil {
		return errDuplicateWildcard(b.wildcard.segment.Name(), w.Name())
	}
	if child == nil {
		return errNilChild("wildcard", w.Name())
	}
	b.wildcard = &wildcardChild[Req, Res]{segment: w, node: child}
	return nil
}

// Node returns an immutable snapshot of the builder state. Later calls on
// the builder do not affect nodes already returned.
func (b *NodeBuilder[Req, Res]) Node() *Node[Req, Res] {
	n := &Node[Req, Res]{
		handler:  b.handler,
		literals: maps.Clone(b.literals),
		param:    b.param,
		wildcard: b.wildcard,
	}
	return n.countRoutes()
}
