package tree

import (
	"strings"

	"github.com/vitalvas/pathtree/segment"
)

// Builder composes a tree declaratively. Every nested builder is one path
// segment below its parent, so the call graph has the shape of the tree:
//
//	root, err := tree.NewBuilder[Req, Res]().
//		Handler(home).
//		Path("projects", tree.NewBuilder[Req, Res]().
//			Handler(listProjects).
//			Param(segment.Number("projectId"), tree.NewBuilder[Req, Res]().
//				Handler(showProject))).
//		Build()
//
// The first configuration error is recorded by the call that caused it;
// later calls are ignored and Build returns the error.
type Builder[Req, Res any] struct {
	node *NodeBuilder[Req, Res]
	err  error
}

// NewBuilder returns an empty builder.
func NewBuilder[Req, Res any]() *Builder[Req, Res] {
	return &Builder[Req, Res]{node: NewNodeBuilder[Req, Res]()}
}

// Handler attaches h to the current level.
func (b *Builder[Req, Res]) Handler(h Handler[Req, Res]) *Builder[Req, Res] {
	if b.err == nil {
		b.node.SetHandler(h)
	}
	return b
}

// Path adds a literal child. A leading slash is ignored.
func (b *Builder[Req, Res]) Path(name string, child *Builder[Req, Res]) *Builder[Req, Res] {
	name = strings.TrimPrefix(name, "/")
	return b.attach(child, func(n *Node[Req, Res]) error {
		return b.node.AddLiteral(name, n)
	})
}

// Param adds the param child.
func (b *Builder[Req, Res]) Param(p segment.Param, child *Builder[Req, Res]) *Builder[Req, Res] {
	return b.attach(child, func(n *Node[Req, Res]) error {
		return b.node.SetParam(p, n)
	})
}

// StringParam adds a string param child. A leading "/:" or ":" is ignored.
func (b *Builder[Req, Res]) StringParam(name string, child *Builder[Req, Res]) *Builder[Req, Res] {
	return b.Param(segment.String(trimParamPrefix(name)), child)
}

// Wildcard adds an anonymous wildcard child.
func (b *Builder[Req, Res]) Wildcard(child *Builder[Req, Res]) *Builder[Req, Res] {
	return b.NamedWildcard("", child)
}

// NamedWildcard adds a named wildcard child.
func (b *Builder[Req, Res]) NamedWildcard(name string, child *Builder[Req, Res]) *Builder[Req, Res] {
	return b.attach(child, func(n *Node[Req, Res]) error {
		return b.node.SetWildcard(segment.NewWildcard(name), n)
	})
}

func (b *Builder[Req, Res]) attach(child *Builder[Req, Res], add func(*Node[Req, Res]) error) *Builder[Req, Res] {
	if b.err != nil {
		return b
	}

	var n *Node[Req, Res]
	if child != nil {
		built, err := child.Build()
		if err != nil {
			b.err = err
			return b
		}
		n = built
	}

	b.err = add(n)
	return b
}

// Err returns the first configuration error, if any.
func (b *Builder[Req, Res]) Err() error {
	return b.err
}

// Build returns the immutable tree.
func (b *Builder[Req, Res]) Build() (*Node[Req, Res], error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.node.Node(), nil
}

// MustBuild is like Build but panics on error.
func (b *Builder[Req, Res]) MustBuild() *Node[Req, Res] {
	n, err := b.Build()
	if err != nil {
		panic(err)
	}
	return n
}
