package tree

// Route describes a node carrying a handler, as seen by Walk.
type Route[Req, Res any] struct {
	// Template is the route path in Parse syntax, e.g. "/projects/{id:int}".
	Template string
	// Handler is the handler stored at the node.
	Handler Handler[Req, Res]
	// Node is the node itself; its children are still to be visited.
	Node *Node[Req, Res]
}

// WalkFunc is called for every node that carries a handler. Returning
// SkipNode skips the subtree below the route; any other error stops the
// walk and is returned by Walk.
type WalkFunc[Req, Res any] func(route Route[Req, Res]) error

// Walk visits the tree depth first. At each node, its own route comes
// first, then literal children in sorted order, the param child and the
// wildcard child. Params without a template constraint (String, Custom)
// render as "{name}".
func (n *Node[Req, Res]) Walk(fn WalkFunc[Req, Res]) error {
	if n == nil {
		return nil
	}
	return n.walk(fn, nil)
}

func (n *Node[Req, Res]) walk(fn WalkFunc[Req, Res], path []string) error {
	if n.handler != nil {
		err := fn(Route[Req, Res]{Template: formatPath(path), Handler: n.handler, Node: n})
		if err == SkipNode {
			return nil
		}
		if err != nil {
			return err
		}
	}

	for _, name := range n.Literals() {
		if err := n.literals[name].walk(fn, appendPath(path, name)); err != nil {
			return err
		}
	}

	if n.param != nil {
		if err := n.param.node.walk(fn, appendPath(path, paramTemplate(n.param.segment))); err != nil {
			return err
		}
	}

	if n.wildcard != nil {
		if err := n.wildcard.node.walk(fn, appendPath(path, wildcardTemplate(n.wildcard.segment))); err != nil {
			return err
		}
	}

	return nil
}

// Routes returns the templates of all routes in walk order.
func (n *Node[Req, Res]) Routes() []string {
	var out []string
	_ = n.Walk(func(route Route[Req, Res]) error {
		out = append(out, route.Template)
		return nil
	})
	return out
}
