package tree

// Match walks the tree rooted at n with the given path segments and calls
// the handler of the node it ends on. It returns false when no handler
// applies.
//
// At every node the current segment is tried against, in order:
//
//  1. a literal child with the exact segment text;
//  2. the param child, whose rejection ends the match;
//  3. the wildcard child, which takes all remaining segments.
//
// There is no backtracking: a literal or param that accepts a segment wins
// even if a sibling branch could have matched the full path. This can
// shadow a sibling route and is part of the contract.
//
// The handler result is returned as is. An empty segment list matches the
// root handler.
func (n *Node[Req, Res]) Match(req Req, segments []string) (Res, bool) {
	h, params, ok := n.Resolve(segments)
	if !ok {
		var zero Res
		return zero, false
	}

	return h.Call(&Match[Req]{Request: req, Params: params}), true
}

// Resolve finds the handler for segments without calling it, returning the
// params extracted on the way.
func (n *Node[Req, Res]) Resolve(segments []string) (Handler[Req, Res], *Params, bool) {
	if n == nil {
		return nil, nil, false
	}

	params := &Params{}
	node := n

	for i := 0; i < len(segments); i++ {
		seg := segments[i]

		if child, ok := node.literals[seg]; ok {
			node = child
			continue
		}

		if node.param != nil {
			v, ok := node.param.segment.Match(seg)
			if !ok {
				return nil, nil, false
			}
			params.record(node.param.segment.Name(), v)
			node = node.param.node
			continue
		}

		if node.wildcard != nil {
			params.capture(segments[i:])
			node = node.wildcard.node
			break
		}

		return nil, nil, false
	}

	if node.handler == nil {
		return nil, nil, false
	}

	return node.handler, params, true
}
