package tree

// Handler is the application value stored at a route.
//
// Call receives the match context and returns the application result, which
// the tree never inspects. Merge combines two handlers registered at the
// same position when trees are merged; it is the only conflict resolution
// hook and has no default.
type Handler[Req, Res any] interface {
	Call(m *Match[Req]) Res
	Merge(other Handler[Req, Res]) Handler[Req, Res]
}

// Match is the context passed to a matched handler: the original request
// and the parameters extracted on the way down the tree.
type Match[Req any] struct {
	Request Req
	Params  *Params
}

// Int returns an integer parameter.
func (m *Match[Req]) Int(name string) (int, bool) {
	return m.Params.Int(name)
}

// String returns a string parameter.
func (m *Match[Req]) String(name string) (string, bool) {
	return m.Params.String(name)
}

// Value returns an application-typed parameter.
func (m *Match[Req]) Value(name string) (any, bool) {
	return m.Params.Value(name)
}

// Wildcard returns the segments captured by a wildcard, in order.
func (m *Match[Req]) Wildcard() []string {
	return m.Params.Wildcard()
}
