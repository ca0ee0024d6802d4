package httptree

import (
	"net/http"

	"github.com/vitalvas/pathtree/tree"
)

// MiddlewareFunc wraps a handler. Middlewares registered with Router.Use
// run before routing, outermost first.
type MiddlewareFunc func(http.Handler) http.Handler

// Router implements http.Handler over a route table. Routes may be added
// while the router is serving.
type Router struct {
	// NotFoundHandler is called when no route matches.
	// If nil, http.NotFoundHandler() is used.
	NotFoundHandler http.Handler

	table       *tree.Table[*http.Request, http.Handler]
	middlewares []MiddlewareFunc
}

// NewRouter returns a router serving the routes of table. A nil table is
// replaced with an empty one.
func NewRouter(table *tree.Table[*http.Request, http.Handler]) *Router {
	if table == nil {
		table = tree.NewTable[*http.Request, http.Handler](nil)
	}
	return &Router{table: table}
}

// Table returns the route table served by the router.
func (r *Router) Table() *tree.Table[*http.Request, http.Handler] {
	return r.table
}

// Use appends middlewares to the chain run for every request.
func (r *Router) Use(mw ...MiddlewareFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

// Handle registers h for method on the route described by template.
func (r *Router) Handle(method, template string, h http.Handler) error {
	n, err := tree.Parse[*http.Request, http.Handler](template, Methods{method: h})
	if err != nil {
		return err
	}
	return r.table.Add(n)
}

// HandleFunc registers f for method on the route described by template.
func (r *Router) HandleFunc(method, template string, f func(http.ResponseWriter, *http.Request)) error {
	return r.Handle(method, template, http.HandlerFunc(f))
}

// HandleAny registers h for every method on the route described by
// template.
func (r *Router) HandleAny(template string, h http.Handler) error {
	n, err := tree.Parse(template, AnyMethod(h))
	if err != nil {
		return err
	}
	return r.table.Add(n)
}

// Mount merges a prebuilt tree into the served routes.
func (r *Router) Mount(n *Node) error {
	return r.table.Add(n)
}

// ServeHTTP dispatches the request to the handler of the matching route.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	var h http.Handler = http.HandlerFunc(r.route)
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		h = r.middlewares[i](h)
	}
	h.ServeHTTP(w, req)
}

func (r *Router) route(w http.ResponseWriter, req *http.Request) {
	h, ok := r.table.Match(req, tree.SplitPath(req.URL.Path))
	if !ok || h == nil {
		h = r.NotFoundHandler
		if h == nil {
			h = http.NotFoundHandler()
		}
	}
	h.ServeHTTP(w, req)
}
