package httptree

import (
	"net/http"
	"slices"
	"strings"

	"github.com/vitalvas/pathtree/tree"
)

// Node is a route tree serving HTTP handlers.
type Node = tree.Node[*http.Request, http.Handler]

// Methods maps request methods to handlers for one route.
//
// A HEAD request is served by the GET handler when no HEAD handler is
// registered. Other unregistered methods get 405 Method Not Allowed with
// an Allow header listing the registered ones.
type Methods map[string]http.Handler

// Call returns the handler for the request method, bound to the params of
// the match.
func (m Methods) Call(match *tree.Match[*http.Request]) http.Handler {
	req := match.Request

	h, ok := m[req.Method]
	if !ok && req.Method == http.MethodHead {
		h, ok = m[http.MethodGet]
	}
	if !ok {
		return methodNotAllowed(m.Allowed())
	}

	return withParams(h, match.Params)
}

// Merge combines the methods of both handlers. When both register the same
// method, other's handler is kept. A handler that is not a Methods replaces
// m entirely.
func (m Methods) Merge(other tree.Handler[*http.Request, http.Handler]) tree.Handler[*http.Request, http.Handler] {
	o, ok := other.(Methods)
	if !ok {
		return other
	}

	out := make(Methods, len(m)+len(o))
	for method, h := range m {
		out[method] = h
	}
	for method, h := range o {
		out[method] = h
	}

	return out
}

// Allowed returns the registered methods in sorted order, with HEAD added
// when GET is registered.
func (m Methods) Allowed() []string {
	out := make([]string, 0, len(m)+1)
	for method := range m {
		out = append(out, method)
	}
	if _, ok := m[http.MethodGet]; ok {
		if _, ok := m[http.MethodHead]; !ok {
			out = append(out, http.MethodHead)
		}
	}
	slices.Sort(out)
	return out
}

// AnyMethod serves h for every request method.
func AnyMethod(h http.Handler) tree.Handler[*http.Request, http.Handler] {
	return anyMethod{h: h}
}

type anyMethod struct {
	h http.Handler
}

func (a anyMethod) Call(match *tree.Match[*http.Request]) http.Handler {
	return withParams(a.h, match.Params)
}

func (a anyMethod) Merge(other tree.Handler[*http.Request, http.Handler]) tree.Handler[*http.Request, http.Handler] {
	return other
}

func withParams(h http.Handler, p *tree.Params) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, SetParams(r, p))
	})
}

// methodNotAllowed replies with 405. The Allow header is required on 405
// responses (RFC 9110 Section 15.5.6).
func methodNotAllowed(allowed []string) http.Handler {
	allow := strings.Join(allowed, ", ")
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Allow", allow)
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
}
