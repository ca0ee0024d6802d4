package httptree

import (
	"context"
	"net/http"

	"github.com/vitalvas/pathtree/tree"
)

type paramsContextKey struct{}

// Params returns the route params of the current request. It is nil when
// the request was not routed through a tree; the accessors of a nil
// *tree.Params report every param as absent.
func Params(r *http.Request) *tree.Params {
	if p, ok := r.Context().Value(paramsContextKey{}).(*tree.Params); ok {
		return p
	}
	return nil
}

// Wildcard returns the path segments captured by a wildcard route.
func Wildcard(r *http.Request) []string {
	return Params(r).Wildcard()
}

// SetParams returns a shallow copy of r carrying p. This is intended for
// testing handlers without a router.
func SetParams(r *http.Request, p *tree.Params) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), paramsContextKey{}, p))
}
