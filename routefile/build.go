package routefile

import (
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/vitalvas/pathtree/tree"
)

// Text codes of route file errors, next to the tree configuration codes.
const (
	CodeDuplicateRoute = "DUPLICATE_ROUTE"
	CodeUnknownHandler = "UNKNOWN_HANDLER"
	CodeMissingField   = "MISSING_FIELD"
)

// Resolver returns the handler for a route file entry.
type Resolver[Req, Res any] func(e Entry) (tree.Handler[Req, Res], error)

// Registry maps handler names to handlers.
type Registry[Req, Res any] map[string]tree.Handler[Req, Res]

// Resolve looks up the handler named by e.
func (r Registry[Req, Res]) Resolve(e Entry) (tree.Handler[Req, Res], error) {
	h, ok := r[e.Handler]
	if !ok {
		return nil, goerrors.New(fmt.Sprintf("routefile: unknown handler %q for %s", e.Handler, e.Path),
			goerrors.CategoryValidation).
			WithTextCode(CodeUnknownHandler).
			WithMetadata(map[string]any{"handler": e.Handler, "path": e.Path})
	}
	return h, nil
}

// Build parses every entry of f and merges the routes into one tree with
// tree.MergeStrict, so entries sharing a route are combined by their
// handlers' Merge. Two entries claiming the same method on the same route,
// even when written differently ("/a/{id}" and "a/{id:string}"), are
// rejected. An entry without methods claims every method.
func Build[Req, Res any](f *File, resolve Resolver[Req, Res]) (*tree.Node[Req, Res], error) {
	root := tree.Empty[Req, Res]()
	seen := make(map[string]map[string]int, len(f.Routes))

	for i, e := range f.Routes {
		if e.Handler == "" {
			return nil, missingField(i, e, "handler")
		}

		h, err := resolve(e)
		if err != nil {
			return nil, err
		}

		route, err := tree.Parse(e.Path, h)
		if err != nil {
			return nil, fmt.Errorf("routefile: route %d: %w", i, err)
		}

		key := canonical(route)
		claimed := seen[key]
		if claimed == nil {
			claimed = make(map[string]int, 1)
			seen[key] = claimed
		}
		if method, prev, ok := overlap(claimed, e.Methods); ok {
			return nil, goerrors.New(fmt.Sprintf("routefile: route %d duplicates route %d (%s %s)", i, prev, method, key),
				goerrors.CategoryConflict).
				WithTextCode(CodeDuplicateRoute).
				WithMetadata(map[string]any{"path": key, "method": method, "index": i, "previous": prev})
		}
		claim(claimed, e.Methods, i)

		root, err = tree.MergeStrict(root, route)
		if err != nil {
			return nil, fmt.Errorf("routefile: route %d: %w", i, err)
		}
	}

	return root, nil
}

// canonical renders a single-route tree back to its template.
func canonical[Req, Res any](n *tree.Node[Req, Res]) string {
	routes := n.Routes()
	if len(routes) == 0 {
		return ""
	}
	return routes[0]
}

// anyMethod marks a route claimed by an entry without methods.
const anyMethod = "*"

// overlap reports the first method of methods already claimed, with the
// index of the entry holding it.
func overlap(claimed map[string]int, methods MethodList) (string, int, bool) {
	if prev, ok := claimed[anyMethod]; ok {
		return anyMethod, prev, true
	}
	if len(methods) == 0 {
		for method, prev := range claimed {
			return method, prev, true
		}
		return "", 0, false
	}
	for _, method := range methods {
		if prev, ok := claimed[strings.ToUpper(method)]; ok {
			return strings.ToUpper(method), prev, true
		}
	}
	return "", 0, false
}

func claim(claimed map[string]int, methods MethodList, i int) {
	if len(methods) == 0 {
		claimed[anyMethod] = i
		return
	}
	for _, method := range methods {
		claimed[strings.ToUpper(method)] = i
	}
}

func missingField(i int, e Entry, field string) error {
	return goerrors.New(fmt.Sprintf("routefile: route %d (%s) has no %s", i, e.Path, field),
		goerrors.CategoryValidation).
		WithTextCode(CodeMissingField).
		WithMetadata(map[string]any{"index": i, "field": field})
}
