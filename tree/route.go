package tree

import (
	"strings"

	"github.com/vitalvas/pathtree/segment"
)

type stepKind int

const (
	stepLiteral stepKind = iota
	stepParam
	stepWildcard
)

type routeStep struct {
	kind     stepKind
	literal  string
	param    segment.Param
	wildcard segment.Wildcard
}

// RouteBuilder describes one linear route, segment by segment. The tree it
// builds holds a single handler and is meant to be merged into a larger
// tree:
//
//	n, err := tree.NewRoute[Req, Res]().
//		Path("projects").
//		Param(segment.Number("projectId")).
//		Build(h)
type RouteBuilder[Req, Res any] struct {
	steps []routeStep
	err   error
}

// NewRoute returns an empty route builder. Building it without segments
// yields a root route.
func NewRoute[Req, Res any]() *RouteBuilder[Req, Res] {
	return &RouteBuilder[Req, Res]{}
}

// Path appends a literal segment. A leading slash is ignored.
func (r *RouteBuilder[Req, Res]) Path(name string) *RouteBuilder[Req, Res] {
	return r.add(routeStep{kind: stepLiteral, literal: strings.TrimPrefix(name, "/")})
}

// Param appends a param segment.
func (r *RouteBuilder[Req, Res]) Param(p segment.Param) *RouteBuilder[Req, Res] {
	return r.add(routeStep{kind: stepParam, param: p})
}

// StringParam appends a string param. A leading "/:" or ":" is ignored.
func (r *RouteBuilder[Req, Res]) StringParam(name string) *RouteBuilder[Req, Res] {
	return r.Param(segment.String(trimParamPrefix(name)))
}

// Wildcard appends an anonymous wildcard. Nothing may follow it.
func (r *RouteBuilder[Req, Res]) Wildcard() *RouteBuilder[Req, Res] {
	return r.NamedWildcard("")
}

// NamedWildcard appends a named wildcard. Nothing may follow it.
func (r *RouteBuilder[Req, Res]) NamedWildcard(name string) *RouteBuilder[Req, Res] {
	return r.add(routeStep{kind: stepWildcard, wildcard: segment.NewWildcard(name)})
}

func (r *RouteBuilder[Req, Res]) add(step routeStep) *RouteBuilder[Req, Res] {
	if r.err != nil {
		return r
	}
	if n := len(r.steps); n > 0 && r.steps[n-1].kind == stepWildcard {
		r.err = errInvalidTemplate(r.template(), "wildcard must be the last segment")
		return r
	}
	r.steps = append(r.steps, step)
	return r
}

// Build creates the route tree with h at the last segment.
func (r *RouteBuilder[Req, Res]) Build(h Handler[Req, Res]) (*Node[Req, Res], error) {
	if r.err != nil {
		return nil, r.err
	}

	bottom := NewNodeBuilder[Req, Res]()
	bottom.SetHandler(h)
	node := bottom.Node()

	for i := len(r.steps) - 1; i >= 0; i-- {
		step := r.steps[i]
		b := NewNodeBuilder[Req, Res]()

		var err error
		switch step.kind {
		case stepLiteral:
			err = b.AddLiteral(step.literal, node)
		case stepParam:
			err = b.SetParam(step.param, node)
		case stepWildcard:
			err = b.SetWildcard(step.wildcard, node)
		}
		if err != nil {
			return nil, err
		}

		node = b.Node()
	}

	return node, nil
}

// template renders the steps collected so far, for error messages.
func (r *RouteBuilder[Req, Res]) template() string {
	parts := make([]string, 0, len(r.steps))
	for _, step := range r.steps {
		switch step.kind {
		case stepLiteral:
			parts = append(parts, step.literal)
		case stepParam:
			parts = append(parts, paramTemplate(step.param))
		case stepWildcard:
			parts = append(parts, wildcardTemplate(step.wildcard))
		}
	}
	return formatPath(parts)
}

func trimParamPrefix(name string) string {
	name = strings.TrimPrefix(name, "/")
	return strings.TrimPrefix(name, ":")
}
