package tree

import (
	"fmt"
	"reflect"

	"github.com/vitalvas/pathtree/segment"
)

// Merge combines two trees into a new one without modifying either.
//
// At every position present in both trees:
//   - handlers: the one present wins; when both exist a.Merge(b) decides;
//   - literal children: union of names, common names merged recursively;
//   - param and wildcard children: children merged recursively, b's
//     descriptor kept.
//
// Descriptors are not compared: a param {id:int} in a and {slug} in b at the
// same position yield {slug} with both subtrees merged below it. Use
// MergeStrict to reject such trees instead. A nil tree is treated as empty.
func Merge[Req, Res any](a, b *Node[Req, Res]) *Node[Req, Res] {
	n, _ := merge(a, b, false, nil)
	return n
}

// MergeStrict is Merge, except that it fails when both trees have a param
// or wildcard child at the same position with different descriptors.
func MergeStrict[Req, Res any](a, b *Node[Req, Res]) (*Node[Req, Res], error) {
	return merge(a, b, true, nil)
}

func merge[Req, Res any](a, b *Node[Req, Res], strict bool, path []string) (*Node[Req, Res], error) {
	switch {
	case a == nil && b == nil:
		return Empty[Req, Res](), nil
	case a == nil:
		return b, nil
	case b == nil:
		return a, nil
	}

	out := &Node[Req, Res]{
		handler: mergeHandlers(a.handler, b.handler),
	}

	literals, err := mergeLiterals(a.literals, b.literals, strict, path)
	if err != nil {
		return nil, err
	}
	out.literals = literals

	if out.param, err = mergeParams(a.param, b.param, strict, path); err != nil {
		return nil, err
	}
	if out.wildcard, err = mergeWildcards(a.wildcard, b.wildcard, strict, path); err != nil {
		return nil, err
	}

	return out.countRoutes(), nil
}

func mergeHandlers[Req, Res any](a, b Handler[Req, Res]) Handler[Req, Res] {
	switch {
	case b == nil:
		return a
	case a == nil:
		return b
	default:
		return a.Merge(b)
	}
}

func mergeLiterals[Req, Res any](a, b map[string]*Node[Req, Res], strict bool, path []string) (map[string]*Node[Req, Res], error) {
	if len(a) == 0 && len(b) == 0 {
		return nil, nil
	}

	out := make(map[string]*Node[Req, Res], len(a)+len(b))
	for name, child := range a {
		out[name] = child
	}

	for name, child := range b {
		existing, ok := out[name]
		if !ok {
			out[name] = child
			continue
		}

		merged, err := merge(existing, child, strict, appendPath(path, name))
		if err != nil {
			return nil, err
		}
		out[name] = merged
	}

	return out, nil
}

func mergeParams[Req, Res any](a, b *paramChild[Req, Res], strict bool, path []string) (*paramChild[Req, Res], error) {
	switch {
	case a == nil:
		return b, nil
	case b == nil:
		return a, nil
	}

	if strict && !sameParam(a.segment, b.segment) {
		return nil, newConflictError(CodeParamConflict,
			fmt.Sprintf("param %s conflicts with %s at %s",
				paramTemplate(a.segment), paramTemplate(b.segment), formatPath(path)),
			map[string]any{
				"path":           formatPath(path),
				"existing_param": paramTemplate(a.segment),
				"param":          paramTemplate(b.segment),
			})
	}

	child, err := merge(a.node, b.node, strict, appendPath(path, paramTemplate(b.segment)))
	if err != nil {
		return nil, err
	}

	return &paramChild[Req, Res]{segment: b.segment, node: child}, nil
}

func mergeWildcards[Req, Res any](a, b *wildcardChild[Req, Res], strict bool, path []string) (*wildcardChild[Req, Res], error) {
	switch {
	case a == nil:
		return b, nil
	case b == nil:
		return a, nil
	}

	if strict && a.segment.Name() != b.segment.Name() {
		return nil, newConflictError(CodeWildcardConflict,
			fmt.Sprintf("wildcard %s conflicts with %s at %s",
				wildcardTemplate(a.segment), wildcardTemplate(b.segment), formatPath(path)),
			map[string]any{
				"path":              formatPath(path),
				"existing_wildcard": a.segment.Name(),
				"wildcard":          b.segment.Name(),
			})
	}

	child, err := merge(a.node, b.node, strict, appendPath(path, wildcardTemplate(b.segment)))
	if err != nil {
		return nil, err
	}

	return &wildcardChild[Req, Res]{segment: b.segment, node: child}, nil
}

// sameParam compares descriptors by name, constraint and concrete type.
// Two Custom params with the same name are considered equal.
func sameParam(a, b segment.Param) bool {
	return a.Name() == b.Name() &&
		segment.ConstraintOf(a) == segment.ConstraintOf(b) &&
		reflect.TypeOf(a) == reflect.TypeOf(b)
}

func appendPath(path []string, seg string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, seg)
}
