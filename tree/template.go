package tree

import (
	"strings"

	"github.com/vitalvas/pathtree/segment"
)

// Parse builds a single-route tree from a template and attaches h to its
// last segment.
//
// Template syntax, one element per path segment:
//
//	projects            literal
//	{id}                string param
//	{id:int}            integer param
//	{key:uuid}          UUID param
//	{slug:slug}         pattern macro (see segment.FromConstraint)
//	{v:v[0-9]+}         regular expression
//	* or {*}            anonymous wildcard
//	*rest or {rest...}  named wildcard
//
// Wildcards must be the last segment. The result is meant to be merged
// into a larger tree.
func Parse[Req, Res any](template string, h Handler[Req, Res]) (*Node[Req, Res], error) {
	route := NewRoute[Req, Res]()

	parts, err := splitTemplate(template)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(parts))
	for _, part := range parts {
		if w, ok := parseWildcard(part); ok {
			if !w.IsAnonymous() {
				if err := checkVariable(template, part, w.Name(), seen); err != nil {
					return nil, err
				}
			}
			route.NamedWildcard(w.Name())
			continue
		}

		if !strings.HasPrefix(part, "{") {
			route.Path(part)
			continue
		}

		if !strings.HasSuffix(part, "}") {
			return nil, errInvalidTemplate(template, "variable "+part+" must span the whole segment")
		}

		name, constraint, _ := strings.Cut(part[1:len(part)-1], ":")
		if err := checkVariable(template, part, name, seen); err != nil {
			return nil, err
		}

		p, err := segment.FromConstraint(name, constraint)
		if err != nil {
			return nil, errInvalidTemplate(template, err.Error())
		}
		route.Param(p)
	}

	return route.Build(h)
}

// checkVariable validates a param or wildcard name and records it in seen.
func checkVariable(template, part, name string, seen map[string]bool) error {
	switch {
	case name == "":
		return errInvalidTemplate(template, "missing name in "+part)
	case strings.ContainsAny(name, "{}:*"):
		return errInvalidTemplate(template, "invalid variable name in "+part)
	case seen[name]:
		return errInvalidTemplate(template, "duplicated variable "+name)
	}
	seen[name] = true
	return nil
}

// MustParse is like Parse but panics on error.
func MustParse[Req, Res any](template string, h Handler[Req, Res]) *Node[Req, Res] {
	n, err := Parse(template, h)
	if err != nil {
		panic(err)
	}
	return n
}

// splitTemplate splits a template on slashes outside braces and drops empty
// parts, so regexp constraints may contain braces.
func splitTemplate(tpl string) ([]string, error) {
	var (
		parts []string
		level int
		start int
	)

	for i := 0; i <= len(tpl); i++ {
		if i < len(tpl) {
			switch tpl[i] {
			case '{':
				level++
				continue
			case '}':
				if level--; level < 0 {
					return nil, errInvalidTemplate(tpl, "unbalanced braces")
				}
				continue
			case '/':
				if level > 0 {
					return nil, errInvalidTemplate(tpl, "variables cannot contain '/'")
				}
			default:
				continue
			}
		}

		if i > start {
			parts = append(parts, tpl[start:i])
		}
		start = i + 1
	}

	if level != 0 {
		return nil, errInvalidTemplate(tpl, "unbalanced braces")
	}

	return parts, nil
}

func parseWildcard(part string) (segment.Wildcard, bool) {
	switch {
	case part == "*" || part == "{*}":
		return segment.NewWildcard(""), true
	case strings.HasPrefix(part, "*"):
		return segment.NewWildcard(part[1:]), true
	case strings.HasPrefix(part, "{") && strings.HasSuffix(part, "...}"):
		return segment.NewWildcard(part[1 : len(part)-4]), true
	}
	return segment.Wildcard{}, false
}

func paramTemplate(p segment.Param) string {
	if c := segment.ConstraintOf(p); c != "" {
		return "{" + p.Name() + ":" + c + "}"
	}
	return "{" + p.Name() + "}"
}

func wildcardTemplate(w segment.Wildcard) string {
	if w.IsAnonymous() {
		return "*"
	}
	return "{" + w.Name() + "...}"
}

func formatPath(path []string) string {
	return "/" + strings.Join(path, "/")
}
