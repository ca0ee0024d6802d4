package segment

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

// stringMatcher validates a raw segment.
// *regexp.Regexp satisfies this interface.
type stringMatcher interface {
	MatchString(string) bool
	String() string
}

// boundedMatcher adds a maximum length to a regexp.
type boundedMatcher struct {
	re     *regexp.Regexp
	maxLen int
}

func (m *boundedMatcher) MatchString(s string) bool {
	return len(s) <= m.maxLen && m.re.MatchString(s)
}

func (m *boundedMatcher) String() string {
	return m.re.String()
}

// patternMacros maps macro names usable as {name:macro} constraints to
// their compiled validators. "int" and "uuid" are not listed: they convert
// into typed values instead of validating strings.
var patternMacros = func() map[string]stringMatcher {
	raw := map[string]string{
		"float":    `[0-9]*\.?[0-9]+`,
		"slug":     `[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*`,
		"alpha":    `[a-zA-Z]+`,
		"alphanum": `[a-zA-Z0-9]+`,
		"date":     `[0-9]{4}-[0-9]{2}-[0-9]{2}`,
		"hex":      `[0-9a-fA-F]+`,
		// RFC 1123 labels, 253 chars total.
		"domain": `(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?`,
	}

	maxLengths := map[string]int{
		"domain": 253,
	}

	m := make(map[string]stringMatcher, len(raw))
	for name, pattern := range raw {
		re := regexp.MustCompile(fmt.Sprintf("^%s$", pattern))
		if maxLen, ok := maxLengths[name]; ok {
			m[name] = &boundedMatcher{re: re, maxLen: maxLen}
			continue
		}
		m[name] = re
	}

	return m
}()

type patternParam struct {
	name       string
	constraint string
	matcher    stringMatcher
}

// Pattern returns a string param validated by a macro name (slug, hex,
// date, ...) or, when pattern is not a macro, by a regular expression that
// must match the whole segment.
func Pattern(name, pattern string) (Param, error) {
	if m, ok := patternMacros[pattern]; ok {
		return patternParam{name: name, constraint: pattern, matcher: m}, nil
	}

	re, err := anchoredRegexp(pattern)
	if err != nil {
		return nil, fmt.Errorf("segment: invalid pattern %q for param %q: %w", pattern, name, err)
	}

	return patternParam{name: name, constraint: pattern, matcher: re}, nil
}

func (p patternParam) Name() string { return p.name }

func (p patternParam) Constraint() string { return p.constraint }

func (p patternParam) Match(raw string) (Value, bool) {
	if !p.matcher.MatchString(raw) {
		return Value{}, false
	}
	return StringValue(raw), true
}

type uuidParam struct {
	name string
}

// UUID returns a param that accepts RFC 9562 UUIDs. Matched values are
// stored as uuid.UUID and read back through the Any accessors.
func UUID(name string) Param {
	return uuidParam{name: name}
}

func (p uuidParam) Name() string { return p.name }

func (p uuidParam) Constraint() string { return "uuid" }

func (p uuidParam) Match(raw string) (Value, bool) {
	// uuid.Parse also accepts urn and braced forms; a path segment holds
	// only the canonical 36 character form.
	if len(raw) != 36 {
		return Value{}, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return Value{}, false
	}
	return AnyValue(id), true
}

// FromConstraint builds the param described by a template constraint:
//
//	"", "string" - any segment
//	"int"        - base-10 integer
//	"uuid"       - UUID
//	macro name   - float, slug, alpha, alphanum, date, hex, domain
//	otherwise    - regular expression matching the whole segment
func FromConstraint(name, constraint string) (Param, error) {
	switch constraint {
	case "", "string":
		return String(name), nil
	case "int":
		return Number(name), nil
	case "uuid":
		return UUID(name), nil
	}

	return Pattern(name, constraint)
}
