package segment

import (
	"regexp"
	"strconv"
)

// Segment matches a single raw path segment. Literal segments need no
// descriptor: they are matched by their text.
type Segment interface {
	Match(raw string) (Value, bool)
}

// Param is a parametric segment: it accepts a raw segment, converts it and
// records the result under Name.
type Param interface {
	Segment
	Name() string
}

// Constrained is implemented by params that can describe their conversion
// rule as a template constraint, e.g. "int" in {id:int}.
type Constrained interface {
	Constraint() string
}

// ConstraintOf returns the template constraint of p, or "" when p does not
// describe one.
func ConstraintOf(p Param) string {
	if c, ok := p.(Constrained); ok {
		return c.Constraint()
	}
	return ""
}

// Anonymous is the name reported by a wildcard registered without one.
const Anonymous = "*"

// literalChars is the character class allowed in literal segment names.
var literalChars = regexp.MustCompile(`^[\w\-._~]+$`)

// ValidLiteral reports whether name is usable as a literal segment.
func ValidLiteral(name string) bool {
	return literalChars.MatchString(name)
}

type stringParam struct {
	name string
}

// String returns a param that accepts any raw segment as a string.
func String(name string) Param {
	return stringParam{name: name}
}

func (p stringParam) Name() string { return p.name }

func (p stringParam) Match(raw string) (Value, bool) {
	return StringValue(raw), true
}

type numberParam struct {
	name string
}

// Number returns a param that accepts base-10 integers. The entire segment
// must parse; "42abc" is rejected.
func Number(name string) Param {
	return numberParam{name: name}
}

func (p numberParam) Name() string { return p.name }

func (p numberParam) Constraint() string { return "int" }

func (p numberParam) Match(raw string) (Value, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return Value{}, false
	}
	return IntValue(n), true
}

// ConvertFunc converts a raw segment into a typed value. Returning false
// rejects the segment.
type ConvertFunc func(raw string) (Value, bool)

type customParam struct {
	name    string
	convert ConvertFunc
}

// Custom returns a param backed by an arbitrary conversion function.
func Custom(name string, convert ConvertFunc) Param {
	return customParam{name: name, convert: convert}
}

func (p customParam) Name() string { return p.name }

func (p customParam) Match(raw string) (Value, bool) {
	if p.convert == nil {
		return Value{}, false
	}
	return p.convert(raw)
}

// Wildcard describes a tree level that consumes every remaining segment.
// It is always terminal; the consumed segments are recorded as a list, not
// as a Value.
type Wildcard struct {
	name string
}

// NewWildcard returns a wildcard descriptor. An empty name is anonymous.
func NewWildcard(name string) Wildcard {
	return Wildcard{name: name}
}

// Name returns the wildcard name, or Anonymous.
func (w Wildcard) Name() string {
	if w.name == "" {
		return Anonymous
	}
	return w.name
}

// IsAnonymous reports whether the wildcard was registered without a name.
func (w Wildcard) IsAnonymous() bool {
	return w.name == "" || w.name == Anonymous
}
