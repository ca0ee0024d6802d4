package tree

import (
	"maps"

	"github.com/vitalvas/pathtree/segment"
)

// Params accumulates the values extracted during one match. The matcher is
// the only writer; handlers get read access.
//
// Integer, string and application-typed values live in separate maps, so
// asking for a parameter with the wrong accessor reports it as absent.
type Params struct {
	ints     map[string]int
	strings  map[string]string
	values   map[string]any
	wildcard []string
}

func (p *Params) record(name string, v segment.Value) {
	switch v.Kind() {
	case segment.KindInt:
		n, _ := v.AsInt()
		if p.ints == nil {
			p.ints = make(map[string]int, 2)
		}
		p.ints[name] = n
	case segment.KindString:
		s, _ := v.AsString()
		if p.strings == nil {
			p.strings = make(map[string]string, 2)
		}
		p.strings[name] = s
	case segment.KindAny:
		a, _ := v.AsAny()
		if p.values == nil {
			p.values = make(map[string]any, 1)
		}
		p.values[name] = a
	}
}

func (p *Params) capture(segments []string) {
	p.wildcard = append(p.wildcard, segments...)
}

// Int returns the integer parameter recorded under name.
func (p *Params) Int(name string) (int, bool) {
	if p == nil {
		return 0, false
	}
	n, ok := p.ints[name]
	return n, ok
}

// String returns the string parameter recorded under name.
func (p *Params) String(name string) (string, bool) {
	if p == nil {
		return "", false
	}
	s, ok := p.strings[name]
	return s, ok
}

// Value returns the application-typed parameter recorded under name.
func (p *Params) Value(name string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[name]
	return v, ok
}

// Wildcard returns a copy of the segments consumed by a wildcard.
// It is empty when no wildcard matched.
func (p *Params) Wildcard() []string {
	if p == nil || len(p.wildcard) == 0 {
		return nil
	}
	out := make([]string, len(p.wildcard))
	copy(out, p.wildcard)
	return out
}

// Ints returns a copy of all integer parameters.
func (p *Params) Ints() map[string]int {
	if p == nil {
		return nil
	}
	return maps.Clone(p.ints)
}

// Strings returns a copy of all string parameters.
func (p *Params) Strings() map[string]string {
	if p == nil {
		return nil
	}
	return maps.Clone(p.strings)
}

// Values returns a copy of all application-typed parameters.
func (p *Params) Values() map[string]any {
	if p == nil {
		return nil
	}
	return maps.Clone(p.values)
}
