package segment

// Kind identifies the payload carried by a Value.
type Kind uint8

const (
	// KindNone is a successful match that carries no payload.
	KindNone Kind = iota
	// KindInt carries an integer parameter.
	KindInt
	// KindString carries a string parameter.
	KindString
	// KindAny carries an application-defined value.
	KindAny
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindAny:
		return "any"
	default:
		return "unknown"
	}
}

// Value is the typed result of a successful segment match.
// The zero Value is a match without payload.
type Value struct {
	kind Kind
	i    int
	s    string
	v    any
}

// IntValue returns a Value holding an integer.
func IntValue(i int) Value {
	return Value{kind: KindInt, i: i}
}

// StringValue returns a Value holding a string.
func StringValue(s string) Value {
	return Value{kind: KindString, s: s}
}

// AnyValue returns a Value holding an arbitrary application value.
func AnyValue(v any) Value {
	return Value{kind: KindAny, v: v}
}

// Kind reports which payload the value carries.
func (v Value) Kind() Kind {
	return v.kind
}

// AsInt returns the integer payload. ok is false for any other kind.
func (v Value) AsInt() (int, bool) {
	return v.i, v.kind == KindInt
}

// AsString returns the string payload. ok is false for any other kind.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsAny returns the application payload. ok is false for any other kind.
func (v Value) AsAny() (any, bool) {
	return v.v, v.kind == KindAny
}
