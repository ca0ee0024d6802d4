// Package segment defines how a single path segment is matched.
//
// A route tree level is one of three kinds:
//
//   - Literal: matches a segment equal to its text; see ValidLiteral.
//   - Param: accepts any segment, converting it into a typed Value or
//     rejecting it (Number, String, Custom, Pattern, UUID).
//   - Wildcard: accepts the current and every remaining segment.
//
// A failed match is never an error; it only means the branch does not apply.
//
// # Values
//
// A successful param match returns a Value:
//
//	v, ok := segment.Number("id").Match("42")
//	n, _ := v.AsInt() // 42
//
// The zero Value (KindNone) is a match that carries nothing. A Custom
// conversion may return it to accept a segment without recording it.
//
// # Constraints
//
// FromConstraint maps the constraint part of a {name:constraint} template
// variable to a Param:
//
//	segment.FromConstraint("id", "int")     // Number
//	segment.FromConstraint("key", "uuid")   // UUID
//	segment.FromConstraint("slug", "slug")  // macro
//	segment.FromConstraint("v", "v[0-9]+")  // regular expression
package segment
