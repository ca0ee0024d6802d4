package tree

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes carried by configuration errors.
const (
	CodeInvalidLiteral    = "INVALID_LITERAL"
	CodeDuplicateLiteral  = "DUPLICATE_LITERAL"
	CodeDuplicateParam    = "DUPLICATE_PARAM"
	CodeDuplicateWildcard = "DUPLICATE_WILDCARD"
	CodeNilChild          = "NIL_CHILD"
	CodeInvalidTemplate   = "INVALID_TEMPLATE"
	CodeParamConflict     = "PARAM_CONFLICT"
	CodeWildcardConflict  = "WILDCARD_CONFLICT"
)

// SkipNode is returned by a WalkFunc to skip the subtree below the route
// it was called with.
var SkipNode = errors.New("skip this node") //nolint:revive,staticcheck // mirrors filepath.SkipDir

// IsConfigError reports whether err is a route configuration error with the
// given text code. An empty code matches any configuration error.
func IsConfigError(err error, code string) bool {
	var ge *goerrors.Error
	if !errors.As(err, &ge) {
		return false
	}
	return code == "" || ge.TextCode == code
}

func newValidationError(code, message string, metadata map[string]any) error {
	return goerrors.New("pathtree: "+message, goerrors.CategoryValidation).
		WithTextCode(code).
		WithMetadata(metadata)
}

func newConflictError(code, message string, metadata map[string]any) error {
	return goerrors.New("pathtree: "+message, goerrors.CategoryConflict).
		WithTextCode(code).
		WithMetadata(metadata)
}

func errInvalidLiteral(name string) error {
	return newValidationError(CodeInvalidLiteral,
		fmt.Sprintf("literal segment %q contains invalid characters", name),
		map[string]any{"segment": name})
}

func errDuplicateLiteral(name string) error {
	return newConflictError(CodeDuplicateLiteral,
		fmt.Sprintf("literal segment %q is already registered", name),
		map[string]any{"segment": name})
}

func errDuplicateParam(existing, added string) error {
	return newConflictError(CodeDuplicateParam,
		fmt.Sprintf("cannot add param %q, node already has param %q", added, existing),
		map[string]any{"existing_param": existing, "param": added})
}

func errDuplicateWildcard(existing, added string) error {
	return newConflictError(CodeDuplicateWildcard,
		fmt.Sprintf("cannot add wildcard %q, node already has wildcard %q", added, existing),
		map[string]any{"existing_wildcard": existing, "wildcard": added})
}

func errNilChild(kind, name string) error {
	return newValidationError(CodeNilChild,
		fmt.Sprintf("%s child %q is nil", kind, name),
		map[string]any{"kind": kind, "segment": name})
}

func errInvalidTemplate(template, reason string) error {
	return newValidationError(CodeInvalidTemplate,
		fmt.Sprintf("invalid route template %q: %s", template, reason),
		map[string]any{"template": template, "reason": reason})
}
