/*
File    : furc/perr/errors.go

Package perr is the parser's error taxonomy: one sentinel per spec.md §7
failure kind, wrapped by a single positioned Error struct so callers can
both match on kind with errors.Is and print a human-readable, positioned
message. The shape is grounded on the krotik-ecal runtime-error pattern
(package-level sentinel errors plus one wrapper struct), adapted here from
a runtime-error package to a parse-error package.
*/
package perr

import (
	"errors"
	"fmt"

	"github.com/akashmaji946/furc/token"
)

// Sentinel errors, one per spec.md §7 failure kind. Compare against these
// with errors.Is(err, perr.ErrUnexpectedToken) rather than type-asserting
// *Error directly, so callers don't need to know about the wrapper.
var (
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrExpectedPrefix       = errors.New("expected a prefix (nud) expression")
	ErrExpectedInfix        = errors.New("expected an infix (led) operator")
	ErrExpectedStatement    = errors.New("expected a statement")
	ErrExpectedAssign       = errors.New("expected an assignment operator")
	ErrExpectedBlock        = errors.New("expected a block")
	ErrExpectedIdent        = errors.New("expected an identifier")
	ErrExpectedTopLevelDecl = errors.New("expected a top-level declaration")
	ErrRedefinition         = errors.New("name already bound in this scope")
	ErrBraceInitUnsupported = errors.New("brace-initializer expression is not supported here")
)

// Error wraps one of the sentinels above with the position of the token
// that triggered it and a short human-readable detail string.
type Error struct {
	Kind   error
	Pos    token.Position
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Detail)
}

// Unwrap lets errors.Is/errors.As see through Error to the sentinel Kind.
func (e *Error) Unwrap() error { return e.Kind }

// New builds an *Error for kind at pos with a formatted detail message.
func New(kind error, pos token.Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Detail: fmt.Sprintf(format, args...)}
}
