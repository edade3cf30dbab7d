package mixfix

import (
	"errors"
	"fmt"
)

// Error kinds. Every *Error unwraps to exactly one of these, so callers can
// test with errors.Is.
var (
	ErrUnknownGroupStart     = errors.New("unknown group start")
	ErrUnmatchedContinuation = errors.New("unmatched continuation")
	ErrAmbiguousRule         = errors.New("ambiguous rule")
	ErrUnknownOperator       = errors.New("unknown operator")
	ErrMisplacedOperator     = errors.New("misplaced operator")
	ErrEmptyExpression       = errors.New("empty expression")
	ErrInternal              = errors.New("internal error")
)

const (
	ErrCodeUnknownGroupStart = iota + 101
	ErrCodeUnmatchedContinuation
	ErrCodeAmbiguousRule
)

const (
	ErrCodeUnknownOperator = iota + 201
	ErrCodeMisplacedOperator
	ErrCodeEmptyExpression
)

const ErrCodeInternal = 901

// Error is returned by grouping and resolution. Token is the marker the
// failure is about, if any.
type Error struct {
	Code    int
	Kind    error
	Message string
	Token   string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// IsInternal reports whether err is a consistency fault in the parser itself
// rather than a problem with the input.
func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}

func format(kind error, code int, token string, msg string, params ...interface{}) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return &Error{Code: code, Kind: kind, Message: msg, Token: token}
}

func unknownGroupStartError(token string) *Error {
	return format(ErrUnknownGroupStart, ErrCodeUnknownGroupStart, token,
		"failed to find valid group beginning with '%s'", token)
}

func unexpectedEndError(expected string) *Error {
	return format(ErrUnmatchedContinuation, ErrCodeUnmatchedContinuation, expected,
		"expected '%s', found end of input", expected)
}

func unexpectedTokenError(expected, found string) *Error {
	return format(ErrUnmatchedContinuation, ErrCodeUnmatchedContinuation, expected,
		"expected '%s', found '%s'", expected, found)
}

func emptyRuleError() *Error {
	return format(ErrAmbiguousRule, ErrCodeAmbiguousRule, "", "rule has no markers")
}

func duplicateRuleError(head string) *Error {
	return format(ErrAmbiguousRule, ErrCodeAmbiguousRule, head,
		"more than one rule begins with '%s'", head)
}

func unknownOperatorError(head string) *Error {
	return format(ErrUnknownOperator, ErrCodeUnknownOperator, head,
		"precedence for '%s' not found", head)
}

func missingLeftOperandError(g *Group, f Fixity) *Error {
	return format(ErrMisplacedOperator, ErrCodeMisplacedOperator, g.Head,
		"expected prefix or nonfix operator, found %s operator '%s'", f.Kind, showName(g.Head, g.Parts, f))
}

func missingOperatorError(g *Group, f Fixity) *Error {
	return format(ErrMisplacedOperator, ErrCodeMisplacedOperator, g.Head,
		"expected infix or postfix operator, found %s operator '%s'", f.Kind, showName(g.Head, g.Parts, f))
}

func emptyExpressionError() *Error {
	return format(ErrEmptyExpression, ErrCodeEmptyExpression, "", "expression expected, found nothing")
}

func unconsumedGroupsError(g *Group, count int) *Error {
	return format(ErrInternal, ErrCodeInternal, g.Head,
		"internal error: %d group(s) left unconsumed starting at '%s'", count, g.Head)
}
