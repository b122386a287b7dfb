package parser

import (
	"fmt"

	"github.com/example/mexce/internal/lexer"
)

// Reason is the parser-level counterpart of mexce.ParseReason; the root
// package maps these 1:1 when surfacing a parse failure to the caller.
type Reason int

const (
	UnexpectedCharacter Reason = iota
	UnexpectedEndOfExpression
	UnknownName
	UnbalancedParenthesis
	ArityMismatch
	EmptyArgument
)

func (r Reason) String() string {
	switch r {
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case UnexpectedEndOfExpression:
		return "UnexpectedEndOfExpression"
	case UnknownName:
		return "UnknownName"
	case UnbalancedParenthesis:
		return "UnbalancedParenthesis"
	case ArityMismatch:
		return "ArityMismatch"
	case EmptyArgument:
		return "EmptyArgument"
	default:
		return "?"
	}
}

// Error is a syntactic rejection of an expression, at a byte offset into
// the original source text. Name is set for UnknownName and ArityMismatch.
type Error struct {
	Reason Reason
	Pos    int
	Name   string
}

func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s at position %d: %q", e.Reason, e.Pos, e.Name)
	}
	return fmt.Sprintf("%s at position %d", e.Reason, e.Pos)
}

func wrapLexError(e *lexer.Error) *Error {
	reason := UnexpectedCharacter
	if e.Reason == lexer.UnexpectedEndOfExpression {
		reason = UnexpectedEndOfExpression
	}
	return &Error{Reason: reason, Pos: e.Pos}
}
