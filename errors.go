package mexce

import "fmt"

// ErrorKind classifies the errors mexce can return. It never panics across
// the JIT boundary: Evaluate itself cannot fail.
type ErrorKind int

const (
	// ParseError covers every lexical or syntactic rejection of an
	// expression; see Reason for the specific subkind.
	ParseError ErrorKind = iota
	// NameInUse is returned by Bind when the requested name collides with
	// an existing binding, a named constant, or a catalog operation.
	NameInUse
	// NotFound is returned by Unbind when no binding exists under that name.
	NotFound
	// OutOfMemory is returned when the host denies an executable-page
	// allocation.
	OutOfMemory
	// ProtectionFailed is returned when the host denies sealing a page
	// read-execute.
	ProtectionFailed
	// InternalError indicates a bug: an FPU stack-depth overflow or a
	// catalog inconsistency that a correct expression should never trigger.
	InternalError
)

func (k ErrorKind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case NameInUse:
		return "NameInUse"
	case NotFound:
		return "NotFound"
	case OutOfMemory:
		return "OutOfMemory"
	case ProtectionFailed:
		return "ProtectionFailed"
	case InternalError:
		return "InternalError"
	default:
		return "UnknownError"
	}
}

// ParseReason further classifies a ParseError.
type ParseReason int

const (
	ReasonNone ParseReason = iota
	ReasonUnexpectedCharacter
	ReasonUnexpectedEndOfExpression
	ReasonUnknownName
	ReasonUnbalancedParenthesis
	ReasonArityMismatch
	ReasonEmptyArgument
)

func (r ParseReason) String() string {
	switch r {
	case ReasonUnexpectedCharacter:
		return "UnexpectedCharacter"
	case ReasonUnexpectedEndOfExpression:
		return "UnexpectedEndOfExpression"
	case ReasonUnknownName:
		return "UnknownName"
	case ReasonUnbalancedParenthesis:
		return "UnbalancedParenthesis"
	case ReasonArityMismatch:
		return "ArityMismatch"
	case ReasonEmptyArgument:
		return "EmptyArgument"
	default:
		return "None"
	}
}

// Error is the error type returned by every mexce operation that can fail.
type Error struct {
	Kind    ErrorKind
	Reason  ParseReason // only meaningful when Kind == ParseError
	Pos     int         // 1-based position into the source text, or -1
	Name    string      // offending identifier, or ""
	Message string
}

func (e *Error) Error() string {
	switch {
	case e.Kind == ParseError && e.Pos >= 0:
		return fmt.Sprintf("mexce: %s at position %d: %s", e.Reason, e.Pos, e.Message)
	case e.Name != "":
		return fmt.Sprintf("mexce: %s: %q: %s", e.Kind, e.Name, e.Message)
	default:
		return fmt.Sprintf("mexce: %s: %s", e.Kind, e.Message)
	}
}

func parseErr(reason ParseReason, pos int, format string, args ...any) *Error {
	return &Error{Kind: ParseError, Reason: reason, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func nameInUseErr(name string) *Error {
	return &Error{Kind: NameInUse, Pos: -1, Name: name, Message: "name already bound to a variable, constant, or operation"}
}

func notFoundErr(name string) *Error {
	return &Error{Kind: NotFound, Pos: -1, Name: name, Message: "no such binding"}
}

func internalErr(format string, args ...any) *Error {
	return &Error{Kind: InternalError, Pos: -1, Message: fmt.Sprintf(format, args...)}
}
