package mexce

import (
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestErrorKindString(t *testing.T) {
	be.Equal(t, ParseError.String(), "ParseError")
	be.Equal(t, NameInUse.String(), "NameInUse")
	be.Equal(t, NotFound.String(), "NotFound")
	be.Equal(t, OutOfMemory.String(), "OutOfMemory")
	be.Equal(t, ProtectionFailed.String(), "ProtectionFailed")
	be.Equal(t, InternalError.String(), "InternalError")
}

func TestParseErrorMessageIncludesPosition(t *testing.T) {
	err := parseErr(ReasonUnexpectedEndOfExpression, 3, "unexpected end")
	be.True(t, strings.Contains(err.Error(), "position 3"))
	be.Equal(t, err.Pos, 3)
	be.Equal(t, err.Kind, ParseError)
}

func TestNameInUseErrorCarriesName(t *testing.T) {
	err := nameInUseErr("a")
	be.Equal(t, err.Kind, NameInUse)
	be.Equal(t, err.Name, "a")
}

func TestNotFoundErrorCarriesName(t *testing.T) {
	err := notFoundErr("x")
	be.Equal(t, err.Kind, NotFound)
	be.Equal(t, err.Name, "x")
}
