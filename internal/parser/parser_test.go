package parser

import (
	"testing"

	"github.com/nalgeon/be"
)

type fakeResolver struct {
	bindings  map[string]bool
	constants map[string]bool
	functions map[string]int
}

func (f fakeResolver) Resolve(name string) (Kind, int, bool) {
	if f.bindings[name] {
		return KindBinding, 0, true
	}
	if f.constants[name] {
		return KindConstant, 0, true
	}
	if arity, ok := f.functions[name]; ok {
		return KindFunction, arity, true
	}
	return 0, 0, false
}

func newResolver() fakeResolver {
	return fakeResolver{
		bindings:  map[string]bool{"a": true, "b": true, "x": true},
		constants: map[string]bool{"pi": true, "e": true},
		functions: map[string]int{"sin": 1, "cos": 1, "max": 2, "pow": 2},
	}
}

func opNames(items []Item) []string {
	var ops []string
	for _, it := range items {
		if it.Kind == ItemOp {
			ops = append(ops, it.Op)
		}
	}
	return ops
}

func TestParseSimpleAddition(t *testing.T) {
	items, err := Parse("a+b", newResolver())
	be.Err(t, err, nil)
	be.Equal(t, len(items), 3)
	be.Equal(t, items[0].Kind, ItemBinding)
	be.Equal(t, items[1].Kind, ItemBinding)
	be.Equal(t, items[2].Op, "add")
}

func TestParsePrecedence(t *testing.T) {
	// a+b*2 -> a b 2 mul add
	items, err := Parse("a+b*2", newResolver())
	be.Err(t, err, nil)
	be.Equal(t, opNames(items), []string{"mul", "add"})
}

func TestParsePowerIsRightAssociative(t *testing.T) {
	// a^b^2 should defer both pows to the end in reverse push order.
	items, err := Parse("a^b^2", newResolver())
	be.Err(t, err, nil)
	be.Equal(t, opNames(items), []string{"pow", "pow"})
}

func TestParseUnaryMinusAfterCaretKeepsCaretPrecedence(t *testing.T) {
	items, err := Parse("a^-2", newResolver())
	be.Err(t, err, nil)
	be.Equal(t, opNames(items), []string{"neg", "pow"})
}

func TestParseUnaryMinusElsewhereIsAdditivePrecedence(t *testing.T) {
	items, err := Parse("-a^b", newResolver())
	be.Err(t, err, nil)
	be.Equal(t, opNames(items), []string{"pow", "neg"})
}

func TestParseUnaryPlusIsDropped(t *testing.T) {
	items, err := Parse("+a", newResolver())
	be.Err(t, err, nil)
	be.Equal(t, len(items), 1)
	be.Equal(t, items[0].Kind, ItemBinding)
}

func TestParseFunctionCall(t *testing.T) {
	items, err := Parse("sin(a)", newResolver())
	be.Err(t, err, nil)
	be.Equal(t, len(items), 2)
	be.Equal(t, items[1].Op, "sin")
	be.Equal(t, items[1].Arity, 1)
}

func TestParseNestedFunctionAndGrouping(t *testing.T) {
	items, err := Parse("max((a+b), cos(x))", newResolver())
	be.Err(t, err, nil)
	be.Equal(t, opNames(items), []string{"add", "cos", "max"})
}

func TestParseConstant(t *testing.T) {
	items, err := Parse("pi*2", newResolver())
	be.Err(t, err, nil)
	be.Equal(t, items[0].Kind, ItemConstant)
}

func TestParseUnknownNameError(t *testing.T) {
	_, err := Parse("foo+1", newResolver())
	perr, ok := err.(*Error)
	be.True(t, ok)
	be.Equal(t, perr.Reason, UnknownName)
	be.Equal(t, perr.Name, "foo")
}

func TestParseUnbalancedParenthesis(t *testing.T) {
	_, err := Parse("(a+b", newResolver())
	perr, ok := err.(*Error)
	be.True(t, ok)
	be.Equal(t, perr.Reason, UnbalancedParenthesis)
}

func TestParseStrayCloseParen(t *testing.T) {
	_, err := Parse("a+b)", newResolver())
	perr, ok := err.(*Error)
	be.True(t, ok)
	be.Equal(t, perr.Reason, UnbalancedParenthesis)
}

func TestParseArityMismatchTooFew(t *testing.T) {
	_, err := Parse("max(a)", newResolver())
	perr, ok := err.(*Error)
	be.True(t, ok)
	be.Equal(t, perr.Reason, ArityMismatch)
}

func TestParseArityMismatchTooMany(t *testing.T) {
	_, err := Parse("max(a,b,a)", newResolver())
	perr, ok := err.(*Error)
	be.True(t, ok)
	be.Equal(t, perr.Reason, ArityMismatch)
}

func TestParseEmptyArgument(t *testing.T) {
	_, err := Parse("max(a,)", newResolver())
	perr, ok := err.(*Error)
	be.True(t, ok)
	be.Equal(t, perr.Reason, EmptyArgument)
}

func TestParseEmptyCallArgument(t *testing.T) {
	_, err := Parse("sin()", newResolver())
	perr, ok := err.(*Error)
	be.True(t, ok)
	be.Equal(t, perr.Reason, EmptyArgument)
}

func TestParseTrailingOperator(t *testing.T) {
	_, err := Parse("a^", newResolver())
	perr, ok := err.(*Error)
	be.True(t, ok)
	be.Equal(t, perr.Reason, UnexpectedEndOfExpression)
	be.Equal(t, perr.Pos, 3)
}

func TestParseLiteralDeduplicationIsNotParsersJob(t *testing.T) {
	// the parser emits one ItemNumber per occurrence; deduplication by text
	// happens in the resolver, not here.
	items, err := Parse("1+1", newResolver())
	be.Err(t, err, nil)
	be.Equal(t, items[0].Kind, ItemNumber)
	be.Equal(t, items[1].Kind, ItemNumber)
}
