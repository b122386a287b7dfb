package mexce

import (
	"math"
	"testing"
	"unsafe"

	"github.com/nalgeon/be"
)

func TestDefaultExpressionIsZero(t *testing.T) {
	e := New()
	defer e.Close()
	be.Equal(t, e.Evaluate(), 0.0)
}

func TestScenarioAPlusB(t *testing.T) {
	e := New()
	defer e.Close()

	var a, b float64 = 1.1, 2.2
	be.Err(t, e.Bind("a", F64, unsafe.Pointer(&a)), nil)
	be.Err(t, e.Bind("b", F64, unsafe.Pointer(&b)), nil)
	be.Err(t, e.SetExpression("a+b"), nil)

	be.True(t, math.Abs(e.Evaluate()-3.3) < 1e-9)
}

func TestScenarioIntegerPowerSpecialization(t *testing.T) {
	e := New()
	defer e.Close()

	var a float64 = 1.1
	be.Err(t, e.Bind("a", F64, unsafe.Pointer(&a)), nil)
	be.Err(t, e.SetExpression("a^2+1"), nil)

	be.True(t, math.Abs(e.Evaluate()-2.21) < 1e-9)
}

func TestScenarioCommutativity(t *testing.T) {
	e := New()
	defer e.Close()

	var a, b float64 = 1.1, 2.2
	be.Err(t, e.Bind("a", F64, unsafe.Pointer(&a)), nil)
	be.Err(t, e.Bind("b", F64, unsafe.Pointer(&b)), nil)
	be.Err(t, e.SetExpression("(a+b)*3"), nil)

	v1 := e.Evaluate()
	be.True(t, math.Abs(v1-9.9) < 1e-9)

	a, b = b, a
	v2 := e.Evaluate()
	be.Equal(t, v1, v2)
}

func TestScenarioPythagoreanIdentity(t *testing.T) {
	e := New()
	defer e.Close()

	var a float64 = 1.1
	be.Err(t, e.Bind("a", F64, unsafe.Pointer(&a)), nil)
	be.Err(t, e.SetExpression("sin(a)*sin(a) + cos(a)*cos(a)"), nil)

	be.True(t, math.Abs(e.Evaluate()-1.0) < 1e-12)
}

func TestScenarioBindSetExpressionMutateUnbind(t *testing.T) {
	e := New()
	defer e.Close()

	var x float64
	be.Err(t, e.Bind("x", F64, unsafe.Pointer(&x)), nil)
	be.Err(t, e.SetExpression("x*2"), nil)

	x = 7
	be.Equal(t, e.Evaluate(), 14.0)

	be.Err(t, e.Unbind("x"), nil)
	be.Equal(t, e.Evaluate(), 0.0)
}

func TestScenarioParseErrorLeavesPreviousExpressionIntact(t *testing.T) {
	e := New()
	defer e.Close()

	var a float64 = 1.1
	be.Err(t, e.Bind("a", F64, unsafe.Pointer(&a)), nil)
	be.Err(t, e.SetExpression("a+1"), nil)
	before := e.Evaluate()

	err := e.SetExpression("a^")
	be.True(t, err != nil)
	merr, ok := err.(*Error)
	be.True(t, ok)
	be.Equal(t, merr.Kind, ParseError)
	be.Equal(t, merr.Pos, 3)

	be.Equal(t, e.Evaluate(), before)
}

func TestBindRejectsDuplicateName(t *testing.T) {
	e := New()
	defer e.Close()

	var a float64
	be.Err(t, e.Bind("a", F64, unsafe.Pointer(&a)), nil)

	err := e.Bind("a", F64, unsafe.Pointer(&a))
	merr, ok := err.(*Error)
	be.True(t, ok)
	be.Equal(t, merr.Kind, NameInUse)
}

func TestBindRejectsNameOfNamedConstant(t *testing.T) {
	e := New()
	defer e.Close()

	var a float64
	err := e.Bind("pi", F64, unsafe.Pointer(&a))
	merr, ok := err.(*Error)
	be.True(t, ok)
	be.Equal(t, merr.Kind, NameInUse)
}

func TestBindRejectsNameOfCatalogOperation(t *testing.T) {
	e := New()
	defer e.Close()

	var a float64
	err := e.Bind("sin", F64, unsafe.Pointer(&a))
	merr, ok := err.(*Error)
	be.True(t, ok)
	be.Equal(t, merr.Kind, NameInUse)
}

func TestUnbindUnknownNameFails(t *testing.T) {
	e := New()
	defer e.Close()

	err := e.Unbind("nope")
	merr, ok := err.(*Error)
	be.True(t, ok)
	be.Equal(t, merr.Kind, NotFound)
}

func TestRoundTripIsStable(t *testing.T) {
	e := New()
	defer e.Close()

	var a float64 = 4.4
	be.Err(t, e.Bind("a", F64, unsafe.Pointer(&a)), nil)
	be.Err(t, e.SetExpression("a*a - a/2"), nil)

	v1 := e.Evaluate()
	v2 := e.Evaluate()
	be.Equal(t, v1, v2)
}

func TestIntegerKindBindingIsReadByDeclaredKind(t *testing.T) {
	e := New()
	defer e.Close()

	var n int32 = 5
	be.Err(t, e.Bind("n", I32, unsafe.Pointer(&n)), nil)
	be.Err(t, e.SetExpression("n*2"), nil)

	be.Equal(t, e.Evaluate(), 10.0)
}
