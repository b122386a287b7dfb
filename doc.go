// Package mexce compiles a single-line arithmetic expression, written
// against a set of bound program variables and a fixed catalog of
// mathematical functions, straight into a block of x87 machine code and
// hands back a callable that evaluates it.
//
// A caller binds named variables of various numeric kinds, assigns an
// expression referencing those names, and calls Evaluate as often as it
// likes; each call re-reads the bound memory and returns a float64. There
// is no bytecode interpreter and no general-purpose runtime underneath
// Evaluate - the compiled function pointer runs natively.
package mexce
