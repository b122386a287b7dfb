package resolve

import (
	"strconv"

	"github.com/example/mexce/internal/node"
	"github.com/example/mexce/internal/parser"
	"github.com/example/mexce/internal/value"
)

// Resolve links a postfix item stream (already validated by the parser
// against syms) into a linear node.Program. Literal items are
// deduplicated by their source text within this call, as spec.md's data
// model requires: every occurrence of the same text shares one
// value.Literal, but each occurrence gets its own leaf node, so that
// every node has exactly one parent; binding items set Referenced on the underlying
// value.Binding, mirroring mexce.h's assign_expression doing the same
// while walking its own postfix stream.
//
// A Call item's n arguments are popped off the working stack in the
// order they were pushed - the last-pushed argument is the rightmost -
// and written into Args from right to left, so that Args ends up in
// left-to-right source order. Downstream code (catalog rewriters, the
// emitter's depth accounting) relies on that ordering.
func Resolve(items []parser.Item, syms *SymbolTable) *node.Program {
	prog := &node.Program{}
	literals := map[string]*value.Literal{}
	var stack []int

	push := func(n node.Node) int {
		prog.Nodes = append(prog.Nodes, n)
		return len(prog.Nodes) - 1
	}

	for _, it := range items {
		switch it.Kind {

		case parser.ItemNumber:
			lit, ok := literals[it.Text]
			if !ok {
				v, _ := strconv.ParseFloat(it.Text, 64)
				lit = &value.Literal{Text: it.Text, V: v}
				literals[it.Text] = lit
			}
			stack = append(stack, push(node.NewLiteralLeaf(lit)))

		case parser.ItemBinding:
			b := syms.Bindings[it.Text]
			b.Referenced = true
			stack = append(stack, push(node.NewBindingLeaf(b)))

		case parser.ItemConstant:
			stack = append(stack, push(node.NewConstantLeaf(syms.Constants[it.Text])))

		case parser.ItemOp:
			args := make([]int, it.Arity)
			for i := it.Arity - 1; i >= 0; i-- {
				args[i] = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, push(node.NewCall(it.Op, args)))
		}
	}

	prog.Root = stack[len(stack)-1]
	return prog
}
