// Package parser turns a lexer.Token stream into a postfix Item sequence
// via a shunting-yard algorithm. It is grounded on the reference mexce
// implementation's two-stage "validate, then reorder to postfix" scanner,
// collapsed into one pass since the lexer already groups characters into
// clean tokens.
package parser

import "github.com/example/mexce/internal/lexer"

// operator priorities; lower binds tighter. ^ never participates in the
// pop-while-popping loop below, which is what makes it right-associative;
// every other infix operator pops same-or-tighter entries before pushing,
// which makes them left-associative.
const (
	prioPow  = 1
	prioMul  = 2
	prioAdd  = 3
	prioLess = 4
)

type stackKind int

const (
	skInfix stackKind = iota
	skUnary
	skLParen
	skFunc
)

type stackEntry struct {
	kind     stackKind
	priority int
	op       string
	name     string
	arity    int
	pos      int
}

// frame tracks one level of function-call argument nesting: how many
// un-parenthesized '(' groups are currently open within it, and - for a
// function frame - how many more arguments the catalog arity demands.
type frame struct {
	isFunc        bool
	name          string
	argsRemaining int
	parenDepth    int
}

// Parse lexes and parses src, resolving bare identifiers through res, and
// returns its postfix Item stream.
func Parse(src string, res Resolver) ([]Item, error) {
	toks, err := lexer.Lex(src)
	if err != nil {
		return nil, wrapLexError(err.(*lexer.Error))
	}
	p := &parser{toks: toks, res: res, frames: []*frame{{}}}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.out, nil
}

type parser struct {
	toks   []lexer.Token
	pos    int
	res    Resolver
	out    []Item
	ops    []stackEntry
	frames []*frame
}

func (p *parser) top() *frame { return p.frames[len(p.frames)-1] }

func (p *parser) popEntryToOutput(e stackEntry) {
	switch e.kind {
	case skInfix:
		p.out = append(p.out, Item{Kind: ItemOp, Op: e.op, Arity: 2, Pos: e.pos})
	case skUnary:
		if e.op != "" {
			p.out = append(p.out, Item{Kind: ItemOp, Op: e.op, Arity: 1, Pos: e.pos})
		}
	case skFunc:
		p.out = append(p.out, Item{Kind: ItemOp, Op: e.name, Arity: e.arity, Pos: e.pos})
	}
}

// popInfix pops every infix/unary entry on top of the operator stack whose
// priority is at least as tight as T, then pushes the new infix entry.
func (p *parser) popInfix(t int, op string, pos int) {
	for len(p.ops) > 0 {
		top := p.ops[len(p.ops)-1]
		if top.kind != skInfix && top.kind != skUnary {
			break
		}
		if top.priority > t {
			break
		}
		p.ops = p.ops[:len(p.ops)-1]
		p.popEntryToOutput(top)
	}
	p.ops = append(p.ops, stackEntry{kind: skInfix, priority: t, op: op, pos: pos})
}

func unexpected(tok lexer.Token) *Error {
	return &Error{Reason: UnexpectedCharacter, Pos: tok.Pos}
}

func (p *parser) run() error {
	expectValue := true
	for {
		tok := p.toks[p.pos]
		switch tok.Type {

		case lexer.EOF:
			if expectValue {
				return &Error{Reason: UnexpectedEndOfExpression, Pos: tok.Pos}
			}
			top := p.top()
			if len(p.frames) > 1 || top.parenDepth > 0 {
				return &Error{Reason: UnbalancedParenthesis, Pos: tok.Pos}
			}
			for len(p.ops) > 0 {
				e := p.ops[len(p.ops)-1]
				p.ops = p.ops[:len(p.ops)-1]
				p.popEntryToOutput(e)
			}
			return nil

		case lexer.Number:
			if !expectValue {
				return unexpected(tok)
			}
			p.out = append(p.out, Item{Kind: ItemNumber, Text: tok.Text, Pos: tok.Pos})
			expectValue = false
			p.pos++

		case lexer.Ident:
			if !expectValue {
				return unexpected(tok)
			}
			kind, arity, ok := p.res.Resolve(tok.Text)
			if !ok {
				return &Error{Reason: UnknownName, Pos: tok.Pos, Name: tok.Text}
			}
			switch kind {
			case KindBinding:
				p.out = append(p.out, Item{Kind: ItemBinding, Text: tok.Text, Pos: tok.Pos})
				expectValue = false
				p.pos++
			case KindConstant:
				p.out = append(p.out, Item{Kind: ItemConstant, Text: tok.Text, Pos: tok.Pos})
				expectValue = false
				p.pos++
			case KindFunction:
				namePos := tok.Pos
				p.pos++
				next := p.toks[p.pos]
				if next.Type != lexer.LParen {
					if next.Type == lexer.EOF {
						return &Error{Reason: UnexpectedEndOfExpression, Pos: next.Pos}
					}
					return unexpected(next)
				}
				p.pos++
				p.ops = append(p.ops, stackEntry{kind: skFunc, name: tok.Text, arity: arity, pos: namePos})
				p.frames = append(p.frames, &frame{isFunc: true, name: tok.Text, argsRemaining: arity})
				expectValue = true
			}

		case lexer.LParen:
			if !expectValue {
				return unexpected(tok)
			}
			p.top().parenDepth++
			p.ops = append(p.ops, stackEntry{kind: skLParen, pos: tok.Pos})
			expectValue = true
			p.pos++

		case lexer.RParen:
			top := p.top()
			if top.parenDepth == 0 && !top.isFunc {
				return &Error{Reason: UnbalancedParenthesis, Pos: tok.Pos}
			}
			if expectValue {
				return &Error{Reason: EmptyArgument, Pos: tok.Pos}
			}
			if top.parenDepth > 0 {
				for {
					if len(p.ops) == 0 {
						return &Error{Reason: UnbalancedParenthesis, Pos: tok.Pos}
					}
					e := p.ops[len(p.ops)-1]
					p.ops = p.ops[:len(p.ops)-1]
					if e.kind == skLParen {
						break
					}
					p.popEntryToOutput(e)
				}
				top.parenDepth--
			} else {
				if top.argsRemaining != 1 {
					return &Error{Reason: ArityMismatch, Pos: tok.Pos, Name: top.name}
				}
				for {
					e := p.ops[len(p.ops)-1]
					p.ops = p.ops[:len(p.ops)-1]
					isFunc := e.kind == skFunc
					p.popEntryToOutput(e)
					if isFunc {
						break
					}
				}
				p.frames = p.frames[:len(p.frames)-1]
			}
			expectValue = false
			p.pos++

		case lexer.Comma:
			top := p.top()
			if expectValue {
				return &Error{Reason: EmptyArgument, Pos: tok.Pos}
			}
			if top.parenDepth != 0 {
				return &Error{Reason: UnbalancedParenthesis, Pos: tok.Pos}
			}
			if !top.isFunc {
				return unexpected(tok)
			}
			if top.argsRemaining < 2 {
				return &Error{Reason: ArityMismatch, Pos: tok.Pos, Name: top.name}
			}
			top.argsRemaining--
			for {
				e := p.ops[len(p.ops)-1]
				if e.kind == skFunc {
					break
				}
				p.ops = p.ops[:len(p.ops)-1]
				p.popEntryToOutput(e)
			}
			expectValue = true
			p.pos++

		case lexer.Plus, lexer.Minus:
			if expectValue {
				prio := prioAdd
				if len(p.ops) > 0 {
					top := p.ops[len(p.ops)-1]
					if (top.kind == skInfix || top.kind == skUnary) && top.priority == prioPow {
						prio = prioPow
					}
				}
				op := ""
				if tok.Type == lexer.Minus {
					op = "neg"
				}
				p.ops = append(p.ops, stackEntry{kind: skUnary, priority: prio, op: op, pos: tok.Pos})
				expectValue = true
				p.pos++
				continue
			}
			op := "add"
			if tok.Type == lexer.Minus {
				op = "sub"
			}
			p.popInfix(prioAdd, op, tok.Pos)
			expectValue = true
			p.pos++

		case lexer.Star, lexer.Slash, lexer.Caret, lexer.Less:
			if expectValue {
				return unexpected(tok)
			}
			switch tok.Type {
			case lexer.Star:
				p.popInfix(prioMul, "mul", tok.Pos)
			case lexer.Slash:
				p.popInfix(prioMul, "div", tok.Pos)
			case lexer.Caret:
				p.ops = append(p.ops, stackEntry{kind: skInfix, priority: prioPow, op: "pow", pos: tok.Pos})
			case lexer.Less:
				p.popInfix(prioLess, "less_than", tok.Pos)
			}
			expectValue = true
			p.pos++
		}
	}
}
