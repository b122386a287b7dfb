package lexer

// Lex tokenizes src in full and returns its token sequence terminated by an
// EOF token, or the first lexical Error encountered. There is no streaming
// interface; expressions are short enough that scanning the whole text up
// front costs nothing and lets the parser look arbitrarily far ahead.
func Lex(src string) ([]Token, error) {
	l := &scanner{src: src}
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks, nil
		}
	}
}

type scanner struct {
	src string
	pos int
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isAlnum(b byte) bool { return isAlpha(b) || isDigit(b) }

// pos1 converts a 0-based byte index into the 1-based position reported in
// tokens and errors: the first character of the source is position 1, and
// the position just past the last character (end of expression) is
// len(src)+1.
func pos1(i int) int { return i + 1 }

func (s *scanner) peek() (byte, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	return s.src[s.pos], true
}

func (s *scanner) next() (Token, error) {
	for {
		b, ok := s.peek()
		if !ok {
			return Token{Type: EOF, Pos: pos1(s.pos)}, nil
		}
		if b != ' ' {
			break
		}
		s.pos++
	}

	start := s.pos
	b, _ := s.peek()

	switch {
	case isDigit(b):
		return s.lexNumber(start)
	case b == '.':
		return s.lexNumber(start)
	case isAlpha(b):
		return s.lexIdent(start)
	}

	single := map[byte]TokenType{
		'+': Plus, '-': Minus, '*': Star, '/': Slash,
		'^': Caret, '<': Less, '(': LParen, ')': RParen, ',': Comma,
	}
	if t, ok := single[b]; ok {
		s.pos++
		return Token{Type: t, Text: string(b), Pos: pos1(start)}, nil
	}

	return Token{}, &Error{Reason: UnexpectedCharacter, Pos: pos1(start), Char: b}
}

// lexNumber consumes digits ('.' digits?)? | '.' digits starting at start,
// which the caller has confirmed begins with a digit or a dot.
func (s *scanner) lexNumber(start int) (Token, error) {
	sawDigitBeforeDot := false
	for {
		b, ok := s.peek()
		if !ok || !isDigit(b) {
			break
		}
		sawDigitBeforeDot = true
		s.pos++
	}

	if b, ok := s.peek(); ok && b == '.' {
		s.pos++
		sawDigitAfterDot := false
		for {
			b, ok := s.peek()
			if !ok || !isDigit(b) {
				break
			}
			sawDigitAfterDot = true
			s.pos++
		}
		if !sawDigitBeforeDot && !sawDigitAfterDot {
			if _, ok := s.peek(); !ok {
				return Token{}, &Error{Reason: UnexpectedEndOfExpression, Pos: pos1(s.pos)}
			}
			return Token{}, &Error{Reason: UnexpectedCharacter, Pos: pos1(start), Char: '.'}
		}
	}

	return Token{Type: Number, Text: s.src[start:s.pos], Pos: pos1(start)}, nil
}

func (s *scanner) lexIdent(start int) (Token, error) {
	for {
		b, ok := s.peek()
		if !ok || !isAlnum(b) {
			break
		}
		s.pos++
	}
	return Token{Type: Ident, Text: s.src[start:s.pos], Pos: pos1(start)}, nil
}
