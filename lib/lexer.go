package lib

import (
	"unicode"
)

// Returned by peek past the end of the input.
const noChar rune = 0

// Lex scans expr and hands every token to emit in left-to-right order,
// finishing with a single END_OF_FILE token. The first unrecognised
// character aborts the scan with a *LexicalError and no END_OF_FILE.
func Lex(expr string, emit func(Token)) error {
	l := newLexer(expr, emit)
	return l.scan()
}

// Tokenize is Lex collected into a slice.
func Tokenize(expr string) ([]Token, error) {
	tokens := []Token{}
	err := Lex(expr, func(t Token) {
		tokens = append(tokens, t)
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

type lexer struct {
	expr             []rune
	length           int
	currentCharIndex int
	tokenStartIndex  int
	emitted          bool
	prevType         TokenType
	emitCallback     func(Token)
}

func newLexer(expr string, emit func(Token)) *lexer {
	runes := []rune(expr)
	return &lexer{
		expr:             runes,
		length:           len(runes),
		currentCharIndex: 0,
		tokenStartIndex:  0,
		emitCallback:     emit,
	}
}

func (l *lexer) emit(tokType TokenType) {
	l.emitCallback(Token{
		Type: tokType,
		Text: string(l.expr[l.tokenStartIndex:l.currentCharIndex]),
		Pos:  l.tokenStartIndex,
	})
	l.emitted = true
	l.prevType = tokType
}

func (l *lexer) peek(offset int) rune {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return noChar
	}
	return l.expr[i]
}

func (l *lexer) advance() rune {
	ch := l.peek(0)
	if l.currentCharIndex < l.length {
		l.currentCharIndex++
	}
	return ch
}

func (l *lexer) scan() error {
	for l.currentCharIndex < l.length {
		err := l.next()
		if err != nil {
			return err
		}
	}
	l.emitCallback(Token{Type: TokenTypeEOF, Text: EOFText, Pos: l.length})
	return nil
}

// next consumes one token (or one whitespace character). The cases overlap,
// so their order matters.
func (l *lexer) next() error {
	ch := l.peek(0)
	l.tokenStartIndex = l.currentCharIndex

	switch {
	case unicode.IsSpace(ch):
		l.advance()
	case isDigit(ch) || (ch == '.' && isDigit(l.peek(1))):
		l.scanNumber()
	case ch == '+' || ch == '-':
		ahead := l.peek(1)
		if l.inOperandPosition() && (isDigit(ahead) || ahead == 'i') {
			l.scanNumber()
		} else {
			l.advance()
			if ch == '+' {
				l.emit(TokenTypePlus)
			} else {
				l.emit(TokenTypeMinus)
			}
		}
	case ch == '*':
		l.advance()
		if l.peek(0) == '*' {
			l.advance()
			l.emit(TokenTypePower)
		} else {
			l.emit(TokenTypeMultiply)
		}
	case ch == '/':
		l.advance()
		l.emit(TokenTypeDivide)
	case ch == '(':
		l.advance()
		l.emit(TokenTypeLParen)
	case ch == ')':
		l.advance()
		l.emit(TokenTypeRParen)
	case ch == '[':
		l.advance()
		l.emit(TokenTypeLBracket)
	case ch == ']':
		l.advance()
		l.emit(TokenTypeRBracket)
	case isLetter(ch):
		l.scanIdentifier()
	default:
		return &LexicalError{Char: ch, Pos: l.currentCharIndex}
	}

	return nil
}

// A sign is unary when nothing precedes it, or it follows '(' or an operator.
func (l *lexer) inOperandPosition() bool {
	if !l.emitted {
		return true
	}
	return l.prevType == TokenTypeLParen || l.prevType.isOperator()
}

func (l *lexer) scanIdentifier() {
	for isLetter(l.peek(0)) || isDigit(l.peek(0)) {
		l.advance()
	}

	switch string(l.expr[l.tokenStartIndex:l.currentCharIndex]) {
	case "conj":
		l.emit(TokenTypeConjugate)
	case "root":
		l.emit(TokenTypeRoot)
	case "i":
		l.emit(TokenTypeComplexNumber)
	default:
		l.emit(TokenTypeVariable)
	}
}

// scanNumber reads a real, imaginary or fused literal: "5", ".5", "-i",
// "2i", "3+4i", "5.5-2i". A sign after the real part is only folded in when
// a digit, '.' or (with no digits so far) 'i' follows it; otherwise it is
// left for the next token, as in "5+x".
func (l *lexer) scanNumber() {
	if l.peek(0) == '+' || l.peek(0) == '-' {
		l.advance()
	}

	hasDigits := false
	for isDigit(l.peek(0)) {
		l.advance()
		hasDigits = true
	}

	if l.peek(0) == '.' {
		l.advance()
		for isDigit(l.peek(0)) {
			l.advance()
			hasDigits = true
		}
	}

	if l.peek(0) == '+' || l.peek(0) == '-' {
		ahead := l.peek(1)
		if !hasDigits && ahead == 'i' {
			l.advance()
			l.advance()
			l.emit(TokenTypeComplexNumber)
			return
		}

		if isDigit(ahead) || ahead == '.' {
			l.advance()
			l.skipDigits()
			if l.peek(0) == '.' {
				l.advance()
				l.skipDigits()
			}
		} else {
			l.emit(TokenTypeComplexNumber)
			return
		}
	}

	if l.peek(0) == 'i' {
		l.advance()
	}

	l.emit(TokenTypeComplexNumber)
}

func (l *lexer) skipDigits() {
	for isDigit(l.peek(0)) {
		l.advance()
	}
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
