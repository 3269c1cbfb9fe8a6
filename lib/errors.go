package lib

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by Divide when the divisor's squared
	// magnitude is below zeroTolerance.
	ErrDivisionByZero = errors.New("division by complex zero (0+0i)")

	// ErrInvalidArgument is returned by NthRoot for a non-positive index.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrMalformedLiteral = errors.New("malformed complex literal")
)

// LexicalError aborts a tokenize call at the first character that cannot
// start any token.
type LexicalError struct {
	Char rune
	Pos  int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("Lexical error: unexpected character '%c' at position %d", e.Char, e.Pos)
}
