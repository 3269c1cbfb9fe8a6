package lib

import "fmt"

type TokenType int

const (
	TokenTypeComplexNumber TokenType = iota
	TokenTypeVariable
	TokenTypePlus
	TokenTypeMinus
	TokenTypeMultiply
	TokenTypeDivide
	TokenTypePower
	TokenTypeConjugate
	TokenTypeRoot
	TokenTypeLParen
	TokenTypeRParen
	TokenTypeLBracket
	TokenTypeRBracket
	TokenTypeEOF
)

// EOFText is the synthetic text carried by the END_OF_FILE token.
const EOFText = "<EOF>"

var tokenTypeNames = [...]string{
	TokenTypeComplexNumber: "COMPLEX_NUMBER",
	TokenTypeVariable:      "VARIABLE",
	TokenTypePlus:          "PLUS",
	TokenTypeMinus:         "MINUS",
	TokenTypeMultiply:      "MULTIPLY",
	TokenTypeDivide:        "DIVIDE",
	TokenTypePower:         "POWER",
	TokenTypeConjugate:     "CONJUGATE",
	TokenTypeRoot:          "ROOT",
	TokenTypeLParen:        "LEFT_PAREN",
	TokenTypeRParen:        "RIGHT_PAREN",
	TokenTypeLBracket:      "LEFT_BRACKET",
	TokenTypeRBracket:      "RIGHT_BRACKET",
	TokenTypeEOF:           "END_OF_FILE",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenTypeNames) {
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
	return tokenTypeNames[t]
}

func (t TokenType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TokenType) UnmarshalText(text []byte) error {
	for i, name := range tokenTypeNames {
		if name == string(text) {
			*t = TokenType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown token type %q", string(text))
}

// isOperator reports whether a token of this type leaves the scanner in
// operand position, so that a following sign may start a literal.
func (t TokenType) isOperator() bool {
	switch t {
	case TokenTypePlus, TokenTypeMinus, TokenTypeMultiply, TokenTypeDivide, TokenTypePower:
		return true
	}
	return false
}

// Token is a classified piece of an expression. Text is the exact input
// substring (or a fixed literal for END_OF_FILE), Pos the 0-based character
// offset where it started.
type Token struct {
	Type TokenType `json:"type"`
	Text string    `json:"text"`
	Pos  int       `json:"pos"`
}

func (t Token) String() string {
	return fmt.Sprintf("Token[%s, '%s']", t.Type, t.Text)
}

// Value re-parses a COMPLEX_NUMBER token into the number it denotes.
func (t Token) Value() (Complex, error) {
	if t.Type != TokenTypeComplexNumber {
		return Complex{}, fmt.Errorf("%w: %s is not a number", ErrMalformedLiteral, t)
	}
	return ParseComplex(t.Text)
}
