package lib

// TokenReader walks a scanned token list one token at a time, with one token
// of lookahead. It is the handle a parser consumes.
type TokenReader struct {
	tokens []Token
	index  int
}

func NewTokenReader(tokens []Token) *TokenReader {
	return &TokenReader{tokens: tokens}
}

// Next returns the next token. done is true once END_OF_FILE has been
// consumed or the list ran out; the zero Token is returned in that case.
func (tr *TokenReader) Next() (tok Token, done bool) {
	tok, done = tr.Peek()
	if !done {
		tr.index++
	}
	return tok, done
}

func (tr *TokenReader) Peek() (tok Token, done bool) {
	if tr.index >= len(tr.tokens) {
		return Token{}, true
	}
	if tr.index > 0 && tr.tokens[tr.index-1].Type == TokenTypeEOF {
		return Token{}, true
	}
	return tr.tokens[tr.index], false
}

// Literals collects the values of every COMPLEX_NUMBER token left in the
// reader, consuming it.
func (tr *TokenReader) Literals() ([]Complex, error) {
	values := []Complex{}
	for {
		tok, done := tr.Next()
		if done {
			break
		}
		if tok.Type != TokenTypeComplexNumber {
			continue
		}
		v, err := tok.Value()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
