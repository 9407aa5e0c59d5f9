package lexer

// TokenSource hands out one token per call. Once the input is exhausted it
// must keep returning EOF.
type TokenSource interface {
	NextToken() (Token, error)
}

type SliceTokenSource struct {
	tokens []Token

	pos int
}

func NewSliceTokenSource(tokens []Token) *SliceTokenSource {
	return &SliceTokenSource{
		tokens: tokens,
	}
}

func (s *SliceTokenSource) NextToken() (Token, error) {
	if s.pos >= len(s.tokens) {
		return s.eof(), nil
	}

	token := s.tokens[s.pos]
	s.pos++

	return token, nil
}

func (s *SliceTokenSource) eof() Token {
	if len(s.tokens) > 0 && s.tokens[len(s.tokens)-1].Kind == EOF {
		return s.tokens[len(s.tokens)-1]
	}

	return Token{
		Kind:  EOF,
		Value: EOF.String(),
	}
}
