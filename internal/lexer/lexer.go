package lexer

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var ErrLexical = errors.New("lexical error")

type LexerError struct {
	Message string

	Line   int
	Column int
}

// newUnexpectedError reports the character starting at rest, printing bytes
// that are not valid UTF-8 as hex escapes.
func newUnexpectedError(rest []byte, line, col int) *LexerError {
	unexpected, size := utf8.DecodeRune(rest)
	message := fmt.Sprintf("unexpected character: '%c'", unexpected)
	if unexpected == utf8.RuneError && size <= 1 {
		message = fmt.Sprintf("unexpected byte: '\\x%02x'", rest[0])
	}

	return &LexerError{
		Message: message,
		Line:    line,
		Column:  col,
	}
}

func (e *LexerError) GetMessage() string {
	return e.Message
}

func (e *LexerError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

func (e *LexerError) Is(target error) bool {
	return target == ErrLexical
}

type Lexer struct {
	buf []byte
	pos int

	line, col int
}

func NewLexer(buf []byte) *Lexer {
	return &Lexer{
		buf: buf,
		pos: 0,

		line: 1,
		col:  1,
	}
}

// Tokenize drains the lexer, the returned slice always ends with EOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	tokens := make([]Token, 0)

	for {
		token, err := l.NextToken()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, token)
		if token.Kind == EOF {
			return tokens, nil
		}
	}
}

// NextToken returns EOF on every call once the input is exhausted.
func (l *Lexer) NextToken() (Token, error) {
	l.skipBlanks()

	if !l.hasChars() {
		return Token{
			Kind:  EOF,
			Value: EOF.String(),
			Metadata: TokenMetadata{
				Line:   l.line,
				Column: l.col,
			},
		}, nil
	}

	switch {
	case l.isCurrDigit():
		return l.processNumber(), nil
	case l.isCurrIdentifier():
		return l.processIdentifier(), nil
	case l.isCurrPunctuation():
		return l.processPunctuation(), nil
	}

	return Token{}, newUnexpectedError(l.buf[l.pos:], l.line, l.col)
}

func (l *Lexer) skipBlanks() {
	for l.hasChars() {
		switch {
		case l.isCurrSkippable():
			l.advance()
		case l.read() == '/' && l.hasNext() && l.next() == '/':
			for l.hasChars() && !l.isCurrNewline() {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) isCurrIdentifier() bool {
	return (l.read() >= 'a' && l.read() <= 'z') || (l.read() >= 'A' && l.read() <= 'Z') || l.read() == '_'
}

func (l *Lexer) isCurrDigit() bool {
	return l.read() >= '0' && l.read() <= '9'
}

func (l *Lexer) isCurrPunctuation() bool {
	switch l.read() {
	case '+', '-', '*', '/', '(', ')', ';':
		return true
	}
	return false
}

func (l *Lexer) isCurrNewline() bool {
	return l.read() == '\n'
}

func (l *Lexer) isCurrSkippable() bool {
	switch l.read() {
	case ' ', '\t', '\n', '\r':
		return true
	}

	return false
}

func (l *Lexer) processIdentifier() Token {
	start := l.pos
	metadata := l.metadata()

	for l.hasChars() && (l.isCurrIdentifier() || l.isCurrDigit()) {
		l.advance()
	}
	identifier := string(l.buf[start:l.pos])
	metadata.Length = len(identifier)

	switch identifier {
	case "global":
		return Token{
			Kind:     GLOBAL,
			Value:    identifier,
			Metadata: metadata,
		}
	case "int":
		return Token{
			Kind:     INT_TYPE,
			Value:    identifier,
			Metadata: metadata,
		}
	}

	return Token{
		Kind:     IDENT,
		Value:    identifier,
		Metadata: metadata,
	}
}

func (l *Lexer) processNumber() Token {
	start := l.pos
	metadata := l.metadata()

	for l.hasChars() && l.isCurrDigit() {
		l.advance()
	}
	number := string(l.buf[start:l.pos])
	metadata.Length = len(number)

	return Token{
		Kind:     INT,
		Value:    number,
		Metadata: metadata,
	}
}

func (l *Lexer) processPunctuation() Token {
	metadata := l.metadata()
	metadata.Length = 1

	var kind TokenKind
	switch l.read() {
	case '+':
		kind = PLUS
	case '-':
		kind = MINUS
	case '*':
		kind = ASTERISK
	case '/':
		kind = SLASH
	case '(':
		kind = LPAREN
	case ')':
		kind = RPAREN
	case ';':
		kind = SEMICOLON
	default:
		panic("unreachable")
	}

	value := string(l.read())
	l.advance()

	return Token{
		Kind:     kind,
		Value:    value,
		Metadata: metadata,
	}
}

func (l *Lexer) metadata() TokenMetadata {
	return TokenMetadata{
		Line:   l.line,
		Column: l.col,
	}
}

func (l *Lexer) hasChars() bool {
	return l.pos < len(l.buf)
}

func (l *Lexer) hasNext() bool {
	return l.pos+1 < len(l.buf)
}

func (l *Lexer) advance() {
	if l.isCurrNewline() {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func (l *Lexer) next() byte { return l.buf[l.pos+1] }
func (l *Lexer) read() byte { return l.buf[l.pos] }
