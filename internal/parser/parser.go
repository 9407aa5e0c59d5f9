package parser

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/kievzenit/kut/internal/ast"
	"github.com/kievzenit/kut/internal/compiler_errors"
	"github.com/kievzenit/kut/internal/lexer"
)

// SyntaxError is a compile error raised where the grammar required a
// specific token. errors.Is matches both ErrSyntax and ErrCompile.
type SyntaxError struct {
	compiler_errors.CompileError

	Unexpected lexer.Token
	Expected   []lexer.TokenKind
}

func (e *SyntaxError) Error() string {
	return e.Location() + ": syntax error: " + e.Message
}

func (e *SyntaxError) Is(target error) bool {
	return target == compiler_errors.ErrSyntax || target == compiler_errors.ErrCompile
}

func (e *SyntaxError) Unwrap() error {
	return &e.CompileError
}

type Option func(*Parser)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// Parser is single use: create one per token source.
type Parser struct {
	fileName string

	source lexer.TokenSource
	logger *slog.Logger

	curr *lexer.Token
}

func NewParser(fileName string, source lexer.TokenSource, opts ...Option) *Parser {
	p := &Parser{
		fileName: fileName,
		source:   source,
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Parser) Parse() (*ast.Program, error) {
	defer func() { p.curr = nil }()

	p.logger.Debug("parse started", "file", p.fileName)

	if err := p.read(); err != nil {
		p.logger.Debug("parse failed", "file", p.fileName, "error", err)
		return nil, err
	}

	program, err := p.parseProgram()
	if err != nil {
		p.logger.Debug("parse failed", "file", p.fileName, "error", err)
		return nil, err
	}

	p.logger.Debug("parse finished", "file", p.fileName, "statements", len(program.Body.Stmts))
	return program, nil
}

func (p *Parser) parseProgram() (*ast.Program, error) {
	stmts, err := p.parseStatements()
	if err != nil {
		return nil, err
	}

	if err := p.expectEndOfInput(); err != nil {
		return nil, err
	}

	return &ast.Program{
		Body: stmts,
	}, nil
}

// expectEndOfInput guards the program boundary. parseStatements only returns
// at EOF today, so this fires only if statement parsing learns to stop early.
func (p *Parser) expectEndOfInput() error {
	if p.curr.Kind != lexer.EOF {
		return p.syntaxError(
			[]lexer.TokenKind{lexer.EOF},
			"program is not properly terminated, found: '%s'", p.curr)
	}
	return nil
}

func (p *Parser) parseStatements() (*ast.Statements, error) {
	stmts := make([]ast.Stmt, 0)
	for p.curr.Kind != lexer.EOF {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)
	}

	return &ast.Statements{
		Stmts: stmts,
	}, nil
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.curr.Kind {
	case lexer.SEMICOLON:
		return p.parseEmptyStmt()
	case lexer.GLOBAL:
		return p.parseGlobalDeclStmt()
	}

	return p.parseExprStmt()
}

func (p *Parser) parseEmptyStmt() (*ast.EmptyStmt, error) {
	if p.curr.Kind != lexer.SEMICOLON {
		return nil, &compiler_errors.CompileError{
			Message: fmt.Sprintf("expected ';', but found: '%s'", p.curr),

			FileName: p.fileName,
			Line:     p.curr.Metadata.Line,
			Column:   p.curr.Metadata.Column,
			Length:   p.curr.Metadata.Length,
		}
	}
	startToken := p.curr

	if err := p.read(); err != nil {
		return nil, err
	}

	return &ast.EmptyStmt{
		StartToken: startToken,
	}, nil
}

func (p *Parser) parseExprStmt() (ast.Expr, error) {
	expr, err := p.parseAdditiveExpr()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	if err := p.read(); err != nil {
		return nil, err
	}

	return expr, nil
}

func (p *Parser) parseGlobalDeclStmt() (*ast.GlobalDeclStmt, error) {
	if err := p.expect(lexer.GLOBAL); err != nil {
		return nil, err
	}
	startToken := p.curr
	if err := p.read(); err != nil {
		return nil, err
	}

	if p.curr.Kind != lexer.INT_TYPE {
		return nil, p.syntaxError(
			[]lexer.TokenKind{lexer.INT_TYPE},
			"expected a type name, but found: '%s'", p.curr)
	}
	typeToken := p.curr
	if err := p.read(); err != nil {
		return nil, err
	}

	ident, err := p.parseIdentExpr()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}
	if err := p.read(); err != nil {
		return nil, err
	}

	return &ast.GlobalDeclStmt{
		StartToken: startToken,

		Type:  typeToken,
		Ident: ident,
	}, nil
}

func (p *Parser) parseAdditiveExpr() (ast.Expr, error) {
	return p.parseBinaryExpr(p.parseMultiplicativeExpr, lexer.PLUS, lexer.MINUS)
}

func (p *Parser) parseMultiplicativeExpr() (ast.Expr, error) {
	return p.parseBinaryExpr(p.parsePrimaryExpr, lexer.ASTERISK, lexer.SLASH)
}

// parseBinaryExpr folds operand (op operand)* to the left, so equal
// precedence operators associate left to right.
func (p *Parser) parseBinaryExpr(operand func() (ast.Expr, error), ops ...lexer.TokenKind) (ast.Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for p.curr != nil && p.curr.Kind != lexer.EOF && p.isCurrAny(ops...) {
		op := p.curr
		if err := p.read(); err != nil {
			return nil, err
		}

		right, err := operand()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{
			StartToken: left.FirstToken(),

			Left:  left,
			Op:    op,
			Right: right,
		}
	}

	return left, nil
}

func (p *Parser) parsePrimaryExpr() (ast.Expr, error) {
	switch p.curr.Kind {
	case lexer.LPAREN:
		return p.parseParenExpr()
	case lexer.INT:
		return p.parseIntegerExpr()
	case lexer.IDENT:
		return p.parseIdentExpr()
	}

	return nil, p.syntaxError(
		[]lexer.TokenKind{lexer.LPAREN, lexer.INT, lexer.IDENT},
		"expected an identifier or an integer literal, but found: '%s'", p.curr)
}

func (p *Parser) parseParenExpr() (ast.Expr, error) {
	if err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	if err := p.read(); err != nil {
		return nil, err
	}

	expr, err := p.parseAdditiveExpr()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	if err := p.read(); err != nil {
		return nil, err
	}

	return expr, nil
}

func (p *Parser) parseIdentExpr() (*ast.IdentExpr, error) {
	if p.curr.Kind != lexer.IDENT {
		return nil, p.syntaxError(
			[]lexer.TokenKind{lexer.IDENT},
			"expected an identifier, but found: '%s'", p.curr)
	}

	startToken := p.curr
	ident := p.curr.Value
	if err := p.read(); err != nil {
		return nil, err
	}

	return &ast.IdentExpr{
		StartToken: startToken,

		Value: ident,
	}, nil
}

func (p *Parser) parseIntegerExpr() (*ast.IntExpr, error) {
	if p.curr.Kind != lexer.INT {
		return nil, p.syntaxError(
			[]lexer.TokenKind{lexer.INT},
			"expected an integer literal, but found: '%s'", p.curr)
	}
	startToken := p.curr

	if err := p.read(); err != nil {
		return nil, err
	}

	expr := &ast.IntExpr{
		StartToken: startToken,
	}

	// An out of range literal is still a valid literal, its text is kept in
	// StartToken.
	if value, err := strconv.ParseInt(startToken.Value, 10, 64); err == nil {
		expr.Value = value
	} else {
		expr.Overflows = true
	}

	return expr, nil
}

// read advances the lookahead. Token source failures are returned as is.
func (p *Parser) read() error {
	token, err := p.source.NextToken()
	if err != nil {
		return err
	}

	p.curr = &token
	return nil
}

func (p *Parser) expect(kind lexer.TokenKind) error {
	if p.curr.Kind == kind {
		return nil
	}

	return p.syntaxError(
		[]lexer.TokenKind{kind},
		"expected '%s', but found: '%s'", kind.Symbol(), p.curr)
}

func (p *Parser) isCurrAny(kinds ...lexer.TokenKind) bool {
	return slices.Contains(kinds, p.curr.Kind)
}

func (p *Parser) syntaxError(expected []lexer.TokenKind, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		CompileError: compiler_errors.CompileError{
			Message: fmt.Sprintf(format, args...),

			FileName: p.fileName,
			Line:     p.curr.Metadata.Line,
			Column:   p.curr.Metadata.Column,
			Length:   p.curr.Metadata.Length,
		},

		Unexpected: *p.curr,
		Expected:   expected,
	}
}
