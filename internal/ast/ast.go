package ast

import "github.com/kievzenit/kut/internal/lexer"

type AstNode interface {
	AstNode()
	FirstToken() *lexer.Token
}

type Program struct {
	Body *Statements
}

type Stmt interface {
	AstNode
	StmtNode()
}

// Expr is also a Stmt: an expression statement is represented by the
// expression itself.
type Expr interface {
	Stmt
	ExprNode()
}

func (p *Program) AstNode() {}
func (p *Program) FirstToken() *lexer.Token {
	if p.Body == nil {
		return nil
	}
	return p.Body.FirstToken()
}
