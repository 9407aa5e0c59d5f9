package ast

import "github.com/kievzenit/kut/internal/lexer"

type IntExpr struct {
	StartToken *lexer.Token

	// Value is zero when the literal does not fit in an int64.
	Value     int64
	Overflows bool
}

type IdentExpr struct {
	StartToken *lexer.Token

	Value string
}

type BinaryExpr struct {
	StartToken *lexer.Token

	Left  Expr
	Op    *lexer.Token
	Right Expr
}

func (IntExpr) AstNode()    {}
func (IdentExpr) AstNode()  {}
func (BinaryExpr) AstNode() {}

func (e *IntExpr) FirstToken() *lexer.Token    { return e.StartToken }
func (e *IdentExpr) FirstToken() *lexer.Token  { return e.StartToken }
func (e *BinaryExpr) FirstToken() *lexer.Token { return e.StartToken }

func (IntExpr) StmtNode()    {}
func (IdentExpr) StmtNode()  {}
func (BinaryExpr) StmtNode() {}

func (IntExpr) ExprNode()    {}
func (IdentExpr) ExprNode()  {}
func (BinaryExpr) ExprNode() {}
