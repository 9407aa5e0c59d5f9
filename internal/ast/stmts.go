package ast

import "github.com/kievzenit/kut/internal/lexer"

type Statements struct {
	Stmts []Stmt
}

type EmptyStmt struct {
	StartToken *lexer.Token
}

type GlobalDeclStmt struct {
	StartToken *lexer.Token

	Type  *lexer.Token
	Ident *IdentExpr
}

func (s *Statements) AstNode()     {}
func (e *EmptyStmt) AstNode()      {}
func (g *GlobalDeclStmt) AstNode() {}

// FirstToken is nil for an empty sequence.
func (s *Statements) FirstToken() *lexer.Token {
	if len(s.Stmts) == 0 {
		return nil
	}
	return s.Stmts[0].FirstToken()
}
func (e *EmptyStmt) FirstToken() *lexer.Token      { return e.StartToken }
func (g *GlobalDeclStmt) FirstToken() *lexer.Token { return g.StartToken }

func (e *EmptyStmt) StmtNode()      {}
func (g *GlobalDeclStmt) StmtNode() {}
