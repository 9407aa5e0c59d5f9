package ast

import "fmt"

// Walk visits node and its children depth-first, children in source order.
// Returning false from fn skips the children of the visited node.
func Walk(node AstNode, fn func(AstNode) bool) {
	if !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		if n.Body != nil {
			Walk(n.Body, fn)
		}
	case *Statements:
		for _, stmt := range n.Stmts {
			Walk(stmt, fn)
		}
	case *GlobalDeclStmt:
		Walk(n.Ident, fn)
	case *BinaryExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *EmptyStmt, *IdentExpr, *IntExpr:
	default:
		panic(fmt.Sprintf("ast.Walk(): received illegal node: %T", node))
	}
}
