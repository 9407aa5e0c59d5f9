package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Sprint renders node as an s-expression, e.g. "(program (+ 1 (* 2 3)))".
func Sprint(node AstNode) string {
	var sb strings.Builder
	sprint(&sb, node)
	return sb.String()
}

func sprint(sb *strings.Builder, node AstNode) {
	switch n := node.(type) {
	case *Program:
		sb.WriteString("(program")
		if n.Body != nil {
			for _, stmt := range n.Body.Stmts {
				sb.WriteByte(' ')
				sprint(sb, stmt)
			}
		}
		sb.WriteByte(')')
	case *Statements:
		for i, stmt := range n.Stmts {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sprint(sb, stmt)
		}
	case *EmptyStmt:
		sb.WriteString("(empty)")
	case *GlobalDeclStmt:
		fmt.Fprintf(sb, "(global %s %s)", n.Type.Value, n.Ident.Value)
	case *IdentExpr:
		sb.WriteString(n.Value)
	case *IntExpr:
		if n.Overflows {
			sb.WriteString(n.StartToken.Value)
		} else {
			sb.WriteString(strconv.FormatInt(n.Value, 10))
		}
	case *BinaryExpr:
		fmt.Fprintf(sb, "(%s ", n.Op.Value)
		sprint(sb, n.Left)
		sb.WriteByte(' ')
		sprint(sb, n.Right)
		sb.WriteByte(')')
	default:
		panic(fmt.Sprintf("ast.Sprint(): received illegal node: %T", node))
	}
}
