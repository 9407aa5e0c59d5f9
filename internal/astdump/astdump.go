package astdump

import (
	"fmt"
	"io"

	"github.com/kievzenit/kut/internal/ast"
	"github.com/sanity-io/litter"
	"gopkg.in/yaml.v3"
)

const (
	FormatSexpr  = "sexpr"
	FormatLitter = "litter"
	FormatYAML   = "yaml"
)

var litterOptions = litter.Options{
	StripPackageNames: true,
	HideZeroValues:    true,
}

func Dump(w io.Writer, node ast.AstNode, format string) error {
	switch format {
	case FormatSexpr:
		_, err := fmt.Fprintln(w, ast.Sprint(node))
		return err
	case FormatLitter:
		_, err := io.WriteString(w, litterOptions.Sdump(node)+"\n")
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(Tree(node)); err != nil {
			return err
		}
		return enc.Close()
	}

	return fmt.Errorf("unknown dump format: %q", format)
}

// Tree converts node into plain maps and slices with a "kind" key per node.
func Tree(node ast.AstNode) map[string]any {
	tree := map[string]any{}
	if first := node.FirstToken(); first != nil {
		tree["line"] = first.Metadata.Line
		tree["column"] = first.Metadata.Column
	}

	switch n := node.(type) {
	case *ast.Program:
		tree["kind"] = "Program"
		tree["body"] = Tree(n.Body)
	case *ast.Statements:
		stmts := make([]any, len(n.Stmts))
		for i, stmt := range n.Stmts {
			stmts[i] = Tree(stmt)
		}
		tree["kind"] = "Statements"
		tree["stmts"] = stmts
	case *ast.EmptyStmt:
		tree["kind"] = "EmptyStmt"
	case *ast.GlobalDeclStmt:
		tree["kind"] = "GlobalDeclStmt"
		tree["type"] = n.Type.Value
		tree["name"] = n.Ident.Value
	case *ast.IdentExpr:
		tree["kind"] = "IdentExpr"
		tree["name"] = n.Value
	case *ast.IntExpr:
		tree["kind"] = "IntExpr"
		tree["value"] = n.Value
		tree["text"] = n.StartToken.Value
		if n.Overflows {
			tree["overflows"] = true
		}
	case *ast.BinaryExpr:
		tree["kind"] = "BinaryExpr"
		tree["op"] = n.Op.Value
		tree["left"] = Tree(n.Left)
		tree["right"] = Tree(n.Right)
	default:
		panic(fmt.Sprintf("astdump.Tree(): received illegal node: %T", node))
	}

	return tree
}
