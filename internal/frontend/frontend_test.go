package frontend

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kievzenit/kut/internal/ast"
	"github.com/kievzenit/kut/internal/compiler_errors"
	"github.com/kievzenit/kut/internal/lexer"
)

func TestParseSource(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	result, err := ParseSource("inline.kut", []byte("global int x;\nx*(2+3);"), Options{Logger: logger, KeepTokens: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := ast.Sprint(result.Program); got != "(program (global int x) (* x (+ 2 3)))" {
		t.Errorf("unexpected tree: %s", got)
	}

	if len(result.Tokens) != 13 {
		t.Errorf("expected 13 tokens, got %d", len(result.Tokens))
	}
	if last := result.Tokens[len(result.Tokens)-1]; last.Kind != lexer.EOF {
		t.Errorf("expected the recording to end with EOF, got %s", last.Kind)
	}

	if !strings.Contains(logs.String(), "file=inline.kut") {
		t.Errorf("expected a parse log line, got:\n%s", logs.String())
	}
}

func TestParseSourceWithoutTokens(t *testing.T) {
	result, err := ParseSource("inline.kut", []byte(";"), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Tokens != nil {
		t.Errorf("tokens must not be recorded unless asked, got %v", result.Tokens)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "main.kut")
	if err := os.WriteFile(path, []byte("1-"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ParseFile(path, Options{})
	if !errors.Is(err, compiler_errors.ErrSyntax) {
		t.Fatalf("expected a syntax error, got %v", err)
	}

	var compileErr *compiler_errors.CompileError
	if !errors.As(err, &compileErr) || compileErr.FileName != path {
		t.Errorf("expected the error to name %s, got %v", path, err)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.kut"), Options{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLexicalErrorsNameTheFile(t *testing.T) {
	_, parseErr := ParseSource("inline.kut", []byte("1 + $;"), Options{KeepTokens: true})
	_, tokenizeErr := Tokenize("inline.kut", []byte("1 + $;"))

	for name, err := range map[string]error{"ParseSource": parseErr, "Tokenize": tokenizeErr} {
		if !errors.Is(err, lexer.ErrLexical) {
			t.Errorf("%s: expected a lexical error, got %v", name, err)
			continue
		}
		if err.Error() != "inline.kut:1:5: unexpected character: '$'" {
			t.Errorf("%s: unexpected message: %v", name, err)
		}

		var lexErr *lexer.LexerError
		if !errors.As(err, &lexErr) || lexErr.Column != 5 {
			t.Errorf("%s: expected the lexer error to stay reachable, got %v", name, err)
		}
	}
}

func TestCompileErrorsAreNotPrefixedTwice(t *testing.T) {
	_, err := ParseSource("inline.kut", []byte("1+;"), Options{})
	if err == nil || strings.Count(err.Error(), "inline.kut") != 1 {
		t.Errorf("expected the file name once, got %v", err)
	}
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("inline.kut", []byte("x;"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 3 || tokens[2].Kind != lexer.EOF {
		t.Errorf("expected IDENT SEMICOLON EOF, got %v", tokens)
	}
}
