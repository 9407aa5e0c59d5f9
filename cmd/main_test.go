package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.kut")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestParseCommand(t *testing.T) {
	path := writeSource(t, "global int x;\n(x+1)*2;\n")

	code, stdout, stderr := execute(t, "", "parse", path)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, stderr)
	}
	if stdout != "(program (global int x) (* (+ x 1) 2))\n" {
		t.Errorf("unexpected output: %q", stdout)
	}
}

func TestParseCommandFormats(t *testing.T) {
	path := writeSource(t, "1-2;")

	tests := []struct {
		format string
		want   string
	}{
		{"sexpr", "(program (- 1 2))"},
		{"litter", "BinaryExpr{"},
		{"yaml", "kind: BinaryExpr"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			code, stdout, stderr := execute(t, "", "parse", "--format", tt.format, path)
			if code != 0 {
				t.Fatalf("expected exit code 0, got %d: %s", code, stderr)
			}
			if !strings.Contains(stdout, tt.want) {
				t.Errorf("expected %q in:\n%s", tt.want, stdout)
			}
		})
	}

	code, _, stderr := execute(t, "", "parse", "--format", "xml", path)
	if code != 1 || !strings.Contains(stderr, "unknown format") {
		t.Errorf("expected an unknown format error, got %d: %s", code, stderr)
	}
}

func TestParseCommandReportsSyntaxErrors(t *testing.T) {
	path := writeSource(t, "1+;")

	code, stdout, stderr := execute(t, "", "parse", path)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if stdout != "" {
		t.Errorf("nothing may be printed on failure, got %q", stdout)
	}

	for _, want := range []string{
		"Build failed with errors:",
		"ERROR: " + path + ":1:3: expected an identifier or an integer literal, but found: 'SEMICOLON()'",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr is missing %q:\n%s", want, stderr)
		}
	}
	if strings.Contains(stderr, "Error: build failed") {
		t.Errorf("reported errors must not be repeated:\n%s", stderr)
	}
}

func TestParseCommandReportsLexicalErrors(t *testing.T) {
	path := writeSource(t, "1 + $;")

	code, _, stderr := execute(t, "", "parse", path)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr, "ERROR: "+path+":1:5: unexpected character: '$'") {
		t.Errorf("unexpected stderr:\n%s", stderr)
	}
}

func TestParseCommandStdin(t *testing.T) {
	code, stdout, stderr := execute(t, ";;", "parse", "-")
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, stderr)
	}
	if stdout != "(program (empty) (empty))\n" {
		t.Errorf("unexpected output: %q", stdout)
	}
}

func TestParseCommandWithConfig(t *testing.T) {
	path := writeSource(t, "x;")
	cfgPath := filepath.Join(t.TempDir(), "kut.toml")
	cfg := "[output]\nformat = \"yaml\"\nshow_tokens = true\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := execute(t, "", "--config", cfgPath, "parse", path)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, stderr)
	}

	for _, want := range []string{"1:1\tIDENT(x)", "1:2\tSEMICOLON()", "1:3\tEOF()", "kind: IdentExpr"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in:\n%s", want, stdout)
		}
	}
}

func TestParseCommandMissingFile(t *testing.T) {
	code, _, stderr := execute(t, "", "parse", filepath.Join(t.TempDir(), "missing.kut"))
	if code != 1 || !strings.Contains(stderr, "Error: failed to read") {
		t.Errorf("expected a read error, got %d: %s", code, stderr)
	}
}

func TestTokensCommand(t *testing.T) {
	path := writeSource(t, "global int x;")

	code, stdout, stderr := execute(t, "", "tokens", path)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, stderr)
	}

	expected := "1:1\tGLOBAL()\n1:8\tINT_TYPE()\n1:12\tIDENT(x)\n1:13\tSEMICOLON()\n1:14\tEOF()\n"
	if stdout != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, stdout)
	}
}

func TestTokensCommandReportsLexicalErrors(t *testing.T) {
	path := writeSource(t, "1 # 2;")

	code, _, stderr := execute(t, "", "tokens", path)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr, "ERROR: "+path+":1:3: unexpected character: '#'") {
		t.Errorf("unexpected stderr:\n%s", stderr)
	}
}

func TestVerboseLogging(t *testing.T) {
	path := writeSource(t, "1;")

	code, _, stderr := execute(t, "", "-v", "parse", path)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, stderr)
	}
	if !strings.Contains(stderr, "msg=\"parse finished\"") {
		t.Errorf("expected debug logs on stderr, got:\n%s", stderr)
	}
}

func TestWatchCommandStopsOnCancel(t *testing.T) {
	path := writeSource(t, "1;")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"watch", path}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, stderr.String())
	}
	if stdout.String() != "(program 1)\n" {
		t.Errorf("expected the initial parse to be printed, got %q", stdout.String())
	}
}

func TestWatchCommandRejectsStdin(t *testing.T) {
	code, stdout, stderr := execute(t, "1;", "watch", "-")
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if stdout != "" {
		t.Errorf("nothing may be parsed, got %q", stdout)
	}
	if !strings.Contains(stderr, "Error: standard input cannot be watched") {
		t.Errorf("unexpected stderr:\n%s", stderr)
	}
}
