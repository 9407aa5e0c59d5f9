package compiler_errors

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestCompileErrorIdentity(t *testing.T) {
	err := error(&CompileError{Message: "expected ';'", Line: 2, Column: 5})

	if !errors.Is(err, ErrCompile) {
		t.Error("expected CompileError to match ErrCompile")
	}
	if errors.Is(err, ErrSyntax) {
		t.Error("a plain CompileError must not match ErrSyntax")
	}
	if err.Error() != "2:5: compile error: expected ';'" {
		t.Errorf("unexpected message: %s", err.Error())
	}

	named := &CompileError{Message: "boom", FileName: "main.kut", Line: 1, Column: 1}
	if named.Location() != "main.kut:1:1" {
		t.Errorf("unexpected location: %s", named.Location())
	}
}

func TestErrorHandlerFlush(t *testing.T) {
	var out bytes.Buffer
	eh := NewErrorHandler(&out)

	if eh.HasErrors() {
		t.Fatal("new handler must be empty")
	}
	if code := eh.Flush(); code != 0 || out.Len() != 0 {
		t.Fatalf("flushing an empty handler: code %d, output %q", code, out.String())
	}

	eh.AddError(nil)
	eh.AddError(&CompileError{Message: "expected ';', but found: 'EOF()'", FileName: "a.kut", Line: 3, Column: 7})
	eh.AddError(errors.New("read a.kut: permission denied"))

	if !eh.HasErrors() {
		t.Fatal("expected collected errors")
	}

	if code := eh.Flush(); code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}

	report := out.String()
	for _, want := range []string{
		"Build failed with errors:",
		"ERROR: a.kut:3:7: expected ';', but found: 'EOF()'",
		"ERROR: read a.kut: permission denied",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report is missing %q:\n%s", want, report)
		}
	}

	if eh.HasErrors() {
		t.Error("handler must be empty after Flush")
	}
}
