package compiler_errors

import (
	"errors"
	"fmt"
)

var (
	// ErrCompile matches every error raised while compiling, syntax errors
	// included.
	ErrCompile = errors.New("compile error")
	ErrSyntax  = errors.New("syntax error")
)

type CompileError struct {
	Message string

	FileName string
	Line     int
	Column   int
	Length   int
}

func (e *CompileError) GetMessage() string {
	return e.Message
}

func (e *CompileError) GetFileName() string {
	return e.FileName
}

func (e *CompileError) GetLine() int {
	return e.Line
}

func (e *CompileError) GetColumn() int {
	return e.Column
}

func (e *CompileError) GetLength() int {
	return e.Length
}

func (e *CompileError) Error() string {
	return e.Location() + ": compile error: " + e.Message
}

func (e *CompileError) Is(target error) bool {
	return target == ErrCompile
}

// Location renders file:line:column, dropping the file when it is unknown.
func (e *CompileError) Location() string {
	if e.FileName == "" {
		return fmt.Sprintf("%d:%d", e.Line, e.Column)
	}

	return fmt.Sprintf("%s:%d:%d", e.FileName, e.Line, e.Column)
}
