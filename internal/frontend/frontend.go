package frontend

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/kievzenit/kut/internal/ast"
	"github.com/kievzenit/kut/internal/lexer"
	"github.com/kievzenit/kut/internal/parser"
)

type Result struct {
	FileName string
	Program  *ast.Program
	Tokens   []lexer.Token
	Elapsed  time.Duration
}

type Options struct {
	Logger *slog.Logger
	// KeepTokens records every token the parser consumed in Result.Tokens.
	KeepTokens bool
}

func ParseFile(path string, opts Options) (*Result, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return ParseSource(path, src, opts)
}

func ParseSource(fileName string, src []byte, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	started := time.Now()

	var source lexer.TokenSource = lexer.NewLexer(src)
	var recorder *recordingSource
	if opts.KeepTokens {
		recorder = &recordingSource{source: source}
		source = recorder
	}

	program, err := parser.NewParser(fileName, source, parser.WithLogger(logger)).Parse()
	if err != nil {
		return nil, withFileName(fileName, err)
	}

	result := &Result{
		FileName: fileName,
		Program:  program,
		Elapsed:  time.Since(started),
	}
	if recorder != nil {
		result.Tokens = recorder.tokens
	}

	logger.Debug("parsed", "file", fileName, "statements", len(program.Body.Stmts), "elapsed", result.Elapsed)
	return result, nil
}

// Tokenize lexes src without parsing it. Lexical errors carry fileName the same
// way ParseSource reports them.
func Tokenize(fileName string, src []byte) ([]lexer.Token, error) {
	tokens, err := lexer.NewLexer(src).Tokenize()
	if err != nil {
		return nil, withFileName(fileName, err)
	}
	return tokens, nil
}

// withFileName prefixes lexical errors with the file they came from. Compile
// errors already know their file.
func withFileName(fileName string, err error) error {
	if !errors.Is(err, lexer.ErrLexical) {
		return err
	}
	return fmt.Errorf("%s:%w", fileName, err)
}

type recordingSource struct {
	source lexer.TokenSource
	tokens []lexer.Token
}

func (r *recordingSource) NextToken() (lexer.Token, error) {
	token, err := r.source.NextToken()
	if err == nil {
		r.tokens = append(r.tokens, token)
	}
	return token, err
}
