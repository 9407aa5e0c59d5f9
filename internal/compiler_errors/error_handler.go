package compiler_errors

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

type ErrorHandler interface {
	AddError(err error)
	HasErrors() bool
	Flush() int
}

type CompilerErrorHandler struct {
	errors []error
	writer io.Writer

	headerStyle lipgloss.Style
	labelStyle  lipgloss.Style
}

func NewErrorHandler(outputWriter io.Writer) ErrorHandler {
	renderer := lipgloss.NewRenderer(outputWriter)

	return &CompilerErrorHandler{
		errors: make([]error, 0),
		writer: outputWriter,

		headerStyle: renderer.NewStyle().Bold(true),
		labelStyle:  renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

func (eh *CompilerErrorHandler) AddError(err error) {
	if err == nil {
		return
	}

	eh.errors = append(eh.errors, err)
}

func (eh *CompilerErrorHandler) HasErrors() bool {
	return len(eh.errors) > 0
}

// Flush writes the collected errors and returns the process exit code the
// caller should use. The handler is empty afterwards.
func (eh *CompilerErrorHandler) Flush() int {
	if len(eh.errors) == 0 {
		return 0
	}

	fmt.Fprintln(eh.writer, eh.headerStyle.Render("Build failed with errors:"))

	for _, err := range eh.errors {
		fmt.Fprintf(eh.writer, "%s %s\n", eh.labelStyle.Render("ERROR:"), describe(err))
	}

	eh.errors = eh.errors[:0]
	return 1
}

func describe(err error) string {
	var located interface {
		Location() string
		GetMessage() string
	}
	if errors.As(err, &located) {
		return fmt.Sprintf("%s: %s", located.Location(), located.GetMessage())
	}

	return err.Error()
}
